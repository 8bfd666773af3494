package testutil

import (
	"time"

	"github.com/google/uuid"

	"domainkit/internal/customer/models"
	id "domainkit/pkg/domain"
	"domainkit/pkg/input"
)

// TestIDs provides stable IDs for deterministic test data.
var TestIDs = struct {
	TenantID1      id.TenantID
	TenantID2      id.TenantID
	CustomerID1    id.EntityID
	CorrelationID1 id.CorrelationID
}{
	TenantID1:      id.TenantID(uuid.MustParse("aaaa0000-0000-0000-0000-000000000001")),
	TenantID2:      id.TenantID(uuid.MustParse("aaaa0000-0000-0000-0000-000000000002")),
	CustomerID1:    id.EntityID(uuid.MustParse("cccc0000-0000-0000-0000-000000000001")),
	CorrelationID1: id.CorrelationID(uuid.MustParse("eeee0000-0000-0000-0000-000000000001")),
}

// Now is the reference instant for fixed and stepping test clocks.
var Now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// RegisterInputBuilder builds valid registration inputs by default.
type RegisterInputBuilder struct {
	tenantID       id.TenantID
	executionUser  string
	sourcePlatform string
	correlationID  id.CorrelationID
	name           string
	email          string
}

func NewRegisterInputBuilder() *RegisterInputBuilder {
	return &RegisterInputBuilder{
		tenantID:       TestIDs.TenantID1,
		executionUser:  "marcelo.castelo",
		sourcePlatform: "backoffice",
		correlationID:  TestIDs.CorrelationID1,
		name:           "Ana Souza",
		email:          "ana@example.com",
	}
}

func (b *RegisterInputBuilder) WithTenantID(tenantID id.TenantID) *RegisterInputBuilder {
	b.tenantID = tenantID
	return b
}

func (b *RegisterInputBuilder) WithExecutionUser(user string) *RegisterInputBuilder {
	b.executionUser = user
	return b
}

func (b *RegisterInputBuilder) WithSourcePlatform(platform string) *RegisterInputBuilder {
	b.sourcePlatform = platform
	return b
}

func (b *RegisterInputBuilder) WithCorrelationID(correlationID id.CorrelationID) *RegisterInputBuilder {
	b.correlationID = correlationID
	return b
}

func (b *RegisterInputBuilder) WithName(name string) *RegisterInputBuilder {
	b.name = name
	return b
}

func (b *RegisterInputBuilder) WithEmail(email string) *RegisterInputBuilder {
	b.email = email
	return b
}

// Empty clears every field, envelope included.
func (b *RegisterInputBuilder) Empty() *RegisterInputBuilder {
	*b = RegisterInputBuilder{}
	return b
}

func (b *RegisterInputBuilder) Build() models.RegisterCustomerInput {
	envelope := input.NewBase(b.tenantID, b.executionUser, b.sourcePlatform, b.correlationID)
	return models.NewRegisterCustomerInput(envelope, b.name, b.email)
}

// SnapshotBuilder builds a stored customer that passes validation at Now.
type SnapshotBuilder struct {
	snapshot models.Snapshot
}

func NewSnapshotBuilder() *SnapshotBuilder {
	createdAt := Now.Add(-48 * time.Hour)
	return &SnapshotBuilder{
		snapshot: models.Snapshot{
			ID:                 TestIDs.CustomerID1,
			TenantID:           TestIDs.TenantID1,
			Name:               "Ana Souza",
			Email:              "ana@example.com",
			CreatedBy:          "marcelo.castelo",
			CreatedAt:          createdAt,
			LastSourcePlatform: "backoffice",
			LastCorrelationID:  TestIDs.CorrelationID1,
			RegistryVersion:    createdAt,
		},
	}
}

// Modified stamps a modification at the given instant.
func (b *SnapshotBuilder) Modified(by string, at time.Time) *SnapshotBuilder {
	b.snapshot.LastUpdatedBy = &by
	b.snapshot.LastUpdatedAt = &at
	b.snapshot.RegistryVersion = at
	return b
}

func (b *SnapshotBuilder) WithCreatedAt(at time.Time) *SnapshotBuilder {
	b.snapshot.CreatedAt = at
	return b
}

func (b *SnapshotBuilder) WithName(name string) *SnapshotBuilder {
	b.snapshot.Name = name
	return b
}

func (b *SnapshotBuilder) Build() models.Snapshot {
	return b.snapshot
}
