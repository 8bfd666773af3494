// Package entitycheck runs customer registrations and stored customer
// snapshots from YAML batch files through the validators and reports the
// resulting messages.
package entitycheck

import (
	"bytes"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"domainkit/internal/customer/models"
	"domainkit/pkg/clock"
	id "domainkit/pkg/domain"
	dErrors "domainkit/pkg/domain-errors"
	"domainkit/pkg/input"
	s "domainkit/pkg/string"
)

// Batch is the document layout of one file.
type Batch struct {
	Registrations []Registration `yaml:"registrations"`
	Customers     []StoredRecord `yaml:"customers"`
}

type Registration struct {
	TenantID       string `yaml:"tenant_id"`
	ExecutionUser  string `yaml:"execution_user"`
	SourcePlatform string `yaml:"source_platform"`
	CorrelationID  string `yaml:"correlation_id"`
	Name           string `yaml:"name"`
	Email          string `yaml:"email"`
}

// StoredRecord is a customer as a persistence layer would hand it back.
type StoredRecord struct {
	ID                 string     `yaml:"id"`
	TenantID           string     `yaml:"tenant_id"`
	Name               string     `yaml:"name"`
	Email              string     `yaml:"email"`
	CreatedBy          string     `yaml:"created_by"`
	CreatedAt          time.Time  `yaml:"created_at"`
	LastUpdatedBy      *string    `yaml:"last_updated_by"`
	LastUpdatedAt      *time.Time `yaml:"last_updated_at"`
	LastSourcePlatform string     `yaml:"last_source_platform"`
	LastCorrelationID  string     `yaml:"last_correlation_id"`
	RegistryVersion    time.Time  `yaml:"registry_version"`
}

func LoadFile(path string) (Batch, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Batch{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "read batch file "+path)
	}
	return Parse(raw)
}

// Parse rejects unknown keys so typos do not silently drop fields.
func Parse(raw []byte) (Batch, error) {
	var b Batch
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		return Batch{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "decode batch: "+err.Error())
	}
	return b, nil
}

// Input builds the command with name and email trimmed. Blank identifiers become nil ids, which the
// validators report; malformed ones are boundary errors.
func (r Registration) Input() (models.RegisterCustomerInput, error) {
	s.TrimStrings(&r.Name, &r.Email)
	tenantID, err := optionalID(r.TenantID, id.ParseTenantID)
	if err != nil {
		return models.RegisterCustomerInput{}, err
	}
	correlationID, err := optionalID(r.CorrelationID, id.ParseCorrelationID)
	if err != nil {
		return models.RegisterCustomerInput{}, err
	}
	envelope := input.NewBase(tenantID, r.ExecutionUser, r.SourcePlatform, correlationID)
	return models.NewRegisterCustomerInput(envelope, r.Name, r.Email), nil
}

// Customer rehydrates the record without reading clk.
func (r StoredRecord) Customer(clk clock.Clock) (*models.Customer, error) {
	entityID, err := optionalID(r.ID, id.ParseEntityID)
	if err != nil {
		return nil, err
	}
	tenantID, err := optionalID(r.TenantID, id.ParseTenantID)
	if err != nil {
		return nil, err
	}
	correlationID, err := optionalID(r.LastCorrelationID, id.ParseCorrelationID)
	if err != nil {
		return nil, err
	}
	return models.FromSnapshot(clk, models.Snapshot{
		ID:                 entityID,
		TenantID:           tenantID,
		Name:               r.Name,
		Email:              r.Email,
		CreatedBy:          r.CreatedBy,
		CreatedAt:          r.CreatedAt,
		LastUpdatedBy:      r.LastUpdatedBy,
		LastUpdatedAt:      r.LastUpdatedAt,
		LastSourcePlatform: r.LastSourcePlatform,
		LastCorrelationID:  correlationID,
		RegistryVersion:    r.RegistryVersion,
	}), nil
}

func optionalID[T any](raw string, parse func(string) (T, error)) (T, error) {
	var zero T
	if raw == "" {
		return zero, nil
	}
	return parse(raw)
}
