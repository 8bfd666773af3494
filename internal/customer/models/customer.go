package models

import (
	"time"

	"domainkit/pkg/clock"
	id "domainkit/pkg/domain"
	"domainkit/pkg/entity"
	"domainkit/pkg/event"
)

// Customer is the sample aggregate. All state changes go through its methods
// so the audit fields and registry version stay consistent.
type Customer struct {
	entity.Base
	event.Recorder

	name  string
	email string
}

func NewCustomer(clk clock.Clock) *Customer {
	return &Customer{Base: entity.NewBase(clk)}
}

func (c *Customer) Name() string  { return c.name }
func (c *Customer) Email() string { return c.email }

// RegisterNew assigns a new identity from the input envelope and records a
// Registered event. The input is expected to have been validated already.
func (c *Customer) RegisterNew(in RegisterCustomerInput, events *EventFactory) {
	c.Base.RegisterNew(in.TenantID(), in.ExecutionUser(), in.SourcePlatform(), in.CorrelationID())
	c.name = in.Name
	c.email = in.Email
	c.Record(events.Registered(c, in))
}

// ChangeName is a modification; it re-stamps lastUpdated* and the registry
// version. Renaming to the current name still counts as a modification.
func (c *Customer) ChangeName(in ChangeCustomerNameInput, events *EventFactory) {
	previous := c.name
	c.RegisterModification(in.ExecutionUser(), in.SourcePlatform(), in.CorrelationID())
	c.name = in.Name
	c.Record(events.NameChanged(c, in, previous))
}

// Snapshot is the flat state a persistence collaborator stores.
type Snapshot struct {
	ID                 id.EntityID
	TenantID           id.TenantID
	Name               string
	Email              string
	CreatedBy          string
	CreatedAt          time.Time
	LastUpdatedBy      *string
	LastUpdatedAt      *time.Time
	LastSourcePlatform string
	LastCorrelationID  id.CorrelationID
	RegistryVersion    time.Time
}

// FromSnapshot rehydrates a customer without touching the clock.
func FromSnapshot(clk clock.Clock, s Snapshot) *Customer {
	c := NewCustomer(clk)
	c.SetExistingInfo(
		s.ID,
		s.TenantID,
		s.CreatedBy,
		s.CreatedAt,
		s.LastUpdatedBy,
		s.LastUpdatedAt,
		s.LastSourcePlatform,
		s.RegistryVersion,
		s.LastCorrelationID,
	)
	c.name = s.Name
	c.email = s.Email
	return c
}

func (c *Customer) Snapshot() Snapshot {
	audit := c.AuditableInfo()
	return Snapshot{
		ID:                 c.ID(),
		TenantID:           c.TenantID(),
		Name:               c.name,
		Email:              c.email,
		CreatedBy:          audit.CreatedBy(),
		CreatedAt:          audit.CreatedAt(),
		LastUpdatedBy:      audit.LastUpdatedBy(),
		LastUpdatedAt:      audit.LastUpdatedAt(),
		LastSourcePlatform: audit.LastSourcePlatform(),
		LastCorrelationID:  audit.LastCorrelationID(),
		RegistryVersion:    c.RegistryVersion(),
	}
}

func (c *Customer) CreateInstanceForClone() *Customer {
	return NewCustomer(c.Clock())
}

// DeepClone copies entity state, customer fields and pending events.
func (c *Customer) DeepClone() *Customer {
	clone := entity.DeepClone(c)
	clone.name = c.name
	clone.email = c.email
	clone.Recorder = c.CloneRecorder()
	return clone
}

var (
	_ entity.Cloneable[*Customer] = (*Customer)(nil)
	_ event.AggregateRoot         = (*Customer)(nil)
)
