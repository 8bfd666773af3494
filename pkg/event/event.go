// Package event holds the common shape of domain events and the recorder
// aggregates use to collect them until the caller publishes them.
package event

import (
	"reflect"
	"time"

	"domainkit/pkg/clock"
	dErrors "domainkit/pkg/domain-errors"
	id "domainkit/pkg/domain"
)

// AggregateRoot is the entity that raised an event. Events keep a reference
// to it without owning it.
type AggregateRoot interface {
	ID() id.EntityID
}

// Event is implemented by every type that embeds Base.
type Event interface {
	EventBase() Base
}

// Fields are the values every event gets at creation time.
type Fields struct {
	ID        id.EventID
	Timestamp time.Time
	Type      string
}

type Base struct {
	id             id.EventID
	timestamp      time.Time
	eventType      string
	tenantID       id.TenantID
	executionUser  string
	sourcePlatform string
	correlationID  id.CorrelationID
	aggregateRoot  AggregateRoot
}

func NewBase(
	fields Fields,
	tenantID id.TenantID,
	executionUser string,
	sourcePlatform string,
	correlationID id.CorrelationID,
	root AggregateRoot,
) Base {
	return Base{
		id:             fields.ID,
		timestamp:      fields.Timestamp,
		eventType:      fields.Type,
		tenantID:       tenantID,
		executionUser:  executionUser,
		sourcePlatform: sourcePlatform,
		correlationID:  correlationID,
		aggregateRoot:  root,
	}
}

func (b Base) EventBase() Base                 { return b }
func (b Base) ID() id.EventID                  { return b.id }
func (b Base) Timestamp() time.Time            { return b.timestamp }
func (b Base) DomainEventType() string         { return b.eventType }
func (b Base) TenantID() id.TenantID           { return b.tenantID }
func (b Base) ExecutionUser() string           { return b.executionUser }
func (b Base) SourcePlatform() string          { return b.sourcePlatform }
func (b Base) CorrelationID() id.CorrelationID { return b.correlationID }
func (b Base) AggregateRoot() AggregateRoot    { return b.aggregateRoot }

// Factory stamps events with ids and timestamps from its clock.
type Factory struct {
	clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	if clk == nil {
		panic(dErrors.New(dErrors.CodeMissingDependency, "event factory requires a clock"))
	}
	return &Factory{clock: clk}
}

// BaseFields returns a fresh id, the current UTC time and the qualified type
// name of T, e.g. "domainkit/internal/customer.Registered".
func BaseFields[T Event](f *Factory) Fields {
	return Fields{
		ID:        id.NewEventID(),
		Timestamp: f.clock.Now().UTC(),
		Type:      TypeName[T](),
	}
}

// TypeName is the event type recorded for T. Pointer types resolve to their
// element type.
func TypeName[T any]() string {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
