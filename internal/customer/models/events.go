package models

import (
	"domainkit/pkg/clock"
	"domainkit/pkg/event"
)

// Registered is raised when a customer gets its identity.
type Registered struct {
	event.Base
	Name  string
	Email string
}

// NameChanged carries the name before and after the change.
type NameChanged struct {
	event.Base
	PreviousName string
	Name         string
}

// EventFactory builds customer events stamped from one clock.
type EventFactory struct {
	factory *event.Factory
}

func NewEventFactory(clk clock.Clock) *EventFactory {
	return &EventFactory{factory: event.NewFactory(clk)}
}

func (f *EventFactory) Registered(c *Customer, in RegisterCustomerInput) Registered {
	return Registered{
		Base: event.NewBase(
			event.BaseFields[Registered](f.factory),
			in.TenantID(),
			in.ExecutionUser(),
			in.SourcePlatform(),
			in.CorrelationID(),
			c,
		),
		Name:  in.Name,
		Email: in.Email,
	}
}

func (f *EventFactory) NameChanged(c *Customer, in ChangeCustomerNameInput, previous string) NameChanged {
	return NameChanged{
		Base: event.NewBase(
			event.BaseFields[NameChanged](f.factory),
			c.TenantID(),
			in.ExecutionUser(),
			in.SourcePlatform(),
			in.CorrelationID(),
			c,
		),
		PreviousName: previous,
		Name:         in.Name,
	}
}
