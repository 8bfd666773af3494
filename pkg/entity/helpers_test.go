package entity_test

import (
	"domainkit/pkg/clock"
	"domainkit/pkg/entity"
)

// customer is the smallest concrete entity: it embeds Base and supplies the
// blank-instance factory DeepClone needs.
type customer struct {
	entity.Base
	name string
}

func newCustomer(clk clock.Clock) *customer {
	return &customer{Base: entity.NewBase(clk)}
}

func (c *customer) CreateInstanceForClone() *customer {
	return newCustomer(c.Clock())
}

func (c *customer) DeepClone() *customer {
	clone := entity.DeepClone(c)
	clone.name = c.name
	return clone
}

var _ entity.Cloneable[*customer] = (*customer)(nil)
