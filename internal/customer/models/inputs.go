package models

import (
	id "domainkit/pkg/domain"
	"domainkit/pkg/input"
)

type RegisterCustomerInput struct {
	input.Base
	Name  string
	Email string
}

func NewRegisterCustomerInput(envelope input.Base, name, email string) RegisterCustomerInput {
	return RegisterCustomerInput{Base: envelope, Name: name, Email: email}
}

type ChangeCustomerNameInput struct {
	input.Base
	CustomerID id.EntityID
	Name       string
}

func NewChangeCustomerNameInput(envelope input.Base, customerID id.EntityID, name string) ChangeCustomerNameInput {
	return ChangeCustomerNameInput{Base: envelope, CustomerID: customerID, Name: name}
}
