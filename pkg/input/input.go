// Package input provides the envelope every mutating command carries: which
// tenant it targets, who is acting, from which platform and under which
// correlation id.
package input

import id "domainkit/pkg/domain"

// Input is implemented by every type that embeds Base.
type Input interface {
	InputBase() Base
}

// Base is an immutable value. Concrete inputs embed it:
//
//	type RegisterCustomerInput struct {
//		input.Base
//		Name string
//	}
type Base struct {
	tenantID       id.TenantID
	executionUser  string
	sourcePlatform string
	correlationID  id.CorrelationID
}

func NewBase(tenantID id.TenantID, executionUser, sourcePlatform string, correlationID id.CorrelationID) Base {
	return Base{
		tenantID:       tenantID,
		executionUser:  executionUser,
		sourcePlatform: sourcePlatform,
		correlationID:  correlationID,
	}
}

func (b Base) InputBase() Base                 { return b }
func (b Base) TenantID() id.TenantID           { return b.tenantID }
func (b Base) ExecutionUser() string           { return b.executionUser }
func (b Base) SourcePlatform() string          { return b.sourcePlatform }
func (b Base) CorrelationID() id.CorrelationID { return b.correlationID }
