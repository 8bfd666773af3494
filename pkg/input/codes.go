package input

import (
	"domainkit/pkg/validation"
	"domainkit/pkg/validation/rules"
)

// Failures reported by the input base rules. Codes are stable.
var (
	ShouldHaveTenantID = rules.Failure{
		Code:     "InputBaseShouldHaveTenantId",
		Message:  "Input should have tenant id",
		Severity: validation.SeverityError,
	}
	ShouldHaveExecutionUser = rules.Failure{
		Code:     "InputBaseShouldHaveExecutionUser",
		Message:  "Input should have execution user",
		Severity: validation.SeverityError,
	}
	ShouldHaveExecutionUserWithValidLength = rules.Failure{
		Code:     "InputBaseShouldHaveExecutionUserWithValidLength",
		Message:  "Input should have execution user with valid length",
		Severity: validation.SeverityError,
	}
	ShouldHaveSourcePlatform = rules.Failure{
		Code:     "InputBaseShouldHaveSourcePlatform",
		Message:  "Input should have source platform",
		Severity: validation.SeverityError,
	}
	ShouldHaveSourcePlatformWithValidLength = rules.Failure{
		Code:     "InputBaseShouldHaveSourcePlatformWithValidLength",
		Message:  "Input should have source platform with valid length",
		Severity: validation.SeverityError,
	}
	ShouldHaveCorrelationID = rules.Failure{
		Code:     "InputBaseShouldHaveCorrelationId",
		Message:  "Input should have correlation id",
		Severity: validation.SeverityError,
	}
)
