package entity

import (
	"domainkit/pkg/validation"
	"domainkit/pkg/validation/rules"
)

func errorRule(code, message string) rules.Failure {
	return rules.Failure{Code: code, Message: message, Severity: validation.SeverityError}
}

// Failures reported by the entity base rules. Codes are stable.
var (
	ShouldHaveID = errorRule(
		"DomainEntityBaseShouldHaveId",
		"Domain entity should have id")
	ShouldHaveTenantID = errorRule(
		"DomainEntityBaseShouldHaveTenantId",
		"Domain entity should have tenant id")
	ShouldHaveCreatedBy = errorRule(
		"DomainEntityBaseShouldHaveCreatedBy",
		"Domain entity should have created by")
	ShouldHaveCreatedByWithValidLength = errorRule(
		"DomainEntityBaseShouldHaveCreatedByWithValidLength",
		"Domain entity should have created by with valid length")
	ShouldHaveCreatedAt = errorRule(
		"DomainEntityBaseShouldHaveCreatedAt",
		"Domain entity should have created at")
	ShouldHaveValidCreatedAt = errorRule(
		"DomainEntityBaseShouldHaveValidCreatedAt",
		"Domain entity should have created at not in the future")
	ShouldHaveLastUpdatedByWithValidLength = errorRule(
		"DomainEntityBaseShouldHaveLastUpdatedByWithValidLength",
		"Domain entity should have last updated by with valid length")
	ShouldHaveValidLastUpdatedAt = errorRule(
		"DomainEntityBaseShouldHaveValidLastUpdatedAt",
		"Domain entity should have last updated at after created at and not in the future")
	ShouldHaveLastSourcePlatform = errorRule(
		"DomainEntityBaseShouldHaveLastSourcePlatform",
		"Domain entity should have last source platform")
	ShouldHaveLastSourcePlatformWithValidLength = errorRule(
		"DomainEntityBaseShouldHaveLastSourcePlatformWithValidLength",
		"Domain entity should have last source platform with valid length")
	ShouldHaveRegistryVersion = errorRule(
		"DomainEntityBaseShouldHaveRegistryVersion",
		"Domain entity should have registry version")
	ShouldHaveValidRegistryVersion = errorRule(
		"DomainEntityBaseShouldHaveValidRegistryVersion",
		"Domain entity should have registry version not in the future")
)
