package validation

import "fmt"

// String length limits shared by specifications and validators.
const (
	// MaxCreatedByLength is the maximum length of an entity's createdBy.
	MaxCreatedByLength = 150

	// MaxLastUpdatedByLength is the maximum length of an entity's lastUpdatedBy.
	MaxLastUpdatedByLength = 150

	// MaxLastSourcePlatformLength is the maximum length of an entity's lastSourcePlatform.
	MaxLastSourcePlatformLength = 150

	// MaxExecutionUserLength is the maximum length of an input's executionUser.
	// The acting user ends up in createdBy, so the limits are the same.
	MaxExecutionUserLength = MaxCreatedByLength

	// MaxSourcePlatformLength is the maximum length of an input's sourcePlatform.
	MaxSourcePlatformLength = MaxLastSourcePlatformLength
)

// MaxLengthTag returns the validator tag for a required string of at most max
// characters. The validator counts runes, not bytes.
func MaxLengthTag(max int) string {
	return fmt.Sprintf("notblank,max=%d", max)
}
