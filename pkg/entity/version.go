package entity

import (
	"fmt"
	"time"

	dErrors "domainkit/pkg/domain-errors"
)

// CheckRegistryVersion compares the version currently held by storage with
// the one the in-memory entity carries. A persistence layer calls it before
// applying a modification; any difference means someone else committed in
// between and yields a conflict error.
func CheckRegistryVersion(e Entity, expected time.Time) error {
	current := e.EntityBase().RegistryVersion()
	if !current.Equal(expected) {
		return dErrors.New(dErrors.CodeConflict, fmt.Sprintf(
			"registry version mismatch for entity %s: expected %s, got %s",
			e.EntityBase().ID(),
			expected.Format(time.RFC3339Nano),
			current.Format(time.RFC3339Nano),
		))
	}
	return nil
}
