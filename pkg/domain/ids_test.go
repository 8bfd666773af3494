package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "domainkit/pkg/domain-errors"
)

// TestParseUUID_Invariants validates the parsing invariant:
// "identifiers read at a boundary must be well-formed UUIDs"
func TestParseUUID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseTenantID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseEntityID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		assert.Contains(t, err.Error(), "entity ID")
	})

	t.Run("accepts nil UUID and reports it as nil", func(t *testing.T) {
		id, err := ParseCorrelationID(uuid.Nil.String())
		require.NoError(t, err)
		assert.True(t, id.IsNil())
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		valid := uuid.New()
		id, err := ParseEventID(valid.String())
		require.NoError(t, err)
		assert.Equal(t, EventID(valid), id)
		assert.Equal(t, valid.String(), id.String())
	})
}

func TestNewIDs(t *testing.T) {
	assert.False(t, NewEntityID().IsNil())
	assert.False(t, NewTenantID().IsNil())
	assert.False(t, NewCorrelationID().IsNil())
	assert.False(t, NewEventID().IsNil())
	assert.NotEqual(t, NewEntityID(), NewEntityID())
}

// TestZeroValuesAreNil documents that the zero value of every ID type is the
// "empty" identifier an unregistered entity carries.
func TestZeroValuesAreNil(t *testing.T) {
	var (
		entityID      EntityID
		tenantID      TenantID
		correlationID CorrelationID
		eventID       EventID
	)
	assert.True(t, entityID.IsNil())
	assert.True(t, tenantID.IsNil())
	assert.True(t, correlationID.IsNil())
	assert.True(t, eventID.IsNil())
}
