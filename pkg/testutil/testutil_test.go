package testutil_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "domainkit/pkg/domain-errors"
	"domainkit/pkg/testutil"
)

func TestRunConcurrent_SortsOutcomes(t *testing.T) {
	result := testutil.RunConcurrent(8, func(idx int) error {
		switch idx % 4 {
		case 0:
			return nil
		case 1:
			return dErrors.New(dErrors.CodeConflict, "version changed")
		case 2:
			return dErrors.New(dErrors.CodeInvalidInput, "bad id")
		default:
			return errors.New("boom")
		}
	})

	assert.Equal(t, int32(2), result.Successes)
	assert.Equal(t, int32(2), result.Conflicts)
	assert.Equal(t, int32(2), result.Invalid)
	assert.Equal(t, int32(2), result.Errors)
	assert.Equal(t, int32(8), result.Total())
}

func TestBuilders(t *testing.T) {
	in := testutil.NewRegisterInputBuilder().WithName("Bruno").Build()
	assert.Equal(t, testutil.TestIDs.TenantID1, in.TenantID())
	assert.Equal(t, "Bruno", in.Name)

	empty := testutil.NewRegisterInputBuilder().Empty().Build()
	assert.True(t, empty.TenantID().IsNil())
	assert.Empty(t, empty.ExecutionUser())

	snap := testutil.NewSnapshotBuilder().Modified("joao", testutil.Now.Add(-1)).Build()
	assert.Equal(t, "joao", *snap.LastUpdatedBy)
	assert.Equal(t, snap.RegistryVersion, *snap.LastUpdatedAt)
	assert.True(t, snap.CreatedAt.Before(*snap.LastUpdatedAt))
}
