package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	domainvalidation "domainkit/pkg/validation"
)

// LimitsSuite tests the length limits. The invariants "max must pass" and
// "max+1 must fail" back every length rule in the validators.
type LimitsSuite struct {
	suite.Suite
}

func TestLimitsSuite(t *testing.T) {
	suite.Run(t, new(LimitsSuite))
}

func (s *LimitsSuite) TestMaxLengthTagBoundaries() {
	tag := MaxLengthTag(MaxCreatedByLength)
	s.True(domainvalidation.Satisfies(strings.Repeat("a", MaxCreatedByLength), tag))
	s.False(domainvalidation.Satisfies(strings.Repeat("a", MaxCreatedByLength+1), tag))
	s.False(domainvalidation.Satisfies("  ", tag), "blank values fail the tag")
	s.True(domainvalidation.Satisfies(strings.Repeat("é", 3), MaxLengthTag(3)), "counts characters, not bytes")
}

func (s *LimitsSuite) TestMaxLengthTag() {
	s.Equal("notblank,max=150", MaxLengthTag(MaxSourcePlatformLength))
}

func (s *LimitsSuite) TestInputLimitsMirrorEntityLimits() {
	s.Equal(MaxCreatedByLength, MaxExecutionUserLength)
	s.Equal(MaxLastSourcePlatformLength, MaxSourcePlatformLength)
}
