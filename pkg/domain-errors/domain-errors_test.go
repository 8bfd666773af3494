package domainerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite tests the domain error primitives.
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeMissingDependency, Message: "clock is required"}
		s.Equal("clock is required", err.Error())
	})

	s.Run("returns code when message is empty", func() {
		err := &Error{Code: CodeConflict}
		s.Equal("conflict", err.Error())
	})
}

func (s *DomainErrorsSuite) TestIsMatching() {
	s.Run("matches by code only", func() {
		err1 := &Error{Code: CodeConflict, Message: "registry version changed"}
		err2 := &Error{Code: CodeConflict, Message: "other"}
		s.True(err1.Is(err2))
	})

	s.Run("does not match different codes", func() {
		err1 := &Error{Code: CodeConflict}
		err2 := &Error{Code: CodeInternal}
		s.False(err1.Is(err2))
	})

	s.Run("does not match non-domain errors", func() {
		s.False((&Error{Code: CodeConflict}).Is(errors.New("conflict")))
	})

	s.Run("works with errors.Is through chain", func() {
		inner := &Error{Code: CodeInvalidInput, Message: "original"}
		wrapped := &Error{Code: CodeInternal, Message: "wrapped", Err: inner}
		s.True(errors.Is(wrapped, &Error{Code: CodeInvalidInput}))
	})
}

func (s *DomainErrorsSuite) TestWrap() {
	s.Run("preserves original domain code when wrapping domain error", func() {
		wrapped := Wrap(New(CodeInvalidInput, "bad tenant id"), CodeInternal, "load failed")

		var domainErr *Error
		s.Require().True(errors.As(wrapped, &domainErr))
		s.Equal(CodeInvalidInput, domainErr.Code)
		s.Equal("load failed", domainErr.Message)
	})

	s.Run("uses provided code when wrapping non-domain error", func() {
		original := errors.New("read failed")
		wrapped := Wrap(original, CodeInternal, "load failed")

		s.True(HasCode(wrapped, CodeInternal))
		s.True(errors.Is(wrapped, original))
	})
}

func (s *DomainErrorsSuite) TestHasCode() {
	s.Run("returns true for matching code", func() {
		s.True(HasCode(New(CodeConflict, "x"), CodeConflict))
	})

	s.Run("returns false for non-domain error", func() {
		s.False(HasCode(errors.New("regular error"), CodeConflict))
	})

	s.Run("returns false for nil error", func() {
		s.False(HasCode(nil, CodeConflict))
	})
}
