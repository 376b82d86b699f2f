package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMyError(t *testing.T) {
	inner := errors.New("underlying")
	e := NewMyError(ErrBadParameter, "invalid input", inner)
	require.NotNil(t, e)
	assert.Equal(t, ErrBadParameter, e.Code)
	assert.Equal(t, "invalid input", e.Message)
	assert.Same(t, inner, e.Inner)
}

func TestNewInternalServerError(t *testing.T) {
	e := NewInternalServerError("db failed", nil)
	require.NotNil(t, e)
	assert.Equal(t, ErrInternalServerError, e.Code)
	assert.Equal(t, "db failed", e.Message)
}

func TestNewBadParameterError(t *testing.T) {
	e := NewBadParameterError("invalid body", nil)
	require.NotNil(t, e)
	assert.Equal(t, ErrBadParameter, e.Code)
	assert.Equal(t, "invalid body", e.Message)
}

func TestToMyError_WithMyError(t *testing.T) {
	e := NewBadParameterError("bad", nil)
	got := ToMyError(e)
	require.NotNil(t, got)
	assert.Same(t, e, got)
}

func TestToMyError_WithOrdinaryError(t *testing.T) {
	e := errors.New("plain")
	got := ToMyError(e)
	assert.Nil(t, got)
}

func TestIsEntityNotFoundError(t *testing.T) {
	e := NewEntityNotFoundError("gone", nil)
	assert.True(t, IsEntityNotFoundError(e))
}

func TestRegistryErrorConstructors(t *testing.T) {
	tests := []struct {
		name  string
		build func(string, error) *MyError
		is    func(error) bool
		code  string
	}{
		{name: "invalid lease", build: NewInvalidLeaseError, is: IsInvalidLeaseError, code: ErrInvalidLease},
		{name: "instance not found", build: NewInstanceNotFoundError, is: IsInstanceNotFoundError, code: ErrInstanceNotFound},
		{name: "timeout", build: NewTimeoutError, is: IsTimeoutError, code: ErrTimeout},
		{name: "peer unreachable", build: NewPeerUnreachableError, is: IsPeerUnreachableError, code: ErrPeerUnreachable},
		{name: "conflict discarded", build: NewConflictDiscardedError, is: IsConflictDiscardedError, code: ErrConflictDiscarded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.build("msg", errors.New("cause"))
			require.NotNil(t, e)
			assert.Equal(t, tt.code, e.Code)
			assert.True(t, tt.is(e))
			assert.True(t, tt.is(fmt.Errorf("wrapped: %w", e)))
			assert.False(t, IsBadParameterError(e))
			assert.Equal(t, tt.code+" msg: cause", e.Error())
		})
	}
}

func TestNewXError_KeepsInnerMyError(t *testing.T) {
	inner := NewInstanceNotFoundError("missing", nil)
	e := NewTimeoutError("outer", fmt.Errorf("ctx: %w", inner))
	assert.Same(t, inner, e)
	assert.Equal(t, ErrInstanceNotFound, ToMyErrorCode(e))
}
