package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal server error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that record or row is absent in repository or storage.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that provided parameter does not match declared.
	ErrBadParameter = "bad_parameter"
	// ErrInvalidLease means that registration input was rejected, such as a non-positive lease or an invalid host.
	ErrInvalidLease = "invalid_lease"
	// ErrInstanceNotFound means that the instance has no live lease (absent, cancelled or expired).
	ErrInstanceNotFound = "instance_not_found"
	// ErrTimeout means that the per-instance lock could not be acquired in time. The call had no effect.
	ErrTimeout = "timeout"
	// ErrPeerUnreachable means that a replication call to a peer failed.
	ErrPeerUnreachable = "peer_unreachable"
	// ErrConflictDiscarded means that a remote delta was not newer than the stored state.
	ErrConflictDiscarded = "conflict_discarded"
)

// MyError represents an error within the context of myregistry services.
type MyError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewMyError creates a new MyError.
func NewMyError(code string, message string, inner error) *MyError {
	return &MyError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

func NewInternalServerError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrBadParameter, message, inner)
}

func NewInvalidLeaseError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrInvalidLease, message, inner)
}

func NewInstanceNotFoundError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrInstanceNotFound, message, inner)
}

func NewTimeoutError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrTimeout, message, inner)
}

func NewPeerUnreachableError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrPeerUnreachable, message, inner)
}

func NewConflictDiscardedError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrConflictDiscarded, message, inner)
}

func (e MyError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e MyError) Unwrap() error {
	return e.Inner
}

// ToMyError returns a pointer to a myregistry error, or nil if it is not a myregistry error.
func ToMyError(err error) *MyError {
	var e *MyError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// ToMyErrorCode returns the code of the error, if available.
func ToMyErrorCode(err error) string {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code
	}
	return ""
}

func IsMyError(err error, code string) bool {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code == code
	}
	return false
}

func IsInternalServerError(err error) bool {
	return IsMyError(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return IsMyError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsMyError(err, ErrBadParameter)
}

func IsInvalidLeaseError(err error) bool {
	return IsMyError(err, ErrInvalidLease)
}

func IsInstanceNotFoundError(err error) bool {
	return IsMyError(err, ErrInstanceNotFound)
}

func IsTimeoutError(err error) bool {
	return IsMyError(err, ErrTimeout)
}

func IsPeerUnreachableError(err error) bool {
	return IsMyError(err, ErrPeerUnreachable)
}

func IsConflictDiscardedError(err error) bool {
	return IsMyError(err, ErrConflictDiscarded)
}
