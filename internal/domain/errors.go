package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

// RemoteKind classifies the outcome of a call to a remote booking provider.
// The mapping is uniform across providers: callers see the same kind no
// matter which external system misbehaved.
type RemoteKind int

const (
	RemoteBadInput RemoteKind = iota + 1
	RemoteConflict
	RemoteNotFound
	RemoteUnavailable
)

func (k RemoteKind) String() string {
	switch k {
	case RemoteBadInput:
		return "bad_input"
	case RemoteConflict:
		return "conflict"
	case RemoteNotFound:
		return "not_found"
	case RemoteUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// RemoteError is the typed result of a failed remote booking call.
// Status is the raw HTTP status code when one was received, 0 when the
// service was unreachable.
type RemoteError struct {
	Service string
	Kind    RemoteKind
	Status  int
	Err     error
}

func (e RemoteError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s service: %s (status %d)", e.Service, e.Kind, e.Status)
	}
	return fmt.Sprintf("%s service: %s", e.Service, e.Kind)
}

func (e RemoteError) Unwrap() error { return e.Err }

// CompensationError reports that rolling back already-committed saga steps
// failed. The system may be left with a remote sub-booking that no local
// record references; Err carries every compensation failure encountered.
type CompensationError struct {
	Err error
}

func (e CompensationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("compensation failed: %v", e.Err)
	}
	return "compensation failed"
}

func (e CompensationError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

func IsCompensation(err error) bool {
	var target CompensationError
	return errors.As(err, &target)
}

// AsRemote extracts a RemoteError when err carries one.
func AsRemote(err error) (RemoteError, bool) {
	var target RemoteError
	ok := errors.As(err, &target)
	return target, ok
}

// IsRemoteKind reports whether err is a RemoteError of the given kind.
func IsRemoteKind(err error, kind RemoteKind) bool {
	re, ok := AsRemote(err)
	return ok && re.Kind == kind
}
