package cbi

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by an aggregator matches exactly one of them via errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUpstreamFailure = errors.New("upstream failure")
	ErrNotImplemented  = errors.New("not implemented")
	ErrNotFound        = errors.New("not found")
)

// Error describes a failed operation. It unwraps to both its kind and the underlying cause.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Err)
}

// Unwrap exposes the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the kind sentinel of err, or nil when err was not produced by this package.
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return nil
}

func invalidArgument(op, format string, args ...any) error {
	return &Error{Op: op, Kind: ErrInvalidArgument, Err: fmt.Errorf(format, args...)}
}

func notImplemented(op string) error {
	return &Error{Op: op, Kind: ErrNotImplemented}
}

func notFound(op string, err error) error {
	return &Error{Op: op, Kind: ErrNotFound, Err: err}
}

// upstream classifies err as an upstream failure unless it is already classified.
func upstream(op string, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Op: op, Kind: ErrUpstreamFailure, Err: err}
}

func statusOf(err error) string {
	switch KindOf(err) {
	case nil:
		if err != nil {
			return "error"
		}
		return "success"
	case ErrInvalidArgument:
		return "invalid_argument"
	case ErrNotImplemented:
		return "not_implemented"
	case ErrNotFound:
		return "not_found"
	default:
		return "upstream_failure"
	}
}
