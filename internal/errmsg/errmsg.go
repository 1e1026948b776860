// Package errmsg provides the error taxonomy shared by the library, the
// catalog store and the HTTP layer, plus consistent formatting for
// user-facing messages.
package errmsg

import (
	"errors"
	"fmt"
)

// Kind classifies an error so callers can branch on it.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindDuplicate
	KindDecode
	KindStorage
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	case KindDuplicate:
		return "duplicate"
	case KindDecode:
		return "decode"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every operation boundary.
type Error struct {
	Kind Kind
	Op   Op
	Msg  string // user-facing detail, may be empty
	Err  error  // wrapped cause, may be nil
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation builds a validation error (empty or missing required field).
func Validation(op Op, msg string) error {
	return &Error{Kind: KindValidation, Op: op, Msg: msg}
}

// NotFound builds a not-found error for an absent target id.
func NotFound(op Op, msg string) error {
	return &Error{Kind: KindNotFound, Op: op, Msg: msg}
}

// Duplicate builds a duplicate error (song already in playlist, duplicate
// upload).
func Duplicate(op Op, msg string) error {
	return &Error{Kind: KindDuplicate, Op: op, Msg: msg}
}

// Decode wraps an audio metadata decoding failure.
func Decode(op Op, err error) error {
	return &Error{Kind: KindDecode, Op: op, Err: err}
}

// Storage wraps a persistence or filesystem fault.
func Storage(op Op, err error) error {
	return &Error{Kind: KindStorage, Op: op, Err: err}
}

// KindOf returns the kind of err, or KindUnknown if err does not carry one.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Message returns the user-facing message for err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Msg != "" {
		return e.Msg
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
