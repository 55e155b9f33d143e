// Package fault defines the client-facing error taxonomy shared by the
// tracking, analytics and progress services. Transport layers map these to
// status codes; anything that is not a fault is an internal storage failure
// and propagates as a generic error.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a client-facing failure.
type Kind int

const (
	// KindNotFound: unknown user, skill or attempt, or a skill with zero
	// attempts on the per-skill analytics path.
	KindNotFound Kind = iota
	// KindInvalidState: mutation attempted on a completed attempt, including
	// double completion.
	KindInvalidState
	// KindValidation: unrecognized error type or malformed step number.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidState:
		return "invalid_state"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is a client-facing failure with a human-readable message.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// NotFoundf creates a KindNotFound error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// InvalidStatef creates a KindInvalidState error.
func InvalidStatef(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Msg: fmt.Sprintf(format, args...)}
}

// Invalidf creates a KindValidation error.
func Invalidf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func is(err error, kind Kind) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == kind
}

// IsNotFound reports whether err is a KindNotFound fault.
func IsNotFound(err error) bool { return is(err, KindNotFound) }

// IsInvalidState reports whether err is a KindInvalidState fault.
func IsInvalidState(err error) bool { return is(err, KindInvalidState) }

// IsValidation reports whether err is a KindValidation fault.
func IsValidation(err error) bool { return is(err, KindValidation) }
