package fault

import (
	"errors"
	"fmt"
	"testing"
)

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want func(error) bool
	}{
		{"not found", NotFoundf("user %q not found", "u1"), IsNotFound},
		{"invalid state", InvalidStatef("attempt completed"), IsInvalidState},
		{"validation", Invalidf("unknown error type"), IsValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.want(tt.err) {
				t.Errorf("predicate rejected %v", tt.err)
			}
		})
	}
}

func TestPredicatesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("start attempt: %w", NotFoundf("skill %q not found", "s1"))
	if !IsNotFound(err) {
		t.Error("IsNotFound should see through fmt.Errorf wrapping")
	}
	if IsInvalidState(err) {
		t.Error("wrong kind matched")
	}
}

func TestPlainErrorIsNoFault(t *testing.T) {
	err := errors.New("disk full")
	if IsNotFound(err) || IsInvalidState(err) || IsValidation(err) {
		t.Error("plain error must not match any fault kind")
	}
}

func TestMessageIncludesCause(t *testing.T) {
	cause := errors.New("boom")
	err := &Error{Kind: KindValidation, Msg: "bad payload", Err: cause}
	if got := err.Error(); got != "bad payload: boom" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("Unwrap should expose the cause")
	}
}
