package application

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationErrorAccumulatesFields(t *testing.T) {
	t.Parallel()

	vErr := &ValidationError{}
	if vErr.HasErrors() {
		t.Fatal("empty ValidationError reports errors")
	}

	vErr.add("title", "title is required")
	vErr.add("day", "day must be between 0 (Monday) and 6 (Sunday)")

	if !vErr.HasErrors() {
		t.Fatal("populated ValidationError reports no errors")
	}
	if len(vErr.FieldErrors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(vErr.FieldErrors))
	}
}

func TestErrorKindLabels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want string
	}{
		{err: nil, want: ""},
		{err: ErrNotFound, want: "not_found"},
		{err: fmt.Errorf("appointment %q: %w", "x", ErrNotFound), want: "not_found"},
		{err: ErrAlreadyExists, want: "already_exists"},
		{err: ErrUnauthorized, want: "unauthorized"},
		{err: ErrInvalidCredentials, want: "invalid_credentials"},
		{err: ErrSessionExpired, want: "session_expired"},
		{err: ErrSessionRevoked, want: "session_revoked"},
		{err: &ValidationError{FieldErrors: map[string]string{"title": "title is required"}}, want: "validation"},
		{err: errors.New("boom"), want: "unexpected"},
	}

	for _, tc := range cases {
		if got := ErrorKind(tc.err); got != tc.want {
			t.Fatalf("ErrorKind(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
