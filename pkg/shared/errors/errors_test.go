package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	base := errors.New("boom")

	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitCodeOK},
		{name: "plain error", err: base, want: ExitCodeFailure},
		{name: "command error", err: NewCommandError(nil, nil, base, ExitCodeMalformedInput), want: ExitCodeMalformedInput},
		{name: "wrapped command error", err: fmt.Errorf("run: %w", NewCommandError(nil, nil, base, 3)), want: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitCode(tc.err); got != tc.want {
				t.Fatalf("ExitCode() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCommandErrorUnwrap(t *testing.T) {
	base := errors.New("boom")
	err := NewCommandError("args", nil, fmt.Errorf("merge failed: %w", base), ExitCodeFailure)

	if err.Error() != "merge failed: boom" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Fatal("expected CommandError to unwrap to the cause")
	}
}
