package errors

import (
	"errors"
)

// Exit codes reported by sarifmerge commands.
const (
	ExitCodeOK             = 0
	ExitCodeFailure        = 1
	ExitCodeMalformedInput = 2
)

// CommandError represents an error that occurred during command execution, storing the exit code
// and whatever partial outcome the command produced.
type CommandError struct {
	ExitCode    int
	CommonError string
	Args        interface{}
	Result      interface{}
	err         error
}

// Error implements the error interface, returning the message from the common error.
func (e *CommandError) Error() string {
	return e.CommonError
}

// Unwrap exposes the underlying error for errors.Is and errors.As.
func (e *CommandError) Unwrap() error {
	return e.err
}

// NewCommandError creates a new CommandError instance, encapsulating args, result, and the error message.
func NewCommandError(args interface{}, result interface{}, err error, code int) *CommandError {
	return &CommandError{
		ExitCode:    code,
		CommonError: err.Error(),
		Args:        args,
		Result:      result,
		err:         err,
	}
}

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitCodeOK
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ExitCode
	}
	return ExitCodeFailure
}
