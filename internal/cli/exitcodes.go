package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal, successful command execution.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Item not found, column not found,
	// or any case where a resource ID does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Invalid JSON input, corrupted data, or data that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Invalid limits, unknown storage backends,
	// or any case where input fails validation rules.
	ExitValidation = 5
)

// ExitStatus carries a process exit code out of a command. The message has
// already been written by the OutputFormatter when it is returned.
type ExitStatus struct {
	Code   int
	Reason string
}

func (e *ExitStatus) Error() string {
	return fmt.Sprintf("exit %d: %s", e.Code, e.Reason)
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitStatus
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// Reported reports whether err was already written to the user
func Reported(err error) bool {
	var exitErr *ExitStatus
	return errors.As(err, &exitErr)
}
