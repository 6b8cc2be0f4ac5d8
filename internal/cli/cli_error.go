package cli

import "errors"

// Exit codes returned by the process
const (
	ExitSuccess  = 0
	ExitFailure  = 1
	ExitUsage    = -1
	ExitNotFound = -2
)

// Error codes carried by CLIError and the ndjson error object
const (
	CodeUsage     = "USAGE"
	CodeNotFound  = "FILE_NOT_FOUND"
	CodeDecode    = "DECODE_ERROR"
	CodeReadError = "READ_ERROR"
)

// Fixed messages for the two boundary failures
const (
	msgUsage    = "Too few args. Args must be 1."
	msgNotFound = "This file does not exist or is a directory."
)

// CLIError is a structured error used for consistent NDJSON/text emission.
type CLIError struct {
	Code     string
	Message  string
	Hint     string
	ExitCode int
	Err      error
}

func (e *CLIError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExitCode maps the error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.ExitCode
	}
	return ExitFailure
}
