package cli

import (
	"fmt"

	"github.com/vburojevic/hdrift/internal/output"
)

// outputError reports err on stderr and, in ndjson mode, as an error object
// on stdout so machine consumers see the failure in-band. Usage and
// not-found messages are written bare; anything else gets an "Error:" prefix.
func outputError(globals *Globals, err *CLIError) error {
	if globals == nil {
		return err
	}
	if globals.Format == output.FormatNDJSON {
		if werr := output.NewNDJSONWriter(globals.Stdout).WriteError(err.Code, err.Message, err.Hint); werr != nil {
			globals.Debug("Failed to write error object: %v", werr)
		}
	}

	switch err.Code {
	case CodeUsage, CodeNotFound:
		fmt.Fprintln(globals.Stderr, err.Message)
	default:
		fmt.Fprintf(globals.Stderr, "%s %s\n", output.ErrorPrefix(globals.StyleStderr), err.Message)
		if err.Hint != "" && globals.Verbose {
			fmt.Fprintf(globals.Stderr, "Hint: %s\n", err.Hint)
		}
	}
	return err
}
