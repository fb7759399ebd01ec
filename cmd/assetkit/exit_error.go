// SPDX-License-Identifier: MPL-2.0

package cmd

import "fmt"

// Process exit codes.
const (
	// ExitOK means the run completed, possibly with per-asset failures.
	ExitOK = 0
	// ExitAborted means the run stopped early, e.g. the destination is unwritable.
	ExitAborted = 1
	// ExitConfig means configuration or the built-in asset list is invalid.
	ExitConfig = 2
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
