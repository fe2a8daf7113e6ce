package cmd

import "fmt"

// ExitCodeError carries a specific process exit status. main unwraps it
// with errors.As and exits with Code; any other error exits 1.
type ExitCodeError struct {
	Code int
}

// NewExitCodeError creates an error that requests the given exit status.
func NewExitCodeError(code int) *ExitCodeError {
	return &ExitCodeError{Code: code}
}

// Error implements the error interface.
func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}
