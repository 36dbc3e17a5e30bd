package delegate

import (
	"errors"
	"fmt"
)

var (
	// ErrAbsent means the script or binary a stage delegates to does not exist.
	ErrAbsent = errors.New("collaborator not found")
	// ErrUnsupportedHost means the stage cannot run on this operating system.
	ErrUnsupportedHost = errors.New("unsupported host operating system")
	// ErrCredentialsMissing means a store credential file does not exist.
	ErrCredentialsMissing = errors.New("credentials not found")
)

// AbsentError names the missing script or binary. It matches ErrAbsent.
type AbsentError struct {
	Name   string
	Script bool
}

func (e *AbsentError) Error() string {
	return fmt.Sprintf("%v: %s", ErrAbsent, e.Name)
}

// Is ...
func (e *AbsentError) Is(target error) bool {
	return target == ErrAbsent
}

// ExitError ...
type ExitError struct {
	Name     string
	ExitCode int
	Err      error
}

func (e *ExitError) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("%s exited with status %d", e.Name, e.ExitCode)
	}
	return fmt.Sprintf("%s failed: %v", e.Name, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
