package dispatch

import "fmt"

// StartError reports that the build tool could not be started at all.
type StartError struct {
	Tool string
	Err  error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Tool, e.Err)
}

func (e *StartError) Unwrap() error {
	return e.Err
}

// BuildFailedError reports that the build tool ran and exited non-zero.
type BuildFailedError struct {
	Action Action
	Code   int
}

func (e *BuildFailedError) Error() string {
	return fmt.Sprintf("cargo %s exited with status %d", e.Action, e.Code)
}
