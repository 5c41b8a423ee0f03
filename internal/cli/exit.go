package cli

import "fmt"

// ExitError asks main to terminate with a specific process code, e.g. when
// --fail-below trips on a low audit score.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Message
}
