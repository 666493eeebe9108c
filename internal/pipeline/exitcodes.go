package pipeline

import "errors"

// Exit codes for validation failures. Each failure class gets its own
// non-zero code for scriptability.
const (
	// ExitUsage is returned for a wrong argument count.
	ExitUsage = 2

	// ExitRootNotFound is returned when the scan root is missing.
	ExitRootNotFound = 3

	// ExitPropsInvalid is returned when the properties file is missing or misnamed.
	ExitPropsInvalid = 4
)

// ExitCodeFor maps a validation error to its exit code.
func ExitCodeFor(err error) int {
	switch {
	case errors.Is(err, ErrRootNotFound):
		return ExitRootNotFound
	case errors.Is(err, ErrPropsNotFound), errors.Is(err, ErrPropsName):
		return ExitPropsInvalid
	default:
		return 1
	}
}
