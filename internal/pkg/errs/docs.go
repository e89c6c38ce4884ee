// Package errs provides standardized error types for the storefront order core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package groups errors by the failure kind a caller can react to:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: invalid input
//   - ObjectNotFoundError: an order, cart item or product does not exist
//   - ForbiddenError: the actor lacks ownership or role
//   - StatusTransitionIsInvalidError: the order lifecycle does not allow the change
//   - ConflictError: a concurrent mutation won the race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Anything that does not unwrap to one of the sentinels is an internal failure.
package errs

import "strings"

// sanitize flattens multi-line values so error messages stay on one line.
func sanitize(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "\n", " ")), " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return msg + " (cause: " + sanitize(cause.Error()) + ")"
}
