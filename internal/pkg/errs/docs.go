// Package errs provides standardized error types for the storefront application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes one error type per failure kind the order lifecycle reports:
//   - ObjectNotFoundError: an order, product, line item or actor is absent
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - PermissionDeniedError: the actor's role or ownership does not allow the request
//   - InvalidTransitionError: the requested status is not reachable from the current one
//   - InvalidStateError: the aggregate is not in the state the operation requires
//   - ConflictError: a record with the same natural key already exists
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the failure
//
// Anything that does not unwrap to one of the sentinels is an unexpected
// infrastructure failure and is reported as such by the transport layer.
package errs
