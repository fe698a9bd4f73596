// Package errs provides standardized error types for the storefront application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines the application's error taxonomy:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value lies outside permitted bounds
//   - ObjectNotFoundError: For lookup misses and dangling references
//   - PersistenceError: For storage-level failures after which the whole
//     operation was rolled back and may be retried
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels rather than
// matching message text. The HTTP adapter relies on this to map error kinds
// to response codes without ever surfacing raw storage-engine messages.
package errs
