// Package errs provides standardized error types for the logistics backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the error taxonomy of the HTTP surface:
//   - ValueIsRequiredError / ValueIsInvalidError: request validation failures
//   - ObjectNotFoundError: referenced entity does not exist
//   - DuplicateKeyError: unique-constraint violations (tracking numbers,
//     license plates, usernames)
//   - ResourceInUseError: deletes blocked by foreign references
//   - ErrUnauthorized: login failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// The HTTP adapter maps these sentinels onto status codes; anything that
// does not unwrap to one of them is treated as an internal error.
package errs
