// Package errs provides standardized error types for the courier manager application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ObjectAlreadyExistsError: For when a write collides with a uniqueness constraint
//   - AuthenticationError: For when credentials cannot be verified
//   - AccessDeniedError: For when a verified identity lacks the required role
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinels double as the application's error taxonomy: the HTTP boundary
// classifies failures with errors.Is against them to choose a status code,
// so no business-rule violation is ever silently swallowed or misreported.
package errs
