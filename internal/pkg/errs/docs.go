// Package errs provides standardized error types for the bakery order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value is outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - VersionIsInvalidError: For when an optimistic version check fails
//   - ConflictError: For when a valid request cannot be applied to the current state
//   - ForbiddenError: For when the acting user is not allowed to do something
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the category sentinel
//   - Is() method matching the wrapped cause, so domain sentinels passed as
//     causes stay reachable through errors.Is
//
// The HTTP adapter classifies failures by these sentinels: required/invalid/out of
// range map to 400, not found to 404, conflict and version to 409, forbidden to 403.
package errs
