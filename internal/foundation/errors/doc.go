// Package errors provides the classified error type used across xhacklight.
//
// Every failure a user can see carries a category that decides its exit code
// and how it is rendered on standard error:
//   - CategoryUsage: malformed invocation, rendered as the fixed usage line
//   - CategoryArgument: a numeric command-line argument did not parse
//   - CategoryParse: the backing file held something other than a number
//   - CategoryFileSystem: the backing file could not be read or written
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryFileSystem, "could not read file "+path).
//		WithContext("path", path).
//		Build()
package errors
