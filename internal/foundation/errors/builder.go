package errors

import "strconv"

// ErrorBuilder provides a fluent API for creating ClassifiedError instances.
type ErrorBuilder struct {
	category ErrorCategory
	severity ErrorSeverity
	message  string
	cause    error
	context  ErrorContext
}

// NewError creates a new ErrorBuilder with the specified category and message.
func NewError(category ErrorCategory, message string) *ErrorBuilder {
	return &ErrorBuilder{
		category: category,
		severity: SeverityError,
		message:  message,
		context:  make(ErrorContext),
	}
}

// WrapError creates a new ErrorBuilder that wraps an existing error.
func WrapError(err error, category ErrorCategory, message string) *ErrorBuilder {
	b := NewError(category, message)
	b.cause = err
	return b
}

// WithSeverity sets the error severity.
func (b *ErrorBuilder) WithSeverity(severity ErrorSeverity) *ErrorBuilder {
	b.severity = severity
	return b
}

// WithContext adds a context key-value pair.
func (b *ErrorBuilder) WithContext(key string, value any) *ErrorBuilder {
	b.context = b.context.Set(key, value)
	return b
}

// Fatal sets the severity to fatal.
func (b *ErrorBuilder) Fatal() *ErrorBuilder {
	return b.WithSeverity(SeverityFatal)
}

// Build creates the final ClassifiedError.
func (b *ErrorBuilder) Build() *ClassifiedError {
	return &ClassifiedError{
		category: b.category,
		severity: b.severity,
		message:  b.message,
		cause:    b.cause,
		context:  b.context,
	}
}

// UsageError creates a malformed-invocation error.
func UsageError(message string) *ErrorBuilder {
	return NewError(CategoryUsage, message).Fatal()
}

// ArgumentError creates a command-line number error.
func ArgumentError(cause error, argument string) *ErrorBuilder {
	return WrapError(cause, CategoryArgument, "could not parse argument "+strconv.Quote(argument)+" as a number").
		WithContext("argument", argument).
		Fatal()
}

// ParseError creates an error for unparsable backing file content.
func ParseError(cause error, path, content string) *ErrorBuilder {
	return WrapError(cause, CategoryParse, "could not parse "+strconv.Quote(content)+" from "+path+" as a number").
		WithContext("path", path).
		WithContext("content", content).
		Fatal()
}

// FileSystemError creates an error for a failed read or write of path.
func FileSystemError(cause error, op, path string) *ErrorBuilder {
	return WrapError(cause, CategoryFileSystem, "could not "+op+" file "+path).
		WithContext("path", path).
		WithContext("op", op).
		Fatal()
}
