package errors

// ErrorCategory is the broad class of a failure; it drives the exit code.
type ErrorCategory string

const (
	// CategoryUsage and CategoryArgument are caller mistakes on the command line.
	CategoryUsage    ErrorCategory = "usage"
	CategoryArgument ErrorCategory = "argument"

	// CategoryParse and CategoryFileSystem come from the backing file.
	CategoryParse      ErrorCategory = "parse"
	CategoryFileSystem ErrorCategory = "filesystem"

	// CategoryInternal covers failures of the program itself, such as a bad
	// command-line grammar.
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates the impact level of an error.
type ErrorSeverity string

const (
	SeverityFatal ErrorSeverity = "fatal" // Stops the invocation
	SeverityError ErrorSeverity = "error" // Fails the current operation
)

// ErrorContext provides structured context for errors.
type ErrorContext map[string]any

// Set adds or updates a context value.
func (c ErrorContext) Set(key string, value any) ErrorContext {
	if c == nil {
		c = make(ErrorContext)
	}
	c[key] = value
	return c
}
