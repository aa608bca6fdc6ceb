package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryParse, "bad device content").
			WithSeverity(SeverityFatal).
			WithContext("path", "/tmp/brightness").
			Build()

		if err.Category() != CategoryParse {
			t.Errorf("expected category %s, got %s", CategoryParse, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "bad device content" {
			t.Errorf("expected message 'bad device content', got %s", err.Message())
		}
		if path := err.Context()["path"]; path != "/tmp/brightness" {
			t.Errorf("expected context path=/tmp/brightness, got %v", path)
		}
		if got := err.Error(); got != "[parse:fatal] bad device content" {
			t.Errorf("unexpected Error() %q", got)
		}
	})

	t.Run("Error detection through wrapping", func(t *testing.T) {
		err := fmt.Errorf("adjust: %w", UsageError("Usage: x").Build())

		if !HasCategory(err, CategoryUsage) {
			t.Error("expected wrapped error to have usage category")
		}
		if HasCategory(err, CategoryParse) {
			t.Error("expected wrapped error not to have parse category")
		}
		if HasCategory(errors.New("plain"), CategoryInternal) {
			t.Error("expected unclassified error to have no category")
		}
		if _, ok := AsClassified(errors.New("plain")); ok {
			t.Error("expected unclassified error not to convert")
		}
	})
}

func TestErrorBuilder(t *testing.T) {
	t.Run("Wrapping keeps the cause", func(t *testing.T) {
		originalErr := errors.New("original error")
		err := WrapError(originalErr, CategoryInternal, "could not build command line").Build()

		if !errors.Is(err, originalErr) {
			t.Error("expected error to wrap original error")
		}
		if err.Cause() != originalErr {
			t.Error("expected Cause to return original error")
		}
		if err.Severity() != SeverityError {
			t.Errorf("expected default severity %s, got %s", SeverityError, err.Severity())
		}
	})

	t.Run("Convenience constructors", func(t *testing.T) {
		cause := errors.New("boom")
		tests := []struct {
			name     string
			builder  *ErrorBuilder
			category ErrorCategory
			message  string
			ctxKey   string
			ctxValue string
		}{
			{"UsageError", UsageError("Usage: x"), CategoryUsage, "Usage: x", "", ""},
			{"ArgumentError", ArgumentError(cause, "+abc"), CategoryArgument, `could not parse argument "+abc" as a number`, "argument", "+abc"},
			{"ParseError", ParseError(cause, "/dev/b", "oops\n"), CategoryParse, `could not parse "oops\n" from /dev/b as a number`, "content", "oops\n"},
			{"FileSystemError", FileSystemError(cause, "write", "/dev/b"), CategoryFileSystem, "could not write file /dev/b", "path", "/dev/b"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.builder.Build()
				if err.Category() != tt.category {
					t.Errorf("expected category %s, got %s", tt.category, err.Category())
				}
				if err.Severity() != SeverityFatal {
					t.Errorf("expected %s to be fatal, got %s", tt.name, err.Severity())
				}
				if err.Message() != tt.message {
					t.Errorf("expected message %q, got %q", tt.message, err.Message())
				}
				if tt.ctxKey != "" {
					if v := err.Context()[tt.ctxKey]; v != tt.ctxValue {
						t.Errorf("expected context %s=%q, got %v", tt.ctxKey, tt.ctxValue, v)
					}
				}
			})
		}
	})
}

func TestErrorContextSet(t *testing.T) {
	var ctx ErrorContext
	ctx = ctx.Set("key1", "value1").Set("key2", 42)

	if ctx["key1"] != "value1" {
		t.Errorf("expected key1=value1, got %v", ctx["key1"])
	}
	if ctx["key2"] != 42 {
		t.Errorf("expected key2=42, got %v", ctx["key2"])
	}
}
