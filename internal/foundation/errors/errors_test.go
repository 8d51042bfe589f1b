package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid overlay").
			WithSeverity(SeverityFatal).
			WithContext("file", "siteconf.yaml").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "invalid overlay" {
			t.Errorf("expected message 'invalid overlay', got %s", err.Message())
		}
		file, exists := err.Context().GetString("file")
		if !exists || file != "siteconf.yaml" {
			t.Errorf("expected context file=siteconf.yaml, got %v", file)
		}
	})

	t.Run("Error detection", func(t *testing.T) {
		err := ConfigError("test error").Build()

		if !IsClassified(err) {
			t.Error("expected error to be classified")
		}
		if !HasCategory(err, CategoryConfig) {
			t.Error("expected error to have config category")
		}
		if err.CanRetry() {
			t.Error("expected config error to not be retryable")
		}
		if !err.IsFatal() {
			t.Error("expected config error to be fatal")
		}
	})

	t.Run("Filesystem errors are never retried", func(t *testing.T) {
		err := FileSystemError("ensure header").Build()
		if err.RetryStrategy() != RetryNever {
			t.Errorf("expected retry strategy %s, got %s", RetryNever, err.RetryStrategy())
		}
	})
}

func TestErrorBuilderWrap(t *testing.T) {
	original := errors.New("permission denied")
	err := WrapError(original, CategoryFileSystem, "read header").
		Warning().
		WithContext("path", "_nb_header.html").
		Build()

	if !errors.Is(err, original) {
		t.Error("expected error to wrap original error")
	}
	if err.Severity() != SeverityWarning {
		t.Errorf("expected severity %s, got %s", SeverityWarning, err.Severity())
	}
	want := "[filesystem:warning] read header: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestAsClassifiedThroughWrapping(t *testing.T) {
	inner := ValidationError("duplicate link label").Build()
	wrapped := fmt.Errorf("load site: %w", inner)

	got, ok := AsClassified(wrapped)
	if !ok {
		t.Fatal("expected classified error in chain")
	}
	if got.Category() != CategoryValidation {
		t.Errorf("expected validation category, got %s", got.Category())
	}
	if GetCategory(errors.New("plain")) != CategoryInternal {
		t.Error("expected plain errors to map to internal category")
	}
}

func TestErrorContextMerge(t *testing.T) {
	a := ErrorContext{"a": 1, "b": 2}
	b := ErrorContext{"b": 3}
	merged := a.Merge(b)
	if merged["a"] != 1 || merged["b"] != 3 {
		t.Errorf("unexpected merge result: %v", merged)
	}
	if a["b"] != 2 {
		t.Error("merge must not modify receiver")
	}
}
