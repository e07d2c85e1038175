package errors

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
)

func TestCheckError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *CheckError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryFileSystem, SeverityFatal, "failed to read file"),
			expected: "filesystem (fatal): failed to read file: file not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.err.Error()
			if result != test.expected {
				t.Errorf("Error() = %q, want %q", result, test.expected)
			}
		})
	}
}

func TestCheckError_WithContext(t *testing.T) {
	err := New(CategoryFileSystem, SeverityFatal, "read failed").
		WithContext("path", "docs/a.md").
		WithContext("size", 12)

	if err.Context == nil {
		t.Fatal("Context should not be nil")
	}

	if err.Context["path"] != "docs/a.md" {
		t.Errorf("Context[path] = %v, want docs/a.md", err.Context["path"])
	}

	if err.Context["size"] != 12 {
		t.Errorf("Context[size] = %v, want 12", err.Context["size"])
	}
}

func TestIsCategory(t *testing.T) {
	configErr := New(CategoryConfig, SeverityFatal, "config error")
	fsErr := ReadFailed("a.md", fmt.Errorf("boom"))
	wrapped := fmt.Errorf("scan: %w", fsErr)
	standardErr := fmt.Errorf("standard error")

	tests := []struct {
		name     string
		err      error
		category ErrorCategory
		expected bool
	}{
		{"config error matches config category", configErr, CategoryConfig, true},
		{"config error doesn't match filesystem category", configErr, CategoryFileSystem, false},
		{"filesystem error matches filesystem category", fsErr, CategoryFileSystem, true},
		{"wrapped error is unwrapped", wrapped, CategoryFileSystem, true},
		{"standard error doesn't match any category", standardErr, CategoryConfig, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsCategory(test.err, test.category)
			if result != test.expected {
				t.Errorf("IsCategory() = %v, want %v", result, test.expected)
			}
		})
	}
}

func TestGetCategory(t *testing.T) {
	if got := GetCategory(fmt.Errorf("plain")); got != CategoryInternal {
		t.Errorf("GetCategory(plain) = %v, want %v", got, CategoryInternal)
	}
	if got := GetCategory(BrokenLinks("report", 2)); got != CategoryLinks {
		t.Errorf("GetCategory(BrokenLinks) = %v, want %v", got, CategoryLinks)
	}
}

func TestConvenienceFunctions(t *testing.T) {
	t.Run("ConfigNotFound", func(t *testing.T) {
		err := ConfigNotFound("/path/to/config.yaml")
		if err.Category != CategoryConfig {
			t.Errorf("Category = %v, want %v", err.Category, CategoryConfig)
		}
		if err.Severity != SeverityFatal {
			t.Errorf("Severity = %v, want %v", err.Severity, SeverityFatal)
		}
		if err.Context["path"] != "/path/to/config.yaml" {
			t.Errorf("Context[path] = %v, want /path/to/config.yaml", err.Context["path"])
		}
	})

	t.Run("ReadFailed", func(t *testing.T) {
		cause := fmt.Errorf("permission denied")
		err := ReadFailed("docs/a.md", cause)
		if err.Category != CategoryFileSystem {
			t.Errorf("Category = %v, want %v", err.Category, CategoryFileSystem)
		}
		if !stdErrors.Is(err, cause) {
			t.Errorf("Cause should match wrapped cause: %v", cause)
		}
	})

	t.Run("ValidationFailed", func(t *testing.T) {
		err := ValidationFailed("format", "unsupported value")
		if err.Category != CategoryValidation {
			t.Errorf("Category = %v, want %v", err.Category, CategoryValidation)
		}
		if err.Context["field"] != "format" {
			t.Errorf("Context[field] = %v, want format", err.Context["field"])
		}
		if err.Context["reason"] != "unsupported value" {
			t.Errorf("Context[reason] = %v, want unsupported value", err.Context["reason"])
		}
	})
}

func TestCLIErrorAdapter_ExitCodes(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"broken links", BrokenLinks("Broken links found:\n", 1), 1},
		{"validation", ValidationFailed("format", "bad"), 2},
		{"config", ConfigNotFound("x.yaml"), 7},
		{"internal", New(CategoryInternal, SeverityFatal, "bug"), 10},
		{"filesystem", ReadFailed("a.md", fmt.Errorf("eof")), 11},
		{"plain", fmt.Errorf("plain"), 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(test.err); got != test.want {
				t.Errorf("ExitCodeFor() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestCLIErrorAdapter_Report(t *testing.T) {
	var out bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(io.Discard, nil))).WithOutput(&out)

	msg := "Broken links found:\nIn docs/a.md: link to 'b.md' does not exist."
	code := adapter.Report(BrokenLinks(msg, 1))

	if code != 1 {
		t.Errorf("Report() = %d, want 1", code)
	}
	if out.String() != msg+"\n" {
		t.Errorf("output = %q, want %q", out.String(), msg+"\n")
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, nil)
	verbose := NewCLIErrorAdapter(true, nil)
	err := ReadFailed("a.md", fmt.Errorf("invalid UTF-8"))

	if got := quiet.FormatError(err); got != "filesystem: failed to read file: invalid UTF-8" {
		t.Errorf("quiet FormatError() = %q", got)
	}
	if got := verbose.FormatError(err); got != err.Error() {
		t.Errorf("verbose FormatError() = %q, want %q", got, err.Error())
	}
	if got := quiet.FormatError(fmt.Errorf("plain")); got != "Error: plain" {
		t.Errorf("plain FormatError() = %q", got)
	}
}
