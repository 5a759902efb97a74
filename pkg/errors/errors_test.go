// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/xml2conf/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "missing_dictionary_error",
			code:    errors.ErrMissingDictionary,
			message: "Missing required <dictionary> element in <configuration>",
			wantStr: "Missing required <dictionary> element in <configuration>",
		},
		{
			name:    "invalid_root_error",
			code:    errors.ErrInvalidRoot,
			message: "Root element must be <configuration>",
			wantStr: "Root element must be <configuration>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		format  string
		args    []interface{}
		wantMsg string
	}{
		{
			name:    "format_with_string",
			code:    errors.ErrInvalidName,
			format:  "Invalid name: '%s'",
			args:    []interface{}{"1invalid"},
			wantMsg: "Invalid name: '1invalid'",
		},
		{
			name:    "format_with_multiple_args",
			code:    errors.ErrFileWrite,
			format:  "cannot write %s with mode %o",
			args:    []interface{}{"out.conf", 0644},
			wantMsg: "cannot write out.conf with mode 644",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.Newf(tt.code, tt.format, tt.args...)

			if err.Message != tt.wantMsg {
				t.Errorf("Newf() message = %q, want %q", err.Message, tt.wantMsg)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileRead, "failed to read input")

		if err.Code != errors.ErrFileRead {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrFileRead)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "failed to read input: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("empty_message_keeps_native_text", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrXMLMalformed, "")

		if got := err.Error(); got != "base error" {
			t.Errorf("Error() = %q, want %q", got, "base error")
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrFileRead, "failed to read input")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWrapf(t *testing.T) {
	err := errors.Wrapf(stderrors.New("permission denied"), errors.ErrFileWrite, "failed to write %s", "out.conf")

	wantStr := "failed to write out.conf: permission denied"
	if got := err.Error(); got != wantStr {
		t.Errorf("Error() = %q, want %q", got, wantStr)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrInvalidValue, "Invalid value for element 'entry'").
		WithDetail("tag", "entry").
		WithDetail("path", "/configuration/dictionary/entry")

	if err.Details["tag"] != "entry" {
		t.Errorf("WithDetail() tag = %v, want %v", err.Details["tag"], "entry")
	}

	if err.Details["path"] != "/configuration/dictionary/entry" {
		t.Errorf("WithDetail() path = %v, want %v", err.Details["path"], "/configuration/dictionary/entry")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrInvalidName, "error 1")
	err2 := errors.New(errors.ErrInvalidName, "error 2")
	err3 := errors.New(errors.ErrInvalidEntry, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with XlateError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrInvalidRoot, "bad root"),
			code:     errors.ErrInvalidRoot,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrInvalidRoot, "bad root"),
			code:     errors.ErrInvalidValue,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileRead, "denied"),
			code:     errors.ErrFileRead,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrInvalidRoot,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrInvalidRoot,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "xlate_error",
			err:      errors.New(errors.ErrUnsupportedNested, "unsupported"),
			expected: errors.ErrUnsupportedNested,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorDetails(t *testing.T) {
	err := errors.New(errors.ErrInvalidName, "Invalid name: 'X'").WithDetail("name", "X")

	if got := errors.GetErrorDetails(err); got["name"] != "X" {
		t.Errorf("GetErrorDetails() name = %v, want %v", got["name"], "X")
	}

	if got := errors.GetErrorDetails(stderrors.New("plain")); got != nil {
		t.Errorf("GetErrorDetails() = %v, want nil", got)
	}
}

func TestErrorChaining(t *testing.T) {
	// Create a chain of errors
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileRead, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(configErr, errors.ErrConfigLoad) {
			t.Error("Top level should have ErrConfigLoad code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var xerr *errors.XlateError
		if stderrors.As(configErr.Unwrap(), &xerr) {
			if !errors.IsErrorCode(xerr, errors.ErrFileRead) {
				t.Error("Middle error should have ErrFileRead code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(configErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})

	t.Run("message_includes_chain", func(t *testing.T) {
		want := "failed to load config: cannot read file: root cause"
		if got := configErr.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})
}
