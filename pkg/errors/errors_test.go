// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/envprof/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "profile not found",
			wantStr: "[NOT_FOUND] profile not found",
		},
		{
			name:    "config_error",
			code:    errors.ErrConfig,
			message: "application name not set",
			wantStr: "[CONFIG] application name not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
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

func TestWrap(t *testing.T) {
	inner := stderrors.New("permission denied")
	err := errors.Wrap(inner, errors.ErrFileAccess, "cannot read profile")

	if !stderrors.Is(err, inner) {
		t.Error("wrapped error should match errors.Is on the inner error")
	}

	want := "[FILE_ACCESS] cannot read profile: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if errors.Wrap(nil, errors.ErrFileAccess, "ignored") != nil {
		t.Error("Wrap(nil, ...) should return nil")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := errors.NewNotFoundError("work")
	target := errors.New(errors.ErrNotFound, "")

	if !stderrors.Is(err, target) {
		t.Error("errors with the same code should satisfy errors.Is")
	}

	other := errors.New(errors.ErrAlreadyExists, "")
	if stderrors.Is(err, other) {
		t.Error("errors with different codes should not satisfy errors.Is")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.NewMissingRequiredVariableError("API_KEY", "staging")

	if !errors.IsErrorCode(err, errors.ErrMissingVariable) {
		t.Error("IsErrorCode should match MISSING_VARIABLE")
	}
	if errors.IsErrorCode(err, errors.ErrNotFound) {
		t.Error("IsErrorCode should not match a different code")
	}
	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrNotFound) {
		t.Error("IsErrorCode should not match a plain error")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.NewNoProfilesAvailableError()); got != errors.ErrNoProfilesAvailable {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrNoProfilesAvailable)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestMissingRequiredVariableDetails(t *testing.T) {
	err := errors.NewMissingRequiredVariableError("DB_URL", "prod")

	details := errors.GetErrorDetails(err)
	if details["variable"] != "DB_URL" {
		t.Errorf("details[variable] = %v, want DB_URL", details["variable"])
	}
	if details["profile"] != "prod" {
		t.Errorf("details[profile] = %v, want prod", details["profile"])
	}
}
