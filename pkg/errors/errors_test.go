package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeSchemaViolation, "unknown shape type: %s", "blob")

	if err.Code != ErrCodeSchemaViolation {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeSchemaViolation)
	}

	if err.Message != "unknown shape type: blob" {
		t.Errorf("Message = %v, want %v", err.Message, "unknown shape type: blob")
	}

	expected := "SCHEMA_VIOLATION: unknown shape type: blob"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeNetwork, cause, "failed to upload")

	if err.Code != ErrCodeNetwork {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeNetwork)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeFormatViolation, "test"),
			code:     ErrCodeFormatViolation,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeFormatViolation, "test"),
			code:     ErrCodeNetwork,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeNetwork, New(ErrCodeRangeViolation, "inner"), "outer"),
			code:     ErrCodeNetwork,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeFormatViolation,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeFormatViolation,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "structured error",
			err:      New(ErrCodeRangeViolation, "test"),
			expected: ErrCodeRangeViolation,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "wrapped structured error",
			err:      Wrap(ErrCodeUnauthorized, errors.New("401"), "auth"),
			expected: ErrCodeUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "structured error strips code",
			err:      New(ErrCodeAmbiguousInput, "either document or json must be provided"),
			expected: "either document or json must be provided",
		},
		{
			name:     "plain error unchanged",
			err:      errors.New("plain message"),
			expected: "plain message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRateLimitedError(t *testing.T) {
	tests := []struct {
		name     string
		err      *RateLimitedError
		expected string
	}{
		{
			name:     "with retry after",
			err:      &RateLimitedError{RetryAfter: 30},
			expected: "rate limited: retry after 30 seconds",
		},
		{
			name:     "without retry after",
			err:      &RateLimitedError{},
			expected: "rate limited",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}
