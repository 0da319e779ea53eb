package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeLineNotFound, "no line with prefix NAME="),
			want: "LINE_NOT_FOUND: no line with prefix NAME=",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeFileNotFound, "failed to open /etc/os-release", errors.New("permission denied")),
			want: "FILE_NOT_FOUND: failed to open /etc/os-release: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(ErrCodePartNotFound, "line %q has no part %d", "a b", 5)
	if err.Code != ErrCodePartNotFound {
		t.Fatalf("expected code %q, got %q", ErrCodePartNotFound, err.Code)
	}
	if err.Message != `line "a b" has no part 5` {
		t.Fatalf("unexpected message %q", err.Message)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeCommandFailed, "probe failed", cause)

	if !errors.Is(err, cause) {
		t.Fatal("errors.Is should reach the wrapped cause")
	}
	if New(ErrCodeInternal, "no cause").Unwrap() != nil {
		t.Fatal("Unwrap without cause should be nil")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"direct structured error", New(ErrCodeShellNotFound, "SHELL is not set"), ErrCodeShellNotFound},
		{"wrapped once", fmt.Errorf("collect shell: %w", New(ErrCodeShellNotFound, "SHELL is not set")), ErrCodeShellNotFound},
		{"wrapped twice", fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", New(ErrCodeStatfsFailed, "statfs /"))), ErrCodeStatfsFailed},
		{"plain error", errors.New("boom"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Fatalf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("lspci not found")
	err := WrapWithContext(ErrCodeCommandFailed, "gpu probe failed", cause, map[string]any{"command": "lspci | grep VGA"})

	if err.Code != ErrCodeCommandFailed {
		t.Fatalf("expected code %q, got %q", ErrCodeCommandFailed, err.Code)
	}
	if err.Details["command"].(string) != "lspci | grep VGA" {
		t.Fatalf("expected command detail, got %#v", err.Details)
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause should be reachable via errors.Is")
	}
}

func TestAsError(t *testing.T) {
	structured := New(ErrCodeInvalidFormat, "no quoted value")
	wrapped := fmt.Errorf("trim name: %w", structured)

	got, ok := AsError(wrapped)
	if !ok {
		t.Fatal("expected structured error to be found")
	}
	if got != structured {
		t.Fatalf("expected the original error, got %#v", got)
	}

	if _, ok := AsError(errors.New("plain")); ok {
		t.Fatal("plain error should not match")
	}
}
