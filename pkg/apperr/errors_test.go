package apperr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestIsKind(t *testing.T) {
	base := errors.New("disk full")
	wrapped := fmt.Errorf("item 3: %w", NewPersistenceError("/tmp/x.png", base))

	tests := []struct {
		name string
		err  error
		kind Kind
		want bool
	}{
		{"direct match", NewRenderError("encode", base), KindRender, true},
		{"wrapped match", wrapped, KindPersistence, true},
		{"wrong kind", wrapped, KindRender, false},
		{"plain error", base, KindValidation, false},
		{"nil", nil, KindValidation, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKind(tt.err, tt.kind); got != tt.want {
				t.Errorf("IsKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	t.Run("details are listed", func(t *testing.T) {
		err := NewValidationError("validation failed", []string{"bad a", "bad b"})
		msg := err.Error()
		if !strings.Contains(msg, "bad a") || !strings.Contains(msg, "bad b") {
			t.Errorf("message %q missing details", msg)
		}
	})

	t.Run("cause is unwrapped", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := NewDirectoryError("/root/out", cause)
		if !errors.Is(err, cause) {
			t.Error("expected errors.Is to find cause")
		}
		if !strings.Contains(err.Error(), "/root/out") {
			t.Errorf("message %q missing directory", err.Error())
		}
	})
}
