package errors

import (
	"errors"
	"testing"
)

func TestUnknownFieldError(t *testing.T) {
	err := NewUnknownFieldError("subtitle")

	expectedMsg := "secondary field 'subtitle' has no accessor in the projector"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrUnknownField) {
		t.Error("Expected error to match ErrUnknownField sentinel")
	}

	if errors.Is(err, ErrInvalidSettings) {
		t.Error("Error should not match ErrInvalidSettings")
	}
}

func TestInvalidSettingsError(t *testing.T) {
	conflicts := []string{"Duplicate field 'a' found in secondary_fields"}
	err := NewInvalidSettingsError(conflicts)

	if !errors.Is(err, ErrInvalidSettings) {
		t.Error("Expected error to match ErrInvalidSettings sentinel")
	}

	if errors.Is(err, ErrUnknownField) {
		t.Error("Error should not match ErrUnknownField")
	}

	var typed *InvalidSettingsError
	if !errors.As(err, &typed) {
		t.Fatal("Expected errors.As to find InvalidSettingsError")
	}
	if len(typed.Conflicts) != 1 {
		t.Errorf("Expected 1 conflict, got %d", len(typed.Conflicts))
	}
}
