package logging

import (
	"testing"
)

func TestConstants(t *testing.T) {
	if FieldFile == "" {
		t.Error("FieldFile constant should not be empty")
	}
	if FieldCount == "" {
		t.Error("FieldCount constant should not be empty")
	}
	if FieldSession == "" {
		t.Error("FieldSession constant should not be empty")
	}
	if FieldMonth == "" {
		t.Error("FieldMonth constant should not be empty")
	}
	if FieldState == "" {
		t.Error("FieldState constant should not be empty")
	}
}
