package authController

import "testing"

func TestNameUpdate(t *testing.T) {
	update := nameUpdate("Jane", "Doe")
	if update["firstName"] != "Jane" || update["lastName"] != "Doe" {
		t.Errorf("expected both fields set, got %v", update)
	}

	update = nameUpdate("Jane", "")
	if len(update) != 1 || update["firstName"] != "Jane" {
		t.Errorf("expected only firstName, got %v", update)
	}

	update = nameUpdate("", "Doe")
	if len(update) != 1 || update["lastName"] != "Doe" {
		t.Errorf("expected only lastName, got %v", update)
	}
}

func TestNameUpdateEmptyFields(t *testing.T) {
	// the handler must skip the write entirely in this case
	if update := nameUpdate("", ""); len(update) != 0 {
		t.Errorf("expected an empty update document, got %v", update)
	}
}
