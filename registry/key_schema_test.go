/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"testing"
)

func TestKeySchemaRegistry(t *testing.T) {
	t.Cleanup(Reset)

	if got := KeyAttribute("HelloTable"); got != DefaultKeyAttribute {
		t.Fatalf("Expected default key attribute %q, got %q", DefaultKeyAttribute, got)
	}

	if err := RegisterKeySchema("Music", "Artist"); err != nil {
		t.Fatalf("RegisterKeySchema failed: %v", err)
	}
	if got := KeyAttribute("Music"); got != "Artist" {
		t.Fatalf("Expected Artist, got %q", got)
	}

	// Same registration again is fine
	if err := RegisterKeySchema("Music", "Artist"); err != nil {
		t.Fatalf("Re-registering identical schema failed: %v", err)
	}

	if err := RegisterKeySchema("Music", "Title"); err == nil {
		t.Fatal("Expected conflicting registration to fail")
	}
}

func TestRegisterKeySchemaValidation(t *testing.T) {
	t.Cleanup(Reset)

	if err := RegisterKeySchema("", "Name"); err == nil {
		t.Fatal("Expected error for empty table name")
	}
	if err := RegisterKeySchema("HelloTable", ""); err == nil {
		t.Fatal("Expected error for empty key attribute")
	}
}
