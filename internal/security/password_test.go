package security

import (
	"strings"
	"testing"
)

func TestTemporaryPassword(t *testing.T) {
	t.Parallel()

	if _, err := TemporaryPassword(4); err == nil {
		t.Fatal("expected error for a too-short password")
	}

	password, err := TemporaryPassword(16)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(password) != 16 {
		t.Fatalf("length = %d, want 16", len(password))
	}
	for _, char := range password {
		if !strings.ContainsRune(passwordAlphabet, char) {
			t.Fatalf("character %q outside alphabet", char)
		}
	}

	other, err := TemporaryPassword(16)
	if err != nil {
		t.Fatalf("generate second: %v", err)
	}
	if password == other {
		t.Fatal("two generated passwords are identical")
	}
}
