package service

import "testing"

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	if hash == "admin123" {
		t.Error("Hash equals the plain password")
	}

	if !CheckPassword(hash, "admin123") {
		t.Error("Correct password rejected")
	}
	if CheckPassword(hash, "admin124") {
		t.Error("Wrong password accepted")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	if first == second {
		t.Error("Expected distinct hashes for the same password")
	}
}
