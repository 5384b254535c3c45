package helpers

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash equals the plain password")
	}
	if !CompareHashAndPassword(hash, "password123") {
		t.Fatal("correct password did not verify")
	}
	if CompareHashAndPassword(hash, "wrongpass") {
		t.Fatal("wrong password verified")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	a, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password are identical")
	}
}
