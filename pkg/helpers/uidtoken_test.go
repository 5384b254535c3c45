package helpers

import (
	"testing"
	"time"
)

func TestUIDTokenRoundTrip(t *testing.T) {
	m := NewUIDTokenManager("test-secret", 15*time.Minute)

	token, exp, err := m.Generate("user-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatal("expiry is not in the future")
	}

	uid, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if uid != "user-1" {
		t.Fatalf("uid = %q, want user-1", uid)
	}
}

func TestUIDTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := NewUIDTokenManager("secret-a", 15*time.Minute).Generate("user-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := NewUIDTokenManager("secret-b", 15*time.Minute).Parse(token); err == nil {
		t.Fatal("token signed with another secret parsed successfully")
	}
}

func TestUIDTokenRejectsExpired(t *testing.T) {
	m := NewUIDTokenManager("test-secret", -time.Minute)
	token, _, err := m.Generate("user-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Fatal("expired token parsed successfully")
	}
}
