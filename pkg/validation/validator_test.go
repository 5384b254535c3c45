package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type signupInput struct {
	Username string `form:"username" binding:"required,min=3,max=20"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,pwd"`
}

func TestToMessageUsesFormNames(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(signupInput{Username: "alice", Email: "not-an-email", Password: "password123"})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	msg := ToMessage(err)
	if !strings.Contains(msg, "email must be a valid email") {
		t.Fatalf("message = %q, want form-tag field name", msg)
	}
}

func TestToMessagePerTag(t *testing.T) {
	Init()

	tests := []struct {
		name  string
		input signupInput
		want  string
	}{
		{"missing username", signupInput{Email: "a@b.com", Password: "password123"}, "username is required"},
		{"short username", signupInput{Username: "ab", Email: "a@b.com", Password: "password123"}, "username must be at least 3 characters long"},
		{"short password", signupInput{Username: "alice", Email: "a@b.com", Password: "short"}, "password must be at least 6 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.input)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if msg := ToMessage(err); !strings.Contains(msg, tt.want) {
				t.Fatalf("message = %q, want it to contain %q", msg, tt.want)
			}
		})
	}
}

func TestToMessageFallback(t *testing.T) {
	if got := ToMessage(errors.New("EOF")); got != "Please fill out all required fields" {
		t.Fatalf("fallback message = %q", got)
	}
	if got := ToMessage(nil); got != "" {
		t.Fatalf("nil error message = %q, want empty", got)
	}
}
