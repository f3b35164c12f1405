package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

type loginPayload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type submissionPayload struct {
	Urgency string `validate:"omitempty,oneof=low medium high urgent"`
	Rating  int    `validate:"omitempty,gte=1,lte=5"`
}

func TestMessageForError(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name     string
		payload  any
		expected []string
	}{
		{
			name:     "Missing required fields",
			payload:  loginPayload{},
			expected: []string{"email is required", "password is required"},
		},
		{
			name:     "Malformed email",
			payload:  loginPayload{Email: "nope", Password: "secret1"},
			expected: []string{"email must be a valid email address"},
		},
		{
			name:     "Password too short",
			payload:  loginPayload{Email: "a@b.co", Password: "abc"},
			expected: []string{"password must be at least 6 characters"},
		},
		{
			name:     "Enum violation",
			payload:  submissionPayload{Urgency: "extreme"},
			expected: []string{"urgency must be one of: low, medium, high, urgent"},
		},
		{
			name:     "Rating above range",
			payload:  submissionPayload{Rating: 9},
			expected: []string{"rating must be 5 or less"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.payload)
			if err == nil {
				t.Fatal("Expected a validation error")
			}

			message := MessageForError(err)
			for _, want := range tt.expected {
				if !strings.Contains(message, want) {
					t.Errorf("Expected message to contain %q, got %q", want, message)
				}
			}
		})
	}
}

func TestMessageForErrorNonValidator(t *testing.T) {
	message := MessageForError(errors.New("unexpected EOF"))
	if message != "Invalid request body" {
		t.Errorf("Expected generic message, got %q", message)
	}
}
