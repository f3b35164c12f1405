package mailer

import (
	"context"
	"testing"

	"github.com/almaspay/backend/config"
	"github.com/almaspay/backend/internal/model"
)

func TestMailerDisabledWithoutSMTP(t *testing.T) {
	m, err := NewMailer(&config.Config{})
	if err != nil {
		t.Fatalf("Failed to build mailer: %v", err)
	}

	if m.Enabled() {
		t.Error("Expected mailer to be disabled without SMTP config")
	}

	// Disabled sending must be a silent no-op so lead intake never fails
	// on a missing mail setup.
	err = m.SendContactNotification(context.Background(), &model.ContactSubmission{
		Name:    "Test User",
		Email:   "test@example.com",
		Subject: "General Inquiry",
		Message: "Hello",
	})
	if err != nil {
		t.Errorf("Expected nil from disabled mailer, got %v", err)
	}
}

func TestMailerNilReceiver(t *testing.T) {
	var m *Mailer
	if m.Enabled() {
		t.Error("Expected nil mailer to report disabled")
	}
}

func TestContactTemplateRenders(t *testing.T) {
	m, err := NewMailer(&config.Config{})
	if err != nil {
		t.Fatalf("Failed to build mailer: %v", err)
	}

	var tests = []struct {
		name       string
		submission model.ContactSubmission
	}{
		{
			name: "Full submission",
			submission: model.ContactSubmission{
				Name:             "Ahmed Al-Rashid",
				Email:            "ahmed@example.com",
				Company:          "Gulf Trading Co.",
				Phone:            "+971501234567",
				Subject:          "Partnership",
				Urgency:          "high",
				PreferredContact: "email",
				Message:          "We would like to discuss FX services.",
			},
		},
		{
			name: "Minimal submission",
			submission: model.ContactSubmission{
				Name:    "Visitor",
				Email:   "visitor@example.com",
				Message: "Hi",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := m.tmpl.Execute(discard{}, tt.submission); err != nil {
				t.Errorf("Template failed to render: %v", err)
			}
		})
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
