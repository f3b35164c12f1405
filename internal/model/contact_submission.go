package model

import (
	"time"

	"gorm.io/gorm"
)

// Contact submission statuses. The pipeline statuses and the legacy
// in-progress/resolved/closed values coexist in stored data.
const (
	ContactStatusNew         = "new"
	ContactStatusContacted   = "contacted"
	ContactStatusQualified   = "qualified"
	ContactStatusProposal    = "proposal"
	ContactStatusNegotiation = "negotiation"
	ContactStatusClosedWon   = "closed-won"
	ContactStatusClosedLost  = "closed-lost"
	ContactStatusInProgress  = "in-progress"
	ContactStatusResolved    = "resolved"
	ContactStatusClosed      = "closed"
)

// Urgency levels (stored) and priority levels are separate enumerations.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"

	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

type ContactSubmission struct {
	gorm.Model
	Name              string     `gorm:"column:name;not null" json:"name"`
	Email             string     `gorm:"column:email;not null" json:"email"`
	Company           string     `gorm:"column:company" json:"company"`
	Phone             string     `gorm:"column:phone" json:"phone"`
	Subject           string     `gorm:"column:subject;default:General Inquiry" json:"subject"`
	Message           string     `gorm:"column:message;not null" json:"message"`
	Urgency           string     `gorm:"column:urgency;default:medium;not null" json:"urgency"`
	PreferredContact  string     `gorm:"column:preferred_contact;default:email" json:"preferredContact"`
	Status            string     `gorm:"column:status;default:new;not null" json:"status"`
	Priority          string     `gorm:"column:priority;default:normal;not null" json:"priority"`
	Notes             string     `gorm:"column:notes" json:"notes"`
	AssignedTo        *uint      `gorm:"column:assigned_to" json:"assignedTo"`
	ResolvedAt        *time.Time `gorm:"column:resolved_at" json:"resolvedAt"`
	LeadScore         int        `gorm:"column:lead_score;default:0;not null" json:"leadScore"`
	LeadSource        string     `gorm:"column:lead_source;default:website;not null" json:"leadSource"`
	EstimatedValue    float64    `gorm:"column:estimated_value;default:0" json:"estimatedValue"`
	ExpectedCloseDate *time.Time `gorm:"column:expected_close_date" json:"expectedCloseDate"`
}
