package dto

import "time"

// ContactIntakeRequest is the public lead form payload. The urgency value
// "urgent" is accepted for compatibility and mapped during intake.
type ContactIntakeRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Company          string `json:"company"`
	Phone            string `json:"phone"`
	Subject          string `json:"subject"`
	Message          string `json:"message" binding:"required"`
	Urgency          string `json:"urgency" binding:"omitempty,oneof=low medium high urgent"`
	PreferredContact string `json:"preferredContact" binding:"omitempty,oneof=email phone whatsapp"`
	LeadSource       string `json:"leadSource" binding:"omitempty,oneof=website referral social-media email-campaign cold-outreach other"`
}

// UpdateContactSubmissionRequest is the triage payload used by admins
type UpdateContactSubmissionRequest struct {
	Status            *string    `json:"status" binding:"omitempty,oneof=new contacted qualified proposal negotiation closed-won closed-lost in-progress resolved closed"`
	Priority          *string    `json:"priority" binding:"omitempty,oneof=low normal high urgent"`
	Notes             *string    `json:"notes"`
	AssignedTo        *uint      `json:"assignedTo"`
	LeadScore         *int       `json:"leadScore" binding:"omitempty,gte=0,lte=100"`
	EstimatedValue    *float64   `json:"estimatedValue"`
	ExpectedCloseDate *time.Time `json:"expectedCloseDate"`
}

// ContactStats aggregates pipeline counts for the admin dashboard
type ContactStats struct {
	Total      int64 `json:"total"`
	New        int64 `json:"new"`
	Qualified  int64 `json:"qualified"`
	Proposal   int64 `json:"proposal"`
	ClosedWon  int64 `json:"closedWon"`
	ClosedLost int64 `json:"closedLost"`
	Recent     int64 `json:"recent"`
	InProgress int64 `json:"inProgress"`
	Resolved   int64 `json:"resolved"`
}
