package events

import (
	"time"

	"github.com/spec-kit/job-board/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered           EventType = "user_registered"
	EventBusinessRegistered       EventType = "business_registered"
	EventJobPosted                EventType = "job_posted"
	EventJobClosed                EventType = "job_closed"
	EventApplicationSubmitted     EventType = "application_submitted"
	EventApplicationStatusChanged EventType = "application_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"` // public id of the entity the event is about
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string `json:"email"`
}

// BusinessRegisteredPayload payload.
type BusinessRegisteredPayload struct {
	CompanyEmail string `json:"company_email"`
	CompanyName  string `json:"company_name"`
}

// JobPostedPayload payload.
type JobPostedPayload struct {
	BusinessID  string `json:"business_id"`
	CompanyName string `json:"company_name"`
	Title       string `json:"title"`
}

// JobClosedPayload payload.
type JobClosedPayload struct {
	BusinessID string           `json:"business_id"`
	Status     domain.JobStatus `json:"status"`
}

// ApplicationSubmittedPayload payload.
type ApplicationSubmittedPayload struct {
	JobID        string `json:"job_id"`
	UserPublicID string `json:"user_public_id"`
}

// ApplicationStatusChangedPayload payload.
type ApplicationStatusChangedPayload struct {
	JobID     string                   `json:"job_id"`
	OldStatus domain.ApplicationStatus `json:"old_status"`
	NewStatus domain.ApplicationStatus `json:"new_status"`
}
