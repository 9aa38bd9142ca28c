package domain

import "time"

// ApplicationStatus tracks review progress of an application.
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "Pending"
	ApplicationStatusUnderReview ApplicationStatus = "Under Review"
	ApplicationStatusShortlisted ApplicationStatus = "Shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "Rejected"
	ApplicationStatusAccepted    ApplicationStatus = "Accepted"
)

// Application is a user's submission against a job posting.
type Application struct {
	ID           string
	UserPublicID string
	JobPublicID  string

	FullName string
	Email    string
	Phone    string

	CoverLetter string
	Status      ApplicationStatus

	ResumeFileName string

	Experience      string
	CurrentCompany  string
	CurrentJobTitle string
	Education       string
	LinkedinURL     string
	PortfolioURL    string

	AppliedDate  time.Time
	UpdatedDate  time.Time
	ReviewedDate *time.Time

	ReviewerNotes string
	Rating        *int
}
