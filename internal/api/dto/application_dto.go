package dto

import (
	"time"

	"github.com/spec-kit/job-board/internal/domain"
)

// ApplyRequest payload for submitting an application.
type ApplyRequest struct {
	FullName        string `json:"fullName"`
	Phone           string `json:"phone"`
	CoverLetter     string `json:"coverLetter"`
	ResumeFileName  string `json:"resumeFileName"`
	Experience      string `json:"experience"`
	CurrentCompany  string `json:"currentCompany"`
	CurrentJobTitle string `json:"currentJobTitle"`
	Education       string `json:"education"`
	LinkedinURL     string `json:"linkedinUrl"`
	PortfolioURL    string `json:"portfolioUrl"`
}

// ReviewRequest payload for a business verdict on an application.
type ReviewRequest struct {
	Status        domain.ApplicationStatus `json:"status"`
	ReviewerNotes *string                  `json:"reviewerNotes"`
	Rating        *int                     `json:"rating"`
}

// ApplicationResponse view of a submission.
type ApplicationResponse struct {
	ID              string                   `json:"id"`
	UserID          string                   `json:"userId"`
	JobID           string                   `json:"jobId"`
	FullName        string                   `json:"fullName"`
	Email           string                   `json:"email"`
	Phone           string                   `json:"phone"`
	CoverLetter     string                   `json:"coverLetter"`
	Status          domain.ApplicationStatus `json:"status"`
	ResumeFileName  string                   `json:"resumeFileName"`
	Experience      string                   `json:"experience"`
	CurrentCompany  string                   `json:"currentCompany"`
	CurrentJobTitle string                   `json:"currentJobTitle"`
	Education       string                   `json:"education"`
	LinkedinURL     string                   `json:"linkedinUrl"`
	PortfolioURL    string                   `json:"portfolioUrl"`
	AppliedDate     time.Time                `json:"appliedDate"`
	UpdatedDate     time.Time                `json:"updatedDate"`
	ReviewedDate    *time.Time               `json:"reviewedDate,omitempty"`
	ReviewerNotes   string                   `json:"reviewerNotes,omitempty"`
	Rating          *int                     `json:"rating,omitempty"`
}

// NewApplicationResponse maps the domain model.
func NewApplicationResponse(application *domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:              application.ID,
		UserID:          application.UserPublicID,
		JobID:           application.JobPublicID,
		FullName:        application.FullName,
		Email:           application.Email,
		Phone:           application.Phone,
		CoverLetter:     application.CoverLetter,
		Status:          application.Status,
		ResumeFileName:  application.ResumeFileName,
		Experience:      application.Experience,
		CurrentCompany:  application.CurrentCompany,
		CurrentJobTitle: application.CurrentJobTitle,
		Education:       application.Education,
		LinkedinURL:     application.LinkedinURL,
		PortfolioURL:    application.PortfolioURL,
		AppliedDate:     application.AppliedDate,
		UpdatedDate:     application.UpdatedDate,
		ReviewedDate:    application.ReviewedDate,
		ReviewerNotes:   application.ReviewerNotes,
		Rating:          application.Rating,
	}
}

// NewApplicationResponses maps a listing.
func NewApplicationResponses(applications []*domain.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		out = append(out, NewApplicationResponse(application))
	}
	return out
}
