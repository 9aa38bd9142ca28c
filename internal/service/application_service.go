package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// ApplyInput describes a user's submission against a posting.
type ApplyInput struct {
	FullName        string
	Phone           string
	CoverLetter     string
	ResumeFileName  string
	Experience      string
	CurrentCompany  string
	CurrentJobTitle string
	Education       string
	LinkedinURL     string
	PortfolioURL    string
}

// ReviewInput carries a business's verdict on an application.
type ReviewInput struct {
	Status        domain.ApplicationStatus
	ReviewerNotes *string
	Rating        *int
}

var validApplicationStatuses = map[domain.ApplicationStatus]struct{}{
	domain.ApplicationStatusPending:     {},
	domain.ApplicationStatusUnderReview: {},
	domain.ApplicationStatusShortlisted: {},
	domain.ApplicationStatusRejected:    {},
	domain.ApplicationStatusAccepted:    {},
}

// ApplicationService coordinates the apply/review workflow.
type ApplicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	users        repository.UserRepository
	dispatcher   events.Dispatcher
}

// ApplicationDependencies bundles collaborators for the application service.
type ApplicationDependencies struct {
	ApplicationRepo repository.ApplicationRepository
	JobRepo         repository.JobRepository
	UserRepo        repository.UserRepository
	Dispatcher      events.Dispatcher
}

// NewApplicationService constructs the service.
func NewApplicationService(deps ApplicationDependencies) *ApplicationService {
	return &ApplicationService{
		applications: deps.ApplicationRepo,
		jobs:         deps.JobRepo,
		users:        deps.UserRepo,
		dispatcher:   deps.Dispatcher,
	}
}

// Apply submits an application for the calling user. One application per
// user and job.
func (s *ApplicationService) Apply(ctx context.Context, userEmail, jobID string, input ApplyInput) (*domain.Application, error) {
	user, err := s.users.GetByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}

	job, err := s.jobs.GetByPublicID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", map[string]any{"job_id": jobID})
		}
		return nil, err
	}
	if job.Status != domain.JobStatusActive {
		return nil, apperrors.NewValidationError("job is not accepting applications", map[string]any{"job_id": jobID})
	}

	applied, err := s.applications.ExistsByUserAndJob(ctx, user.PublicID, jobID)
	if err != nil {
		return nil, err
	}
	if applied {
		return nil, apperrors.NewConflict("already applied to this job", map[string]any{"job_id": jobID})
	}

	fullName := input.FullName
	if fullName == "" {
		fullName = user.FirstName + " " + user.LastName
	}

	application := &domain.Application{
		ID:              uuid.NewString(),
		UserPublicID:    user.PublicID,
		JobPublicID:     jobID,
		FullName:        fullName,
		Email:           user.Email,
		Phone:           input.Phone,
		CoverLetter:     input.CoverLetter,
		Status:          domain.ApplicationStatusPending,
		ResumeFileName:  input.ResumeFileName,
		Experience:      input.Experience,
		CurrentCompany:  input.CurrentCompany,
		CurrentJobTitle: input.CurrentJobTitle,
		Education:       input.Education,
		LinkedinURL:     input.LinkedinURL,
		PortfolioURL:    input.PortfolioURL,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("already applied to this job", map[string]any{"job_id": jobID})
		}
		return nil, err
	}

	if err := s.jobs.IncrementApplicants(ctx, jobID); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventApplicationSubmitted, application.ID,
			events.ApplicationSubmittedPayload{JobID: jobID, UserPublicID: user.PublicID}))
	}
	return application, nil
}

// ListForUser returns the calling user's own applications.
func (s *ApplicationService) ListForUser(ctx context.Context, userEmail string) ([]*domain.Application, error) {
	user, err := s.users.GetByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}
	return s.applications.ListByUser(ctx, user.PublicID)
}

// ListForJob returns applications for a posting the calling company owns.
func (s *ApplicationService) ListForJob(ctx context.Context, companyEmail, jobID string) ([]*domain.Application, error) {
	job, err := s.jobs.GetByPublicID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", map[string]any{"job_id": jobID})
		}
		return nil, err
	}
	if job.CompanyEmail != companyEmail {
		return nil, apperrors.NewForbidden("job belongs to another company")
	}
	return s.applications.ListByJob(ctx, jobID)
}

// Review updates an application's status for a posting the caller owns.
func (s *ApplicationService) Review(ctx context.Context, companyEmail, applicationID string, input ReviewInput) (*domain.Application, error) {
	if _, ok := validApplicationStatuses[input.Status]; !ok {
		return nil, apperrors.NewValidationError("unknown application status", map[string]any{"status": input.Status})
	}

	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("application", map[string]any{"application_id": applicationID})
		}
		return nil, err
	}

	job, err := s.jobs.GetByPublicID(ctx, application.JobPublicID)
	if err != nil {
		return nil, err
	}
	if job.CompanyEmail != companyEmail {
		return nil, apperrors.NewForbidden("application belongs to another company's job")
	}

	oldStatus := application.Status
	application.Status = input.Status
	applyPatch(&application.ReviewerNotes, input.ReviewerNotes)
	if input.Rating != nil {
		application.Rating = input.Rating
	}

	if err := s.applications.UpdateReview(ctx, application); err != nil {
		return nil, err
	}

	if s.dispatcher != nil && oldStatus != application.Status {
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventApplicationStatusChanged, application.ID,
			events.ApplicationStatusChangedPayload{JobID: application.JobPublicID, OldStatus: oldStatus, NewStatus: application.Status}))
	}
	return application, nil
}
