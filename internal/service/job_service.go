package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/identifier"
	"github.com/spec-kit/job-board/internal/persistence"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// createJobAttempts caps generate-and-persist cycles for the job id namespace.
const createJobAttempts = 3

// JobCreateInput describes a new posting.
type JobCreateInput struct {
	Title                   string
	Location                string
	City                    string
	State                   string
	Country                 string
	RemoteWork              bool
	JobType                 string
	Department              string
	Description             string
	Requirements            string
	Benefits                string
	Qualification           string
	SkillsRequired          []string
	SalaryMin               *float64
	SalaryMax               *float64
	SalaryCurrency          string
	HideSalary              bool
	ScreeningQuestions      []string
	HiringProcess           string
	ApplicationInstructions string
}

// JobPatch holds optional overwrites for an existing posting.
type JobPatch struct {
	Title                   *string
	Location                *string
	City                    *string
	State                   *string
	Country                 *string
	RemoteWork              *bool
	JobType                 *string
	Department              *string
	Description             *string
	Requirements            *string
	Benefits                *string
	Qualification           *string
	SkillsRequired          *[]string
	SalaryMin               *float64
	SalaryMax               *float64
	SalaryCurrency          *string
	HideSalary              *bool
	ScreeningQuestions      *[]string
	HiringProcess           *string
	ApplicationInstructions *string
	Status                  *domain.JobStatus
}

// JobService coordinates posting workflows for the public board and the
// owning companies.
type JobService struct {
	jobs       repository.JobRepository
	companies  repository.CompanyRepository
	ids        *identifier.Generator
	cache      *persistence.JobCache
	dispatcher events.Dispatcher
}

// JobDependencies bundles collaborators for the job service.
type JobDependencies struct {
	JobRepo     repository.JobRepository
	CompanyRepo repository.CompanyRepository
	IDs         *identifier.Generator
	Cache       *persistence.JobCache
	Dispatcher  events.Dispatcher
}

// NewJobService constructs the service.
func NewJobService(deps JobDependencies) *JobService {
	return &JobService{
		jobs:       deps.JobRepo,
		companies:  deps.CompanyRepo,
		ids:        deps.IDs,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
	}
}

// ListActive returns the public board, served from cache when fresh.
func (s *JobService) ListActive(ctx context.Context) ([]*domain.Job, error) {
	if jobs, ok := s.cache.GetActive(ctx); ok {
		return jobs, nil
	}

	jobs, err := s.jobs.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetActive(ctx, jobs)
	return jobs, nil
}

// GetActiveByID returns one public posting; inactive postings are not exposed.
func (s *JobService) GetActiveByID(ctx context.Context, jobID string) (*domain.Job, error) {
	job, err := s.jobs.GetByPublicID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", map[string]any{"job_id": jobID})
		}
		return nil, err
	}
	if job.Status != domain.JobStatusActive {
		return nil, apperrors.NewNotFound("job", map[string]any{"job_id": jobID})
	}
	return job, nil
}

// ListForCompany returns every posting owned by the calling company.
func (s *JobService) ListForCompany(ctx context.Context, companyEmail string) ([]*domain.Job, error) {
	return s.jobs.ListByCompanyEmail(ctx, companyEmail)
}

// Create publishes a new posting for the calling company. The job id is
// drawn from its own namespace with the same generate-and-persist retry unit
// registration uses.
func (s *JobService) Create(ctx context.Context, companyEmail string, input JobCreateInput) (*domain.Job, error) {
	company, err := s.companies.GetByEmail(ctx, companyEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("company", nil)
		}
		return nil, err
	}

	currency := input.SalaryCurrency
	if currency == "" {
		currency = "USD"
	}

	job := &domain.Job{
		Title:                   input.Title,
		CompanyName:             company.CompanyName,
		CompanyEmail:            companyEmail,
		BusinessID:              company.PublicID,
		Location:                input.Location,
		City:                    input.City,
		State:                   input.State,
		Country:                 input.Country,
		RemoteWork:              input.RemoteWork,
		JobType:                 input.JobType,
		Department:              input.Department,
		Description:             input.Description,
		Requirements:            input.Requirements,
		Benefits:                input.Benefits,
		Qualification:           input.Qualification,
		SkillsRequired:          input.SkillsRequired,
		SalaryMin:               input.SalaryMin,
		SalaryMax:               input.SalaryMax,
		SalaryCurrency:          currency,
		HideSalary:              input.HideSalary,
		ScreeningQuestions:      input.ScreeningQuestions,
		HiringProcess:           input.HiringProcess,
		ApplicationInstructions: input.ApplicationInstructions,
		Status:                  domain.JobStatusActive,
		Applicants:              0,
	}

	for attempt := 0; attempt < createJobAttempts; attempt++ {
		job.PublicID, err = s.ids.Generate(ctx, identifier.KindJob, s.jobs.ExistsByPublicID)
		if err != nil {
			return nil, err
		}
		err = s.jobs.Create(ctx, job)
		if err == nil {
			break
		}
		if !repository.IsUniqueViolation(err) {
			return nil, err
		}
	}
	if err != nil {
		return nil, apperrors.NewResourceExhausted(string(identifier.KindJob))
	}

	s.cache.Invalidate(ctx)
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventJobPosted, job.PublicID,
			events.JobPostedPayload{BusinessID: job.BusinessID, CompanyName: job.CompanyName, Title: job.Title}))
	}
	return job, nil
}

// Update applies a partial update to a posting the caller owns.
func (s *JobService) Update(ctx context.Context, companyEmail, jobID string, patch JobPatch) (*domain.Job, error) {
	job, err := s.ownedJob(ctx, companyEmail, jobID)
	if err != nil {
		return nil, err
	}

	oldStatus := job.Status

	applyPatch(&job.Title, patch.Title)
	applyPatch(&job.Location, patch.Location)
	applyPatch(&job.City, patch.City)
	applyPatch(&job.State, patch.State)
	applyPatch(&job.Country, patch.Country)
	applyPatch(&job.RemoteWork, patch.RemoteWork)
	applyPatch(&job.JobType, patch.JobType)
	applyPatch(&job.Department, patch.Department)
	applyPatch(&job.Description, patch.Description)
	applyPatch(&job.Requirements, patch.Requirements)
	applyPatch(&job.Benefits, patch.Benefits)
	applyPatch(&job.Qualification, patch.Qualification)
	applyPatch(&job.SkillsRequired, patch.SkillsRequired)
	if patch.SalaryMin != nil {
		job.SalaryMin = patch.SalaryMin
	}
	if patch.SalaryMax != nil {
		job.SalaryMax = patch.SalaryMax
	}
	applyPatch(&job.SalaryCurrency, patch.SalaryCurrency)
	applyPatch(&job.HideSalary, patch.HideSalary)
	applyPatch(&job.ScreeningQuestions, patch.ScreeningQuestions)
	applyPatch(&job.HiringProcess, patch.HiringProcess)
	applyPatch(&job.ApplicationInstructions, patch.ApplicationInstructions)
	applyPatch(&job.Status, patch.Status)

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	if s.dispatcher != nil && oldStatus == domain.JobStatusActive && job.Status == domain.JobStatusClosed {
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventJobClosed, job.PublicID,
			events.JobClosedPayload{BusinessID: job.BusinessID, Status: job.Status}))
	}
	return job, nil
}

// Delete removes a posting the caller owns.
func (s *JobService) Delete(ctx context.Context, companyEmail, jobID string) error {
	if _, err := s.ownedJob(ctx, companyEmail, jobID); err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, jobID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}

func (s *JobService) ownedJob(ctx context.Context, companyEmail, jobID string) (*domain.Job, error) {
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
	return job, nil
}
