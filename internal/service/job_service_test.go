package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/identifier"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

type fakeJobRepo struct {
	jobs map[string]*domain.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*domain.Job{}}
}

func (r *fakeJobRepo) Create(_ context.Context, job *domain.Job) error {
	if _, ok := r.jobs[job.PublicID]; ok {
		return &pgconn.PgError{Code: "23505"}
	}
	copied := *job
	r.jobs[job.PublicID] = &copied
	return nil
}

func (r *fakeJobRepo) Update(_ context.Context, job *domain.Job) error {
	if _, ok := r.jobs[job.PublicID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *job
	r.jobs[job.PublicID] = &copied
	return nil
}

func (r *fakeJobRepo) Delete(_ context.Context, publicID string) error {
	if _, ok := r.jobs[publicID]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.jobs, publicID)
	return nil
}

func (r *fakeJobRepo) GetByPublicID(_ context.Context, publicID string) (*domain.Job, error) {
	job, ok := r.jobs[publicID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) ListActive(_ context.Context) ([]*domain.Job, error) {
	var active []*domain.Job
	for _, job := range r.jobs {
		if job.Status == domain.JobStatusActive {
			copied := *job
			active = append(active, &copied)
		}
	}
	return active, nil
}

func (r *fakeJobRepo) ListByCompanyEmail(_ context.Context, companyEmail string) ([]*domain.Job, error) {
	var owned []*domain.Job
	for _, job := range r.jobs {
		if job.CompanyEmail == companyEmail {
			copied := *job
			owned = append(owned, &copied)
		}
	}
	return owned, nil
}

func (r *fakeJobRepo) ExistsByPublicID(_ context.Context, publicID string) (bool, error) {
	_, ok := r.jobs[publicID]
	return ok, nil
}

func (r *fakeJobRepo) IncrementApplicants(_ context.Context, publicID string) error {
	job, ok := r.jobs[publicID]
	if !ok {
		return pgx.ErrNoRows
	}
	job.Applicants++
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]*domain.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*domain.Company{}}
}

func (r *fakeCompanyRepo) Create(_ context.Context, company *domain.Company) error {
	r.companies[company.CompanyEmail] = company
	return nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, company *domain.Company) error {
	r.companies[company.CompanyEmail] = company
	return nil
}

func (r *fakeCompanyRepo) GetByEmail(_ context.Context, companyEmail string) (*domain.Company, error) {
	company, ok := r.companies[companyEmail]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return company, nil
}

func (r *fakeCompanyRepo) GetByPublicID(_ context.Context, publicID string) (*domain.Company, error) {
	for _, company := range r.companies {
		if company.PublicID == publicID {
			return company, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeCompanyRepo) ExistsByEmail(_ context.Context, companyEmail string) (bool, error) {
	_, ok := r.companies[companyEmail]
	return ok, nil
}

func (r *fakeCompanyRepo) ExistsByPublicID(_ context.Context, publicID string) (bool, error) {
	for _, company := range r.companies {
		if company.PublicID == publicID {
			return true, nil
		}
	}
	return false, nil
}

func newTestJobService() (*JobService, *fakeJobRepo, *fakeCompanyRepo) {
	jobs := newFakeJobRepo()
	companies := newFakeCompanyRepo()
	companies.companies["acme@example.com"] = &domain.Company{
		PublicID:     "B0042",
		CompanyName:  "Acme Corp",
		CompanyEmail: "acme@example.com",
		Role:         domain.RoleBusiness,
	}
	svc := NewJobService(JobDependencies{
		JobRepo:     jobs,
		CompanyRepo: companies,
		IDs:         identifier.NewGenerator(),
	})
	return svc, jobs, companies
}

func TestJobCreateAssignsIdentifierAndDefaults(t *testing.T) {
	svc, _, _ := newTestJobService()

	job, err := svc.Create(context.Background(), "acme@example.com", JobCreateInput{
		Title:    "Backend Engineer",
		Location: "Berlin",
	})
	require.NoError(t, err)

	assert.Regexp(t, `^J[0-9]{6}$`, job.PublicID)
	assert.Equal(t, domain.JobStatusActive, job.Status)
	assert.Equal(t, "USD", job.SalaryCurrency)
	assert.Equal(t, "Acme Corp", job.CompanyName)
	assert.Equal(t, "B0042", job.BusinessID)
	assert.Equal(t, 0, job.Applicants)
}

func TestJobCreateRequiresKnownCompany(t *testing.T) {
	svc, _, _ := newTestJobService()

	_, err := svc.Create(context.Background(), "ghost@example.com", JobCreateInput{Title: "X"})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestGetActiveByIDHidesInactivePostings(t *testing.T) {
	svc, jobs, _ := newTestJobService()

	job, err := svc.Create(context.Background(), "acme@example.com", JobCreateInput{Title: "Backend Engineer"})
	require.NoError(t, err)

	found, err := svc.GetActiveByID(context.Background(), job.PublicID)
	require.NoError(t, err)
	assert.Equal(t, job.PublicID, found.PublicID)

	jobs.jobs[job.PublicID].Status = domain.JobStatusClosed

	_, err = svc.GetActiveByID(context.Background(), job.PublicID)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestJobUpdateAppliesOnlyProvidedFields(t *testing.T) {
	svc, _, _ := newTestJobService()

	job, err := svc.Create(context.Background(), "acme@example.com", JobCreateInput{
		Title:    "Backend Engineer",
		Location: "Berlin",
		JobType:  "Full-time",
	})
	require.NoError(t, err)

	newTitle := "Senior Backend Engineer"
	closed := domain.JobStatusClosed
	updated, err := svc.Update(context.Background(), "acme@example.com", job.PublicID, JobPatch{
		Title:  &newTitle,
		Status: &closed,
	})
	require.NoError(t, err)

	assert.Equal(t, "Senior Backend Engineer", updated.Title)
	assert.Equal(t, domain.JobStatusClosed, updated.Status)
	assert.Equal(t, "Berlin", updated.Location)
	assert.Equal(t, "Full-time", updated.JobType)
}

func TestJobUpdateForbidsForeignPostings(t *testing.T) {
	svc, _, companies := newTestJobService()
	companies.companies["other@example.com"] = &domain.Company{
		PublicID:     "B0099",
		CompanyName:  "Other Inc",
		CompanyEmail: "other@example.com",
		Role:         domain.RoleBusiness,
	}

	job, err := svc.Create(context.Background(), "acme@example.com", JobCreateInput{Title: "Backend Engineer"})
	require.NoError(t, err)

	newTitle := "Hijacked"
	_, err = svc.Update(context.Background(), "other@example.com", job.PublicID, JobPatch{Title: &newTitle})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)

	err = svc.Delete(context.Background(), "other@example.com", job.PublicID)
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
}

func TestListActiveExcludesClosedPostings(t *testing.T) {
	svc, jobs, _ := newTestJobService()

	first, err := svc.Create(context.Background(), "acme@example.com", JobCreateInput{Title: "One"})
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), "acme@example.com", JobCreateInput{Title: "Two"})
	require.NoError(t, err)

	jobs.jobs[second.PublicID].Status = domain.JobStatusInactive

	listed, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, first.PublicID, listed[0].PublicID)
}
