package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-board/internal/domain"
)

// JobRepository defines persistence access for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, publicID string) error
	GetByPublicID(ctx context.Context, publicID string) (*domain.Job, error)
	ListActive(ctx context.Context) ([]*domain.Job, error)
	ListByCompanyEmail(ctx context.Context, companyEmail string) ([]*domain.Job, error)
	ExistsByPublicID(ctx context.Context, publicID string) (bool, error)
	IncrementApplicants(ctx context.Context, publicID string) error
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository returns a Postgres-backed implementation.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

const jobColumns = `
        id, public_id, title, company_name, company_email, business_id,
        location, city, state, country, remote_work,
        job_type, department, description, requirements, benefits,
        qualification, skills_required,
        salary_min, salary_max, salary_currency, hide_salary,
        screening_questions, hiring_process, application_instructions,
        status, applicants, posted_date, updated_date`

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
        INSERT INTO jobs (
            public_id, title, company_name, company_email, business_id,
            location, city, state, country, remote_work,
            job_type, department, description, requirements, benefits,
            qualification, skills_required,
            salary_min, salary_max, salary_currency, hide_salary,
            screening_questions, hiring_process, application_instructions,
            status, applicants)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,
                $18,$19,$20,$21,$22,$23,$24,$25,$26)
        RETURNING id, posted_date, updated_date`

	return r.pool.QueryRow(ctx, query,
		job.PublicID,
		job.Title,
		job.CompanyName,
		job.CompanyEmail,
		job.BusinessID,
		job.Location,
		job.City,
		job.State,
		job.Country,
		job.RemoteWork,
		job.JobType,
		job.Department,
		job.Description,
		job.Requirements,
		job.Benefits,
		job.Qualification,
		job.SkillsRequired,
		job.SalaryMin,
		job.SalaryMax,
		job.SalaryCurrency,
		job.HideSalary,
		job.ScreeningQuestions,
		job.HiringProcess,
		job.ApplicationInstructions,
		job.Status,
		job.Applicants,
	).Scan(&job.ID, &job.PostedDate, &job.UpdatedDate)
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	const query = `
        UPDATE jobs SET
            title=$1, location=$2, city=$3, state=$4, country=$5,
            remote_work=$6, job_type=$7, department=$8, description=$9,
            requirements=$10, benefits=$11, qualification=$12,
            skills_required=$13, salary_min=$14, salary_max=$15,
            salary_currency=$16, hide_salary=$17, screening_questions=$18,
            hiring_process=$19, application_instructions=$20, status=$21,
            updated_date=NOW()
        WHERE public_id=$22`

	cmd, err := r.pool.Exec(ctx, query,
		job.Title,
		job.Location,
		job.City,
		job.State,
		job.Country,
		job.RemoteWork,
		job.JobType,
		job.Department,
		job.Description,
		job.Requirements,
		job.Benefits,
		job.Qualification,
		job.SkillsRequired,
		job.SalaryMin,
		job.SalaryMax,
		job.SalaryCurrency,
		job.HideSalary,
		job.ScreeningQuestions,
		job.HiringProcess,
		job.ApplicationInstructions,
		job.Status,
		job.PublicID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) Delete(ctx context.Context, publicID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE public_id=$1`, publicID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) GetByPublicID(ctx context.Context, publicID string) (*domain.Job, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE public_id=$1`, publicID)
	return scanJob(row)
}

func (r *jobRepository) ListActive(ctx context.Context) ([]*domain.Job, error) {
	const query = `SELECT ` + jobColumns + `
        FROM jobs WHERE status='Active' ORDER BY posted_date DESC`
	return r.list(ctx, query)
}

func (r *jobRepository) ListByCompanyEmail(ctx context.Context, companyEmail string) ([]*domain.Job, error) {
	const query = `SELECT ` + jobColumns + `
        FROM jobs WHERE company_email=$1 ORDER BY posted_date DESC`
	return r.list(ctx, query, companyEmail)
}

func (r *jobRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Job, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	if err := row.Scan(
		&job.ID,
		&job.PublicID,
		&job.Title,
		&job.CompanyName,
		&job.CompanyEmail,
		&job.BusinessID,
		&job.Location,
		&job.City,
		&job.State,
		&job.Country,
		&job.RemoteWork,
		&job.JobType,
		&job.Department,
		&job.Description,
		&job.Requirements,
		&job.Benefits,
		&job.Qualification,
		&job.SkillsRequired,
		&job.SalaryMin,
		&job.SalaryMax,
		&job.SalaryCurrency,
		&job.HideSalary,
		&job.ScreeningQuestions,
		&job.HiringProcess,
		&job.ApplicationInstructions,
		&job.Status,
		&job.Applicants,
		&job.PostedDate,
		&job.UpdatedDate,
	); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) ExistsByPublicID(ctx context.Context, publicID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM jobs WHERE public_id=$1)`, publicID).Scan(&exists)
	return exists, err
}

func (r *jobRepository) IncrementApplicants(ctx context.Context, publicID string) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE jobs SET applicants=applicants+1 WHERE public_id=$1`, publicID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
