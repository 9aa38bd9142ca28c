package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-board/internal/domain"
)

// ApplicationRepository defines persistence access for job applications.
type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	ListByUser(ctx context.Context, userPublicID string) ([]*domain.Application, error)
	ListByJob(ctx context.Context, jobPublicID string) ([]*domain.Application, error)
	ExistsByUserAndJob(ctx context.Context, userPublicID, jobPublicID string) (bool, error)
	UpdateReview(ctx context.Context, application *domain.Application) error
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository returns a Postgres-backed implementation.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

const applicationColumns = `
        id, user_public_id, job_public_id, full_name, email, phone,
        cover_letter, status, resume_file_name,
        experience, current_company, current_job_title, education,
        linkedin_url, portfolio_url,
        applied_date, updated_date, reviewed_date, reviewer_notes, rating`

func (r *applicationRepository) Create(ctx context.Context, application *domain.Application) error {
	const query = `
        INSERT INTO applications (
            id, user_public_id, job_public_id, full_name, email, phone,
            cover_letter, status, resume_file_name,
            experience, current_company, current_job_title, education,
            linkedin_url, portfolio_url)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
        RETURNING applied_date, updated_date`

	return r.pool.QueryRow(ctx, query,
		application.ID,
		application.UserPublicID,
		application.JobPublicID,
		application.FullName,
		application.Email,
		application.Phone,
		application.CoverLetter,
		application.Status,
		application.ResumeFileName,
		application.Experience,
		application.CurrentCompany,
		application.CurrentJobTitle,
		application.Education,
		application.LinkedinURL,
		application.PortfolioURL,
	).Scan(&application.AppliedDate, &application.UpdatedDate)
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id=$1`, id)
	return scanApplication(row)
}

func (r *applicationRepository) ListByUser(ctx context.Context, userPublicID string) ([]*domain.Application, error) {
	const query = `SELECT ` + applicationColumns + `
        FROM applications WHERE user_public_id=$1 ORDER BY applied_date DESC`
	return r.list(ctx, query, userPublicID)
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobPublicID string) ([]*domain.Application, error) {
	const query = `SELECT ` + applicationColumns + `
        FROM applications WHERE job_public_id=$1 ORDER BY applied_date DESC`
	return r.list(ctx, query, jobPublicID)
}

func (r *applicationRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Application, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []*domain.Application
	for rows.Next() {
		application, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, application)
	}
	return applications, rows.Err()
}

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var application domain.Application
	if err := row.Scan(
		&application.ID,
		&application.UserPublicID,
		&application.JobPublicID,
		&application.FullName,
		&application.Email,
		&application.Phone,
		&application.CoverLetter,
		&application.Status,
		&application.ResumeFileName,
		&application.Experience,
		&application.CurrentCompany,
		&application.CurrentJobTitle,
		&application.Education,
		&application.LinkedinURL,
		&application.PortfolioURL,
		&application.AppliedDate,
		&application.UpdatedDate,
		&application.ReviewedDate,
		&application.ReviewerNotes,
		&application.Rating,
	); err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) ExistsByUserAndJob(ctx context.Context, userPublicID, jobPublicID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE user_public_id=$1 AND job_public_id=$2)`,
		userPublicID, jobPublicID).Scan(&exists)
	return exists, err
}

func (r *applicationRepository) UpdateReview(ctx context.Context, application *domain.Application) error {
	const query = `
        UPDATE applications SET
            status=$1, reviewer_notes=$2, rating=$3, reviewed_date=NOW(), updated_date=NOW()
        WHERE id=$4
        RETURNING reviewed_date, updated_date`

	return r.pool.QueryRow(ctx, query,
		application.Status,
		application.ReviewerNotes,
		application.Rating,
		application.ID,
	).Scan(&application.ReviewedDate, &application.UpdatedDate)
}
