package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-board/internal/domain"
)

// UserRepository defines persistence access for individual job seekers.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByPublicID(ctx context.Context, publicID string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPublicID(ctx context.Context, publicID string) (bool, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `
        id, public_id, email, password_hash, first_name, last_name, phone,
        address, city, state, country, zip_code, role,
        current_job_title, current_company, experience, skills, education,
        linkedin_url, github_url, portfolio_url, resume_file_name,
        created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (
            public_id, email, password_hash, first_name, last_name, phone,
            address, city, state, country, zip_code, role,
            current_job_title, current_company, experience, skills, education,
            linkedin_url, github_url, portfolio_url, resume_file_name)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		user.PublicID,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.Address,
		user.City,
		user.State,
		user.Country,
		user.ZipCode,
		user.Role,
		user.CurrentJobTitle,
		user.CurrentCompany,
		user.Experience,
		user.Skills,
		user.Education,
		user.LinkedinURL,
		user.GithubURL,
		user.PortfolioURL,
		user.ResumeFileName,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET
            first_name=$1, last_name=$2, phone=$3, address=$4, city=$5,
            state=$6, country=$7, zip_code=$8,
            current_job_title=$9, current_company=$10, experience=$11,
            skills=$12, education=$13, linkedin_url=$14, github_url=$15,
            portfolio_url=$16, resume_file_name=$17, updated_at=NOW()
        WHERE id=$18`

	cmd, err := r.pool.Exec(ctx, query,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.Address,
		user.City,
		user.State,
		user.Country,
		user.ZipCode,
		user.CurrentJobTitle,
		user.CurrentCompany,
		user.Experience,
		user.Skills,
		user.Education,
		user.LinkedinURL,
		user.GithubURL,
		user.PortfolioURL,
		user.ResumeFileName,
		user.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email)
}

func (r *userRepository) GetByPublicID(ctx context.Context, publicID string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE public_id=$1`, publicID)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.PublicID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Phone,
		&user.Address,
		&user.City,
		&user.State,
		&user.Country,
		&user.ZipCode,
		&user.Role,
		&user.CurrentJobTitle,
		&user.CurrentCompany,
		&user.Experience,
		&user.Skills,
		&user.Education,
		&user.LinkedinURL,
		&user.GithubURL,
		&user.PortfolioURL,
		&user.ResumeFileName,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email=$1)`, email).Scan(&exists)
	return exists, err
}

func (r *userRepository) ExistsByPublicID(ctx context.Context, publicID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE public_id=$1)`, publicID).Scan(&exists)
	return exists, err
}
