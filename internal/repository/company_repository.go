package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-board/internal/domain"
)

// CompanyRepository defines persistence access for business accounts.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	Update(ctx context.Context, company *domain.Company) error
	GetByEmail(ctx context.Context, companyEmail string) (*domain.Company, error)
	GetByPublicID(ctx context.Context, publicID string) (*domain.Company, error)
	ExistsByEmail(ctx context.Context, companyEmail string) (bool, error)
	ExistsByPublicID(ctx context.Context, publicID string) (bool, error)
}

type companyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository returns a Postgres-backed implementation.
func NewCompanyRepository(pool *pgxpool.Pool) CompanyRepository {
	return &companyRepository{pool: pool}
}

const companyColumns = `
        id, public_id, name, email, company_name, company_email, password_hash,
        address, city, state, country, zip_code, phone, website, role, verified,
        created_at, updated_at`

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	const query = `
        INSERT INTO companies (
            public_id, name, email, company_name, company_email, password_hash,
            address, city, state, country, zip_code, phone, website, role, verified)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		company.PublicID,
		company.Name,
		company.Email,
		company.CompanyName,
		company.CompanyEmail,
		company.PasswordHash,
		company.Address,
		company.City,
		company.State,
		company.Country,
		company.ZipCode,
		company.Phone,
		company.Website,
		company.Role,
		company.Verified,
	).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
}

func (r *companyRepository) Update(ctx context.Context, company *domain.Company) error {
	const query = `
        UPDATE companies SET
            name=$1, email=$2, company_name=$3, address=$4, city=$5, state=$6,
            country=$7, zip_code=$8, phone=$9, website=$10, updated_at=NOW()
        WHERE id=$11`

	cmd, err := r.pool.Exec(ctx, query,
		company.Name,
		company.Email,
		company.CompanyName,
		company.Address,
		company.City,
		company.State,
		company.Country,
		company.ZipCode,
		company.Phone,
		company.Website,
		company.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *companyRepository) GetByEmail(ctx context.Context, companyEmail string) (*domain.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies WHERE company_email=$1`, companyEmail)
}

func (r *companyRepository) GetByPublicID(ctx context.Context, publicID string) (*domain.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies WHERE public_id=$1`, publicID)
}

func (r *companyRepository) getOne(ctx context.Context, query string, arg any) (*domain.Company, error) {
	var company domain.Company
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&company.ID,
		&company.PublicID,
		&company.Name,
		&company.Email,
		&company.CompanyName,
		&company.CompanyEmail,
		&company.PasswordHash,
		&company.Address,
		&company.City,
		&company.State,
		&company.Country,
		&company.ZipCode,
		&company.Phone,
		&company.Website,
		&company.Role,
		&company.Verified,
		&company.CreatedAt,
		&company.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) ExistsByEmail(ctx context.Context, companyEmail string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM companies WHERE company_email=$1)`, companyEmail).Scan(&exists)
	return exists, err
}

func (r *companyRepository) ExistsByPublicID(ctx context.Context, publicID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM companies WHERE public_id=$1)`, publicID).Scan(&exists)
	return exists, err
}
