package service

import (
	"context"

	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/repository"
)

// userCredentialStore projects the user repository into the kind-agnostic
// CredentialStore surface.
type userCredentialStore struct {
	users repository.UserRepository
}

// NewUserCredentialStore adapts the user repository for session flows.
func NewUserCredentialStore(users repository.UserRepository) CredentialStore {
	return &userCredentialStore{users: users}
}

func (s *userCredentialStore) FindByEmail(ctx context.Context, email string) (*domain.Principal, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	principal := user.Credentials()
	return &principal, nil
}

func (s *userCredentialStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.users.ExistsByEmail(ctx, email)
}

func (s *userCredentialStore) ExistsByPublicID(ctx context.Context, publicID string) (bool, error) {
	return s.users.ExistsByPublicID(ctx, publicID)
}

// companyCredentialStore projects the company repository the same way. The
// company's login email is company_email, not the contact email.
type companyCredentialStore struct {
	companies repository.CompanyRepository
}

// NewCompanyCredentialStore adapts the company repository for session flows.
func NewCompanyCredentialStore(companies repository.CompanyRepository) CredentialStore {
	return &companyCredentialStore{companies: companies}
}

func (s *companyCredentialStore) FindByEmail(ctx context.Context, email string) (*domain.Principal, error) {
	company, err := s.companies.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	principal := company.Credentials()
	return &principal, nil
}

func (s *companyCredentialStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.companies.ExistsByEmail(ctx, email)
}

func (s *companyCredentialStore) ExistsByPublicID(ctx context.Context, publicID string) (bool, error) {
	return s.companies.ExistsByPublicID(ctx, publicID)
}
