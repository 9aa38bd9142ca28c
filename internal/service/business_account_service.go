package service

import (
	"context"

	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/repository"
)

// RegisterBusinessInput carries the fields accepted at business sign-up.
// CompanyEmail is the login email; Email is the contact person's address.
type RegisterBusinessInput struct {
	Name         string
	Email        string
	CompanyName  string
	CompanyEmail string
	Password     string
	Address      string
	City         string
	State        string
	Country      string
	ZipCode      string
	Phone        string
	Website      string
}

// CompanyProfilePatch holds optional overwrites for a company's profile.
type CompanyProfilePatch struct {
	Name        *string
	Email       *string
	CompanyName *string
	Address     *string
	City        *string
	State       *string
	Country     *string
	ZipCode     *string
	Phone       *string
	Website     *string
}

// BusinessAccountService layers company-specific registration and profile
// handling on top of the shared session flows.
type BusinessAccountService struct {
	sessions   *SessionService
	companies  repository.CompanyRepository
	dispatcher events.Dispatcher
}

// NewBusinessAccountService builds the service.
func NewBusinessAccountService(sessions *SessionService, companies repository.CompanyRepository, dispatcher events.Dispatcher) *BusinessAccountService {
	return &BusinessAccountService{sessions: sessions, companies: companies, dispatcher: dispatcher}
}

// Register creates a new business account with role fixed to "business".
func (s *BusinessAccountService) Register(ctx context.Context, input RegisterBusinessInput) (*RegisterResult, error) {
	hash, err := s.sessions.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	result, err := s.sessions.Register(ctx, input.CompanyEmail, func(ctx context.Context, publicID string) error {
		company := &domain.Company{
			PublicID:     publicID,
			Name:         input.Name,
			Email:        input.Email,
			CompanyName:  input.CompanyName,
			CompanyEmail: input.CompanyEmail,
			PasswordHash: hash,
			Address:      input.Address,
			City:         input.City,
			State:        input.State,
			Country:      input.Country,
			ZipCode:      input.ZipCode,
			Phone:        input.Phone,
			Website:      input.Website,
			Role:         domain.RoleBusiness,
			Verified:     true,
		}
		return s.companies.Create(ctx, company)
	})
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventBusinessRegistered, result.PublicID,
			events.BusinessRegisteredPayload{CompanyEmail: result.Email, CompanyName: input.CompanyName}))
	}
	return result, nil
}

// Login delegates to the shared session flow.
func (s *BusinessAccountService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	return s.sessions.Login(ctx, email, password)
}

// Refresh delegates to the shared session flow.
func (s *BusinessAccountService) Refresh(refreshToken string) (string, error) {
	return s.sessions.Refresh(refreshToken)
}

// Profile returns the caller's own company record, addressed by token subject.
func (s *BusinessAccountService) Profile(ctx context.Context, companyEmail string) (*domain.Company, error) {
	return s.companies.GetByEmail(ctx, companyEmail)
}

// UpdateProfile applies a partial update to the caller's company record.
func (s *BusinessAccountService) UpdateProfile(ctx context.Context, companyEmail string, patch CompanyProfilePatch) (*domain.Company, error) {
	company, err := s.companies.GetByEmail(ctx, companyEmail)
	if err != nil {
		return nil, err
	}

	applyPatch(&company.Name, patch.Name)
	applyPatch(&company.Email, patch.Email)
	applyPatch(&company.CompanyName, patch.CompanyName)
	applyPatch(&company.Address, patch.Address)
	applyPatch(&company.City, patch.City)
	applyPatch(&company.State, patch.State)
	applyPatch(&company.Country, patch.Country)
	applyPatch(&company.ZipCode, patch.ZipCode)
	applyPatch(&company.Phone, patch.Phone)
	applyPatch(&company.Website, patch.Website)

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}
