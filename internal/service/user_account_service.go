package service

import (
	"context"

	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/repository"
)

// RegisterUserInput carries the fields accepted at user sign-up.
type RegisterUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// UserProfilePatch holds optional overwrites for a user's profile.
type UserProfilePatch struct {
	FirstName       *string
	LastName        *string
	Phone           *string
	Address         *string
	City            *string
	State           *string
	Country         *string
	ZipCode         *string
	CurrentJobTitle *string
	CurrentCompany  *string
	Experience      *string
	Skills          *[]string
	Education       *string
	LinkedinURL     *string
	GithubURL       *string
	PortfolioURL    *string
	ResumeFileName  *string
}

// UserAccountService layers user-specific registration and profile handling
// on top of the shared session flows.
type UserAccountService struct {
	sessions   *SessionService
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewUserAccountService builds the service.
func NewUserAccountService(sessions *SessionService, users repository.UserRepository, dispatcher events.Dispatcher) *UserAccountService {
	return &UserAccountService{sessions: sessions, users: users, dispatcher: dispatcher}
}

// Register creates a new job-seeker account with role fixed to "user".
func (s *UserAccountService) Register(ctx context.Context, input RegisterUserInput) (*RegisterResult, error) {
	hash, err := s.sessions.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	result, err := s.sessions.Register(ctx, input.Email, func(ctx context.Context, publicID string) error {
		user := &domain.User{
			PublicID:     publicID,
			Email:        input.Email,
			PasswordHash: hash,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Phone:        input.Phone,
			Role:         domain.RoleUser,
		}
		return s.users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventUserRegistered, result.PublicID,
			events.UserRegisteredPayload{Email: result.Email}))
	}
	return result, nil
}

// Login delegates to the shared session flow.
func (s *UserAccountService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	return s.sessions.Login(ctx, email, password)
}

// Refresh delegates to the shared session flow.
func (s *UserAccountService) Refresh(refreshToken string) (string, error) {
	return s.sessions.Refresh(refreshToken)
}

// Profile returns the caller's own profile, addressed by token subject.
func (s *UserAccountService) Profile(ctx context.Context, email string) (*domain.User, error) {
	return s.users.GetByEmail(ctx, email)
}

// UpdateProfile applies a partial update to the caller's own profile.
func (s *UserAccountService) UpdateProfile(ctx context.Context, email string, patch UserProfilePatch) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	applyPatch(&user.FirstName, patch.FirstName)
	applyPatch(&user.LastName, patch.LastName)
	applyPatch(&user.Phone, patch.Phone)
	applyPatch(&user.Address, patch.Address)
	applyPatch(&user.City, patch.City)
	applyPatch(&user.State, patch.State)
	applyPatch(&user.Country, patch.Country)
	applyPatch(&user.ZipCode, patch.ZipCode)
	applyPatch(&user.CurrentJobTitle, patch.CurrentJobTitle)
	applyPatch(&user.CurrentCompany, patch.CurrentCompany)
	applyPatch(&user.Experience, patch.Experience)
	applyPatch(&user.Skills, patch.Skills)
	applyPatch(&user.Education, patch.Education)
	applyPatch(&user.LinkedinURL, patch.LinkedinURL)
	applyPatch(&user.GithubURL, patch.GithubURL)
	applyPatch(&user.PortfolioURL, patch.PortfolioURL)
	applyPatch(&user.ResumeFileName, patch.ResumeFileName)

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
