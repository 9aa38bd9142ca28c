package dto

import "github.com/spec-kit/job-board/internal/domain"

// LoginRequest payload shared by both endpoint families.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserRegisterRequest payload for job-seeker sign-up.
type UserRegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// BusinessRegisterRequest payload for company sign-up. CompanyEmail is the
// login email.
type BusinessRegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	CompanyName  string `json:"companyName"`
	CompanyEmail string `json:"companyEmail"`
	Password     string `json:"password"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	ZipCode      string `json:"zipCode"`
	Phone        string `json:"phone"`
	Website      string `json:"website"`
}

// AuthResponse carries non-secret identity fields. Token strings travel only
// in cookies, never here.
type AuthResponse struct {
	Message  string      `json:"message"`
	PublicID string      `json:"publicId,omitempty"`
	Email    string      `json:"email,omitempty"`
	Role     domain.Role `json:"role,omitempty"`
}
