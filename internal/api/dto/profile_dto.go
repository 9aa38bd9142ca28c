package dto

import (
	"time"

	"github.com/spec-kit/job-board/internal/domain"
)

// UserProfileResponse is the caller's own profile view.
type UserProfileResponse struct {
	PublicID        string    `json:"publicId"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address"`
	City            string    `json:"city"`
	State           string    `json:"state"`
	Country         string    `json:"country"`
	ZipCode         string    `json:"zipCode"`
	CurrentJobTitle string    `json:"currentJobTitle"`
	CurrentCompany  string    `json:"currentCompany"`
	Experience      string    `json:"experience"`
	Skills          []string  `json:"skills"`
	Education       string    `json:"education"`
	LinkedinURL     string    `json:"linkedinUrl"`
	GithubURL       string    `json:"githubUrl"`
	PortfolioURL    string    `json:"portfolioUrl"`
	ResumeFileName  string    `json:"resumeFileName"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NewUserProfileResponse maps the domain model.
func NewUserProfileResponse(user *domain.User) UserProfileResponse {
	return UserProfileResponse{
		PublicID:        user.PublicID,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Phone:           user.Phone,
		Address:         user.Address,
		City:            user.City,
		State:           user.State,
		Country:         user.Country,
		ZipCode:         user.ZipCode,
		CurrentJobTitle: user.CurrentJobTitle,
		CurrentCompany:  user.CurrentCompany,
		Experience:      user.Experience,
		Skills:          user.Skills,
		Education:       user.Education,
		LinkedinURL:     user.LinkedinURL,
		GithubURL:       user.GithubURL,
		PortfolioURL:    user.PortfolioURL,
		ResumeFileName:  user.ResumeFileName,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

// UserProfileUpdateRequest holds optional field overwrites; absent fields are
// left untouched.
type UserProfileUpdateRequest struct {
	FirstName       *string   `json:"firstName"`
	LastName        *string   `json:"lastName"`
	Phone           *string   `json:"phone"`
	Address         *string   `json:"address"`
	City            *string   `json:"city"`
	State           *string   `json:"state"`
	Country         *string   `json:"country"`
	ZipCode         *string   `json:"zipCode"`
	CurrentJobTitle *string   `json:"currentJobTitle"`
	CurrentCompany  *string   `json:"currentCompany"`
	Experience      *string   `json:"experience"`
	Skills          *[]string `json:"skills"`
	Education       *string   `json:"education"`
	LinkedinURL     *string   `json:"linkedinUrl"`
	GithubURL       *string   `json:"githubUrl"`
	PortfolioURL    *string   `json:"portfolioUrl"`
	ResumeFileName  *string   `json:"resumeFileName"`
}

// CompanyProfileResponse is the calling company's own record.
type CompanyProfileResponse struct {
	PublicID     string    `json:"bid"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	CompanyName  string    `json:"companyName"`
	CompanyEmail string    `json:"companyEmail"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Country      string    `json:"country"`
	ZipCode      string    `json:"zipCode"`
	Phone        string    `json:"phone"`
	Website      string    `json:"website"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewCompanyProfileResponse maps the domain model.
func NewCompanyProfileResponse(company *domain.Company) CompanyProfileResponse {
	return CompanyProfileResponse{
		PublicID:     company.PublicID,
		Name:         company.Name,
		Email:        company.Email,
		CompanyName:  company.CompanyName,
		CompanyEmail: company.CompanyEmail,
		Address:      company.Address,
		City:         company.City,
		State:        company.State,
		Country:      company.Country,
		ZipCode:      company.ZipCode,
		Phone:        company.Phone,
		Website:      company.Website,
		Verified:     company.Verified,
		CreatedAt:    company.CreatedAt,
		UpdatedAt:    company.UpdatedAt,
	}
}

// CompanyProfileUpdateRequest holds optional field overwrites.
type CompanyProfileUpdateRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	CompanyName *string `json:"companyName"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Country     *string `json:"country"`
	ZipCode     *string `json:"zipCode"`
	Phone       *string `json:"phone"`
	Website     *string `json:"website"`
}
