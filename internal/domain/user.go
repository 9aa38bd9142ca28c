package domain

import "time"

// User is the domain model for individual job seekers.
type User struct {
	ID           string
	PublicID     string // 3-digit unique identifier, e.g. "417"
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Address      string
	City         string
	State        string
	Country      string
	ZipCode      string
	Role         Role

	CurrentJobTitle string
	CurrentCompany  string
	Experience      string
	Skills          []string
	Education       string
	LinkedinURL     string
	GithubURL       string
	PortfolioURL    string
	ResumeFileName  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Credentials projects the user into the shared principal view.
func (u *User) Credentials() Principal {
	return Principal{
		PublicID:     u.PublicID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
	}
}
