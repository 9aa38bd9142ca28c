package domain

import "time"

// Company is the domain model for business accounts that post jobs.
type Company struct {
	ID           string
	PublicID     string // business identifier, e.g. "B0423"
	Name         string
	Email        string
	CompanyName  string
	CompanyEmail string // login email, unique
	PasswordHash string
	Address      string
	City         string
	State        string
	Country      string
	ZipCode      string
	Phone        string
	Website      string
	Role         Role
	Verified     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Credentials projects the company into the shared principal view.
func (c *Company) Credentials() Principal {
	return Principal{
		PublicID:     c.PublicID,
		Email:        c.CompanyEmail,
		PasswordHash: c.PasswordHash,
		Role:         c.Role,
	}
}
