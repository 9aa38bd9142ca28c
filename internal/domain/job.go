package domain

import "time"

// JobStatus represents lifecycle states for a posting.
type JobStatus string

const (
	JobStatusActive   JobStatus = "Active"
	JobStatusInactive JobStatus = "Inactive"
	JobStatusClosed   JobStatus = "Closed"
	JobStatusDraft    JobStatus = "Draft"
)

// Job is the domain model for a posting published by a company.
type Job struct {
	ID           string
	PublicID     string // job identifier, e.g. "J004213"
	Title        string
	CompanyName  string
	CompanyEmail string // owning company's login email
	BusinessID   string // owning company's public identifier

	Location   string
	City       string
	State      string
	Country    string
	RemoteWork bool

	JobType        string // Full-time, Part-time, Contract, Internship
	Department     string
	Description    string
	Requirements   string
	Benefits       string
	Qualification  string
	SkillsRequired []string

	SalaryMin      *float64
	SalaryMax      *float64
	SalaryCurrency string
	HideSalary     bool

	ScreeningQuestions      []string
	HiringProcess           string
	ApplicationInstructions string

	Status     JobStatus
	Applicants int

	PostedDate  time.Time
	UpdatedDate time.Time
}
