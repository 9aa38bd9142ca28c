package dto

import (
	"time"

	"github.com/spec-kit/job-board/internal/domain"
)

// JobCreateRequest payload for posting a job.
type JobCreateRequest struct {
	Title                   string   `json:"title"`
	Location                string   `json:"location"`
	City                    string   `json:"city"`
	State                   string   `json:"state"`
	Country                 string   `json:"country"`
	RemoteWork              bool     `json:"remoteWork"`
	JobType                 string   `json:"jobType"`
	Department              string   `json:"department"`
	Description             string   `json:"description"`
	Requirements            string   `json:"requirements"`
	Benefits                string   `json:"benefits"`
	Qualification           string   `json:"qualification"`
	SkillsRequired          []string `json:"skillsRequired"`
	SalaryMin               *float64 `json:"salaryMin"`
	SalaryMax               *float64 `json:"salaryMax"`
	SalaryCurrency          string   `json:"salaryCurrency"`
	HideSalary              bool     `json:"hideSalary"`
	ScreeningQuestions      []string `json:"screeningQuestions"`
	HiringProcess           string   `json:"hiringProcess"`
	ApplicationInstructions string   `json:"applicationInstructions"`
}

// JobUpdateRequest holds optional field overwrites for an existing posting.
type JobUpdateRequest struct {
	Title                   *string           `json:"title"`
	Location                *string           `json:"location"`
	City                    *string           `json:"city"`
	State                   *string           `json:"state"`
	Country                 *string           `json:"country"`
	RemoteWork              *bool             `json:"remoteWork"`
	JobType                 *string           `json:"jobType"`
	Department              *string           `json:"department"`
	Description             *string           `json:"description"`
	Requirements            *string           `json:"requirements"`
	Benefits                *string           `json:"benefits"`
	Qualification           *string           `json:"qualification"`
	SkillsRequired          *[]string         `json:"skillsRequired"`
	SalaryMin               *float64          `json:"salaryMin"`
	SalaryMax               *float64          `json:"salaryMax"`
	SalaryCurrency          *string           `json:"salaryCurrency"`
	HideSalary              *bool             `json:"hideSalary"`
	ScreeningQuestions      *[]string         `json:"screeningQuestions"`
	HiringProcess           *string           `json:"hiringProcess"`
	ApplicationInstructions *string           `json:"applicationInstructions"`
	Status                  *domain.JobStatus `json:"status"`
}

// JobResponse is the posting view. Salary fields are withheld when the
// company chose to hide them on public surfaces.
type JobResponse struct {
	JobID                   string           `json:"jobId"`
	Title                   string           `json:"title"`
	CompanyName             string           `json:"companyName"`
	BusinessID              string           `json:"bid"`
	Location                string           `json:"location"`
	City                    string           `json:"city"`
	State                   string           `json:"state"`
	Country                 string           `json:"country"`
	RemoteWork              bool             `json:"remoteWork"`
	JobType                 string           `json:"jobType"`
	Department              string           `json:"department"`
	Description             string           `json:"description"`
	Requirements            string           `json:"requirements"`
	Benefits                string           `json:"benefits"`
	Qualification           string           `json:"qualification"`
	SkillsRequired          []string         `json:"skillsRequired"`
	SalaryMin               *float64         `json:"salaryMin,omitempty"`
	SalaryMax               *float64         `json:"salaryMax,omitempty"`
	SalaryCurrency          string           `json:"salaryCurrency,omitempty"`
	ScreeningQuestions      []string         `json:"screeningQuestions"`
	HiringProcess           string           `json:"hiringProcess"`
	ApplicationInstructions string           `json:"applicationInstructions"`
	Status                  domain.JobStatus `json:"status"`
	Applicants              int              `json:"applicants"`
	PostedDate              time.Time        `json:"postedDate"`
	UpdatedDate             time.Time        `json:"updatedDate"`
}

// NewJobResponse maps a posting for its owner (salary always included).
func NewJobResponse(job *domain.Job) JobResponse {
	return newJobResponse(job, false)
}

// NewPublicJobResponse maps a posting for the public board, honoring the
// hide-salary flag.
func NewPublicJobResponse(job *domain.Job) JobResponse {
	return newJobResponse(job, job.HideSalary)
}

// NewPublicJobResponses maps a listing for the public board.
func NewPublicJobResponses(jobs []*domain.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, NewPublicJobResponse(job))
	}
	return out
}

// NewJobResponses maps a listing for the owning company.
func NewJobResponses(jobs []*domain.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, NewJobResponse(job))
	}
	return out
}

func newJobResponse(job *domain.Job, hideSalary bool) JobResponse {
	resp := JobResponse{
		JobID:                   job.PublicID,
		Title:                   job.Title,
		CompanyName:             job.CompanyName,
		BusinessID:              job.BusinessID,
		Location:                job.Location,
		City:                    job.City,
		State:                   job.State,
		Country:                 job.Country,
		RemoteWork:              job.RemoteWork,
		JobType:                 job.JobType,
		Department:              job.Department,
		Description:             job.Description,
		Requirements:            job.Requirements,
		Benefits:                job.Benefits,
		Qualification:           job.Qualification,
		SkillsRequired:          job.SkillsRequired,
		ScreeningQuestions:      job.ScreeningQuestions,
		HiringProcess:           job.HiringProcess,
		ApplicationInstructions: job.ApplicationInstructions,
		Status:                  job.Status,
		Applicants:              job.Applicants,
		PostedDate:              job.PostedDate,
		UpdatedDate:             job.UpdatedDate,
	}
	if !hideSalary {
		resp.SalaryMin = job.SalaryMin
		resp.SalaryMax = job.SalaryMax
		resp.SalaryCurrency = job.SalaryCurrency
	}
	return resp
}
