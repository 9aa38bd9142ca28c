package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/service"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// BusinessJobsHandler exposes posting management for the owning company. The
// acting company is always the token subject; ownership is enforced in the
// service layer.
type BusinessJobsHandler struct {
	jobs         *service.JobService
	applications *service.ApplicationService
}

// NewBusinessJobsHandler constructs the handler.
func NewBusinessJobsHandler(jobs *service.JobService, applications *service.ApplicationService) *BusinessJobsHandler {
	return &BusinessJobsHandler{jobs: jobs, applications: applications}
}

// List handles GET /business/jobs.
func (h *BusinessJobsHandler) List(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	jobs, err := h.jobs.ListForCompany(c.Context(), session.Email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"jobs": dto.NewJobResponses(jobs)})
}

// Create handles POST /business/jobs.
func (h *BusinessJobsHandler) Create(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	var req dto.JobCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Title == "" {
		return fiber.NewError(http.StatusBadRequest, "title required")
	}

	job, err := h.jobs.Create(c.Context(), session.Email, service.JobCreateInput{
		Title:                   req.Title,
		Location:                req.Location,
		City:                    req.City,
		State:                   req.State,
		Country:                 req.Country,
		RemoteWork:              req.RemoteWork,
		JobType:                 req.JobType,
		Department:              req.Department,
		Description:             req.Description,
		Requirements:            req.Requirements,
		Benefits:                req.Benefits,
		Qualification:           req.Qualification,
		SkillsRequired:          req.SkillsRequired,
		SalaryMin:               req.SalaryMin,
		SalaryMax:               req.SalaryMax,
		SalaryCurrency:          req.SalaryCurrency,
		HideSalary:              req.HideSalary,
		ScreeningQuestions:      req.ScreeningQuestions,
		HiringProcess:           req.HiringProcess,
		ApplicationInstructions: req.ApplicationInstructions,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Job posted successfully",
		"jobId":   job.PublicID,
	})
}

// Update handles PUT /business/jobs/:jobId with a partial payload.
func (h *BusinessJobsHandler) Update(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	var req dto.JobUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	job, err := h.jobs.Update(c.Context(), session.Email, c.Params("jobId"), service.JobPatch{
		Title:                   req.Title,
		Location:                req.Location,
		City:                    req.City,
		State:                   req.State,
		Country:                 req.Country,
		RemoteWork:              req.RemoteWork,
		JobType:                 req.JobType,
		Department:              req.Department,
		Description:             req.Description,
		Requirements:            req.Requirements,
		Benefits:                req.Benefits,
		Qualification:           req.Qualification,
		SkillsRequired:          req.SkillsRequired,
		SalaryMin:               req.SalaryMin,
		SalaryMax:               req.SalaryMax,
		SalaryCurrency:          req.SalaryCurrency,
		HideSalary:              req.HideSalary,
		ScreeningQuestions:      req.ScreeningQuestions,
		HiringProcess:           req.HiringProcess,
		ApplicationInstructions: req.ApplicationInstructions,
		Status:                  req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.NewJobResponse(job))
}

// Delete handles DELETE /business/jobs/:jobId.
func (h *BusinessJobsHandler) Delete(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	if err := h.jobs.Delete(c.Context(), session.Email, c.Params("jobId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Job deleted successfully"})
}

// ListApplications handles GET /business/jobs/:jobId/applications.
func (h *BusinessJobsHandler) ListApplications(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	applications, err := h.applications.ListForJob(c.Context(), session.Email, c.Params("jobId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"applications": dto.NewApplicationResponses(applications)})
}

// ReviewApplication handles PUT /business/applications/:applicationId.
func (h *BusinessJobsHandler) ReviewApplication(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Status == "" {
		return fiber.NewError(http.StatusBadRequest, "status required")
	}

	application, err := h.applications.Review(c.Context(), session.Email, c.Params("applicationId"), service.ReviewInput{
		Status:        req.Status,
		ReviewerNotes: req.ReviewerNotes,
		Rating:        req.Rating,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewApplicationResponse(application))
}
