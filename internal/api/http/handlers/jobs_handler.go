package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/service"
)

// JobsHandler exposes the public job board.
type JobsHandler struct {
	jobs *service.JobService
}

// NewJobsHandler constructs the handler.
func NewJobsHandler(jobs *service.JobService) *JobsHandler {
	return &JobsHandler{jobs: jobs}
}

// List handles GET /jobs: active postings, newest first.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	jobs, err := h.jobs.ListActive(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"jobs": dto.NewPublicJobResponses(jobs)})
}

// Get handles GET /jobs/:jobId for a single active posting.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	job, err := h.jobs.GetActiveByID(c.Context(), c.Params("jobId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPublicJobResponse(job))
}
