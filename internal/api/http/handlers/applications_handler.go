package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/service"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// ApplicationsHandler exposes the job-seeker side of the apply workflow.
type ApplicationsHandler struct {
	applications *service.ApplicationService
}

// NewApplicationsHandler constructs the handler.
func NewApplicationsHandler(applications *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{applications: applications}
}

// Apply handles POST /applications/:jobId.
func (h *ApplicationsHandler) Apply(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	application, err := h.applications.Apply(c.Context(), session.Email, c.Params("jobId"), service.ApplyInput{
		FullName:        req.FullName,
		Phone:           req.Phone,
		CoverLetter:     req.CoverLetter,
		ResumeFileName:  req.ResumeFileName,
		Experience:      req.Experience,
		CurrentCompany:  req.CurrentCompany,
		CurrentJobTitle: req.CurrentJobTitle,
		Education:       req.Education,
		LinkedinURL:     req.LinkedinURL,
		PortfolioURL:    req.PortfolioURL,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":       "Application submitted successfully",
		"applicationId": application.ID,
	})
}

// List handles GET /applications: the caller's own submissions.
func (h *ApplicationsHandler) List(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	applications, err := h.applications.ListForUser(c.Context(), session.Email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"applications": dto.NewApplicationResponses(applications)})
}
