package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/service"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// ProfileHandler exposes the caller's own user profile.
type ProfileHandler struct {
	accounts *service.UserAccountService
}

// NewProfileHandler constructs the handler.
func NewProfileHandler(accounts *service.UserAccountService) *ProfileHandler {
	return &ProfileHandler{accounts: accounts}
}

// Get handles GET /profile.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	user, err := h.accounts.Profile(c.Context(), session.Email)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserProfileResponse(user))
}

// Update handles PUT /profile with a partial payload.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	var req dto.UserProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.accounts.UpdateProfile(c.Context(), session.Email, service.UserProfilePatch{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		Country:         req.Country,
		ZipCode:         req.ZipCode,
		CurrentJobTitle: req.CurrentJobTitle,
		CurrentCompany:  req.CurrentCompany,
		Experience:      req.Experience,
		Skills:          req.Skills,
		Education:       req.Education,
		LinkedinURL:     req.LinkedinURL,
		GithubURL:       req.GithubURL,
		PortfolioURL:    req.PortfolioURL,
		ResumeFileName:  req.ResumeFileName,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserProfileResponse(user))
}
