package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/service"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// BusinessProfileHandler exposes the calling company's own record.
type BusinessProfileHandler struct {
	accounts *service.BusinessAccountService
}

// NewBusinessProfileHandler constructs the handler.
func NewBusinessProfileHandler(accounts *service.BusinessAccountService) *BusinessProfileHandler {
	return &BusinessProfileHandler{accounts: accounts}
}

// Get handles GET /business/profile.
func (h *BusinessProfileHandler) Get(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	company, err := h.accounts.Profile(c.Context(), session.Email)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCompanyProfileResponse(company))
}

// Update handles PUT /business/profile with a partial payload.
func (h *BusinessProfileHandler) Update(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	var req dto.CompanyProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	company, err := h.accounts.UpdateProfile(c.Context(), session.Email, service.CompanyProfilePatch{
		Name:        req.Name,
		Email:       req.Email,
		CompanyName: req.CompanyName,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		ZipCode:     req.ZipCode,
		Phone:       req.Phone,
		Website:     req.Website,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCompanyProfileResponse(company))
}
