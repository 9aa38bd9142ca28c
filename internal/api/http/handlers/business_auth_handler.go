package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/service"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// BusinessAuthHandler exposes session endpoints for business accounts. The
// flow matches the user family exactly; only the registration payload and the
// backing store differ.
type BusinessAuthHandler struct {
	accounts *service.BusinessAccountService
	cookies  *auth.CookieWriter
}

// NewBusinessAuthHandler constructs the handler.
func NewBusinessAuthHandler(accounts *service.BusinessAccountService, cookies *auth.CookieWriter) *BusinessAuthHandler {
	return &BusinessAuthHandler{accounts: accounts, cookies: cookies}
}

// Register handles POST /business/auth/register.
func (h *BusinessAuthHandler) Register(c *fiber.Ctx) error {
	var req dto.BusinessRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.CompanyEmail == "" || req.Password == "" || req.CompanyName == "" {
		return fiber.NewError(http.StatusBadRequest, "companyName, companyEmail and password required")
	}

	result, err := h.accounts.Register(c.Context(), service.RegisterBusinessInput{
		Name:         req.Name,
		Email:        req.Email,
		CompanyName:  req.CompanyName,
		CompanyEmail: req.CompanyEmail,
		Password:     req.Password,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		ZipCode:      req.ZipCode,
		Phone:        req.Phone,
		Website:      req.Website,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.AuthResponse{
		Message:  result.Message,
		PublicID: result.PublicID,
		Email:    result.Email,
		Role:     result.Role,
	})
}

// Login handles POST /business/auth/login.
func (h *BusinessAuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	result, err := h.accounts.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.cookies.SetAccessToken(c, result.AccessToken)
	h.cookies.SetRefreshToken(c, result.RefreshToken)

	return c.JSON(dto.AuthResponse{
		Message:  result.Message,
		PublicID: result.PublicID,
		Email:    result.Email,
		Role:     result.Role,
	})
}

// Refresh handles GET /business/auth/refresh.
func (h *BusinessAuthHandler) Refresh(c *fiber.Ctx) error {
	refreshToken := c.Cookies(auth.RefreshTokenCookie)
	if refreshToken == "" {
		return errRefreshCookieMissing()
	}

	accessToken, err := h.accounts.Refresh(refreshToken)
	if err != nil {
		return err
	}

	h.cookies.SetAccessToken(c, accessToken)
	return c.JSON(dto.AuthResponse{Message: "Token refreshed successfully"})
}

// Logout handles POST /business/auth/logout.
func (h *BusinessAuthHandler) Logout(c *fiber.Ctx) error {
	h.cookies.Clear(c)
	return c.JSON(dto.AuthResponse{Message: "Logged out successfully"})
}

func errRefreshCookieMissing() error {
	return apperrors.NewInvalidToken("refresh token not found")
}
