package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/service"
)

// AuthHandler exposes session endpoints for job seekers.
type AuthHandler struct {
	accounts *service.UserAccountService
	cookies  *auth.CookieWriter
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(accounts *service.UserAccountService, cookies *auth.CookieWriter) *AuthHandler {
	return &AuthHandler{accounts: accounts, cookies: cookies}
}

// Register handles POST /auth/register. No tokens are issued; registering
// does not log the user in.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.UserRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	result, err := h.accounts.Register(c.Context(), service.RegisterUserInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
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

// Login handles POST /auth/login. Tokens go into httpOnly cookies; the body
// carries identity fields only.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
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

// Refresh handles GET /auth/refresh: mints a new access token from the
// refresh token cookie. The refresh cookie itself is left untouched.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
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

// Logout handles POST /auth/logout by expiring both token cookies.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.cookies.Clear(c)
	return c.JSON(dto.AuthResponse{Message: "Logged out successfully"})
}
