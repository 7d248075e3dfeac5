package handler

import (
	"errors"
	"net/http"

	"globex-logistics/internal/core/logger"
	"globex-logistics/internal/features/auth/ports"
	"globex-logistics/internal/features/auth/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TokenHeader carries the admin session token on guarded requests.
const TokenHeader = "X-Admin-Token"

// AuthHandler handles admin login and logout.
type AuthHandler struct {
	sessions ports.SessionService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
	}
}

// LoginRequest carries the shared admin password.
type LoginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /admin/login.
// @Summary Admin login
// @Description Verifies the shared admin password and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil || req.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "password is required",
		})
	}

	token, err := h.sessions.Login(c.Context(), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid password",
			})
		}
		logger.Get().Error("Login failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
	})
}

// Logout handles POST /admin/logout.
// @Summary Admin logout
// @Description Invalidates the session token sent in the X-Admin-Token header.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := c.Get(TokenHeader)
	if token != "" {
		if err := h.sessions.Logout(c.Context(), token); err != nil {
			logger.Get().Error("Logout failed", zap.Error(err))
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "logged out",
	})
}

// RequireSession returns middleware that rejects requests without a live
// admin session.
func RequireSession(sessions ports.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(TokenHeader)
		if !sessions.Validate(c.Context(), token) {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "admin session required",
			})
		}
		return c.Next()
	}
}
