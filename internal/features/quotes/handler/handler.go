package handler

import (
	"errors"
	"net/http"

	"globex-logistics/internal/core/logger"
	"globex-logistics/internal/features/quotes/domain"
	"globex-logistics/internal/features/quotes/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuoteHandler handles HTTP requests for shipping quotes.
type QuoteHandler struct {
	service ports.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(service ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// SubmitQuoteRequest represents the request body for a quote inquiry.
type SubmitQuoteRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	WeightKg    *float64 `json:"weight_kg"`
	Message     string   `json:"message"`
}

// SubmitQuote handles POST /quotes.
// @Summary Request a shipping quote
// @Description Stores a quote inquiry from the marketing site for staff follow-up.
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body SubmitQuoteRequest true "Quote details"
// @Success 201 {object} domain.QuoteRequest
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /quotes [post]
func (h *QuoteHandler) SubmitQuote(c *fiber.Ctx) error {
	var req SubmitQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	quote, err := h.service.SubmitQuote(c.Context(), req.Name, req.Email, req.Origin, req.Destination, req.WeightKg, req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrIncompleteQuote) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Name, email, origin and destination are required",
			})
		}
		logger.Get().Error("Failed to store quote request", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusCreated).JSON(quote)
}

// ListQuotes handles GET /admin/quotes.
// @Summary List quote requests
// @Description Returns stored quote inquiries newest first.
// @Tags quotes
// @Produce json
// @Success 200 {array} domain.QuoteRequest
// @Failure 500 {object} map[string]string
// @Router /admin/quotes [get]
func (h *QuoteHandler) ListQuotes(c *fiber.Ctx) error {
	quotes, err := h.service.ListQuotes(c.Context())
	if err != nil {
		logger.Get().Error("Failed to list quote requests", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(quotes)
}
