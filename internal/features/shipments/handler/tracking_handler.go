package handler

import (
	"errors"

	"globex-logistics/internal/core/logger"
	"globex-logistics/internal/features/shipments/domain"
	"globex-logistics/internal/features/shipments/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrackingHandler handles the public tracking lookup.
type TrackingHandler struct {
	trackingService ports.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService ports.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}

// GetTracking godoc
// @Summary Track a shipment
// @Description Looks up a shipment by tracking number and returns its status, progress and timeline.
// @Tags tracking
// @Produce json
// @Param number path string true "Tracking Number (case-insensitive)"
// @Success 200 {object} domain.TrackingResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tracking/{number} [get]
func (h *TrackingHandler) GetTracking(c *fiber.Ctx) error {
	result, err := h.trackingService.Track(c.Context(), c.Params("number"))
	if err != nil {
		if errors.Is(err, domain.ErrMissingTrackingNumber) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: "missing tracking number",
				RayID:   rayID(c),
			})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: "shipment not found",
				RayID:   rayID(c),
			})
		}

		logger.Get().Error("Tracking lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "could not fetch shipment data",
			RayID:   rayID(c),
		})
	}

	return c.JSON(result)
}
