package handler

import (
	"errors"

	"globex-logistics/internal/core/logger"
	"globex-logistics/internal/features/shipments/domain"
	"globex-logistics/internal/features/shipments/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminHandler handles admin shipment mutations.
type AdminHandler struct {
	adminService ports.AdminShipmentService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService ports.AdminShipmentService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// CreateShipmentResponse is returned after a successful creation.
type CreateShipmentResponse struct {
	// TrackingNumber is the generated code to hand to the customer.
	TrackingNumber string `json:"tracking_number"`
	// Shipment is the stored record.
	Shipment *domain.Shipment `json:"shipment"`
}

// ShipmentDetailResponse carries a shipment plus its events for the edit view.
type ShipmentDetailResponse struct {
	Shipment *domain.Shipment       `json:"shipment"`
	Events   []domain.ShipmentEvent `json:"events"`
}

// RemoveImageRequest identifies the image to delete.
type RemoveImageRequest struct {
	URL string `json:"url"`
}

// handleServiceError maps service errors onto HTTP responses.
func (h *AdminHandler) handleServiceError(c *fiber.Ctx, err error) error {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: validationErr.Error(),
			RayID:   rayID(c),
		})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Message: "shipment not found",
			RayID:   rayID(c),
		})
	}

	logger.Get().Error("Admin shipment operation failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Message: "internal server error",
		RayID:   rayID(c),
	})
}

// ListShipments godoc
// @Summary List shipments
// @Description Returns shipments newest first, optionally filtered by tracking number, sender or recipient name.
// @Tags admin
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} domain.Shipment
// @Failure 500 {object} ErrorResponse
// @Router /admin/shipments [get]
func (h *AdminHandler) ListShipments(c *fiber.Ctx) error {
	shipments, err := h.adminService.List(c.Context(), c.Query("q"))
	if err != nil {
		return h.handleServiceError(c, err)
	}
	return c.JSON(shipments)
}

// GetStats godoc
// @Summary Dashboard counters
// @Description Returns total, in-transit and delivered shipment counts.
// @Tags admin
// @Produce json
// @Success 200 {object} domain.DashboardStats
// @Failure 500 {object} ErrorResponse
// @Router /admin/shipments/stats [get]
func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.adminService.Stats(c.Context())
	if err != nil {
		return h.handleServiceError(c, err)
	}
	return c.JSON(stats)
}

// CreateShipment godoc
// @Summary Create a shipment
// @Description Creates a shipment with a generated tracking number; status starts at processing.
// @Tags admin
// @Accept json
// @Produce json
// @Param shipment body domain.CreateShipmentInput true "Shipment form"
// @Success 201 {object} CreateShipmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/shipments [post]
func (h *AdminHandler) CreateShipment(c *fiber.Ctx) error {
	var input domain.CreateShipmentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	shipment, err := h.adminService.Create(c.Context(), &input)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(CreateShipmentResponse{
		TrackingNumber: shipment.TrackingNumber,
		Shipment:       shipment,
	})
}

// GetShipment godoc
// @Summary Get a shipment for editing
// @Description Returns the shipment and its events ordered oldest first.
// @Tags admin
// @Produce json
// @Param id path string true "Shipment ID"
// @Success 200 {object} ShipmentDetailResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/shipments/{id} [get]
func (h *AdminHandler) GetShipment(c *fiber.Ctx) error {
	shipment, events, err := h.adminService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(ShipmentDetailResponse{
		Shipment: shipment,
		Events:   events,
	})
}

// UpdateShipment godoc
// @Summary Update a shipment
// @Description Applies the edit form and reconciles the event list; event writes are best-effort and reported per row.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Shipment ID"
// @Param shipment body domain.UpdateShipmentInput true "Edit form"
// @Success 200 {object} domain.UpdateOutcome
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/shipments/{id} [put]
func (h *AdminHandler) UpdateShipment(c *fiber.Ctx) error {
	var input domain.UpdateShipmentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	outcome, err := h.adminService.Update(c.Context(), c.Params("id"), &input)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(outcome)
}

// DeleteShipment godoc
// @Summary Delete a shipment
// @Description Removes the shipment and its events.
// @Tags admin
// @Produce json
// @Param id path string true "Shipment ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/shipments/{id} [delete]
func (h *AdminHandler) DeleteShipment(c *fiber.Ctx) error {
	if err := h.adminService.Delete(c.Context(), c.Params("id")); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "shipment deleted",
	})
}

// UploadImages godoc
// @Summary Upload package images
// @Description Uploads the files of the multipart field "images" one by one; each file succeeds or fails independently.
// @Tags admin
// @Accept mpfd
// @Produce json
// @Param id path string true "Shipment ID"
// @Success 200 {array} domain.ImageUploadResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/shipments/{id}/images [post]
func (h *AdminHandler) UploadImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid multipart form",
			RayID:   rayID(c),
		})
	}

	headers := form.File["images"]
	if len(headers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "no images provided",
			RayID:   rayID(c),
		})
	}

	files := make([]ports.ImageFile, 0, len(headers))
	for _, header := range headers {
		file, openErr := header.Open()
		if openErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: "could not read uploaded file: " + header.Filename,
				RayID:   rayID(c),
			})
		}
		defer file.Close()

		files = append(files, ports.ImageFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Reader:      file,
		})
	}

	results, err := h.adminService.UploadImages(c.Context(), c.Params("id"), files)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(results)
}

// RemoveImage godoc
// @Summary Remove a package image
// @Description Deletes the stored object and drops its reference from the shipment.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Shipment ID"
// @Param image body RemoveImageRequest true "Image URL"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/shipments/{id}/images [delete]
func (h *AdminHandler) RemoveImage(c *fiber.Ctx) error {
	var req RemoveImageRequest
	if err := c.BodyParser(&req); err != nil || req.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "image url is required",
			RayID:   rayID(c),
		})
	}

	if err := h.adminService.RemoveImage(c.Context(), c.Params("id"), req.URL); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "image removed",
	})
}
