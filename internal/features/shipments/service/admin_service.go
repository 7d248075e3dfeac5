package service

import (
	"context"
	"fmt"
	"path"
	"time"

	"globex-logistics/internal/core/cache"
	"globex-logistics/internal/core/logger"
	"globex-logistics/internal/features/shipments/domain"
	"globex-logistics/internal/features/shipments/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminServiceImpl implements ports.AdminShipmentService.
type AdminServiceImpl struct {
	shipments ports.ShipmentRepository
	events    ports.EventRepository
	images    ports.ImageStore
	cache     cache.Cache
}

// NewAdminService creates a new AdminServiceImpl. The cache may be nil.
func NewAdminService(shipments ports.ShipmentRepository, events ports.EventRepository, images ports.ImageStore, c cache.Cache) *AdminServiceImpl {
	return &AdminServiceImpl{
		shipments: shipments,
		events:    events,
		images:    images,
		cache:     c,
	}
}

// Create validates the form, generates a tracking number and persists the
// shipment. The status always starts at processing.
func (s *AdminServiceImpl) Create(ctx context.Context, input *domain.CreateShipmentInput) (*domain.Shipment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	days := domain.DefaultDeliveryDays
	if input.Package.DeliveryDays != nil && *input.Package.DeliveryDays > 0 {
		days = *input.Package.DeliveryDays
	}
	estimated := time.Now().AddDate(0, 0, days)

	currency := input.Package.Currency
	if currency == "" {
		currency = "USD"
	}
	serviceType := input.Package.ServiceType
	if serviceType == "" {
		serviceType = "standard"
	}

	shipment := &domain.Shipment{
		TrackingNumber:      domain.NewTrackingNumber(),
		Status:              domain.StatusProcessing,
		OriginLocation:      input.Origin,
		DestinationLocation: input.Destination,
		SenderName:          input.Sender.Name,
		SenderEmail:         optional(input.Sender.Email),
		SenderAddress:       optional(input.Sender.Address),
		SenderCountry:       optional(input.Sender.Country),
		RecipientName:       input.Recipient.Name,
		RecipientEmail:      optional(input.Recipient.Email),
		RecipientAddress:    input.Recipient.Address,
		RecipientCountry:    input.Recipient.Country,
		PackageDescription:  optional(input.Package.Description),
		WeightKg:            input.Package.WeightKg,
		PackageValue:        input.Package.Value,
		ShippingFee:         input.Package.ShippingFee,
		Currency:            currency,
		ServiceType:         serviceType,
		DeliveryDays:        input.Package.DeliveryDays,
		EstimatedDelivery:   &estimated,
		CustomsHold:         false,
	}

	if err := s.shipments.Insert(ctx, shipment); err != nil {
		return nil, fmt.Errorf("service: failed to create shipment: %w", err)
	}

	logger.Get().Info("Shipment created",
		zap.String("tracking_number", shipment.TrackingNumber),
	)
	return shipment, nil
}

// Get loads a shipment with its events ordered oldest first for the edit view.
func (s *AdminServiceImpl) Get(ctx context.Context, id string) (*domain.Shipment, []domain.ShipmentEvent, error) {
	shipment, err := s.shipments.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	events, err := s.events.ListByShipment(ctx, id, false)
	if err != nil {
		return nil, nil, fmt.Errorf("service: failed to load events: %w", err)
	}

	return shipment, events, nil
}

// List returns shipments newest first, optionally filtered by query.
func (s *AdminServiceImpl) List(ctx context.Context, query string) ([]domain.Shipment, error) {
	shipments, err := s.shipments.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list shipments: %w", err)
	}
	return shipments, nil
}

// Stats returns the dashboard counters.
func (s *AdminServiceImpl) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	stats, err := s.shipments.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to compute stats: %w", err)
	}
	return stats, nil
}

// Update applies the edit form to the shipment and reconciles its event list.
// Status may move to any value; transitions are deliberate staff overrides and
// not guarded. Event writes are best-effort: each failure is reported in the
// outcome and does not roll back the others.
func (s *AdminServiceImpl) Update(ctx context.Context, id string, input *domain.UpdateShipmentInput) (*domain.UpdateOutcome, error) {
	shipment, err := s.shipments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	shipment.Status = input.Status
	shipment.CustomsHold = input.CustomsHold
	shipment.CurrentLocation = optional(input.CurrentLocation)
	shipment.OriginLocation = input.Origin
	shipment.DestinationLocation = input.Destination
	shipment.SenderName = input.Sender.Name
	shipment.SenderEmail = optional(input.Sender.Email)
	shipment.SenderAddress = optional(input.Sender.Address)
	shipment.SenderCountry = optional(input.Sender.Country)
	shipment.RecipientName = input.Recipient.Name
	shipment.RecipientEmail = optional(input.Recipient.Email)
	shipment.RecipientAddress = input.Recipient.Address
	shipment.RecipientCountry = input.Recipient.Country
	shipment.PackageDescription = optional(input.Package.Description)
	shipment.WeightKg = input.Package.WeightKg
	shipment.PackageValue = input.Package.Value
	shipment.ShippingFee = input.Package.ShippingFee
	if input.Package.Currency != "" {
		shipment.Currency = input.Package.Currency
	}
	if input.Package.ServiceType != "" {
		shipment.ServiceType = input.Package.ServiceType
	}
	shipment.DeliveryDays = input.Package.DeliveryDays

	if err := s.shipments.Update(ctx, shipment); err != nil {
		return nil, fmt.Errorf("service: failed to update shipment: %w", err)
	}

	outcome := &domain.UpdateOutcome{
		Shipment:     shipment,
		EventResults: s.reconcileEvents(ctx, id, input.Events),
	}

	s.invalidate(ctx, shipment.TrackingNumber)
	return outcome, nil
}

// reconcileEvents applies the desired event list: rows with an id update the
// stored event, rows without one are inserted, and stored events missing from
// the list are deleted. Every write is independent.
func (s *AdminServiceImpl) reconcileEvents(ctx context.Context, shipmentID string, desired []domain.EventInput) []domain.EventWriteResult {
	results := make([]domain.EventWriteResult, 0, len(desired))

	stored, err := s.events.ListByShipment(ctx, shipmentID, false)
	if err != nil {
		logger.Get().Error("Failed to load events for reconciliation",
			zap.String("shipment_id", shipmentID),
			zap.Error(err),
		)
		stored = nil
	}

	keep := make(map[string]bool, len(desired))

	for _, in := range desired {
		event := &domain.ShipmentEvent{
			ID:         in.ID,
			ShipmentID: shipmentID,
			Title:      in.Title,
			Location:   in.Location,
			EventDate:  in.EventDate,
			Completed:  in.Completed,
		}

		if in.ID == "" {
			result := domain.EventWriteResult{Op: domain.EventOpInsert, Title: in.Title}
			if err := s.events.Insert(ctx, event); err != nil {
				result.Error = err.Error()
			} else {
				result.EventID = event.ID
			}
			results = append(results, result)
			continue
		}

		keep[in.ID] = true
		result := domain.EventWriteResult{Op: domain.EventOpUpdate, EventID: in.ID, Title: in.Title}
		if err := s.events.Update(ctx, event); err != nil {
			result.Error = err.Error()
		}
		results = append(results, result)
	}

	for _, event := range stored {
		if keep[event.ID] {
			continue
		}
		result := domain.EventWriteResult{Op: domain.EventOpDelete, EventID: event.ID, Title: event.Title}
		if err := s.events.Delete(ctx, event.ID); err != nil {
			result.Error = err.Error()
		}
		results = append(results, result)
	}

	return results
}

// Delete removes the shipment; its events go with it.
func (s *AdminServiceImpl) Delete(ctx context.Context, id string) error {
	shipment, err := s.shipments.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.shipments.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete shipment: %w", err)
	}

	s.invalidate(ctx, shipment.TrackingNumber)
	return nil
}

// UploadImages stores the given files one by one. Each file succeeds or fails
// on its own; failed uploads do not block the rest. Successful URLs are
// appended to the shipment's image list.
func (s *AdminServiceImpl) UploadImages(ctx context.Context, id string, files []ports.ImageFile) ([]domain.ImageUploadResult, error) {
	shipment, err := s.shipments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	results := make([]domain.ImageUploadResult, 0, len(files))
	var uploaded []string

	for _, file := range files {
		objectName := fmt.Sprintf("%s/%s%s", shipment.ID, uuid.NewString(), path.Ext(file.Name))

		result := domain.ImageUploadResult{FileName: file.Name}
		url, err := s.images.Upload(ctx, objectName, file.Reader, file.Size, file.ContentType)
		if err != nil {
			result.Error = err.Error()
			logger.Get().Error("Image upload failed",
				zap.String("file", file.Name),
				zap.Error(err),
			)
		} else {
			result.URL = url
			uploaded = append(uploaded, url)
		}
		results = append(results, result)
	}

	if len(uploaded) > 0 {
		shipment.PackageImages = append(shipment.PackageImages, uploaded...)
		if err := s.shipments.Update(ctx, shipment); err != nil {
			return results, fmt.Errorf("service: failed to save image references: %w", err)
		}
		s.invalidate(ctx, shipment.TrackingNumber)
	}

	return results, nil
}

// RemoveImage deletes one stored image and drops its reference.
func (s *AdminServiceImpl) RemoveImage(ctx context.Context, id string, imageURL string) error {
	shipment, err := s.shipments.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.images.Remove(ctx, imageURL); err != nil {
		return fmt.Errorf("service: failed to remove image: %w", err)
	}

	remaining := make([]string, 0, len(shipment.PackageImages))
	for _, url := range shipment.PackageImages {
		if url != imageURL {
			remaining = append(remaining, url)
		}
	}
	shipment.PackageImages = remaining

	if err := s.shipments.Update(ctx, shipment); err != nil {
		return fmt.Errorf("service: failed to save image references: %w", err)
	}

	s.invalidate(ctx, shipment.TrackingNumber)
	return nil
}

// invalidate drops the cached public lookup after an admin mutation.
func (s *AdminServiceImpl) invalidate(ctx context.Context, trackingNumber string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, trackingCacheKey(trackingNumber)); err != nil {
		logger.Get().Debug("Failed to invalidate tracking cache",
			zap.String("tracking_number", trackingNumber),
			zap.Error(err),
		)
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
