package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"globex-logistics/internal/core/cache"
	"globex-logistics/internal/core/logger"
	"globex-logistics/internal/features/shipments/domain"
	"globex-logistics/internal/features/shipments/ports"

	"go.uber.org/zap"
)

// trackingCacheTTL keeps public lookups cheap without letting admin edits go
// stale for long.
const trackingCacheTTL = time.Minute

func trackingCacheKey(trackingNumber string) string {
	return "tracking:" + trackingNumber
}

// TrackingServiceImpl implements ports.TrackingService.
type TrackingServiceImpl struct {
	shipments ports.ShipmentRepository
	events    ports.EventRepository
	cache     cache.Cache
}

// NewTrackingService creates a new TrackingServiceImpl. The cache may be nil;
// lookups then always hit the store.
func NewTrackingService(shipments ports.ShipmentRepository, events ports.EventRepository, c cache.Cache) *TrackingServiceImpl {
	return &TrackingServiceImpl{
		shipments: shipments,
		events:    events,
		cache:     c,
	}
}

// Track looks up a shipment by its raw tracking number and builds the
// renderable result. Events come back newest first for the customer view.
func (s *TrackingServiceImpl) Track(ctx context.Context, rawTrackingNumber string) (*domain.TrackingResult, error) {
	code, err := domain.NormalizeTrackingNumber(rawTrackingNumber)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, cacheErr := s.cache.Get(ctx, trackingCacheKey(code)); cacheErr == nil {
			var cached domain.TrackingResult
			if unmarshalErr := json.Unmarshal(data, &cached); unmarshalErr == nil {
				return &cached, nil
			}
		}
	}

	shipment, err := s.shipments.FindByTrackingNumber(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("could not fetch shipment data: %w", err)
	}

	events, err := s.events.ListByShipment(ctx, shipment.ID, true)
	if err != nil {
		return nil, fmt.Errorf("could not fetch shipment data: %w", err)
	}

	rows := make([]domain.EventRow, 0, len(events))
	for row := range domain.EventRows(events) {
		rows = append(rows, row)
	}

	result := &domain.TrackingResult{
		Shipment: *shipment,
		Display:  domain.BuildDisplayState(shipment),
		Events:   rows,
	}

	if s.cache != nil {
		if data, marshalErr := json.Marshal(result); marshalErr == nil {
			if cacheErr := s.cache.Set(ctx, trackingCacheKey(code), data, trackingCacheTTL); cacheErr != nil {
				logger.Get().Warn("Failed to cache tracking result",
					zap.String("tracking_number", code),
					zap.Error(cacheErr),
				)
			}
		}
	}

	return result, nil
}
