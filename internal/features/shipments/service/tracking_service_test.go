package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"globex-logistics/internal/core/cache"
	"globex-logistics/internal/features/shipments/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedShipment(t *testing.T, shipments *mockShipmentRepository, events *mockEventRepository) *domain.Shipment {
	t.Helper()

	shipment := &domain.Shipment{
		ID:                  "ship-1",
		TrackingNumber:      "GLXM2TEST01",
		Status:              domain.StatusInTransit,
		OriginLocation:      "Shenzhen, CN",
		DestinationLocation: "Rotterdam, NL",
		SenderName:          "Acme Exports",
		RecipientName:       "Jane Roe",
		RecipientAddress:    "1 Canal St",
		RecipientCountry:    "NL",
	}
	require.NoError(t, shipments.Insert(context.Background(), shipment))

	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	require.NoError(t, events.Insert(context.Background(), &domain.ShipmentEvent{
		ShipmentID: shipment.ID, Title: "Shipment registered", Location: "Shenzhen", EventDate: base, Completed: true,
	}))
	require.NoError(t, events.Insert(context.Background(), &domain.ShipmentEvent{
		ShipmentID: shipment.ID, Title: "Departed origin", Location: "Shenzhen", EventDate: base.Add(24 * time.Hour), Completed: true,
	}))
	require.NoError(t, events.Insert(context.Background(), &domain.ShipmentEvent{
		ShipmentID: shipment.ID, Title: "Arrived at hub", Location: "Rotterdam", EventDate: base.Add(72 * time.Hour), Completed: false,
	}))

	return shipment
}

func TestTrackingService_Track(t *testing.T) {
	shipments := newMockShipmentRepository()
	events := newMockEventRepository()
	seedShipment(t, shipments, events)

	svc := NewTrackingService(shipments, events, nil)

	result, err := svc.Track(context.Background(), "GLXM2TEST01")
	require.NoError(t, err)

	assert.Equal(t, "GLXM2TEST01", result.Shipment.TrackingNumber)
	assert.Equal(t, domain.StatusInTransit, result.Shipment.Status)
	assert.Equal(t, 2, result.Display.StatusIndex)
	assert.InDelta(t, 3.0/7.0, result.Display.Progress, 1e-9)

	// Customer view lists events newest first.
	require.Len(t, result.Events, 3)
	assert.Equal(t, "Arrived at hub", result.Events[0].Title)
	assert.Equal(t, "Departed origin", result.Events[1].Title)
	assert.Equal(t, "Shipment registered", result.Events[2].Title)
}

func TestTrackingService_Track_NormalizesInput(t *testing.T) {
	shipments := newMockShipmentRepository()
	events := newMockEventRepository()
	seedShipment(t, shipments, events)

	svc := NewTrackingService(shipments, events, nil)

	result, err := svc.Track(context.Background(), "  glxm2test01 ")
	require.NoError(t, err)
	assert.Equal(t, "GLXM2TEST01", result.Shipment.TrackingNumber)
}

func TestTrackingService_Track_MissingNumber(t *testing.T) {
	svc := NewTrackingService(newMockShipmentRepository(), newMockEventRepository(), nil)

	_, err := svc.Track(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrMissingTrackingNumber)
}

func TestTrackingService_Track_NotFound(t *testing.T) {
	svc := NewTrackingService(newMockShipmentRepository(), newMockEventRepository(), nil)

	_, err := svc.Track(context.Background(), "GLXUNKNOWN")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTrackingService_Track_StoreFailure(t *testing.T) {
	shipments := newMockShipmentRepository()
	shipments.findErr = errors.New("connection refused")

	svc := NewTrackingService(shipments, newMockEventRepository(), nil)

	_, err := svc.Track(context.Background(), "GLXM2TEST01")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "could not fetch shipment data")
}

func TestTrackingService_Track_EmptyTimeline(t *testing.T) {
	shipments := newMockShipmentRepository()
	require.NoError(t, shipments.Insert(context.Background(), &domain.Shipment{
		ID:             "ship-empty",
		TrackingNumber: "GLXEMPTY01",
		Status:         domain.StatusProcessing,
	}))

	svc := NewTrackingService(shipments, newMockEventRepository(), nil)

	result, err := svc.Track(context.Background(), "GLXEMPTY01")
	require.NoError(t, err)
	assert.Empty(t, result.Events)
}

func TestTrackingService_Track_CacheHit(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()

	redisCache, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	defer redisCache.Close()

	shipments := newMockShipmentRepository()
	events := newMockEventRepository()
	seedShipment(t, shipments, events)

	svc := NewTrackingService(shipments, events, redisCache)

	first, err := svc.Track(context.Background(), "GLXM2TEST01")
	require.NoError(t, err)

	// A store outage after the first lookup goes unnoticed while cached.
	shipments.findErr = errors.New("connection refused")

	second, err := svc.Track(context.Background(), "GLXM2TEST01")
	require.NoError(t, err)
	assert.Equal(t, first.Shipment.TrackingNumber, second.Shipment.TrackingNumber)
	assert.Len(t, second.Events, len(first.Events))

	// Once the entry expires the lookup hits the store again.
	mr.FastForward(2 * time.Minute)
	_, err = svc.Track(context.Background(), "GLXM2TEST01")
	assert.Error(t, err)
}
