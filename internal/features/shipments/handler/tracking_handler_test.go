package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"globex-logistics/internal/features/shipments/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockTrackingService returns a canned result or error.
type mockTrackingService struct {
	result *domain.TrackingResult
	err    error

	lastInput string
}

func (m *mockTrackingService) Track(_ context.Context, rawTrackingNumber string) (*domain.TrackingResult, error) {
	m.lastInput = rawTrackingNumber
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func newTrackingTestApp(svc *mockTrackingService) *fiber.App {
	app := fiber.New()
	app.Use(requestid.New(requestid.Config{Header: "X-Ray-ID"}))

	h := NewTrackingHandler(svc)
	app.Get("/tracking/:number", h.GetTracking)
	return app
}

func TestGetTracking_Success(t *testing.T) {
	shipment := domain.Shipment{
		TrackingNumber: "GLXM2TEST01",
		Status:         domain.StatusOutForDelivery,
	}
	svc := &mockTrackingService{
		result: &domain.TrackingResult{
			Shipment: shipment,
			Display:  domain.BuildDisplayState(&shipment),
			Events:   []domain.EventRow{{ID: "ev-1", Title: "Out for delivery"}},
		},
	}
	app := newTrackingTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/tracking/GLXM2TEST01", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "GLXM2TEST01", svc.lastInput)

	var result domain.TrackingResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "GLXM2TEST01", result.Shipment.TrackingNumber)
	assert.Equal(t, "Out for Delivery", result.Display.BadgeLabel)
	require.Len(t, result.Events, 1)
}

func TestGetTracking_MissingNumber(t *testing.T) {
	svc := &mockTrackingService{err: domain.ErrMissingTrackingNumber}
	app := newTrackingTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/tracking/%20%20", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "missing tracking number", body.Message)
	assert.NotEmpty(t, body.RayID)
}

func TestGetTracking_NotFound(t *testing.T) {
	svc := &mockTrackingService{err: domain.ErrNotFound}
	app := newTrackingTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/tracking/GLXUNKNOWN", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "shipment not found", body.Message)
}

func TestGetTracking_InternalError(t *testing.T) {
	svc := &mockTrackingService{err: errors.New("connection refused")}
	app := newTrackingTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/tracking/GLXM2TEST01", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "could not fetch shipment data", body.Message)
	assert.NotEmpty(t, body.RayID)
}
