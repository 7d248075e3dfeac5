package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"globex-logistics/internal/features/shipments/domain"
)

// mockShipmentRepository is an in-memory ports.ShipmentRepository.
type mockShipmentRepository struct {
	shipments map[string]*domain.Shipment
	nextID    int

	findErr   error
	insertErr error
	updateErr error
	deleteErr error

	updateCalls int
}

func newMockShipmentRepository() *mockShipmentRepository {
	return &mockShipmentRepository{shipments: make(map[string]*domain.Shipment)}
}

func (m *mockShipmentRepository) FindByTrackingNumber(_ context.Context, trackingNumber string) (*domain.Shipment, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, s := range m.shipments {
		if s.TrackingNumber == trackingNumber {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockShipmentRepository) GetByID(_ context.Context, id string) (*domain.Shipment, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	s, ok := m.shipments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *s
	return &clone, nil
}

func (m *mockShipmentRepository) List(_ context.Context, _ string) ([]domain.Shipment, error) {
	var out []domain.Shipment
	for _, s := range m.shipments {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockShipmentRepository) Stats(_ context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}
	for _, s := range m.shipments {
		stats.Total++
		switch s.Status {
		case domain.StatusInTransit:
			stats.InTransit++
		case domain.StatusDelivered:
			stats.Delivered++
		}
	}
	return stats, nil
}

func (m *mockShipmentRepository) Insert(_ context.Context, shipment *domain.Shipment) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	if shipment.ID == "" {
		m.nextID++
		shipment.ID = fmt.Sprintf("ship-%d", m.nextID)
	}
	clone := *shipment
	m.shipments[shipment.ID] = &clone
	return nil
}

func (m *mockShipmentRepository) Update(_ context.Context, shipment *domain.Shipment) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.shipments[shipment.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *shipment
	m.shipments[shipment.ID] = &clone
	return nil
}

func (m *mockShipmentRepository) Delete(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.shipments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.shipments, id)
	return nil
}

// mockEventRepository is an in-memory ports.EventRepository.
type mockEventRepository struct {
	events map[string]*domain.ShipmentEvent
	nextID int

	listErr   error
	insertErr error
	updateErr error
	deleteErr error
}

func newMockEventRepository() *mockEventRepository {
	return &mockEventRepository{events: make(map[string]*domain.ShipmentEvent)}
}

func (m *mockEventRepository) ListByShipment(_ context.Context, shipmentID string, newestFirst bool) ([]domain.ShipmentEvent, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []domain.ShipmentEvent
	for _, e := range m.events {
		if e.ShipmentID == shipmentID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if newestFirst {
			return out[i].EventDate.After(out[j].EventDate)
		}
		return out[i].EventDate.Before(out[j].EventDate)
	})
	return out, nil
}

func (m *mockEventRepository) Insert(_ context.Context, event *domain.ShipmentEvent) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	if event.ID == "" {
		m.nextID++
		event.ID = fmt.Sprintf("event-%d", m.nextID)
	}
	clone := *event
	m.events[event.ID] = &clone
	return nil
}

func (m *mockEventRepository) Update(_ context.Context, event *domain.ShipmentEvent) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.events[event.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *event
	m.events[event.ID] = &clone
	return nil
}

func (m *mockEventRepository) Delete(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.events, id)
	return nil
}

// mockImageStore records uploads and removals. Uploads whose object name
// contains failSuffix are rejected, which lets tests target one file by its
// extension.
type mockImageStore struct {
	uploaded   []string
	removed    []string
	failSuffix string
	removeErr  error
}

func newMockImageStore() *mockImageStore {
	return &mockImageStore{}
}

func (m *mockImageStore) Upload(_ context.Context, objectName string, _ io.Reader, _ int64, _ string) (string, error) {
	if m.failSuffix != "" && strings.HasSuffix(objectName, m.failSuffix) {
		return "", errors.New("object store unavailable")
	}
	m.uploaded = append(m.uploaded, objectName)
	return "https://cdn.example.com/package-images/" + objectName, nil
}

func (m *mockImageStore) Remove(_ context.Context, objectURL string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removed = append(m.removed, objectURL)
	return nil
}
