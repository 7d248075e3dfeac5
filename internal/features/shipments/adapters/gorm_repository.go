package adapters

import (
	"context"
	"errors"
	"fmt"

	"globex-logistics/internal/features/shipments/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormShipmentRepository implements ports.ShipmentRepository on Postgres.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GormShipmentRepository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// FindByTrackingNumber returns the shipment with the given tracking number.
func (r *GormShipmentRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error) {
	var shipment domain.Shipment
	err := r.db.WithContext(ctx).
		Where("tracking_number = ?", trackingNumber).
		First(&shipment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find shipment by tracking number: %w", err)
	}
	return &shipment, nil
}

// GetByID returns the shipment with the given id.
func (r *GormShipmentRepository) GetByID(ctx context.Context, id string) (*domain.Shipment, error) {
	var shipment domain.Shipment
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shipment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}
	return &shipment, nil
}

// List returns shipments newest first, optionally filtered.
func (r *GormShipmentRepository) List(ctx context.Context, query string) ([]domain.Shipment, error) {
	tx := r.db.WithContext(ctx).Order("created_at desc")

	if query != "" {
		pattern := "%" + query + "%"
		tx = tx.Where(
			"tracking_number ILIKE ? OR sender_name ILIKE ? OR recipient_name ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var shipments []domain.Shipment
	if err := tx.Find(&shipments).Error; err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}
	return shipments, nil
}

// Stats counts shipments for the dashboard header.
func (r *GormShipmentRepository) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats

	db := r.db.WithContext(ctx).Model(&domain.Shipment{})
	if err := db.Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count shipments: %w", err)
	}

	err := r.db.WithContext(ctx).Model(&domain.Shipment{}).
		Where("status = ?", domain.StatusInTransit).
		Count(&stats.InTransit).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count in-transit shipments: %w", err)
	}

	err = r.db.WithContext(ctx).Model(&domain.Shipment{}).
		Where("status = ?", domain.StatusDelivered).
		Count(&stats.Delivered).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count delivered shipments: %w", err)
	}

	return &stats, nil
}

// Insert persists a new shipment, assigning an id when absent.
func (r *GormShipmentRepository) Insert(ctx context.Context, shipment *domain.Shipment) error {
	if shipment.ID == "" {
		shipment.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(shipment).Error; err != nil {
		return fmt.Errorf("failed to insert shipment: %w", err)
	}
	return nil
}

// Update saves all fields of the shipment. Concurrent edits are not
// coordinated; the last write wins.
func (r *GormShipmentRepository) Update(ctx context.Context, shipment *domain.Shipment) error {
	if err := r.db.WithContext(ctx).Omit("Events").Save(shipment).Error; err != nil {
		return fmt.Errorf("failed to update shipment: %w", err)
	}
	return nil
}

// Delete removes the shipment and its events in one transaction. The events
// foreign key also carries ON DELETE CASCADE, so either path keeps the store
// free of orphans.
func (r *GormShipmentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shipment_id = ?", id).Delete(&domain.ShipmentEvent{}).Error; err != nil {
			return fmt.Errorf("failed to delete shipment events: %w", err)
		}

		res := tx.Where("id = ?", id).Delete(&domain.Shipment{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete shipment: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// GormEventRepository implements ports.EventRepository on Postgres.
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GormEventRepository.
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// ListByShipment returns the shipment's events ordered by event date.
func (r *GormEventRepository) ListByShipment(ctx context.Context, shipmentID string, newestFirst bool) ([]domain.ShipmentEvent, error) {
	order := "event_date asc"
	if newestFirst {
		order = "event_date desc"
	}

	var events []domain.ShipmentEvent
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID).
		Order(order).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shipment events: %w", err)
	}
	return events, nil
}

// Insert persists a new event, assigning an id when absent.
func (r *GormEventRepository) Insert(ctx context.Context, event *domain.ShipmentEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// Update rewrites the editable fields of the event row. A map is used so a
// false Completed flag is written rather than skipped as a zero value.
func (r *GormEventRepository) Update(ctx context.Context, event *domain.ShipmentEvent) error {
	err := r.db.WithContext(ctx).
		Model(&domain.ShipmentEvent{}).
		Where("id = ?", event.ID).
		Updates(map[string]interface{}{
			"title":      event.Title,
			"location":   event.Location,
			"event_date": event.EventDate,
			"completed":  event.Completed,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
}

// Delete removes a single event.
func (r *GormEventRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.ShipmentEvent{}).Error; err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
