package ports

import (
	"context"
	"io"

	"globex-logistics/internal/features/shipments/domain"
)

// TrackingService defines the primary port for public shipment lookups.
type TrackingService interface {
	// Track normalizes the raw tracking number and returns the renderable
	// tracking result, domain.ErrMissingTrackingNumber on empty input, or
	// domain.ErrNotFound when no shipment matches.
	Track(ctx context.Context, rawTrackingNumber string) (*domain.TrackingResult, error)
}

// AdminShipmentService defines the primary port for admin mutations.
type AdminShipmentService interface {
	Create(ctx context.Context, input *domain.CreateShipmentInput) (*domain.Shipment, error)
	Get(ctx context.Context, id string) (*domain.Shipment, []domain.ShipmentEvent, error)
	List(ctx context.Context, query string) ([]domain.Shipment, error)
	Stats(ctx context.Context) (*domain.DashboardStats, error)
	Update(ctx context.Context, id string, input *domain.UpdateShipmentInput) (*domain.UpdateOutcome, error)
	Delete(ctx context.Context, id string) error
	UploadImages(ctx context.Context, id string, files []ImageFile) ([]domain.ImageUploadResult, error)
	RemoveImage(ctx context.Context, id string, imageURL string) error
}

// ImageFile is one uploaded file ready to be stored.
type ImageFile struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// ShipmentRepository defines the secondary port for shipment storage.
type ShipmentRepository interface {
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
	GetByID(ctx context.Context, id string) (*domain.Shipment, error)
	// List returns shipments newest first, optionally filtered by a
	// case-insensitive match on tracking number, sender or recipient name.
	List(ctx context.Context, query string) ([]domain.Shipment, error)
	Stats(ctx context.Context) (*domain.DashboardStats, error)
	Insert(ctx context.Context, shipment *domain.Shipment) error
	Update(ctx context.Context, shipment *domain.Shipment) error
	// Delete removes the shipment and its events.
	Delete(ctx context.Context, id string) error
}

// EventRepository defines the secondary port for timeline event storage.
type EventRepository interface {
	// ListByShipment returns events ordered by event date; newestFirst
	// selects descending order (customer view) over ascending (admin view).
	ListByShipment(ctx context.Context, shipmentID string, newestFirst bool) ([]domain.ShipmentEvent, error)
	Insert(ctx context.Context, event *domain.ShipmentEvent) error
	Update(ctx context.Context, event *domain.ShipmentEvent) error
	Delete(ctx context.Context, id string) error
}

// ImageStore defines the secondary port for package image storage.
type ImageStore interface {
	// Upload stores the object and returns its public URL.
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	// Remove deletes the object behind a URL previously returned by Upload.
	Remove(ctx context.Context, objectURL string) error
}
