package domain

import "time"

// DefaultDeliveryDays is used when the admin does not specify an estimate.
const DefaultDeliveryDays = 7

// PartyInput carries name/contact details for a sender or recipient.
type PartyInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Country string `json:"country"`
}

// PackageInput carries the package metadata fields of the admin form.
type PackageInput struct {
	Description  string   `json:"description"`
	WeightKg     *float64 `json:"weight_kg"`
	Value        *float64 `json:"value"`
	ShippingFee  *float64 `json:"shipping_fee"`
	Currency     string   `json:"currency"`
	ServiceType  string   `json:"service_type"`
	DeliveryDays *int     `json:"delivery_days"`
}

// CreateShipmentInput is the typed form for creating a shipment.
type CreateShipmentInput struct {
	Sender      PartyInput   `json:"sender"`
	Recipient   PartyInput   `json:"recipient"`
	Origin      string       `json:"origin"`
	Destination string       `json:"destination"`
	Package     PackageInput `json:"package"`
}

// Validate checks the required fields. The first missing field is reported.
func (in *CreateShipmentInput) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"sender.name", in.Sender.Name},
		{"recipient.name", in.Recipient.Name},
		{"recipient.address", in.Recipient.Address},
		{"recipient.country", in.Recipient.Country},
		{"origin", in.Origin},
		{"destination", in.Destination},
	}

	for _, r := range required {
		if r.value == "" {
			return &ValidationError{Field: r.field}
		}
	}
	return nil
}

// EventInput is one timeline row of the admin edit form. An empty ID marks a
// new row to insert; a non-empty ID updates the stored event.
type EventInput struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	EventDate time.Time `json:"event_date"`
	Completed bool      `json:"completed"`
}

// UpdateShipmentInput is the typed form for editing a shipment. Any status
// value may be set; transitions are not guarded.
type UpdateShipmentInput struct {
	Status          Status       `json:"status"`
	CurrentLocation string       `json:"current_location"`
	CustomsHold     bool         `json:"customs_hold"`
	Sender          PartyInput   `json:"sender"`
	Recipient       PartyInput   `json:"recipient"`
	Origin          string       `json:"origin"`
	Destination     string       `json:"destination"`
	Package         PackageInput `json:"package"`
	// Events is the full desired timeline; missing stored rows are deleted.
	Events []EventInput `json:"events"`
}

// EventWriteOp names the reconciliation operation applied to one event row.
type EventWriteOp string

const (
	EventOpInsert EventWriteOp = "insert"
	EventOpUpdate EventWriteOp = "update"
	EventOpDelete EventWriteOp = "delete"
)

// EventWriteResult reports the outcome of one best-effort event write.
type EventWriteResult struct {
	// Op is the operation that was attempted.
	Op EventWriteOp `json:"op"`
	// EventID identifies the event (empty for failed inserts).
	EventID string `json:"event_id,omitempty"`
	// Title is the event title, for display in the admin UI.
	Title string `json:"title,omitempty"`
	// Error holds the failure message; empty means success.
	Error string `json:"error,omitempty"`
}

// UpdateOutcome is the result of an admin update: the saved shipment plus the
// per-event reconciliation results. Event writes are independent; a failed
// write does not roll back the others.
type UpdateOutcome struct {
	Shipment     *Shipment          `json:"shipment"`
	EventResults []EventWriteResult `json:"event_results"`
}

// DashboardStats summarizes the shipment list for the admin dashboard.
type DashboardStats struct {
	Total     int64 `json:"total"`
	InTransit int64 `json:"in_transit"`
	Delivered int64 `json:"delivered"`
}

// TrackingResult is the outcome of a successful public lookup.
type TrackingResult struct {
	Shipment Shipment     `json:"shipment"`
	Display  DisplayState `json:"display"`
	// Events are render rows ordered newest first.
	Events []EventRow `json:"events"`
}

// ImageUploadResult reports the outcome of one best-effort file upload.
type ImageUploadResult struct {
	FileName string `json:"file_name"`
	URL      string `json:"url,omitempty"`
	Error    string `json:"error,omitempty"`
}
