package domain

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when no shipment matches the request.
	ErrNotFound = errors.New("shipment not found")
	// ErrMissingTrackingNumber is returned when a lookup is attempted with an
	// empty tracking number.
	ErrMissingTrackingNumber = errors.New("missing tracking number")
)

// ValidationError reports a missing required field on admin input.
type ValidationError struct {
	// Field is the name of the offending field.
	Field string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Shipment represents one package in transit.
type Shipment struct {
	// ID is the unique identifier assigned by the store.
	ID string `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	// TrackingNumber is the unique public identifier, immutable after creation.
	TrackingNumber string `gorm:"column:tracking_number;type:varchar(32);uniqueIndex;not null" json:"tracking_number"`
	// Status is the current stage; admin may set it to any value.
	Status Status `gorm:"column:status;type:varchar(32);not null" json:"status"`

	OriginLocation      string  `gorm:"column:origin_location;not null" json:"origin_location"`
	DestinationLocation string  `gorm:"column:destination_location;not null" json:"destination_location"`
	CurrentLocation     *string `gorm:"column:current_location" json:"current_location,omitempty"`

	SenderName    string  `gorm:"column:sender_name;not null" json:"sender_name"`
	SenderEmail   *string `gorm:"column:sender_email" json:"sender_email,omitempty"`
	SenderAddress *string `gorm:"column:sender_address" json:"sender_address,omitempty"`
	SenderCountry *string `gorm:"column:sender_country" json:"sender_country,omitempty"`

	RecipientName    string  `gorm:"column:recipient_name;not null" json:"recipient_name"`
	RecipientEmail   *string `gorm:"column:recipient_email" json:"recipient_email,omitempty"`
	RecipientAddress string  `gorm:"column:recipient_address;not null" json:"recipient_address"`
	RecipientCountry string  `gorm:"column:recipient_country;not null" json:"recipient_country"`

	PackageDescription *string  `gorm:"column:package_description;type:text" json:"package_description,omitempty"`
	WeightKg           *float64 `gorm:"column:weight_kg" json:"weight_kg,omitempty"`
	PackageValue       *float64 `gorm:"column:package_value" json:"package_value,omitempty"`
	ShippingFee        *float64 `gorm:"column:shipping_fee" json:"shipping_fee,omitempty"`
	Currency           string   `gorm:"column:currency;type:varchar(8);default:'USD'" json:"currency"`
	ServiceType        string   `gorm:"column:service_type;type:varchar(32);default:'standard'" json:"service_type"`
	DeliveryDays       *int     `gorm:"column:delivery_days" json:"delivery_days,omitempty"`
	EstimatedDelivery  *time.Time `gorm:"column:estimated_delivery" json:"estimated_delivery,omitempty"`

	// CustomsHold overrides the status badge when true. It never changes the
	// stored Status value, only how it renders.
	CustomsHold bool `gorm:"column:customs_hold;default:false" json:"customs_hold"`

	// PackageImages holds public URLs of uploaded package photos.
	PackageImages []string `gorm:"column:package_images;serializer:json;type:jsonb" json:"package_images,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Events are owned exclusively by the shipment and removed with it.
	Events []ShipmentEvent `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE" json:"events,omitempty"`
}

// TableName overrides the GORM table name.
func (Shipment) TableName() string {
	return "shipments"
}

// ShipmentEvent represents a single entry in a shipment's timeline.
type ShipmentEvent struct {
	// ID is the unique identifier assigned by the store.
	ID string `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	// ShipmentID is the owning shipment.
	ShipmentID string `gorm:"column:shipment_id;type:varchar(36);index;not null" json:"shipment_id"`
	// Title is the event description.
	Title string `gorm:"column:title;not null" json:"title"`
	// Location is where the event took place.
	Location string `gorm:"column:location" json:"location"`
	// EventDate is when the event occurred.
	EventDate time.Time `gorm:"column:event_date;not null" json:"event_date"`
	// Completed marks the event as done. It is set by the admin and never
	// derived from dates.
	Completed bool `gorm:"column:completed;default:false" json:"completed"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName overrides the GORM table name.
func (ShipmentEvent) TableName() string {
	return "shipment_events"
}

// trackingPrefix starts every generated tracking number.
const trackingPrefix = "GLX"

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewTrackingNumber generates an uppercase tracking number of the form
// GLX + base36 millisecond timestamp + 4 random base36 characters.
func NewTrackingNumber() string {
	timestamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	suffix := make([]byte, 4)
	rand.Read(suffix)
	for i, b := range suffix {
		suffix[i] = base36Alphabet[int(b)%len(base36Alphabet)]
	}

	return trackingPrefix + timestamp + string(suffix)
}

// NormalizeTrackingNumber trims surrounding whitespace and uppercases the
// user-supplied code. Returns ErrMissingTrackingNumber when nothing remains.
func NormalizeTrackingNumber(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return "", ErrMissingTrackingNumber
	}
	return code, nil
}
