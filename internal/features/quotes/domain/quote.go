package domain

import (
	"errors"
	"time"
)

// ErrIncompleteQuote is returned when a quote request misses required fields.
var ErrIncompleteQuote = errors.New("quote request requires name, email, origin and destination")

// QuoteRequest is a shipping-quote inquiry from the marketing site, stored
// for staff follow-up.
type QuoteRequest struct {
	ID          string    `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Email       string    `gorm:"column:email;not null" json:"email"`
	Origin      string    `gorm:"column:origin;not null" json:"origin"`
	Destination string    `gorm:"column:destination;not null" json:"destination"`
	WeightKg    *float64  `gorm:"column:weight_kg" json:"weight_kg,omitempty"`
	Message     string    `gorm:"column:message;type:text" json:"message,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName overrides the GORM table name.
func (QuoteRequest) TableName() string {
	return "quote_requests"
}

// NewQuoteRequest creates a QuoteRequest and validates its required fields.
func NewQuoteRequest(name, email, origin, destination string, weightKg *float64, message string) (*QuoteRequest, error) {
	if name == "" || email == "" || origin == "" || destination == "" {
		return nil, ErrIncompleteQuote
	}

	return &QuoteRequest{
		Name:        name,
		Email:       email,
		Origin:      origin,
		Destination: destination,
		WeightKg:    weightKg,
		Message:     message,
	}, nil
}
