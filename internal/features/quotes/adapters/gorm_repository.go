package adapters

import (
	"context"
	"fmt"

	"globex-logistics/internal/features/quotes/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormQuoteRepository implements ports.QuoteRepository on Postgres.
type GormQuoteRepository struct {
	db *gorm.DB
}

// NewGormQuoteRepository creates a new GormQuoteRepository.
func NewGormQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

// Save persists a new quote request, assigning an id when absent.
func (r *GormQuoteRepository) Save(ctx context.Context, quote *domain.QuoteRequest) error {
	if quote.ID == "" {
		quote.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(quote).Error; err != nil {
		return fmt.Errorf("failed to insert quote request: %w", err)
	}
	return nil
}

// List returns quote requests newest first.
func (r *GormQuoteRepository) List(ctx context.Context) ([]domain.QuoteRequest, error) {
	var quotes []domain.QuoteRequest
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&quotes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list quote requests: %w", err)
	}
	return quotes, nil
}
