package ports

import (
	"context"

	"globex-logistics/internal/features/quotes/domain"
)

// QuoteService defines the primary port for quote-request operations.
type QuoteService interface {
	SubmitQuote(ctx context.Context, name, email, origin, destination string, weightKg *float64, message string) (*domain.QuoteRequest, error)
	ListQuotes(ctx context.Context) ([]domain.QuoteRequest, error)
}

// QuoteRepository defines the secondary port for quote-request storage.
type QuoteRepository interface {
	Save(ctx context.Context, quote *domain.QuoteRequest) error
	// List returns quote requests newest first.
	List(ctx context.Context) ([]domain.QuoteRequest, error)
}
