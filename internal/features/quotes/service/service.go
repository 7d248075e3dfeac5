package service

import (
	"context"
	"fmt"

	"globex-logistics/internal/features/quotes/domain"
	"globex-logistics/internal/features/quotes/ports"
)

// QuoteServiceImpl implements ports.QuoteService.
type QuoteServiceImpl struct {
	repo ports.QuoteRepository
}

// NewQuoteService creates a new QuoteServiceImpl.
func NewQuoteService(repo ports.QuoteRepository) *QuoteServiceImpl {
	return &QuoteServiceImpl{
		repo: repo,
	}
}

// SubmitQuote validates and stores a new quote request.
func (s *QuoteServiceImpl) SubmitQuote(ctx context.Context, name, email, origin, destination string, weightKg *float64, message string) (*domain.QuoteRequest, error) {
	quote, err := domain.NewQuoteRequest(name, email, origin, destination, weightKg, message)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, quote); err != nil {
		return nil, fmt.Errorf("service: failed to save quote request: %w", err)
	}

	return quote, nil
}

// ListQuotes returns stored quote requests newest first.
func (s *QuoteServiceImpl) ListQuotes(ctx context.Context) ([]domain.QuoteRequest, error) {
	quotes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list quote requests: %w", err)
	}

	return quotes, nil
}
