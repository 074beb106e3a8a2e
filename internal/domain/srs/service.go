package srs

import (
	"errors"
	"fmt"
	"time"

	"github.com/phrazzld/scry-deck/internal/domain"
)

// Common errors
var (
	ErrNilCard = errors.New("card cannot be nil")
)

// Service defines the interface for SM-2 scheduling operations
type Service interface {
	// CalculateNextReview computes the card's state after a review of the given
	// quality performed on today's calendar date. The input card is not modified.
	// Returns an error wrapping domain.ErrInvalidInput if quality is outside 0..5.
	CalculateNextReview(
		card *domain.Card,
		quality domain.Quality,
		today time.Time,
	) (*domain.Card, error)

	// Params returns the parameters the service schedules with.
	Params() Params
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new SRS service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new SRS service with custom parameters
func NewServiceWithParams(params *Params) (Service, error) {
	if params == nil {
		return nil, fmt.Errorf("%w: params cannot be nil", domain.ErrValidation)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &defaultService{
		params: params,
	}, nil
}

// CalculateNextReview implements the Service interface
func (s *defaultService) CalculateNextReview(
	card *domain.Card,
	quality domain.Quality,
	today time.Time,
) (*domain.Card, error) {
	if card == nil {
		return nil, ErrNilCard
	}

	if err := quality.Validate(); err != nil {
		return nil, err
	}

	return calculateNextCard(card, quality, today, s.params), nil
}

// Params implements the Service interface
func (s *defaultService) Params() Params {
	return *s.params
}
