package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/scry-deck/internal/domain"
	"github.com/phrazzld/scry-deck/internal/domain/srs"
	"github.com/phrazzld/scry-deck/internal/store"
)

// CardExtractor produces unscheduled cards from a file or directory of notes.
type CardExtractor interface {
	ExtractPath(ctx context.Context, path string) ([]*domain.Card, error)
}

// ImportResult reports the outcome of an import.
type ImportResult struct {
	Extracted int // Cards found in the source notes
	Added     int // Cards that were new to the deck
	Total     int // Cards in the deck after the import
}

// DeckImportService merges freshly extracted cards into a deck.
type DeckImportService struct {
	extractor         CardExtractor
	initialEaseFactor float64
	logger            *slog.Logger
}

// ImportOption configures a DeckImportService.
type ImportOption func(*DeckImportService)

// WithScheduler gives cards added by an import the initial ease factor of
// the scheduler's parameters instead of the extractor's default.
func WithScheduler(scheduler srs.Service) ImportOption {
	return func(s *DeckImportService) {
		s.initialEaseFactor = scheduler.Params().InitialEaseFactor
	}
}

// NewDeckImportService creates a new DeckImportService.
// If logger is nil, a default logger will be used.
func NewDeckImportService(extractor CardExtractor, logger *slog.Logger, opts ...ImportOption) (*DeckImportService, error) {
	if extractor == nil {
		return nil, errors.New("extractor cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &DeckImportService{
		extractor: extractor,
		logger:    logger.With(slog.String("component", "deck_import_service")),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Import extracts cards from source and merges them into the deck.
//
// A missing deck is treated as empty and created by the save. Cards already
// in the deck keep their scheduling state; only new IDs are appended. The
// deck is saved even when nothing was added so the file always exists
// afterwards.
func (s *DeckImportService) Import(ctx context.Context, deck store.DeckStore, source string) (*ImportResult, error) {
	log := s.logger.With(slog.String("deck", deck.Location()), slog.String("source", source))

	existing, err := store.LoadOrEmpty(ctx, deck)
	if err != nil {
		return nil, fmt.Errorf("%w: loading deck: %w", ErrImportFailed, err)
	}

	incoming, err := s.extractor.ExtractPath(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("%w: extracting cards: %w", ErrImportFailed, err)
	}

	if s.initialEaseFactor > 0 {
		for _, card := range incoming {
			card.EaseFactor = s.initialEaseFactor
		}
	}

	merged, added := store.Merge(existing, incoming)

	if err := deck.Save(ctx, merged); err != nil {
		return nil, fmt.Errorf("%w: saving deck: %w", ErrImportFailed, err)
	}

	log.InfoContext(ctx, "cards imported",
		slog.Int("extracted", len(incoming)),
		slog.Int("added", added),
		slog.Int("total", len(merged)))

	return &ImportResult{
		Extracted: len(incoming),
		Added:     added,
		Total:     len(merged),
	}, nil
}
