package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/phrazzld/scry-deck/internal/domain"
	"github.com/phrazzld/scry-deck/internal/store"
)

// deckDocument is the on-disk layout of a deck.
type deckDocument struct {
	Cards []json.RawMessage `json:"cards"`
}

// cardRecord mirrors domain.Card with optional fields so that missing
// values can be told apart from zero values. Unknown fields are ignored.
type cardRecord struct {
	ID           *string         `json:"id"`
	Question     *string         `json:"question"`
	Answer       *string         `json:"answer"`
	IntervalDays *int            `json:"interval_days"`
	Repetition   *int            `json:"repetition"`
	EaseFactor   *float64        `json:"ease_factor"`
	Due          json.RawMessage `json:"due"`
}

// DeckStore implements the store.DeckStore interface
// using a single JSON file as the storage backend.
type DeckStore struct {
	path   string
	logger *slog.Logger
}

// NewDeckStore creates a new JSON file implementation of the DeckStore interface.
// If logger is nil, a default logger will be used.
func NewDeckStore(path string, logger *slog.Logger) *DeckStore {
	if path == "" {
		panic("deck path cannot be empty")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &DeckStore{
		path:   path,
		logger: logger.With(slog.String("component", "deck_store"), slog.String("path", path)),
	}
}

// Ensure DeckStore implements store.DeckStore interface
var _ store.DeckStore = (*DeckStore)(nil)

// Location implements store.DeckStore.Location
func (s *DeckStore) Location() string {
	return s.path
}

// Load implements store.DeckStore.Load
// A missing file yields store.ErrDeckNotFound. Invalid JSON, a card record
// without id, question or answer, or two cards sharing an id yields
// store.ErrDeckCorrupt.
// Scheduling fields that are absent take their defaults.
func (s *DeckStore) Load(ctx context.Context) ([]*domain.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, store.NewStoreError("load", s.path, "deck file does not exist", store.ErrDeckNotFound)
		}
		return nil, store.NewStoreError("load", s.path, "reading deck file",
			fmt.Errorf("%w: %w", store.ErrDeckCorrupt, err))
	}

	var doc deckDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, store.NewStoreError("load", s.path, "decoding deck document",
			fmt.Errorf("%w: %w", store.ErrDeckCorrupt, err))
	}

	cards := make([]*domain.Card, 0, len(doc.Cards))
	seen := make(map[string]int, len(doc.Cards))
	for i, raw := range doc.Cards {
		card, err := decodeCard(raw)
		if err != nil {
			return nil, store.NewStoreError("load", s.path, fmt.Sprintf("card %d", i),
				fmt.Errorf("%w: %w", store.ErrDeckCorrupt, err))
		}
		if first, ok := seen[card.ID]; ok {
			return nil, store.NewStoreError("load", s.path, fmt.Sprintf("card %d", i),
				fmt.Errorf("%w: %w: id %q also used by card %d",
					store.ErrDeckCorrupt, store.ErrDuplicate, card.ID, first))
		}
		seen[card.ID] = i
		cards = append(cards, card)
	}

	s.logger.DebugContext(ctx, "deck loaded", slog.Int("card_count", len(cards)))

	return cards, nil
}

// Save implements store.DeckStore.Save
// The deck is written to a temporary file in the same directory, synced,
// and renamed over the destination, so readers see either the old deck or
// the new one. Any failure is reported as store.ErrPersistenceFailure.
func (s *DeckStore) Save(ctx context.Context, cards []*domain.Card) error {
	if err := ctx.Err(); err != nil {
		return store.NewStoreError("save", s.path, "save cancelled",
			fmt.Errorf("%w: %w", store.ErrPersistenceFailure, err))
	}

	data, err := encodeDeck(cards)
	if err != nil {
		return store.NewStoreError("save", s.path, "encoding deck",
			fmt.Errorf("%w: %w", store.ErrPersistenceFailure, err))
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return store.NewStoreError("save", s.path, "writing deck file",
			fmt.Errorf("%w: %w", store.ErrPersistenceFailure, err))
	}

	s.logger.DebugContext(ctx, "deck saved", slog.Int("card_count", len(cards)))

	return nil
}

func decodeCard(raw json.RawMessage) (*domain.Card, error) {
	var rec cardRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}

	switch {
	case rec.ID == nil || *rec.ID == "":
		return nil, domain.ErrCardIDEmpty
	case rec.Question == nil:
		return nil, fmt.Errorf("card %s: missing question", *rec.ID)
	case rec.Answer == nil:
		return nil, fmt.Errorf("card %s: missing answer", *rec.ID)
	}

	card := &domain.Card{
		ID:         *rec.ID,
		Question:   *rec.Question,
		Answer:     *rec.Answer,
		EaseFactor: domain.DefaultEaseFactor,
		Due:        decodeDue(rec.Due),
	}
	if rec.IntervalDays != nil {
		card.IntervalDays = *rec.IntervalDays
	}
	if rec.Repetition != nil {
		card.Repetition = *rec.Repetition
	}
	if rec.EaseFactor != nil {
		card.EaseFactor = *rec.EaseFactor
	}

	switch {
	case card.IntervalDays < 0:
		return nil, fmt.Errorf("card %s: %w", card.ID, domain.ErrInvalidInterval)
	case card.Repetition < 0:
		return nil, fmt.Errorf("card %s: %w", card.ID, domain.ErrInvalidRepetition)
	case card.EaseFactor <= 0:
		return nil, fmt.Errorf("card %s: %w", card.ID, domain.ErrInvalidEaseFactor)
	}

	return card, nil
}

// decodeDue keeps whatever the document holds for due. Null or absent means
// due immediately; a non-string value is kept as its JSON text so that due
// selection sees it as malformed rather than the whole deck failing to load.
func decodeDue(raw json.RawMessage) *string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return &s
	}

	text := string(trimmed)
	return &text
}

func encodeDeck(cards []*domain.Card) ([]byte, error) {
	if cards == nil {
		cards = []*domain.Card{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(struct {
		Cards []*domain.Card `json:"cards"`
	}{Cards: cards}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating deck directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp deck file: %w", err)
	}
	tmpName := tmpFile.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("writing temp deck file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("syncing temp deck file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp deck file: %w", err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("setting deck file mode: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("persisting deck file: %w", err)
	}
	committed = true

	return nil
}
