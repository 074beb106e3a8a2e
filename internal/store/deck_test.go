package store

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/scry-deck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDeckStore struct {
	cards []*domain.Card
	err   error
}

func (s *stubDeckStore) Load(context.Context) ([]*domain.Card, error) { return s.cards, s.err }

func (s *stubDeckStore) Save(_ context.Context, cards []*domain.Card) error {
	s.cards = cards
	return nil
}

func (s *stubDeckStore) Location() string { return "stub" }

func TestLoadOrEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cards, err := LoadOrEmpty(ctx, &stubDeckStore{err: NewStoreError("load", "stub", "missing", ErrDeckNotFound)})
	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)

	_, err = LoadOrEmpty(ctx, &stubDeckStore{err: ErrDeckCorrupt})
	assert.True(t, errors.Is(err, ErrDeckCorrupt))

	existing := []*domain.Card{newCard(t, "a")}
	cards, err = LoadOrEmpty(ctx, &stubDeckStore{cards: existing})
	require.NoError(t, err)
	assert.Equal(t, existing, cards)
}
