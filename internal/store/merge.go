package store

import "github.com/phrazzld/scry-deck/internal/domain"

// Merge appends every incoming card whose ID is not already in existing.
//
// Existing cards are returned unchanged and in order, so their scheduling
// state is never overwritten by a re-extracted duplicate. Incoming cards are
// also deduplicated among themselves; the first occurrence wins. The returned
// count is the number of cards added. Merging the same incoming set twice
// yields the same deck as merging it once.
func Merge(existing, incoming []*domain.Card) ([]*domain.Card, int) {
	merged := make([]*domain.Card, 0, len(existing)+len(incoming))
	seen := make(map[string]struct{}, len(existing)+len(incoming))

	for _, card := range existing {
		seen[card.ID] = struct{}{}
		merged = append(merged, card)
	}

	added := 0
	for _, card := range incoming {
		if _, ok := seen[card.ID]; ok {
			continue
		}
		seen[card.ID] = struct{}{}
		merged = append(merged, card)
		added++
	}

	return merged, added
}
