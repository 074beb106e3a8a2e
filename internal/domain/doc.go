// Package domain contains the core entities of the deck: cards, their
// scheduling state, and the review quality scale. It is independent of
// how decks are stored or how reviews are presented to the learner.
package domain
