// Package card_review runs interactive review sessions over a deck.
//
// A Session loads the deck, selects the cards due today, and walks them in
// deck order: it shows the question, waits for the learner to reveal the
// answer, reads a 0..5 quality rating, and reschedules the card with SM-2.
// All changes stay in memory until the deck is saved once, at the end of the
// queue or when the learner quits early.
package card_review
