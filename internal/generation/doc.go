// Package generation defines the boundary between the deck and the tools
// that produce new cards from learner notes. A Generator emits unscheduled
// cards whose IDs are derived from their content with CardID, so extracting
// unchanged notes twice yields cards the deck store merges as duplicates.
package generation
