// Package markdown implements generation.Generator for plain markdown notes.
//
// Two patterns become cards:
//
//	Q: question text
//	A: answer text
//
// where the A: line may instead be a paragraph that follows the Q: line, and
// a heading containing a question mark followed by a paragraph that answers it.
package markdown
