// Package service contains the application-level use cases that sit between
// the command line and the deck: importing extracted cards into a deck and
// summarizing a deck's schedule. The interactive review loop lives in the
// card_review subpackage.
//
// Services receive their dependencies through constructor injection and
// depend only on the interfaces in internal/store and internal/generation,
// never on a concrete storage or extraction implementation.
package service
