package card_review

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-deck/internal/domain"
	"github.com/phrazzld/scry-deck/internal/domain/srs"
	"github.com/phrazzld/scry-deck/internal/store"
)

// Outcome is the terminal state of a review session.
type Outcome int

// Terminal states of a session.
const (
	// Completed means every due card was reviewed, or nothing was due.
	Completed Outcome = iota
	// QuitEarly means the learner stopped before the queue was exhausted.
	// Reviews made before quitting are saved.
	QuitEarly
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case QuitEarly:
		return "quit_early"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result summarizes a finished session.
type Result struct {
	Outcome  Outcome
	Due      int  // Cards in today's queue
	Reviewed int  // Cards rescheduled during the session
	Saved    bool // Whether the deck was written back
}

// Session is a single interactive review run against one deck.
// A Session is not safe for concurrent use and should be run once.
type Session struct {
	id     uuid.UUID
	deck   store.DeckStore
	srs    srs.Service
	in     *bufio.Reader
	out    io.Writer
	now    func() time.Time
	styles styles
	logger *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the function used to determine today's date.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// NewSession creates a review session that reads learner input from in and
// writes the dialogue to out. If logger is nil, a default logger will be used.
func NewSession(
	deck store.DeckStore,
	srsService srs.Service,
	in io.Reader,
	out io.Writer,
	logger *slog.Logger,
	opts ...Option,
) (*Session, error) {
	if deck == nil {
		return nil, errors.New("deck store cannot be nil")
	}
	if srsService == nil {
		return nil, errors.New("srs service cannot be nil")
	}
	if in == nil || out == nil {
		return nil, errors.New("input and output cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	id := uuid.New()
	s := &Session{
		id:     id,
		deck:   deck,
		srs:    srsService,
		in:     bufio.NewReader(in),
		out:    out,
		now:    time.Now,
		styles: newStyles(out),
		logger: logger.With(
			slog.String("component", "review_session"),
			slog.String("session_id", id.String()),
		),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// ID returns the identifier the session's log lines are tagged with.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Run executes the session.
//
// Load failures, including a missing deck, abort the session before any
// prompt is shown. An empty queue reports that nothing is due and leaves the
// deck untouched. Otherwise the deck is saved exactly once, either after the
// last card or when the learner quits; quitting is signalled by "q", by the
// end of input, or by ctx being cancelled between cards. A save failure is
// returned and the session's reviews are lost.
func (s *Session) Run(ctx context.Context) (*Result, error) {
	cards, err := s.deck.Load(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load deck", "deck", s.deck.Location(), "error", err)
		return nil, fmt.Errorf("%w: %w", ErrLoadDeck, err)
	}

	today := domain.CalendarDate(s.now())
	queue := srs.DueToday(cards, today)
	s.warnMalformed(ctx, queue)

	s.logger.InfoContext(ctx, "review session started",
		"deck", s.deck.Location(),
		"today", domain.FormatDate(today),
		"card_count", len(cards),
		"due_count", len(queue))

	result := &Result{Outcome: Completed, Due: len(queue)}

	if len(queue) == 0 {
		s.println(s.styles.status.Render("No cards due today."))
		return result, nil
	}

	positions := make(map[*domain.Card]int, len(cards))
	for i, card := range cards {
		positions[card] = i
	}

	s.println(s.styles.status.Render(fmt.Sprintf(
		"%d card(s) due. Enter quality 0-5 (or 'q' to quit).", len(queue))))

	for _, card := range queue {
		if ctx.Err() != nil {
			s.logger.InfoContext(ctx, "session cancelled between cards", "error", ctx.Err())
			result.Outcome = QuitEarly
			break
		}

		quality, quit := s.prompt(card)
		if quit {
			result.Outcome = QuitEarly
			break
		}

		next, err := s.srs.CalculateNextReview(card, quality, today)
		if err != nil {
			return nil, fmt.Errorf("scheduling card %s: %w", card.ID, err)
		}
		cards[positions[card]] = next
		result.Reviewed++

		s.logger.DebugContext(ctx, "card reviewed",
			"card_id", next.ID,
			"quality", int(quality),
			"interval_days", next.IntervalDays,
			"repetition", next.Repetition,
			"ease_factor", next.EaseFactor,
			"due", *next.Due)

		s.println(s.styles.detail.Render(fmt.Sprintf("  Next due: %s | EF=%.2f | I=%d | R=%d",
			*next.Due, next.EaseFactor, next.IntervalDays, next.Repetition)))
		s.println("")
	}

	// Save with a context that outlives cancellation so a cancelled session
	// still persists the reviews it made.
	if err := s.deck.Save(context.WithoutCancel(ctx), cards); err != nil {
		s.logger.ErrorContext(ctx, "failed to save deck",
			"deck", s.deck.Location(),
			"reviewed", result.Reviewed,
			"error", err)
		return nil, fmt.Errorf("%w: %w", ErrSaveDeck, err)
	}
	result.Saved = true

	if result.Outcome == Completed {
		s.println(s.styles.status.Render("Session complete."))
	}

	s.logger.InfoContext(ctx, "review session finished",
		"outcome", result.Outcome.String(),
		"reviewed", result.Reviewed,
		"due_count", result.Due)

	return result, nil
}

// prompt shows one card and reads the learner's rating.
// It re-prompts until it gets a rating on the 0..5 scale or a quit signal.
func (s *Session) prompt(card *domain.Card) (domain.Quality, bool) {
	s.println(s.styles.label.Render("- Question:") + " " + card.Question)
	s.print("Press Enter to show answer...")

	line, ok := s.readLine()
	if !ok || isQuit(line) {
		return 0, true
	}

	s.println(s.styles.label.Render("  Answer:") + " " + card.Answer)

	for {
		s.print("Quality (0-5) > ")

		line, ok := s.readLine()
		if !ok || isQuit(line) {
			return 0, true
		}

		quality, err := domain.ParseQuality(line)
		if err != nil {
			s.logger.Debug("rejected quality input", "card_id", card.ID, "input", line)
			s.println(s.styles.warning.Render("Please enter a number 0..5 or 'q'."))
			continue
		}

		return quality, false
	}
}

// readLine returns the next line of input without its terminator.
// The boolean result is false once input is exhausted or unreadable.
func (s *Session) readLine() (string, bool) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.logger.Warn("failed to read input", "error", err)
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (s *Session) warnMalformed(ctx context.Context, queue []*domain.Card) {
	for _, card := range queue {
		if _, _, err := card.DueDate(); err != nil {
			s.logger.WarnContext(ctx, "card has malformed due date, treating as due",
				"card_id", card.ID,
				"due", *card.Due)
		}
	}
}

func (s *Session) print(text string) {
	fmt.Fprint(s.out, text)
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}

func isQuit(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "q")
}
