package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/phrazzld/scry-deck/internal/domain"
	"github.com/phrazzld/scry-deck/internal/generation"
)

var (
	questionLine = regexp.MustCompile(`(?i)^Q:\s*(.+)$`)
	answerLine   = regexp.MustCompile(`(?i)^A:\s*(.+)$`)
	headingMark  = regexp.MustCompile(`^#+\s*`)
)

// Generator implements the generation.Generator interface by scanning
// markdown text for question/answer patterns.
type Generator struct {
	logger *slog.Logger
}

// NewGenerator creates a new markdown Generator.
// If logger is nil, a default logger will be used.
func NewGenerator(logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{
		logger: logger.With(slog.String("component", "markdown_generator")),
	}
}

// Ensure Generator implements generation.Generator interface
var _ generation.Generator = (*Generator)(nil)

// GenerateCards implements generation.Generator.GenerateCards
func (g *Generator) GenerateCards(ctx context.Context, text string) ([]*domain.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	cards := make([]*domain.Card, 0)

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		if m := questionLine.FindStringSubmatch(line); m != nil {
			question := strings.TrimSpace(m[1])
			i++

			var answer string
			if i < len(lines) {
				if a := answerLine.FindStringSubmatch(strings.TrimSpace(lines[i])); a != nil {
					answer = strings.TrimSpace(a[1])
					i++
				} else {
					answer, i = paragraph(lines, i)
				}
			}

			cards = g.appendCard(cards, question, answer)
			continue
		}

		if strings.HasPrefix(line, "#") && strings.Contains(line, "?") {
			// The mark is stripped from the untrimmed line so indented
			// headings keep their marks, as decks written earlier expect.
			question := strings.TrimSpace(headingMark.ReplaceAllString(lines[i], ""))
			i++

			for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
				i++
			}

			var answer string
			answer, i = paragraph(lines, i)

			cards = g.appendCard(cards, question, answer)
			continue
		}

		i++
	}

	return cards, nil
}

// ExtractPath generates cards from a markdown file, or from every .md file
// under a directory. Files are visited in lexical order. Files that cannot
// be read are skipped with a warning. A path without the .md extension
// contributes no cards.
func (g *Generator) ExtractPath(ctx context.Context, root string) ([]*domain.Card, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", generation.ErrNoSource, root, err)
	}

	var files []string
	if info.IsDir() {
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				g.logger.WarnContext(ctx, "skipping unreadable path", "path", path, "error", walkErr)
				if d != nil && d.IsDir() && path != root {
					return fs.SkipDir
				}
				return nil
			}
			if !d.IsDir() && isMarkdown(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%w: walking %s: %w", generation.ErrGenerationFailed, root, err)
		}
	} else if isMarkdown(root) {
		files = append(files, root)
	}

	cards := make([]*domain.Card, 0)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			g.logger.WarnContext(ctx, "skipping unreadable note", "path", path, "error", err)
			continue
		}

		fileCards, err := g.GenerateCards(ctx, string(data))
		if err != nil {
			return nil, err
		}

		g.logger.DebugContext(ctx, "extracted cards from note",
			"path", path,
			"card_count", len(fileCards))

		cards = append(cards, fileCards...)
	}

	return cards, nil
}

func (g *Generator) appendCard(cards []*domain.Card, question, answer string) []*domain.Card {
	if answer == "" {
		return cards
	}

	card, err := generation.NewCard(question, answer)
	if err != nil {
		g.logger.Debug("skipping incomplete card", "question", question, "error", err)
		return cards
	}

	return append(cards, card)
}

// paragraph collects lines from start up to the next blank line and
// returns them joined and trimmed, along with the index after the paragraph.
func paragraph(lines []string, start int) (string, int) {
	i := start
	for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
		i++
	}
	return strings.TrimSpace(strings.Join(lines[start:i], "\n")), i
}

func isMarkdown(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".md")
}
