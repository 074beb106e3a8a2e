package main

import (
	"fmt"

	"github.com/phrazzld/scry-deck/internal/domain"
	"github.com/phrazzld/scry-deck/internal/platform/markdown"
	"github.com/phrazzld/scry-deck/internal/service"
	"github.com/spf13/cobra"
)

const importLongDesc string = `Extract flashcards from markdown notes and merge them into a deck.

Notes may use "Q: ..." / "A: ..." lines, a "Q: ..." line followed by a
paragraph, or a heading ending in a question followed by a paragraph.
Cards already in the deck keep their schedule. The deck is created if it
does not exist.

Examples:
  scry import --input notes.md
  scry import --input notes/ --deck deck.json`

type importOptions struct {
	input string
}

func newImportCmd(a *app) *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import cards from markdown notes",
		Long:  importLongDesc,
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runImport(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Markdown file or directory of notes")

	return cmd
}

func (a *app) runImport(cmd *cobra.Command, opts *importOptions) error {
	if opts.input == "" {
		return fmt.Errorf("%w: --input is required", domain.ErrInvalidInput)
	}

	srsService, err := a.srsService()
	if err != nil {
		return err
	}

	importer, err := service.NewDeckImportService(
		markdown.NewGenerator(a.logger),
		a.logger,
		service.WithScheduler(srsService),
	)
	if err != nil {
		return err
	}

	deck := a.deckStore("")

	result, err := importer.Import(cmd.Context(), deck, opts.input)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d cards to %s (added %d).\n", result.Total, deck.Location(), result.Added)
	return nil
}
