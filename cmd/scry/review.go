package main

import (
	"fmt"

	"github.com/phrazzld/scry-deck/internal/domain"
	"github.com/phrazzld/scry-deck/internal/service/card_review"
	"github.com/spf13/cobra"
)

const reviewLongDesc string = `Review the cards that are due today.

For each card the question is shown; press Enter to reveal the answer and
then rate your recall from 0 (blackout) to 5 (perfect). Enter 'q' at any
prompt to stop early. Progress is saved when the session ends either way.

Examples:
  scry review
  scry review deck.json
  scry review --deck ~/cards/go.json`

func newReviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "review [deck]",
		Short: "Review the cards due today",
		Long:  reviewLongDesc,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("%w: review takes at most one deck path, got %d", domain.ErrInvalidInput, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return a.runReview(cmd, path)
		},
	}
}

func (a *app) runReview(cmd *cobra.Command, path string) error {
	srsService, err := a.srsService()
	if err != nil {
		return err
	}

	deck := a.deckStore(path)

	session, err := card_review.NewSession(
		deck,
		srsService,
		cmd.InOrStdin(),
		cmd.OutOrStdout(),
		a.logger,
		card_review.WithClock(a.now),
	)
	if err != nil {
		return err
	}

	result, err := session.Run(cmd.Context())
	if err != nil {
		return err
	}

	a.logger.Info("review finished",
		"deck", deck.Location(),
		"outcome", result.Outcome.String(),
		"reviewed", result.Reviewed,
		"due", result.Due)

	return nil
}
