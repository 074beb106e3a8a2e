package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/phrazzld/scry-deck/internal/service"
	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize a deck's schedule",
		Long:  "Prints card counts and scheduling statistics for a deck without modifying it.",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runStats(cmd)
		},
	}
}

func (a *app) runStats(cmd *cobra.Command) error {
	deck := a.deckStore("")

	cards, err := deck.Load(cmd.Context())
	if err != nil {
		return err
	}

	stats := service.Summarize(cards, a.now())
	writeStats(cmd.OutOrStdout(), deck.Location(), stats)

	return nil
}

func writeStats(out io.Writer, location string, stats service.DeckStats) {
	r := lipgloss.NewRenderer(out)
	label := r.NewStyle().Bold(true).Width(18)

	nextDue := stats.NextDue
	if nextDue == "" {
		nextDue = "none"
	}

	rows := []struct {
		name  string
		value string
	}{
		{"Deck", location},
		{"Cards", fmt.Sprint(stats.Total)},
		{"Due today", fmt.Sprint(stats.Due)},
		{"New", fmt.Sprint(stats.New)},
		{"Learning", fmt.Sprint(stats.Learning)},
		{"Mature", fmt.Sprint(stats.Mature)},
		{"Malformed due", fmt.Sprint(stats.Malformed)},
		{"Mean ease factor", fmt.Sprintf("%.2f", stats.MeanEaseFactor)},
		{"Next due", nextDue},
	}

	for _, row := range rows {
		fmt.Fprintf(out, "%s%s\n", label.Render(row.name+":"), row.value)
	}
}
