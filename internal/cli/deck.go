package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-deck-reader/internal/client"
	"github.com/MKhiriev/go-deck-reader/models"
)

// DeckOptions holds flags shared by the deck and shuffle commands.
type DeckOptions struct {
	Filter  string
	Offline bool
}

// NewDeckCommand creates the deck command, showing today's curated deck or a
// filtered item listing.
func NewDeckCommand() *cobra.Command {
	opts := &DeckOptions{}

	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Show today's curated deck",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseFilter(opts.Filter)
			if err != nil {
				return err
			}

			a, err := client.NewApp()
			if err != nil {
				return err
			}
			ctx := a.Context()
			if err = a.Bootstrap(ctx); err != nil {
				return err
			}

			state, err := a.Services().DeckService.ManageDailyDeck(ctx, filter, !opts.Offline)
			if err != nil {
				return err
			}
			printDeck(state)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "unread", "deck filter (unread|read|starred)")
	cmd.Flags().BoolVar(&opts.Offline, "offline", false, "curate for offline reading")

	return cmd
}

func parseFilter(raw string) (models.DeckFilter, error) {
	switch models.DeckFilter(strings.ToLower(raw)) {
	case models.FilterUnread:
		return models.FilterUnread, nil
	case models.FilterRead:
		return models.FilterRead, nil
	case models.FilterStarred:
		return models.FilterStarred, nil
	default:
		return "", fmt.Errorf("invalid filter %q: must be unread, read or starred", raw)
	}
}

func printDeck(state models.DeckState) {
	if len(state.Deck) == 0 {
		fmt.Println("Nothing to show.")
		return
	}
	for i, item := range state.Deck {
		source := item.Source
		if source == "" {
			source = item.Link
		}
		fmt.Printf("%2d. %s\n    %s\n", i+1, item.Title, source)
	}
	fmt.Printf("\nshuffles left today: %d\n", state.ShuffleCount)
}
