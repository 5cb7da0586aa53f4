package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-deck-reader/internal/client"
)

// NewShuffleCommand creates the shuffle command, spending one unit of the
// daily shuffle budget.
func NewShuffleCommand() *cobra.Command {
	opts := &DeckOptions{}

	cmd := &cobra.Command{
		Use:   "shuffle",
		Short: "Shuffle the deck and show the replacement",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := client.NewApp()
			if err != nil {
				return err
			}
			ctx := a.Context()
			if err = a.Bootstrap(ctx); err != nil {
				return err
			}

			state, msg, err := a.Services().DeckService.ProcessShuffle(ctx, !opts.Offline)
			if err != nil {
				return err
			}
			if msg != "" {
				fmt.Println(msg)
				return nil
			}
			printDeck(state)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Offline, "offline", false, "curate for offline reading")

	return cmd
}
