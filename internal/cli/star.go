package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-deck-reader/internal/client"
)

// NewStarCommand creates the star command, toggling an item's starred state.
func NewStarCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "star <guid>",
		Short: "Toggle an item's starred state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := client.NewApp()
			if err != nil {
				return err
			}
			ctx := a.Context()
			if err = a.Bootstrap(ctx); err != nil {
				return err
			}

			starred, err := a.Services().InteractionService.ToggleStar(ctx, args[0])
			if err != nil {
				return err
			}
			if starred {
				fmt.Println("Starred.")
			} else {
				fmt.Println("Unstarred.")
			}
			return nil
		},
	}
}
