package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-deck-reader/internal/client"
)

// NewReadCommand creates the read command, toggling an item's read state.
func NewReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read <guid>",
		Short: "Toggle an item's read state",
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

			read, err := a.Services().InteractionService.ToggleRead(ctx, args[0])
			if err != nil {
				return err
			}
			if read {
				fmt.Println("Marked as read.")
			} else {
				fmt.Println("Marked as unread.")
			}
			return nil
		},
	}
}
