// Package cli defines the deck-reader command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-deck-reader/models"
)

// NewRootCommand creates the root command for the deck-reader CLI.
func NewRootCommand(build models.AppBuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deckreader",
		Short: "Offline-first feed reader with a daily curated deck",
		Long: `deckreader keeps a local replica of your feed reading state, curates a
daily deck of ten unread items, and synchronises reads, stars and settings
with the sync server whenever the device is online.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewRunCommand())
	cmd.AddCommand(NewSyncCommand())
	cmd.AddCommand(NewDeckCommand())
	cmd.AddCommand(NewShuffleCommand())
	cmd.AddCommand(NewReadCommand())
	cmd.AddCommand(NewStarCommand())
	cmd.AddCommand(NewVersionCommand(build))

	return cmd
}
