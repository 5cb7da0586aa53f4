package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-deck-reader/internal/client"
)

// NewRunCommand creates the run command. It starts the resident client with
// its background sync workers and blocks until interrupted.
func NewRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the resident client with background sync",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := client.NewApp()
			if err != nil {
				return err
			}
			return app.Run()
		},
	}
}
