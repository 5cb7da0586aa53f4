package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-deck-reader/models"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(build models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Build version: %s\n", orNA(build.BuildVersion()))
			fmt.Printf("Build date: %s\n", orNA(build.BuildDate()))
			fmt.Printf("Build commit: %s\n", orNA(build.BuildCommit()))
		},
	}
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
