package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-deck-reader/internal/app"
	"github.com/MKhiriev/go-deck-reader/internal/client"
)

// NewSyncCommand creates the sync command, a one-shot full sync pass.
func NewSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one full sync pass and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := client.NewApp()
			if err != nil {
				return err
			}
			ctx := a.Context()
			if err = a.Bootstrap(ctx); err != nil {
				return err
			}

			report := a.Services().SyncService.FullSync(ctx)
			switch {
			case report.Offline:
				fmt.Println(app.MsgDeviceOffline)
				return nil
			case report.Skipped:
				fmt.Println(app.MsgSyncAlreadyRunning)
			case !report.OK():
				fmt.Println(app.MsgSyncFinishedWithIssues)
				for _, stageErr := range report.StageErrors {
					fmt.Printf("  %s\n", stageErr)
				}
			default:
				fmt.Println(app.MsgSyncComplete)
			}
			if report.SyncDisabled {
				fmt.Println(app.MsgSyncDisabled)
			}

			fmt.Printf("buffered operations confirmed: %d/%d\n", report.Flush.Confirmed, report.Flush.Attempted)
			if len(report.Flush.ChangedKeys) > 0 {
				fmt.Printf("keys pushed: %v\n", report.Flush.ChangedKeys)
			}
			if pulled := report.Pull.Pulled(); len(pulled) > 0 {
				fmt.Printf("updated keys: %v\n", pulled)
			}
			if report.FeedItemsFetched > 0 {
				fmt.Printf("new feed items: %d\n", report.FeedItemsFetched)
			}
			return nil
		},
	}
}
