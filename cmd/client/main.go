package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-deck-reader/internal/cli"
	"github.com/MKhiriev/go-deck-reader/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	root := cli.NewRootCommand(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
