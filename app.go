// Package main is the entry point for the aws-network-visualizer
// application.
package main

import (
	"fmt"
	"os"

	"github.com/shankarnarayanb/aws-network-visualizer/model"
	"github.com/shankarnarayanb/aws-network-visualizer/service/flag"
	"github.com/shankarnarayanb/aws-network-visualizer/shared/banner"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}

	if flags.Version {
		fmt.Printf("aws-network-visualizer %s (commit %s, built %s)\n",
			versionInfo.Version, versionInfo.Commit, versionInfo.Date)
		return nil
	}

	// JSON output may be piped; keep it free of decoration.
	if !flags.NoBanner && flags.Format != "json" {
		banner.DrawBannerTitle()
	}

	return runReport(flags, versionInfo)
}
