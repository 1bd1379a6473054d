package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trellis-ui/trellis/internal/config"
	"github.com/trellis-ui/trellis/pkg/component"
	"github.com/trellis-ui/trellis/pkg/errlog"
	"github.com/trellis-ui/trellis/pkg/manifest"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔╦╗┬─┐┌─┐┬  ┬  ┬┌─┐
   ║ ├┬┘├┤ │  │  │└─┐
   ╩ ┴└─└─┘┴─┘┴─┘┴└─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "trellis",
		Short: "Declarative component trees for the server",
		Long: `Trellis materializes declarative component manifests into live
node trees and serves, renders, or publishes the result.

  • YAML manifests describing component hierarchies
  • Markup-only nodes and stateful controls from one descriptor format
  • Preview server with live reload and Prometheus metrics
  • Snapshot publishing to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		renderCmd(),
		serveCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

// loadProject loads trellis.json from the working directory (defaults when
// absent) and resolves the manifest, preferring an explicit argument.
func loadProject(manifestArg string) (*config.Config, *manifest.Manifest, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(wd)
	if err != nil && !errors.Is(err, config.ErrNotFound) {
		return nil, nil, err
	}
	if manifestArg != "" {
		cfg.Manifest = manifestArg
	}

	m, err := manifest.Load(cfg.ManifestPath())
	if err != nil {
		return nil, nil, err
	}
	return cfg, m, nil
}

// withEngineObservers wires the standard observers for one-shot commands.
func withEngineObservers(log *errlog.Log) []component.TreeOption {
	return []component.TreeOption{
		component.WithObserver(errlog.TreeObserver(log)),
	}
}
