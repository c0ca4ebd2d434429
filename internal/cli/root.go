package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/netlabtools/labviz/pkg/buildinfo"
)

// Execute runs the labviz CLI and returns an error if any command fails.
//
// The root command wires up the generate, inspect, and serve subcommands
// and attaches a context logger before every run. Logging defaults to
// info level; --verbose switches to debug.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "labviz",
		Short:        "labviz renders Kathara lab.conf files as network diagrams",
		Long:         `labviz reads Kathara-style lab.conf network descriptions, classifies nodes and links, computes a deterministic 2-D layout, and emits vector topology diagrams.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}
