// Package cli implements the galley command-line interface: laying out a
// plain-text document into pages and rendering them as PNGs, a text
// export, or a diagnostic dump.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the galley CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "galley",
		Short:        "galley lays out text into justified, paginated pages",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newDumpCmd())

	return root.ExecuteContext(context.Background())
}
