package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"galley/pkg/layout"
)

func newDumpCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "dump <input.txt>",
		Short: "Lay out a text file and print the rendered line-box tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}

			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			doc, err := layoutDocument(cfg, string(content))
			if err != nil {
				return err
			}

			for _, line := range doc.lines {
				fmt.Fprint(cmd.OutOrStdout(), doc.ctx.Dump(line, "", layout.DumpRender))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML page-setup file")
	return cmd
}
