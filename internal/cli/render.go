package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"galley/pkg/render"
)

func newRenderCmd() *cobra.Command {
	var (
		configPath string
		outDir     string
	)

	cmd := &cobra.Command{
		Use:   "render <input.txt>",
		Short: "Lay out a text file and render each page as a PNG plus a text export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

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
			logger.Info("laid out document", "lines", len(doc.lines), "pages", doc.ctx.PageCount())

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			r := &render.Renderer{
				PageWidth:  cfg.PageWidth,
				PageHeight: cfg.PageHeight,
				FontPath:   cfg.FontPath,
				FontSize:   cfg.FontSize,
			}
			for i := 0; i < doc.ctx.PageCount(); i++ {
				page := doc.ctx.Pages.Page(i)
				dev, err := r.RenderPage(doc.ctx, page, doc.lines)
				if err != nil {
					return err
				}
				out := filepath.Join(outDir, fmt.Sprintf("page-%03d.png", i+1))
				if err := dev.SavePNG(out); err != nil {
					return err
				}
				logger.Debug("rendered page", "page", i+1, "path", out)
			}

			txtPath := filepath.Join(outDir, "document.txt")
			f, err := os.Create(txtPath)
			if err != nil {
				return fmt.Errorf("create text export: %w", err)
			}
			defer f.Close()
			doc.ctx.BeginTextExport()
			for _, line := range doc.lines {
				if err := doc.ctx.ExportText(f, line); err != nil {
					return err
				}
			}
			logger.Info("wrote output", "dir", outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML page-setup file")
	cmd.Flags().StringVarP(&outDir, "out", "o", "out", "output directory")
	return cmd
}
