package cli

import (
	"fmt"

	"galley/pkg/layout"
	"galley/pkg/script"
	"galley/pkg/text"
)

// document is a laid-out input ready to render or dump.
type document struct {
	ctx   *layout.Context
	root  layout.BoxID
	lines []layout.BoxID
}

// layoutDocument runs the whole pipeline over the input text: build the
// block and its lines, then settle page positions.
func layoutDocument(cfg Config, content string) (*document, error) {
	m, err := newMeasurer(cfg)
	if err != nil {
		return nil, err
	}

	pages := layout.NewPageSet(cfg.PageHeight)
	ctx := layout.NewContext(pages, m)
	ctx.ExtraSpaceTop = cfg.MarginTop
	ctx.ExtraSpaceBottom = cfg.MarginBottom
	ctx.DebugDrawLineBoxes = cfg.DebugLineBoxes

	tree := ctx.Tree
	root := tree.NewBlock(layout.None)
	rb := tree.Box(root)
	rb.ContentWidth = cfg.PageWidth - cfg.MarginLeft - cfg.MarginRight
	rb.Style.Set("text-align", cfg.TextAlign)
	if cfg.MaxInterChar != "" {
		rb.Style.Set("max-justification-inter-char", cfg.MaxInterChar)
	}
	if cfg.MaxInterWord != "" {
		rb.Style.Set("max-justification-inter-word", cfg.MaxInterWord)
	}
	tree.SetRoot(root, cfg.MarginLeft, 0)

	lines := ctx.BreakIntoLines(root, content)

	if cfg.Footer != "" {
		footer, err := compileFooter(ctx, root, cfg.Footer, m)
		if err != nil {
			return nil, err
		}
		lines = append(lines, footer)
	}

	for _, line := range lines {
		ctx.CheckPagePosition(line, false)
	}

	return &document{ctx: ctx, root: root, lines: lines}, nil
}

// compileFooter appends one extra line holding the scripted page counter.
// Its text is a placeholder until the dynamic re-shaping pass on first
// paint, when the page numbers are known.
func compileFooter(ctx *layout.Context, root layout.BoxID, src string, m text.Measurer) (layout.BoxID, error) {
	fn, err := script.New().Compile(src)
	if err != nil {
		return layout.None, err
	}

	tree := ctx.Tree
	line := tree.NewLine(root)
	lb := tree.Box(line)
	ld := lb.Line
	ld.FloatDistances = &layout.FloatDistances{}
	ld.Baseline = m.Baseline()
	ld.ContainsContent = true
	ld.SetContainsDynamicFunction(true)

	siblings := tree.Box(root).Children
	if len(siblings) > 1 {
		prev := tree.Box(siblings[len(siblings)-2])
		lb.Y = prev.Y + prev.Height
	}
	lb.Height = m.LineHeight()
	ld.PaintingHeight = lb.Height

	run := tree.NewInlineRun(line)
	tree.AddText(run, &layout.InlineText{Text: "0", Width: m.Width("0"), Dynamic: fn})
	lb.ContentWidth = ctx.PositionHorizontally(line)
	tree.CalcCanvasLocation(line)
	tree.CalcChildLocations(line)
	ctx.Align(line, false)
	return line, nil
}

func newMeasurer(cfg Config) (text.Measurer, error) {
	if cfg.FontPath == "" {
		// No font configured: measure with fixed advances so dumps and
		// text export still work.
		return text.Fixed{Advance: int(cfg.FontSize / 2), Line: int(cfg.FontSize * 1.3), Base: int(cfg.FontSize)}, nil
	}
	m, err := text.NewFaceMeasurer(cfg.FontPath, cfg.FontSize)
	if err != nil {
		return nil, fmt.Errorf("measurer: %w", err)
	}
	return m, nil
}
