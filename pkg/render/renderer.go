package render

import (
	"strings"

	"galley/pkg/layout"
)

// Renderer rasterizes a laid-out document page by page.
type Renderer struct {
	PageWidth  int
	PageHeight int
	FontPath   string
	FontSize   float64
}

// RenderPage paints every line intersecting the page, plus the footnote
// bodies attached to it, and returns the device holding the raster.
func (r *Renderer) RenderPage(c *layout.Context, page *layout.PageBox, lines []layout.BoxID) (*Device, error) {
	dev := NewDevice(r.PageWidth, r.PageHeight)
	dev.SetPageTop(page.Top)
	if r.FontPath != "" {
		if err := dev.LoadFontFace(r.FontPath, r.FontSize); err != nil {
			return nil, err
		}
	}

	prev := c.Device
	c.Device = dev
	defer func() { c.Device = prev }()

	clip := layout.Rect{X: 0, Y: page.Top, Width: r.PageWidth, Height: page.Height()}
	for _, line := range lines {
		if !c.LineIntersects(line, &clip) {
			continue
		}
		c.PaintInline(line)
		dev.DrawLineText(c, line)
	}

	r.drawFootnotes(c, page, dev)
	return dev, nil
}

// drawFootnotes stacks the page's attached footnote bodies upward from the
// reserved bottom margin. Their internal layout belongs to the footnote
// container outside this engine; here each body renders as plain text.
func (r *Renderer) drawFootnotes(c *layout.Context, page *layout.PageBox, dev *Device) {
	bodies := page.FootnoteBodies()
	if len(bodies) == 0 {
		return
	}
	lineHeight := c.Measurer.LineHeight()
	y := page.Bottom - c.ExtraSpaceBottom - len(bodies)*lineHeight
	for _, body := range bodies {
		var sb strings.Builder
		c.CollectText(body, &sb)
		text := strings.TrimSpace(sb.String())
		if text != "" {
			dev.gc.DrawString(text, 0, float64(y+c.Measurer.Baseline()-page.Top))
		}
		y += lineHeight
	}
}
