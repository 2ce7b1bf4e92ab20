// Package render is the raster paint backend: a fogleman/gg implementation
// of the layout engine's OutputDevice plus a per-page renderer.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"galley/pkg/layout"
)

// Device paints one page into a gg context. Document coordinates are
// translated by the page top so every page rasters at its own origin.
type Device struct {
	gc      *gg.Context
	offsetY int

	// structure tracking, mostly useful to tests and tagged backends
	structureDepth int
}

func NewDevice(width, height int) *Device {
	gc := gg.NewContext(width, height)
	gc.SetRGB(1, 1, 1)
	gc.Clear()
	gc.SetRGB(0, 0, 0)
	return &Device{gc: gc}
}

// SetPageTop sets the document Y coordinate that maps to the raster top.
func (d *Device) SetPageTop(top int) {
	d.offsetY = top
}

// LoadFontFace loads the font used for text drawing.
func (d *Device) LoadFontFace(path string, size float64) error {
	if err := d.gc.LoadFontFace(path, size); err != nil {
		return fmt.Errorf("load font face %s: %w", path, err)
	}
	return nil
}

func (d *Device) Image() image.Image {
	return d.gc.Image()
}

func (d *Device) SavePNG(path string) error {
	if err := d.gc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}

// StartStructure begins a tagged drawing group. The returned token must be
// passed back to EndStructure.
func (d *Device) StartStructure(st layout.StructureType, box layout.BoxID) any {
	d.structureDepth++
	return st
}

func (d *Device) EndStructure(token any) {
	d.structureDepth--
}

// StructureDepth reports the current begin/end nesting. Zero between
// paints; anything else means a begin was not matched.
func (d *Device) StructureDepth() int {
	return d.structureDepth
}

// DrawTextDecoration fills each decoration stroke across the line's
// painting clip edge, so block-extent and justified decorations cover the
// stretched span.
func (d *Device) DrawTextDecoration(c *layout.Context, line layout.BoxID) {
	lb := c.Tree.Box(line)
	edge := c.PaintingClipEdge(line)
	for _, deco := range lb.Line.TextDecorations {
		y := lb.AbsY + deco.Offset - d.offsetY
		d.gc.DrawRectangle(float64(edge.X), float64(y), float64(edge.Width), float64(deco.Thickness))
		d.gc.Fill()
	}
}

// DrawDebugOutline strokes the box's border rectangle.
func (d *Device) DrawDebugOutline(c *layout.Context, box layout.BoxID, outline color.Color) {
	b := c.Tree.Box(box)
	d.gc.Push()
	d.gc.SetColor(outline)
	d.gc.SetLineWidth(1)
	d.gc.DrawRectangle(float64(b.AbsX), float64(b.AbsY-d.offsetY), float64(b.Width()), float64(b.Height))
	d.gc.Stroke()
	d.gc.Pop()
}

// DrawLineText draws every text of the line at its baseline.
func (d *Device) DrawLineText(c *layout.Context, line layout.BoxID) {
	lb := c.Tree.Box(line)
	baseline := float64(lb.AbsY + lb.Line.Baseline - d.offsetY)
	var drawRun func(run layout.BoxID)
	drawRun = func(run layout.BoxID) {
		for _, ic := range c.Tree.Box(run).Run.Inline {
			switch {
			case ic.Text != nil:
				if !ic.Text.IsEmpty() {
					d.gc.DrawString(ic.Text.Text, float64(lb.AbsX+ic.Text.X), baseline)
				}
			case c.Tree.Box(ic.Box).Kind == layout.KindInlineRun:
				drawRun(ic.Box)
			}
		}
	}
	for _, child := range lb.Children {
		if c.Tree.Box(child).Kind == layout.KindInlineRun {
			drawRun(child)
		}
	}
}
