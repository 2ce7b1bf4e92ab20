package layout

import "image/color"

var debugOutlineColor = color.RGBA{G: 0xff, A: 0xff}

// PaintInline paints the line's own marks: text decorations and, when
// enabled, a debug outline. Child content is painted by the backend's tree
// walk; this hook only covers what the line itself owns.
//
// A line containing a dynamic function re-shapes itself first, before
// anything is drawn: the dynamic text's value (and therefore its width) is
// only known now that pagination has settled.
func (c *Context) PaintInline(line BoxID) {
	lb := c.Tree.Box(line)
	parent := c.Tree.Box(lb.Parent)
	if parent != nil && !parent.Style.IsVisible() {
		return
	}

	ld := lb.Line
	if ld.ContainsDynamicFunction() {
		c.lookForDynamicFunctions(line)
		var totalLineWidth int
		if ld.Direction == RTL {
			totalLineWidth = c.PositionHorizontallyRTL(line)
		} else {
			totalLineWidth = c.PositionHorizontally(line)
		}
		lb.ContentWidth = totalLineWidth
		c.Tree.CalcChildLocations(line)
		c.Align(line, true)
		c.CalcPaintingInfo(line)
	}

	if len(ld.TextDecorations) > 0 {
		c.withStructure(StructureBackground, line, func() {
			c.Device.DrawTextDecoration(c, line)
		})
	}

	if c.DebugDrawLineBoxes {
		c.Device.DrawDebugOutline(c, line, debugOutlineColor)
	}
}

// CalcPaintingInfo refreshes the line's cached painting bounds from its
// decorations and children. Decorations below the descender and oversized
// inline blocks both push the painted rectangle past the nominal box.
func (c *Context) CalcPaintingInfo(line BoxID) {
	lb := c.Tree.Box(line)
	ld := lb.Line

	top, bottom := 0, lb.Height
	for _, d := range ld.TextDecorations {
		if d.Offset < top {
			top = d.Offset
		}
		if d.Offset+d.Thickness > bottom {
			bottom = d.Offset + d.Thickness
		}
	}
	for _, child := range lb.Children {
		b := c.Tree.Box(child)
		switch b.Kind {
		case KindBlock, KindNonFlow:
			if b.Y < top {
				top = b.Y
			}
			if b.Y+b.Height > bottom {
				bottom = b.Y + b.Height
			}
		case KindInlineRun, KindLine:
		}
	}

	ld.PaintingTop = top
	ld.PaintingHeight = bottom - top
}
