package layout

import "galley/pkg/css"

// PaintingClipEdge returns the rectangle used to decide whether the line
// must be considered for a clip region. Normally it is the line's own
// painted rectangle; it widens to the remaining parent content width when
// text decoration extends across the whole block, or when the line was
// justified (stretched inter-word gaps may carry decoration fill past the
// nominal content width).
func (c *Context) PaintingClipEdge(line BoxID) Rect {
	lb := c.Tree.Box(line)
	ld := lb.Line
	parent := c.Tree.Box(lb.Parent)
	if parent.Style.GetTextDecorationExtent() == css.DecorationExtentBlock ||
		ld.Justification != nil {
		return Rect{
			X:      lb.AbsX,
			Y:      lb.AbsY + ld.PaintingTop,
			Width:  parent.AbsX + parent.Tx + parent.ContentWidth - lb.AbsX,
			Height: ld.PaintingHeight,
		}
	}
	return Rect{
		X:      lb.AbsX,
		Y:      lb.AbsY + ld.PaintingTop,
		Width:  lb.ContentWidth,
		Height: ld.PaintingHeight,
	}
}

// LineIntersects reports whether the line must be painted for clip. A nil
// clip means no culling was requested. Lines holding block-level inline
// content also test their block descendants, which may paint outside the
// line's own clip edge.
func (c *Context) LineIntersects(line BoxID, clip *Rect) bool {
	if clip == nil {
		return true
	}
	if clip.Intersects(c.PaintingClipEdge(line)) {
		return true
	}
	return c.Tree.Box(line).Line.ContainsBlockLevelContent &&
		c.intersectsInlineBlocks(line, *clip)
}

func (c *Context) intersectsInlineBlocks(line BoxID, clip Rect) bool {
	for _, child := range c.Tree.Box(line).Children {
		switch c.Tree.Box(child).Kind {
		case KindInlineRun:
			if c.runIntersectsInlineBlocks(child, clip) {
				return true
			}
		case KindBlock, KindNonFlow, KindLine:
			if c.IntersectsAny(clip, child) {
				return true
			}
		}
	}
	return false
}

func (c *Context) runIntersectsInlineBlocks(run BoxID, clip Rect) bool {
	for _, ic := range c.Tree.Box(run).Run.Inline {
		if ic.Text != nil {
			continue
		}
		switch c.Tree.Box(ic.Box).Kind {
		case KindInlineRun:
			if c.runIntersectsInlineBlocks(ic.Box, clip) {
				return true
			}
		case KindBlock, KindNonFlow, KindLine:
			if c.IntersectsAny(clip, ic.Box) {
				return true
			}
		}
	}
	return false
}

// IntersectsAny is the generic recursive box-intersection query: does the
// box or any of its descendants intersect clip?
func (c *Context) IntersectsAny(clip Rect, id BoxID) bool {
	b := c.Tree.Box(id)
	if clip.Intersects(c.clipEdge(id)) {
		return true
	}
	for _, child := range b.Children {
		if c.IntersectsAny(clip, child) {
			return true
		}
	}
	if b.Kind == KindLine {
		for _, nf := range b.Line.NonFlow {
			if c.IntersectsAny(clip, nf) {
				return true
			}
		}
	}
	return false
}

func (c *Context) clipEdge(id BoxID) Rect {
	b := c.Tree.Box(id)
	if b.Kind == KindLine {
		return c.PaintingClipEdge(id)
	}
	return Rect{X: b.AbsX, Y: b.AbsY, Width: b.Width(), Height: b.Height}
}
