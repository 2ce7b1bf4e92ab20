package layout

import (
	"strings"

	"galley/pkg/css"
)

// PositionHorizontally re-walks the line's children left to right, fixing
// each child's line-relative X from the current widths, and returns the
// total advance. It is the re-shaping primitive behind dynamic content:
// once a dynamic text changes width, every following position is stale.
func (c *Context) PositionHorizontally(line BoxID) int {
	x := 0
	for _, child := range c.Tree.Box(line).Children {
		b := c.Tree.Box(child)
		switch b.Kind {
		case KindInlineRun:
			x += c.positionRun(child, x)
		case KindBlock, KindNonFlow, KindLine:
			b.X = x
			x += b.Width()
		}
	}
	return x
}

// positionRun lays the run's contents out left to right from x and returns
// the run's total advance.
func (c *Context) positionRun(run BoxID, x int) int {
	b := c.Tree.Box(run)
	b.X = x
	w := 0
	for _, ic := range b.Run.Inline {
		switch {
		case ic.Text != nil:
			ic.Text.X = x + w
			w += ic.Text.Width
		case c.Tree.Box(ic.Box).Kind == KindInlineRun:
			w += c.positionRun(ic.Box, x+w)
		default:
			child := c.Tree.Box(ic.Box)
			child.X = x + w
			w += child.Width()
		}
	}
	return w
}

// PositionHorizontallyRTL lays the line out right to left: the first child
// takes the rightmost span. Content inside each run stays left to right;
// visual reordering within runs is the bidi splitter's job upstream.
func (c *Context) PositionHorizontallyRTL(line BoxID) int {
	lb := c.Tree.Box(line)
	total := 0
	for _, child := range lb.Children {
		total += c.advanceOf(child)
	}
	x := total
	for _, child := range lb.Children {
		w := c.advanceOf(child)
		x -= w
		b := c.Tree.Box(child)
		switch b.Kind {
		case KindInlineRun:
			c.positionRun(child, x)
		case KindBlock, KindNonFlow, KindLine:
			b.X = x
		}
	}
	return total
}

func (c *Context) advanceOf(id BoxID) int {
	b := c.Tree.Box(id)
	switch b.Kind {
	case KindInlineRun:
		w := 0
		for _, ic := range b.Run.Inline {
			if ic.Text != nil {
				w += ic.Text.Width
			} else {
				w += c.advanceOf(ic.Box)
			}
		}
		return w
	case KindBlock, KindNonFlow, KindLine:
		return b.Width()
	}
	return 0
}

// BreakIntoLines is the thin line-breaking collaborator used by the CLI and
// tests: greedy breaking at space boundaries, one run per line. Paragraphs
// (split on '\n') end on an explicit break; the paragraph's bidi direction
// carries to each of its lines. Returns the new lines in document order.
//
// Real engines plug their own breaker in front of the line box core; this
// one exists so the repo is usable end to end.
func (c *Context) BreakIntoLines(parent BoxID, content string) []BoxID {
	p := c.Tree.Box(parent)
	avail := p.ContentWidth
	spaceW := c.Measurer.Width(" ")

	var lines []BoxID
	y := 0
	for _, para := range strings.Split(content, "\n") {
		dir := DirectionOf(para)
		words := strings.Fields(para)

		var lineWords []string
		lineWidth := 0
		flush := func(endsOnNL bool) {
			text := strings.Join(lineWords, " ")
			line := c.newFlowLine(parent, text, dir, y, endsOnNL)
			lines = append(lines, line)
			y += c.Tree.Box(line).Height
			lineWords = lineWords[:0]
			lineWidth = 0
		}

		for _, word := range words {
			w := c.Measurer.Width(word)
			needed := w
			if len(lineWords) > 0 {
				needed += spaceW
			}
			if len(lineWords) > 0 && lineWidth+needed > avail {
				flush(false)
				needed = w
			}
			lineWords = append(lineWords, word)
			lineWidth += needed
		}
		flush(true)
	}

	// Geometry first, then alignment over the finished sibling list: the
	// last-content-line scan needs every line in place before justifying.
	justify := p.Style.GetTextAlign() == css.TextAlignJustify
	for _, line := range lines {
		c.Align(line, false)
		if justify {
			c.Justify(line)
		}
	}
	return lines
}

func (c *Context) newFlowLine(parent BoxID, content string, dir Direction, y int, endsOnNL bool) BoxID {
	line := c.Tree.NewLine(parent)
	lb := c.Tree.Box(line)
	ld := lb.Line
	ld.Direction = dir
	ld.EndsOnNL = endsOnNL
	ld.FloatDistances = &FloatDistances{}
	ld.Baseline = c.Measurer.Baseline()

	lb.Y = y
	lb.Height = c.Measurer.LineHeight()
	ld.PaintingHeight = lb.Height

	if content != "" {
		run := c.Tree.NewInlineRun(line)
		c.Tree.AddText(run, &InlineText{Text: content, Width: c.Measurer.Width(content)})
		if dir == RTL {
			lb.ContentWidth = c.PositionHorizontallyRTL(line)
		} else {
			lb.ContentWidth = c.PositionHorizontally(line)
		}
		ld.ContainsContent = true
	}

	c.Tree.CalcCanvasLocation(line)
	c.Tree.CalcChildLocations(line)
	return line
}
