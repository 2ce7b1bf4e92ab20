package layout

// PageBox is one page of the paged output. Top and Bottom are the page's
// absolute document coordinates; reserved margins come from the Context
// (ExtraSpaceTop, ExtraSpaceBottom) because running layout passes may
// reserve differing amounts on the same geometry.
type PageBox struct {
	PageNo int
	Top    int
	Bottom int

	footnoteBodies []BoxID
}

func (p *PageBox) Height() int { return p.Bottom - p.Top }

// FootnoteBodies returns the footnote bodies attached to this page, in
// attachment order.
func (p *PageBox) FootnoteBodies() []BoxID {
	return p.footnoteBodies
}

// AddFootnoteBody attaches a footnote body to this page. A body already
// attached here is left in place: a footnote lives on exactly one page at
// a time.
func (p *PageBox) AddFootnoteBody(body BoxID) {
	for _, b := range p.footnoteBodies {
		if b == body {
			return
		}
	}
	p.footnoteBodies = append(p.footnoteBodies, body)
}

// RemoveFootnoteBodies detaches each of bodies from this page. Bodies not
// attached here are ignored.
func (p *PageBox) RemoveFootnoteBodies(bodies []BoxID) {
	for _, body := range bodies {
		for i, b := range p.footnoteBodies {
			if b == body {
				p.footnoteBodies = append(p.footnoteBodies[:i], p.footnoteBodies[i+1:]...)
				break
			}
		}
	}
}

// PageSet owns the document's pages: uniform-height pages stacked top to
// bottom, created on demand as content flows past the last page.
type PageSet struct {
	pageHeight int
	pages      []*PageBox
}

func NewPageSet(pageHeight int) *PageSet {
	ps := &PageSet{pageHeight: pageHeight}
	ps.grow()
	return ps
}

func (ps *PageSet) grow() *PageBox {
	top := 0
	if n := len(ps.pages); n > 0 {
		top = ps.pages[n-1].Bottom
	}
	page := &PageBox{PageNo: len(ps.pages), Top: top, Bottom: top + ps.pageHeight}
	ps.pages = append(ps.pages, page)
	return page
}

func (ps *PageSet) Count() int { return len(ps.pages) }

func (ps *PageSet) Page(i int) *PageBox {
	if i < 0 || i >= len(ps.pages) {
		return nil
	}
	return ps.pages[i]
}

// PageForY returns the page containing absolute Y, extending the page set
// as needed. Negative positions have no page.
func (ps *PageSet) PageForY(absY int) *PageBox {
	if absY < 0 || ps.pageHeight <= 0 {
		return nil
	}
	for absY >= ps.pages[len(ps.pages)-1].Bottom {
		ps.grow()
	}
	return ps.pages[absY/ps.pageHeight]
}

// FirstPageFor returns the page containing the top of the given box.
func (ps *PageSet) FirstPageFor(t *Tree, id BoxID) *PageBox {
	return ps.PageForY(t.Box(id).AbsY)
}

// MinPaintingTop returns the smaller of the line's nominal top and its
// painted top: decorations and oversized inline content may rise above the
// box.
func (t *Tree) MinPaintingTop(line BoxID) int {
	lb := t.Box(line)
	paintedTop := lb.AbsY + lb.Line.PaintingTop
	if paintedTop < lb.AbsY {
		return paintedTop
	}
	return lb.AbsY
}

// MaxPaintingBottom returns the larger of the line's nominal bottom and its
// painted bottom.
func (t *Tree) MaxPaintingBottom(line BoxID) int {
	lb := t.Box(line)
	paintedBottom := lb.AbsY + lb.Line.PaintingTop + lb.Line.PaintingHeight
	lineBottom := lb.AbsY + lb.Height
	if paintedBottom > lineBottom {
		return paintedBottom
	}
	return lineBottom
}

// CheckPagePosition relocates the line when it straddles a page boundary.
// If the line's true rendered extent reaches the page's usable bottom (or a
// break is forced), its referenced footnote bodies are detached, the line
// is pushed to the top of the next page, and the footnotes are reattached
// to the line's new page in their original order. A line that merely rises
// into the reserved top margin is shifted down by exactly the overlap.
//
// The check tolerates repeated invocation: once a line sits inside a page's
// usable area it is left where it is.
func (c *Context) CheckPagePosition(line BoxID, alwaysBreak bool) {
	if !c.PageBreaksAllowed {
		return
	}
	page := c.Pages.FirstPageFor(c.Tree, line)
	if page == nil {
		return
	}
	lb := c.Tree.Box(line)
	ld := lb.Line

	// Content crossing the page edge would repeat in both pages' margins,
	// so the whole line moves, painting bounds included.
	greatestAbsY := c.Tree.MaxPaintingBottom(line)
	leastAbsY := c.Tree.MinPaintingTop(line)

	needsPageBreak := alwaysBreak || greatestAbsY >= page.Bottom-c.ExtraSpaceBottom

	if needsPageBreak {
		if ld.HasFootnotes() {
			// The footnotes move to the next page with this line.
			page.RemoveFootnoteBodies(ld.Footnotes)
		}

		c.forcePageBreakBefore(line, leastAbsY)
		c.Tree.CalcCanvasLocation(line)
		c.Tree.CalcChildLocations(line)

		if ld.HasFootnotes() {
			pageAfter := c.Pages.FirstPageFor(c.Tree, line)
			for _, body := range ld.Footnotes {
				// TODO: handle a line whose footnotes do not fit on the
				// same page as the line itself.
				pageAfter.AddFootnoteBody(body)
			}
		}
	} else if page.Top+c.ExtraSpaceTop > lb.AbsY {
		diff := page.Top + c.ExtraSpaceTop - lb.AbsY
		lb.Y += diff
		c.Tree.CalcCanvasLocation(line)
		c.Tree.CalcChildLocations(line)
	}
}

// forcePageBreakBefore moves the box down so its painted top starts at the
// next page's usable top. yOffset is the box's current painted top.
func (c *Context) forcePageBreakBefore(id BoxID, yOffset int) {
	page := c.Pages.PageForY(yOffset)
	if page == nil {
		return
	}
	delta := page.Bottom + c.ExtraSpaceTop - yOffset
	b := c.Tree.Box(id)
	b.Y += delta
	// Make sure a page exists under the new position.
	c.Pages.PageForY(b.AbsY + delta)
}
