package layout

import (
	"image/color"

	"galley/pkg/css"
	"galley/pkg/text"
)

// StructureType tags paired begin/end hooks on the output device so tagged
// backends (PDF) can group drawing operations.
type StructureType uint8

const (
	StructureBackground StructureType = iota
	StructureText
)

// OutputDevice is the paint backend the engine draws through. StartStructure
// and EndStructure are opaque paired hooks; the engine guarantees every
// start is matched by an end on all exit paths.
type OutputDevice interface {
	StartStructure(st StructureType, box BoxID) (token any)
	EndStructure(token any)
	DrawTextDecoration(c *Context, line BoxID)
	DrawDebugOutline(c *Context, box BoxID, outline color.Color)
}

// Context carries everything a layout or paint pass needs: the box arena,
// the page set, and the external collaborators. Layout and paint passes are
// single-threaded and synchronous; callers must serialize passes per
// document, since pagination checks mutate page footnote state.
type Context struct {
	Tree     *Tree
	Pages    *PageSet
	Measurer text.Measurer
	Device   OutputDevice
	Resolver css.Resolver

	// PageBreaksAllowed disables CheckPagePosition entirely when false
	// (e.g. during intrinsic-size measurement passes).
	PageBreaksAllowed bool

	// ExtraSpaceTop and ExtraSpaceBottom are the reserved page margins:
	// content keeps out of the band they describe at each page edge.
	ExtraSpaceTop    int
	ExtraSpaceBottom int

	// DebugDrawLineBoxes outlines every painted line box.
	DebugDrawLineBoxes bool

	// currentPage tracks the page the text-export pass is writing.
	currentPage int
}

// NewContext wires a context around a fresh tree.
func NewContext(pages *PageSet, m text.Measurer) *Context {
	return &Context{
		Tree:              NewTree(),
		Pages:             pages,
		Measurer:          m,
		PageBreaksAllowed: true,
	}
}

// withStructure runs draw between matched structure hooks. The end hook
// fires even if draw panics.
func (c *Context) withStructure(st StructureType, box BoxID, draw func()) {
	token := c.Device.StartStructure(st, box)
	defer c.Device.EndStructure(token)
	draw()
}

// PageIndexFor returns the zero-based page number holding the box's top.
func (c *Context) PageIndexFor(id BoxID) int {
	page := c.Pages.FirstPageFor(c.Tree, id)
	if page == nil {
		return 0
	}
	return page.PageNo
}

// PageCount returns the number of pages laid out so far.
func (c *Context) PageCount() int {
	return c.Pages.Count()
}
