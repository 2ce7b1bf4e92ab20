package layout

import "galley/pkg/css"

// BoxID addresses a box in a Tree. IDs are stable for the life of the tree:
// relayout moves boxes around but never renumbers them.
type BoxID int32

// None is the null box ID.
const None BoxID = -1

// Kind is the closed set of box kinds the engine lays out. Dispatch over
// kinds is by exhaustive switch; there are no other variants.
type Kind uint8

const (
	// KindLine is a line box: one laid-out line of inline content.
	KindLine Kind = iota
	// KindInlineRun is a contiguous span of inline content within a line.
	KindInlineRun
	// KindBlock is block-level content, including block-level boxes that
	// appear inside a line (inline-blocks and anonymous wrappers).
	KindBlock
	// KindNonFlow is floated or absolutely-positioned content tracked by
	// the line containing its origin point but laid out outside normal
	// flow.
	KindNonFlow
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindInlineRun:
		return "inline-run"
	case KindBlock:
		return "block"
	case KindNonFlow:
		return "non-flow"
	}
	return "unknown"
}

// Box is one node in the layout tree. Parent and children are stored as
// arena indices, never as owning references, so boxes can be relocated
// during reflow without chasing or fixing up pointers.
//
// X and Y are relative to the parent's content origin, with one exception:
// inline-level content (runs, their texts, and boxes nested inside runs)
// carries X relative to the owning line box, matching how justification
// shifts accumulate across a whole line. AbsX and AbsY are cached absolute
// canvas coordinates, kept consistent by CalcCanvasLocation and
// CalcChildLocations.
type Box struct {
	Kind     Kind
	Parent   BoxID
	Children []BoxID

	// Element names the source element this box was generated from, used
	// for style re-resolution. Empty for anonymous boxes.
	Element string
	Style   *css.Style

	X, Y         int
	AbsX, AbsY   int
	Tx, Ty       int // translation applied to children (relative offsets, scroll)
	ContentWidth int
	Height       int

	// LeftMBP and RightMBP are the margin+border+padding widths beyond the
	// content box on each side.
	LeftMBP, RightMBP int

	// Exactly one of these is non-nil, matching Kind.
	Line *LineData
	Run  *RunData
}

// Width returns the border-box width.
func (b *Box) Width() int {
	return b.LeftMBP + b.ContentWidth + b.RightMBP
}

// MarginEdge returns the box's margin rectangle translated by (tx, ty).
// For line boxes the margin edge is the content rectangle itself.
func (b *Box) MarginEdge(tx, ty int) Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.ContentWidth, Height: b.Height}.Translate(tx, ty)
}

// Tree is an arena of boxes. All navigation goes through IDs; the slice
// only ever grows, so IDs handed out stay valid.
type Tree struct {
	boxes []*Box
}

func NewTree() *Tree {
	return &Tree{}
}

// Box returns the box for id. The zero-value checks are deliberate: asking
// for None or an out-of-range ID returns nil rather than panicking, since
// "no box here" is a legitimate answer during traversal.
func (t *Tree) Box(id BoxID) *Box {
	if id < 0 || int(id) >= len(t.boxes) {
		return nil
	}
	return t.boxes[id]
}

func (t *Tree) newBox(kind Kind, parent BoxID) BoxID {
	b := &Box{Kind: kind, Parent: parent, Style: css.NewStyle()}
	id := BoxID(len(t.boxes))
	t.boxes = append(t.boxes, b)
	if parent != None {
		t.boxes[parent].Children = append(t.boxes[parent].Children, id)
	}
	return id
}

// NewBlock creates a block-level box under parent (or a root when parent
// is None).
func (t *Tree) NewBlock(parent BoxID) BoxID {
	return t.newBox(KindBlock, parent)
}

// NewLine creates a line box under parent.
func (t *Tree) NewLine(parent BoxID) BoxID {
	id := t.newBox(KindLine, parent)
	t.boxes[id].Line = &LineData{}
	return id
}

// NewInlineRun creates an inline run as a child of line.
func (t *Tree) NewInlineRun(line BoxID) BoxID {
	id := t.newBox(KindInlineRun, line)
	t.boxes[id].Run = &RunData{}
	return id
}

// NewNonFlow creates a floated or absolutely-positioned box registered on
// line as non-flow content. The box is parented to the line's parent block
// (its containing block for layout purposes) but painted via the line.
func (t *Tree) NewNonFlow(line BoxID) BoxID {
	lb := t.Box(line)
	id := t.newBox(KindNonFlow, lb.Parent)
	lb.Line.NonFlow = append(lb.Line.NonFlow, id)
	return id
}

// RemoveChildAt removes the i-th child of parent. The removed box stays in
// the arena (IDs are never reused) but is no longer reachable.
func (t *Tree) RemoveChildAt(parent BoxID, i int) {
	p := t.Box(parent)
	child := t.Box(p.Children[i])
	child.Parent = None
	p.Children = append(p.Children[:i], p.Children[i+1:]...)
}

// NextSibling returns the box following id under the same parent, or None.
func (t *Tree) NextSibling(id BoxID) BoxID {
	b := t.Box(id)
	if b == nil || b.Parent == None {
		return None
	}
	siblings := t.Box(b.Parent).Children
	for i, sib := range siblings {
		if sib == id && i+1 < len(siblings) {
			return siblings[i+1]
		}
	}
	return None
}

// IsFirstChild reports whether id is its parent's first child.
func (t *Tree) IsFirstChild(id BoxID) bool {
	b := t.Box(id)
	if b == nil || b.Parent == None {
		return false
	}
	children := t.Box(b.Parent).Children
	return len(children) > 0 && children[0] == id
}

// CalcCanvasLocation refreshes the cached absolute position of id from its
// parent. Calling it on a parentless box is an internal invariant
// violation: the tree was mutated in an invalid order.
func (t *Tree) CalcCanvasLocation(id BoxID) {
	b := t.Box(id)
	parent := t.Box(b.Parent)
	if parent == nil {
		panic(&InvariantError{Op: "CalcCanvasLocation", Detail: "called with no parent"})
	}
	// Inline-level X/Y is relative to the owning line, not the run.
	base := parent
	for base.Kind == KindInlineRun {
		base = t.Box(base.Parent)
	}
	b.AbsX = base.AbsX + base.Tx + b.X
	b.AbsY = base.AbsY + base.Ty + b.Y
}

// CalcChildLocations refreshes cached absolute positions for the whole
// subtree below id. Line boxes additionally refresh their non-flow content
// so no operation ever leaves stale absolute coordinates behind.
func (t *Tree) CalcChildLocations(id BoxID) {
	b := t.Box(id)
	for _, child := range b.Children {
		t.CalcCanvasLocation(child)
		t.CalcChildLocations(child)
	}
	switch b.Kind {
	case KindLine:
		for _, nf := range b.Line.NonFlow {
			if t.Box(nf).Style.IsAbsolute() {
				t.CalcCanvasLocation(nf)
				t.CalcChildLocations(nf)
			}
		}
	case KindInlineRun, KindBlock, KindNonFlow:
	}
}

// SetRoot places a parentless box at an absolute position. Roots have no
// parent to derive canvas coordinates from.
func (t *Tree) SetRoot(id BoxID, absX, absY int) {
	b := t.Box(id)
	b.X, b.Y = absX, absY
	b.AbsX, b.AbsY = absX, absY
}
