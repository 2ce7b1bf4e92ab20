package layout

import "testing"

func TestBoxLookup(t *testing.T) {
	tree := NewTree()
	block := tree.NewBlock(None)

	if tree.Box(block) == nil {
		t.Fatal("Expected the new box to be retrievable")
	}
	if tree.Box(None) != nil {
		t.Error("Expected None to resolve to no box")
	}
	if tree.Box(999) != nil {
		t.Error("Expected an out-of-range ID to resolve to no box")
	}
}

// TestBoxIDsStable checks the arena property: removing a child neither
// invalidates nor renumbers existing IDs.
func TestBoxIDsStable(t *testing.T) {
	tree := NewTree()
	parent := tree.NewBlock(None)
	a := tree.NewBlock(parent)
	b := tree.NewBlock(parent)

	tree.RemoveChildAt(parent, 0)

	if tree.Box(a) == nil {
		t.Fatal("Expected the removed box to stay addressable")
	}
	if tree.Box(a).Parent != None {
		t.Error("Expected the removed box to be detached from its parent")
	}
	children := tree.Box(parent).Children
	if len(children) != 1 || children[0] != b {
		t.Errorf("Expected [%d] as remaining children, got %v", b, children)
	}
}

func TestNextSibling(t *testing.T) {
	tree := NewTree()
	parent := tree.NewBlock(None)
	a := tree.NewBlock(parent)
	b := tree.NewBlock(parent)

	if got := tree.NextSibling(a); got != b {
		t.Errorf("Expected next sibling %d, got %d", b, got)
	}
	if got := tree.NextSibling(b); got != None {
		t.Errorf("Expected None after the last child, got %d", got)
	}
	if got := tree.NextSibling(parent); got != None {
		t.Errorf("Expected None for a root, got %d", got)
	}
}

func TestIsFirstChild(t *testing.T) {
	tree := NewTree()
	parent := tree.NewBlock(None)
	a := tree.NewBlock(parent)
	b := tree.NewBlock(parent)

	if !tree.IsFirstChild(a) {
		t.Error("Expected the first child to report IsFirstChild")
	}
	if tree.IsFirstChild(b) {
		t.Error("Expected the second child not to report IsFirstChild")
	}
	if tree.IsFirstChild(parent) {
		t.Error("Expected a root not to report IsFirstChild")
	}
}

// TestCalcCanvasLocationNoParent panics: the tree was mutated in an invalid
// order if a root's canvas location is ever derived.
func TestCalcCanvasLocationNoParent(t *testing.T) {
	tree := NewTree()
	root := tree.NewBlock(None)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected a panic for a parentless box")
		}
		if _, ok := r.(*InvariantError); !ok {
			t.Fatalf("Expected *InvariantError, got %T", r)
		}
	}()
	tree.CalcCanvasLocation(root)
}

// TestCalcCanvasLocationInlineBase checks that inline-level boxes resolve
// against the owning line, not the enclosing run: run-nested content carries
// line-relative offsets.
func TestCalcCanvasLocationInlineBase(t *testing.T) {
	c := createTestContext(800)
	parent := createTestBlock(c, 500)
	c.Tree.SetRoot(parent, 5, 7)
	line := createTestLine(c, parent, "", 20)
	lb := c.Tree.Box(line)
	lb.X = 10

	run := c.Tree.NewInlineRun(line)
	c.Tree.Box(run).X = 4
	nested := c.Tree.NewBlock(run)
	c.Tree.AddInlineBox(run, nested)
	c.Tree.Box(nested).X = 9

	c.Tree.CalcCanvasLocation(line)
	c.Tree.CalcChildLocations(line)

	if lb.AbsX != 15 || lb.AbsY != 27 {
		t.Fatalf("Expected line at (15,27), got (%d,%d)", lb.AbsX, lb.AbsY)
	}
	if got := c.Tree.Box(run).AbsX; got != 19 {
		t.Errorf("Expected run AbsX 19, got %d", got)
	}
	if got := c.Tree.Box(nested).AbsX; got != 24 {
		t.Errorf("Expected nested box AbsX 24 (line base + 9), got %d", got)
	}
}

func TestNewNonFlowRegistersOnLine(t *testing.T) {
	c := createTestContext(800)
	parent := createTestBlock(c, 500)
	line := createTestLine(c, parent, "host", 0)

	nf := c.Tree.NewNonFlow(line)

	if got := c.Tree.Box(nf).Parent; got != parent {
		t.Errorf("Expected non-flow box parented to the block %d, got %d", parent, got)
	}
	lineNF := c.Tree.Box(line).Line.NonFlow
	if len(lineNF) != 1 || lineNF[0] != nf {
		t.Errorf("Expected non-flow registered on the line, got %v", lineNF)
	}
}

// TestCalcChildLocationsRefreshesAbsoluteNonFlow re-derives canvas positions
// for absolutely-positioned non-flow content hanging off the line.
func TestCalcChildLocationsRefreshesAbsoluteNonFlow(t *testing.T) {
	c := createTestContext(800)
	parent := createTestBlock(c, 500)
	line := createTestLine(c, parent, "host", 100)
	nf := c.Tree.NewNonFlow(line)
	c.Tree.Box(nf).Style.Set("position", "absolute")
	c.Tree.Box(nf).Y = 30

	c.Tree.CalcChildLocations(line)

	if got := c.Tree.Box(nf).AbsY; got != 30 {
		t.Errorf("Expected non-flow AbsY 30 (block base + 30), got %d", got)
	}
}

func TestBoxWidth(t *testing.T) {
	b := &Box{LeftMBP: 3, ContentWidth: 10, RightMBP: 4}
	if b.Width() != 17 {
		t.Errorf("Expected border-box width 17, got %d", b.Width())
	}
}

func TestMarginEdge(t *testing.T) {
	b := &Box{X: 5, Y: 6, ContentWidth: 10, Height: 20}
	edge := b.MarginEdge(100, 200)
	want := Rect{X: 105, Y: 206, Width: 10, Height: 20}
	if edge != want {
		t.Errorf("Expected margin edge %+v, got %+v", want, edge)
	}
}

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindLine, "line"},
		{KindInlineRun, "inline-run"},
		{KindBlock, "block"},
		{KindNonFlow, "non-flow"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Expected %q, got %q", tc.want, got)
		}
	}
}
