package layout

import (
	"strings"
	"testing"
)

func TestPositionHorizontally(t *testing.T) {
	c := createTestContext(800)
	parent := createTestBlock(c, 500)
	line := createTestLine(c, parent, "", 0)

	run := c.Tree.NewInlineRun(line)
	c.Tree.AddText(run, &InlineText{Text: "ab", Width: 20})
	c.Tree.AddText(run, &InlineText{Text: "cd", Width: 20})
	block := c.Tree.NewBlock(run)
	c.Tree.AddInlineBox(run, block)
	c.Tree.Box(block).ContentWidth = 30

	total := c.PositionHorizontally(line)

	if total != 70 {
		t.Errorf("Expected total advance 70, got %d", total)
	}
	inline := c.Tree.Box(run).Run.Inline
	if inline[0].Text.X != 0 || inline[1].Text.X != 20 {
		t.Errorf("Expected texts at 0 and 20, got %d and %d", inline[0].Text.X, inline[1].Text.X)
	}
	if got := c.Tree.Box(block).X; got != 40 {
		t.Errorf("Expected nested block at 40, got %d", got)
	}
}

// TestPositionHorizontallyRTL places the first child in the rightmost span
// while content inside each run stays left to right.
func TestPositionHorizontallyRTL(t *testing.T) {
	c := createTestContext(800)
	parent := createTestBlock(c, 500)
	line := createTestLine(c, parent, "", 0)

	first := c.Tree.NewInlineRun(line)
	c.Tree.AddText(first, &InlineText{Text: "abc", Width: 30})
	second := c.Tree.NewInlineRun(line)
	c.Tree.AddText(second, &InlineText{Text: "de", Width: 20})

	total := c.PositionHorizontallyRTL(line)

	if total != 50 {
		t.Errorf("Expected total advance 50, got %d", total)
	}
	if got := c.Tree.Box(first).Run.Inline[0].Text.X; got != 20 {
		t.Errorf("Expected first run's text at 20 (rightmost span), got %d", got)
	}
	if got := c.Tree.Box(second).Run.Inline[0].Text.X; got != 0 {
		t.Errorf("Expected second run's text at 0, got %d", got)
	}
}

func TestBreakIntoLinesGreedy(t *testing.T) {
	c := createTestContext(800)
	parent := createTestBlock(c, 100)

	lines := c.BreakIntoLines(parent, "aaa bbb ccc")

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	var sb1, sb2 strings.Builder
	c.CollectText(lines[0], &sb1)
	c.CollectText(lines[1], &sb2)
	if sb1.String() != "aaa bbb" {
		t.Errorf("Expected first line %q, got %q", "aaa bbb", sb1.String())
	}
	if sb2.String() != "ccc" {
		t.Errorf("Expected second line %q, got %q", "ccc", sb2.String())
	}
}

func TestBreakIntoLinesForcedBreaks(t *testing.T) {
	c := createTestContext(800)
	parent := createTestBlock(c, 500)

	lines := c.BreakIntoLines(parent, "one\ntwo")

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !c.Tree.Box(lines[0]).Line.EndsOnNL {
		t.Error("Expected the paragraph-final line to end on a forced break")
	}
	if lb := c.Tree.Box(lines[1]); lb.Y != 20 {
		t.Errorf("Expected second line stacked at 20, got %d", lb.Y)
	}
}

// TestBreakIntoLinesJustifies runs alignment only after every line exists:
// all lines but the final content line of a justified block get stretched.
func TestBreakIntoLinesJustifies(t *testing.T) {
	c := createTestContext(800)
	parent := createTestBlock(c, 100)
	c.Tree.Box(parent).Style.Set("text-align", "justify")

	lines := c.BreakIntoLines(parent, "aa bb cc dd ee")

	if len(lines) < 2 {
		t.Fatalf("Expected multiple lines, got %d", len(lines))
	}
	for i, line := range lines[:len(lines)-1] {
		if c.Tree.Box(line).Line.Justification == nil {
			t.Errorf("Expected line %d justified", i)
		}
	}
	last := lines[len(lines)-1]
	if c.Tree.Box(last).Line.Justification != nil {
		t.Error("Expected the final line to stay unjustified")
	}
}

func TestBreakIntoLinesDirection(t *testing.T) {
	c := createTestContext(800)
	parent := createTestBlock(c, 500)

	lines := c.BreakIntoLines(parent, "שלום עולם\nhello")

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if c.Tree.Box(lines[0]).Line.Direction != RTL {
		t.Error("Expected the Hebrew paragraph laid out RTL")
	}
	if c.Tree.Box(lines[1]).Line.Direction != LTR {
		t.Error("Expected the Latin paragraph laid out LTR")
	}
}

func TestDirectionOf(t *testing.T) {
	cases := []struct {
		text string
		want Direction
	}{
		{"hello", LTR},
		{"שלום", RTL},
		{"مرحبا", RTL},
		{"", LTR},
		{"123", LTR},
	}
	for _, tc := range cases {
		if got := DirectionOf(tc.text); got != tc.want {
			t.Errorf("DirectionOf(%q): expected %v, got %v", tc.text, tc.want, got)
		}
	}
}

func TestMarkerDataRestore(t *testing.T) {
	m := NewMarkerData()
	m.SetReferenceLine(3)
	m.SetReferenceLine(7)

	m.RestorePreviousReferenceLine(5)
	if m.ReferenceLine() != 7 {
		t.Errorf("Expected restore for a non-current line to be ignored, got %d", m.ReferenceLine())
	}

	m.RestorePreviousReferenceLine(7)
	if m.ReferenceLine() != 3 {
		t.Errorf("Expected reference restored to 3, got %d", m.ReferenceLine())
	}
}
