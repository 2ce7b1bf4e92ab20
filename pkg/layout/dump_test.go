package layout

import (
	"strings"
	"testing"
)

// TestDumpRejectsLayoutMode panics: line boxes only exist in the rendered
// tree, so a layout-mode dump is a caller bug.
func TestDumpRejectsLayoutMode(t *testing.T) {
	c := createTestContext(800)
	parent := createTestBlock(c, 500)
	line := createTestLine(c, parent, "hello", 0)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected a panic for DumpLayout")
		}
		if _, ok := r.(*UsageError); !ok {
			t.Fatalf("Expected *UsageError, got %T", r)
		}
	}()
	c.Dump(line, "", DumpLayout)
}

func TestDumpRender(t *testing.T) {
	c := createTestContext(800)
	parent := createTestBlock(c, 500)
	line := createTestLine(c, parent, "hello", 40)

	out := c.Dump(line, "", DumpRender)

	if !strings.HasPrefix(out, "line: (0,40)->(50,20)\n") {
		t.Errorf("Expected dump to open with the line geometry, got %q", out)
	}
	if !strings.Contains(out, `"hello"`) {
		t.Errorf("Expected dump to quote the line text, got %q", out)
	}
	if !strings.Contains(out, "inline-run") {
		t.Errorf("Expected dump to describe the inline run, got %q", out)
	}
}

func TestDumpIncludesNonFlow(t *testing.T) {
	c := createTestContext(800)
	parent := createTestBlock(c, 500)
	line := createTestLine(c, parent, "host", 0)
	nf := c.Tree.NewNonFlow(line)
	b := c.Tree.Box(nf)
	b.ContentWidth = 30
	b.Height = 10
	c.Tree.CalcCanvasLocation(nf)

	out := c.Dump(line, "", DumpRender)

	if !strings.Contains(out, "non-flow") {
		t.Errorf("Expected dump to list non-flow content, got %q", out)
	}
}

func TestDumpIndents(t *testing.T) {
	c := createTestContext(800)
	parent := createTestBlock(c, 500)
	line := createTestLine(c, parent, "hello", 0)

	out := c.Dump(line, "    ", DumpRender)

	for _, ln := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if !strings.HasPrefix(ln, "    ") {
			t.Errorf("Expected every dump line indented, got %q", ln)
		}
	}
}
