package render

import (
	"image/color"
	"testing"

	"galley/pkg/layout"
	"galley/pkg/text"
)

// createTestContext builds a layout context around a fixed-advance measurer
// and a single root block.
func createTestContext(pageHeight, blockWidth int) (*layout.Context, layout.BoxID) {
	c := layout.NewContext(layout.NewPageSet(pageHeight), text.Fixed{Advance: 10, Line: 20, Base: 16})
	root := c.Tree.NewBlock(layout.None)
	c.Tree.Box(root).ContentWidth = blockWidth
	c.Tree.SetRoot(root, 0, 0)
	return c, root
}

// createTestLine adds a line with one run of content under parent.
func createTestLine(c *layout.Context, parent layout.BoxID, content string, y int) layout.BoxID {
	line := c.Tree.NewLine(parent)
	lb := c.Tree.Box(line)
	ld := lb.Line
	ld.FloatDistances = &layout.FloatDistances{}
	ld.Baseline = c.Measurer.Baseline()
	lb.Y = y
	lb.Height = c.Measurer.LineHeight()
	ld.PaintingHeight = lb.Height
	if content != "" {
		run := c.Tree.NewInlineRun(line)
		c.Tree.AddText(run, &layout.InlineText{Text: content, Width: c.Measurer.Width(content)})
		lb.ContentWidth = c.PositionHorizontally(line)
		ld.ContainsContent = true
	}
	c.Tree.CalcCanvasLocation(line)
	c.Tree.CalcChildLocations(line)
	return line
}

func TestStructureDepthMatched(t *testing.T) {
	d := NewDevice(10, 10)
	token := d.StartStructure(layout.StructureText, layout.None)
	if d.StructureDepth() != 1 {
		t.Errorf("Expected depth 1 inside a structure, got %d", d.StructureDepth())
	}
	d.EndStructure(token)
	if d.StructureDepth() != 0 {
		t.Errorf("Expected depth 0 after ending, got %d", d.StructureDepth())
	}
}

func TestDeviceImageSize(t *testing.T) {
	d := NewDevice(120, 80)
	bounds := d.Image().Bounds()
	if bounds.Dx() != 120 || bounds.Dy() != 80 {
		t.Errorf("Expected 120x80 raster, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestDeviceStartsWhite(t *testing.T) {
	d := NewDevice(10, 10)
	r, g, b, _ := d.Image().At(5, 5).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("Expected a white canvas, got (%d,%d,%d)", r, g, b)
	}
}

// TestDrawTextDecoration fills the decoration stroke across the line's clip
// edge in document coordinates translated by the page top.
func TestDrawTextDecoration(t *testing.T) {
	c, root := createTestContext(200, 100)
	line := createTestLine(c, root, "ab", 10)
	c.Tree.Box(line).Line.TextDecorations = []layout.TextDecoration{
		{Kind: layout.DecorationUnderline, Offset: 17, Thickness: 2},
	}

	d := NewDevice(100, 200)
	d.SetPageTop(0)
	d.DrawTextDecoration(c, line)

	// The stroke spans y in [27, 29) across the line's 20px content width.
	r, _, _, _ := d.Image().At(5, 27).RGBA()
	if r != 0 {
		t.Errorf("Expected a black pixel inside the stroke, got r=%d", r)
	}
	r, _, _, _ = d.Image().At(5, 25).RGBA()
	if r != 0xffff {
		t.Errorf("Expected white above the stroke, got r=%d", r)
	}
	r, _, _, _ = d.Image().At(50, 27).RGBA()
	if r != 0xffff {
		t.Errorf("Expected white past the content width, got r=%d", r)
	}
}

// TestDrawTextDecorationPageOffset translates by the page top so every page
// rasters at its own origin.
func TestDrawTextDecorationPageOffset(t *testing.T) {
	c, root := createTestContext(200, 100)
	line := createTestLine(c, root, "ab", 210)
	c.Tree.Box(line).Line.TextDecorations = []layout.TextDecoration{
		{Kind: layout.DecorationUnderline, Offset: 17, Thickness: 2},
	}

	d := NewDevice(100, 200)
	d.SetPageTop(200)
	d.DrawTextDecoration(c, line)

	r, _, _, _ := d.Image().At(5, 27).RGBA()
	if r != 0 {
		t.Errorf("Expected the stroke at the page-local position, got r=%d", r)
	}
}

func TestDrawDebugOutline(t *testing.T) {
	c, root := createTestContext(200, 100)
	line := createTestLine(c, root, "ab", 10)

	d := NewDevice(100, 200)
	d.DrawDebugOutline(c, line, color.RGBA{G: 0xff, A: 0xff})

	_, g, _, _ := d.Image().At(10, 10).RGBA()
	if g != 0xffff {
		t.Errorf("Expected a green outline pixel on the top edge, got g=%d", g)
	}
}

func TestDrawLineText(t *testing.T) {
	c, root := createTestContext(200, 100)
	line := createTestLine(c, root, "ab", 10)

	d := NewDevice(100, 200)
	d.DrawLineText(c, line)

	// The glyphs raster somewhere above the baseline at y=26.
	found := false
	img := d.Image()
	for x := 0; x < 40 && !found; x++ {
		for y := 10; y < 30 && !found; y++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r != 0xffff {
				found = true
			}
		}
	}
	if !found {
		t.Error("Expected text pixels near the baseline")
	}
}

func TestRenderPageCullsDistantLines(t *testing.T) {
	c, root := createTestContext(200, 100)
	near := createTestLine(c, root, "ab", 10)
	far := createTestLine(c, root, "cd", 910)

	r := &Renderer{PageWidth: 100, PageHeight: 200}
	page := c.Pages.Page(0)
	dev, err := r.RenderPage(c, page, []layout.BoxID{near, far})
	if err != nil {
		t.Fatalf("RenderPage failed: %v", err)
	}

	if dev.StructureDepth() != 0 {
		t.Errorf("Expected balanced structure hooks after a render, got %d", dev.StructureDepth())
	}
	if c.Device != nil {
		t.Error("Expected the context device restored after the render")
	}
}

func TestRenderPageDrawsFootnotes(t *testing.T) {
	c, root := createTestContext(200, 100)
	line := createTestLine(c, root, "ab", 10)
	body := c.Tree.NewBlock(root)
	createTestLine(c, body, "note", 0)
	page := c.Pages.Page(0)
	page.AddFootnoteBody(body)
	c.ExtraSpaceBottom = 10

	r := &Renderer{PageWidth: 100, PageHeight: 200}
	if _, err := r.RenderPage(c, page, []layout.BoxID{line}); err != nil {
		t.Fatalf("RenderPage failed: %v", err)
	}
}
