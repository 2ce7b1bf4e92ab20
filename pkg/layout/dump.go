package layout

import (
	"fmt"
	"strings"
)

// DumpMode selects which tree a diagnostic dump describes.
type DumpMode uint8

const (
	// DumpLayout dumps pre-paint layout state. Line boxes do not support
	// it: they exist only in the rendered tree.
	DumpLayout DumpMode = iota
	// DumpRender dumps the rendered tree with absolute geometry.
	DumpRender
)

// Dump returns an indented recursive description of the line and its
// non-flow content. Requesting any mode but DumpRender for a line box is a
// usage error and panics.
func (c *Context) Dump(line BoxID, indent string, mode DumpMode) string {
	if mode != DumpRender {
		panic(&UsageError{Op: "Dump", Detail: "line boxes support DumpRender only"})
	}

	var sb strings.Builder
	sb.WriteString(indent)
	sb.WriteString(c.describe(line))
	sb.WriteByte('\n')

	lb := c.Tree.Box(line)
	c.dumpBoxes(&sb, indent, lb.Line.NonFlow)
	if len(lb.Line.NonFlow) > 0 {
		sb.WriteByte('\n')
	}
	c.dumpBoxes(&sb, indent, lb.Children)

	return sb.String()
}

func (c *Context) dumpBoxes(sb *strings.Builder, indent string, ids []BoxID) {
	for _, id := range ids {
		b := c.Tree.Box(id)
		sb.WriteString(indent)
		sb.WriteString("  ")
		sb.WriteString(c.describe(id))
		sb.WriteByte('\n')
		if b.Kind == KindInlineRun {
			for _, ic := range b.Run.Inline {
				if ic.Text != nil {
					fmt.Fprintf(sb, "%s    text (%d): %q\n", indent, ic.Text.X, ic.Text.Text)
				} else {
					c.dumpBoxes(sb, indent+"  ", []BoxID{ic.Box})
				}
			}
			continue
		}
		c.dumpBoxes(sb, indent+"  ", b.Children)
	}
}

func (c *Context) describe(id BoxID) string {
	b := c.Tree.Box(id)
	switch b.Kind {
	case KindLine:
		return fmt.Sprintf("line: (%d,%d)->(%d,%d)", b.AbsX, b.AbsY, b.ContentWidth, b.Height)
	case KindInlineRun:
		return fmt.Sprintf("inline-run: (%d,%d)", b.AbsX, b.AbsY)
	case KindBlock, KindNonFlow:
		return fmt.Sprintf("%s: (%d,%d)->(%d,%d)", b.Kind, b.AbsX, b.AbsY, b.Width(), b.Height)
	}
	return "unknown"
}
