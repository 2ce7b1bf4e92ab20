package layout

import (
	"fmt"
	"io"
	"strings"
)

// CollectText accumulates the plain text of the subtree below id, non-flow
// content first, resolving dynamic functions so counters export with their
// final values.
func (c *Context) CollectText(id BoxID, sb *strings.Builder) {
	b := c.Tree.Box(id)
	switch b.Kind {
	case KindLine:
		for _, nf := range b.Line.NonFlow {
			c.CollectText(nf, sb)
		}
		if b.Line.ContainsDynamicFunction() {
			c.lookForDynamicFunctions(id)
		}
		for _, child := range b.Children {
			c.CollectText(child, sb)
		}
	case KindInlineRun:
		for _, ic := range b.Run.Inline {
			if ic.Text != nil {
				sb.WriteString(ic.Text.Text)
			} else {
				c.CollectText(ic.Box, sb)
			}
		}
	case KindBlock, KindNonFlow:
		for _, child := range b.Children {
			c.CollectText(child, sb)
		}
	}
}

// BeginTextExport resets the page cursor the export pass advances through.
func (c *Context) BeginTextExport() {
	c.currentPage = 0
}

// ExportText writes the line's plain text to w, one line per text line.
// Page boundaries appear as form feeds: before writing, the cursor page
// advances while the line's baseline falls past the current page's
// printable bottom. Lines outside normal document flow never advance the
// page cursor.
func (c *Context) ExportText(w io.Writer, line BoxID) error {
	lb := c.Tree.Box(line)
	ld := lb.Line

	baselinePos := lb.AbsY + ld.Baseline
	if c.InDocumentFlow(line) {
		for {
			page := c.Pages.Page(c.currentPage)
			if page == nil || baselinePos < page.Bottom {
				break
			}
			c.currentPage++
			if _, err := io.WriteString(w, "\f"); err != nil {
				return fmt.Errorf("export text: %w", err)
			}
		}
	}

	for _, nf := range ld.NonFlow {
		var sb strings.Builder
		c.CollectText(nf, &sb)
		if s := strings.TrimSpace(sb.String()); s != "" {
			if _, err := io.WriteString(w, s+"\n"); err != nil {
				return fmt.Errorf("export text: %w", err)
			}
		}
	}

	if ld.ContainsContent {
		var sb strings.Builder
		c.CollectText(line, &sb)
		if _, err := io.WriteString(w, strings.TrimSpace(sb.String())+"\n"); err != nil {
			return fmt.Errorf("export text: %w", err)
		}
	}
	return nil
}

// InDocumentFlow reports whether the box participates in normal flow: no
// ancestor is floated or absolutely positioned.
func (c *Context) InDocumentFlow(id BoxID) bool {
	for b := c.Tree.Box(id); b != nil; b = c.Tree.Box(b.Parent) {
		if b.Kind == KindNonFlow {
			return false
		}
	}
	return true
}
