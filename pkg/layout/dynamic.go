package layout

import "strconv"

// DynamicFunc produces text whose value is only known once pagination has
// settled, such as a running page counter. Evaluate is called at paint
// time with the line the text sits on.
type DynamicFunc interface {
	Evaluate(c *Context, line BoxID) string
}

// PageCounter is the builtin dynamic function: the number of the page
// holding the line, or the total page count.
type PageCounter struct {
	Total bool
}

func (p PageCounter) Evaluate(c *Context, line BoxID) string {
	if p.Total {
		return strconv.Itoa(c.PageCount())
	}
	return strconv.Itoa(c.PageIndexFor(line) + 1)
}

// lookForDynamicFunctions resolves every dynamic text on the line to its
// current value and re-measures it.
func (c *Context) lookForDynamicFunctions(line BoxID) {
	for _, child := range c.Tree.Box(line).Children {
		if c.Tree.Box(child).Kind == KindInlineRun {
			c.resolveDynamicText(child, line)
		}
	}
}

func (c *Context) resolveDynamicText(run BoxID, line BoxID) {
	for _, ic := range c.Tree.Box(run).Run.Inline {
		switch {
		case ic.Text != nil:
			if ic.Text.Dynamic != nil {
				ic.Text.Text = ic.Text.Dynamic.Evaluate(c, line)
				ic.Text.Width = c.Measurer.Width(ic.Text.Text)
			}
		case c.Tree.Box(ic.Box).Kind == KindInlineRun:
			c.resolveDynamicText(ic.Box, line)
		}
	}
}
