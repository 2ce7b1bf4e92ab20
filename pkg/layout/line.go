package layout

import (
	"math"

	"galley/pkg/css"
)

// Share of the justification slack handed to inter-character gaps; the
// rest goes to inter-word gaps.
const (
	justifyNonSpaceShare = 0.20
	justifySpaceShare    = 1 - justifyNonSpaceShare
)

// LineData is the payload of a KindLine box.
type LineData struct {
	ContainsContent           bool
	ContainsBlockLevelContent bool

	// EndsOnNL is set when the line ends on an explicit forced break.
	EndsOnNL bool

	// FloatDistances must be set before Align or Justify run; both are
	// no-ops without it.
	FloatDistances *FloatDistances

	TextDecorations []TextDecoration

	// PaintingTop and PaintingHeight extend the visual bounds beyond the
	// nominal box when decorations or oversized inline content spill
	// outside it. PaintingTop is relative to the line top.
	PaintingTop    int
	PaintingHeight int

	// NonFlow holds floated and absolutely-positioned boxes whose origin
	// fell inside this line. Empty by default; no allocation until used.
	NonFlow []BoxID

	Marker *MarkerData

	// containsDynamicFunction is a sticky OR: once a dynamic function is
	// seen it is never cleared.
	containsDynamicFunction bool

	// ContentStart is the leading offset reserved, e.g., for list markers.
	ContentStart int

	Baseline int

	// Justification is present only if Justify actually found
	// distributable slack on this line.
	Justification *JustificationInfo

	Direction Direction

	// Footnotes lists referenced footnote bodies in encounter order.
	Footnotes []BoxID
}

// SetContainsDynamicFunction ORs in the flag; it never clears.
func (ld *LineData) SetContainsDynamicFunction(contains bool) {
	ld.containsDynamicFunction = ld.containsDynamicFunction || contains
}

func (ld *LineData) ContainsDynamicFunction() bool {
	return ld.containsDynamicFunction
}

// AddReferencedFootnoteBody records a footnote body referenced by a call
// in this line's inline content. Order of first reference is preserved.
func (ld *LineData) AddReferencedFootnoteBody(body BoxID) {
	ld.Footnotes = append(ld.Footnotes, body)
}

func (ld *LineData) HasFootnotes() bool {
	return len(ld.Footnotes) > 0
}

// IsLayedOutRTL reports whether the line was laid out right-to-left.
func (ld *LineData) IsLayedOutRTL() bool {
	return ld.Direction == RTL
}

// Align computes the line's final X from the parent's text-align and the
// line's own direction, then refreshes all cached absolute coordinates.
// dynamic is true when called from a late re-shaping pass; only then does
// text-align: justify re-run justification from here.
//
// Align is idempotent: with unchanged inputs the computed X matches the
// current one and nothing is touched.
func (c *Context) Align(line BoxID, dynamic bool) {
	lb := c.Tree.Box(line)
	ld := lb.Line
	if ld.FloatDistances == nil {
		return
	}
	parent := c.Tree.Box(lb.Parent)
	align := parent.Style.GetTextAlign()

	// start resolves to a physical side by the line's own direction.
	startLTR := align == css.TextAlignStart && ld.Direction == LTR
	startRTL := align == css.TextAlignStart && ld.Direction == RTL

	calcX := 0
	switch {
	case align == css.TextAlignJustify && ld.Direction == RTL:
		calcX = parent.ContentWidth - ld.FloatDistances.RightFloatDistance - lb.ContentWidth
		if dynamic {
			c.Justify(line)
		}
	case align == css.TextAlignLeft || align == css.TextAlignJustify || startLTR:
		calcX = ld.ContentStart + ld.FloatDistances.LeftFloatDistance
		if align == css.TextAlignJustify && dynamic {
			c.Justify(line)
		}
	case align == css.TextAlignCenter:
		left := ld.FloatDistances.LeftFloatDistance
		right := ld.FloatDistances.RightFloatDistance
		midpoint := left + (parent.ContentWidth-left-right)/2
		calcX = midpoint - (lb.ContentWidth+ld.ContentStart)/2
	case align == css.TextAlignRight || startRTL:
		calcX = parent.ContentWidth - ld.FloatDistances.RightFloatDistance - lb.ContentWidth
	}

	if calcX != lb.X {
		lb.X = calcX
		c.Tree.CalcCanvasLocation(line)
		c.Tree.CalcChildLocations(line)
	}
}

// Justify distributes the line's horizontal slack across its justifiable
// gaps: 80% to inter-word gaps, 20% to inter-character gaps, each capped
// per the parent style. Lines with letter-spacing, the last content-bearing
// line of the block, and lines ending on a forced break are left alone.
func (c *Context) Justify(line BoxID) {
	lb := c.Tree.Box(line)
	ld := lb.Line
	if ld.FloatDistances == nil {
		return
	}
	parent := c.Tree.Box(lb.Parent)
	if parent.Style.HasLetterSpacing() {
		// Letter-spacing turns off text justification.
		return
	}
	if c.isLastLineWithContent(line) || ld.EndsOnNL {
		return
	}

	available := parent.ContentWidth -
		ld.FloatDistances.LeftFloatDistance -
		ld.FloatDistances.RightFloatDistance -
		ld.ContentStart
	if available <= lb.ContentWidth {
		return
	}

	maxInterChar := parent.Style.GetMaxJustificationInterChar(parent.Width())
	maxInterWord := parent.Style.GetMaxJustificationInterWord(parent.Width())
	toAdd := available - lb.ContentWidth

	counts := c.Tree.CountJustifiableChars(line)
	info := &JustificationInfo{}

	switch {
	case counts.SpaceCount > 0:
		if counts.NonSpaceCount > 1 {
			info.NonSpaceAdjust = math.Min(
				float64(toAdd)*justifyNonSpaceShare/float64(counts.NonSpaceCount-1), maxInterChar)
		}
		info.SpaceAdjust = math.Min(
			float64(toAdd)*justifySpaceShare/float64(counts.SpaceCount), maxInterWord)
	case counts.NonSpaceCount > 1:
		info.NonSpaceAdjust = math.Min(
			float64(toAdd)/float64(counts.NonSpaceCount-1), maxInterChar)
	}

	c.adjustChildren(line, info)
	ld.Justification = info
}

// CountJustifiableChars scans the line's inline runs for justifiable gaps.
func (t *Tree) CountJustifiableChars(line BoxID) CharCounts {
	var counts CharCounts
	for _, child := range t.Box(line).Children {
		if t.Box(child).Kind == KindInlineRun {
			t.countJustifiableChars(child, &counts)
		}
	}
	return counts
}

// adjustChildren shifts every child by the accumulated stretch so far and
// lets inline runs distribute their own per-gap stretch. RTL lines mirror
// the shift and additionally grow the line's content width by the total:
// they anchor at a fixed start and grow toward increasing width. (LTR
// deliberately leaves content width unchanged.)
func (c *Context) adjustChildren(line BoxID, info *JustificationInfo) {
	lb := c.Tree.Box(line)
	st := &justifyState{}
	var adjust float64
	if lb.Line.IsLayedOutRTL() {
		for _, child := range lb.Children {
			b := c.Tree.Box(child)
			b.X -= int(math.Round(adjust))
			if b.Kind == KindInlineRun {
				adjust += c.Tree.adjustHorizontalPositionRTL(child, info, adjust, st)
			}
		}
		lb.ContentWidth += int(math.Round(adjust))
	} else {
		for _, child := range lb.Children {
			b := c.Tree.Box(child)
			b.X += int(math.Round(adjust))
			if b.Kind == KindInlineRun {
				adjust += c.Tree.adjustHorizontalPosition(child, info, adjust, st)
			}
		}
	}
	c.Tree.CalcChildLocations(line)
}

// isLastLineWithContent scans forward siblings: if any later line contains
// content, this line is not the last. Trailing empty lines do not count.
func (c *Context) isLastLineWithContent(line BoxID) bool {
	for sib := c.Tree.NextSibling(line); sib != None; sib = c.Tree.NextSibling(sib) {
		b := c.Tree.Box(sib)
		if b.Kind == KindLine && b.Line.ContainsContent {
			return false
		}
	}
	return true
}

// IsFirstLine reports whether this is the first line of its block.
func (t *Tree) IsFirstLine(line BoxID) bool {
	return t.IsFirstChild(line)
}

// ContainsOnlyBlockLevelContent reports whether every child of the line is
// block-level.
func (t *Tree) ContainsOnlyBlockLevelContent(line BoxID) bool {
	lb := t.Box(line)
	if !lb.Line.ContainsBlockLevelContent {
		return false
	}
	for _, child := range lb.Children {
		if t.Box(child).Kind != KindBlock {
			return false
		}
	}
	return true
}

// ContainsVisibleContent reports whether anything on the line would paint.
func (t *Tree) ContainsVisibleContent(line BoxID) bool {
	for _, child := range t.Box(line).Children {
		b := t.Box(child)
		switch b.Kind {
		case KindInlineRun:
			if t.runContainsVisibleContent(child) {
				return true
			}
		case KindBlock, KindNonFlow:
			if b.Width() > 0 || b.Height > 0 {
				return true
			}
		case KindLine:
		}
	}
	return false
}

// PrunePendingInlineRuns drops trailing runs that opened an inline context
// but received no content before the line ended.
func (t *Tree) PrunePendingInlineRuns(line BoxID) {
	lb := t.Box(line)
	for i := len(lb.Children) - 1; i >= 0; i-- {
		child := lb.Children[i]
		if t.Box(child).Kind != KindInlineRun {
			break
		}
		if !t.prunePending(child) {
			break
		}
		t.RemoveChildAt(line, i)
	}
}

// TrailingText returns the last non-empty text of the line along with the
// style of the run holding it, or nil if the line ends in non-text content.
func (t *Tree) TrailingText(line BoxID) (*InlineText, *css.Style) {
	lb := t.Box(line)
	for i := len(lb.Children) - 1; i >= 0; i-- {
		child := lb.Children[i]
		b := t.Box(child)
		if b.Kind != KindInlineRun {
			return nil, nil
		}
		tx := t.findTrailingText(child)
		if tx != nil && tx.IsEmpty() {
			continue
		}
		if tx != nil {
			return tx, b.Style
		}
		return nil, nil
	}
	return nil, nil
}

// TrimTrailingSpace removes a trailing space from the line's last text when
// its white-space mode collapses spaces, shrinking the line's content width
// to match.
func (c *Context) TrimTrailingSpace(line BoxID) {
	tx, style := c.Tree.TrailingText(line)
	if tx == nil {
		return
	}
	switch style.GetWhitespace() {
	case css.WhitespaceNormal, css.WhitespaceNowrap:
		removed := tx.TrimTrailingSpace(c.Measurer.Width(" "))
		c.Tree.Box(line).ContentWidth -= removed
	case css.WhitespacePre, css.WhitespacePreWrap, css.WhitespacePreLine:
	}
}

// Reset prepares the line for relayout (typically to satisfy widow/orphan
// constraints): non-flow content is reset, the list marker is re-pointed to
// its previous reference line, and every referenced footnote body is
// detached from whichever page currently holds it, since layout will
// re-establish the association from scratch.
func (c *Context) Reset(line BoxID) {
	lb := c.Tree.Box(line)
	ld := lb.Line
	for _, nf := range ld.NonFlow {
		c.resetBox(nf)
	}
	if ld.Marker != nil {
		ld.Marker.RestorePreviousReferenceLine(line)
	}
	if ld.HasFootnotes() {
		if page := c.Pages.FirstPageFor(c.Tree, line); page != nil {
			page.RemoveFootnoteBodies(ld.Footnotes)
		}
	}
	c.resetBox(line)
}

// resetBox clears derived layout state; the next pass recomputes it.
func (c *Context) resetBox(id BoxID) {
	b := c.Tree.Box(id)
	b.Height = 0
	if b.Kind == KindLine {
		b.Line.Justification = nil
		b.Line.PaintingTop = 0
		b.Line.PaintingHeight = 0
	}
	for _, child := range b.Children {
		c.resetBox(child)
	}
}

// Restyle re-derives the line's style from its parent's source element.
// Line boxes are anonymous, so the parent is the restyle target.
func (c *Context) Restyle(line BoxID) {
	lb := c.Tree.Box(line)
	parent := c.Tree.Box(lb.Parent)
	if parent != nil && parent.Element != "" && c.Resolver != nil {
		if style := c.Resolver.StyleFor(parent.Element); style != nil {
			lb.Style = style.DeriveAnonymousBlock()
		}
	}
	for _, child := range lb.Children {
		if b := c.Tree.Box(child); b.Element != "" && c.Resolver != nil {
			if style := c.Resolver.StyleFor(b.Element); style != nil {
				b.Style = style
			}
		}
	}
}

// RestyleTarget returns the box whose source element styles this line.
func (t *Tree) RestyleTarget(line BoxID) BoxID {
	return t.Box(line).Parent
}

// AddAllChildren appends every paintable child of the line to list,
// recursing through inline runs so nested inline-level boxes surface too.
func (t *Tree) AddAllChildren(list *[]BoxID, line BoxID) {
	for _, child := range t.Box(line).Children {
		*list = append(*list, child)
		if t.Box(child).Kind == KindInlineRun {
			t.addRunBoxes(list, child)
		}
	}
}

func (t *Tree) addRunBoxes(list *[]BoxID, run BoxID) {
	for _, ic := range t.Box(run).Run.Inline {
		if ic.Text != nil {
			continue
		}
		*list = append(*list, ic.Box)
		if t.Box(ic.Box).Kind == KindInlineRun {
			t.addRunBoxes(list, ic.Box)
		}
	}
}

// IsTerminalColumnBreak is true for every line box: a line cannot be split
// further for column breaking.
func (t *Tree) IsTerminalColumnBreak(line BoxID) bool {
	return t.Box(line).Kind == KindLine
}

// HasNonTextContent reports whether the line paints anything besides its
// children's text (currently: text decorations).
func (ld *LineData) HasNonTextContent() bool {
	return len(ld.TextDecorations) > 0
}
