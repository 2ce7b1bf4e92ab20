package layout

import (
	"math"
	"strings"

	"galley/pkg/css"
)

// InlineText is a measured piece of text inside an inline run. X is
// relative to the owning line box. Width is the advance in pixels as
// measured by the collaborating text measurer.
type InlineText struct {
	X     int
	Width int
	Text  string

	// Dynamic, when non-nil, supplies the text's value at paint time
	// (e.g. a running page counter). Until then Text holds a placeholder.
	Dynamic DynamicFunc
}

// IsEmpty reports whether the text renders nothing.
func (tx *InlineText) IsEmpty() bool {
	return tx.Text == ""
}

// TrimTrailingSpace removes one trailing space and shrinks the advance by
// spaceWidth. Returns the number of pixels removed.
func (tx *InlineText) TrimTrailingSpace(spaceWidth int) int {
	if !strings.HasSuffix(tx.Text, " ") {
		return 0
	}
	tx.Text = tx.Text[:len(tx.Text)-1]
	tx.Width -= spaceWidth
	return spaceWidth
}

// InlineChild is one item inside an inline run: either a text or a nested
// box (an inline-block, or a deeper inline run). Exactly one of the two
// fields is set; Box is None when Text is non-nil.
type InlineChild struct {
	Text *InlineText
	Box  BoxID
}

// RunData is the payload of a KindInlineRun box.
type RunData struct {
	Inline []InlineChild

	// Pending marks a run that opened an inline context but has not yet
	// received content. Pending runs at the end of a line are pruned.
	Pending bool
}

// AddText appends a text to the run.
func (t *Tree) AddText(run BoxID, tx *InlineText) {
	r := t.Box(run).Run
	r.Inline = append(r.Inline, InlineChild{Text: tx, Box: None})
	r.Pending = false
}

// AddInlineBox appends a nested box (inline-block or nested run) to run.
func (t *Tree) AddInlineBox(run BoxID, child BoxID) {
	r := t.Box(run).Run
	r.Inline = append(r.Inline, InlineChild{Box: child})
	r.Pending = false
}

// isJustifiableSpace reports whether r stretches at an inter-word gap.
func isJustifiableSpace(r rune) bool {
	return r == ' ' || r == '　'
}

// justifiesText reports whether the run's white-space mode lets its text
// participate in justification. Preserved-whitespace text keeps its exact
// spacing; nowrap text never produced a soft break to justify against.
func justifiesText(style *css.Style) bool {
	switch style.GetWhitespace() {
	case css.WhitespaceNormal, css.WhitespacePreWrap, css.WhitespacePreLine:
		return true
	case css.WhitespaceNowrap, css.WhitespacePre:
		return false
	}
	return true
}

// countJustifiableChars accumulates the justifiable gap points of the run
// and its nested runs into counts.
func (t *Tree) countJustifiableChars(run BoxID, counts *CharCounts) {
	b := t.Box(run)
	countThis := justifiesText(b.Style)
	for _, ic := range b.Run.Inline {
		switch {
		case ic.Text != nil:
			if !countThis {
				continue
			}
			for _, r := range ic.Text.Text {
				if isJustifiableSpace(r) {
					counts.SpaceCount++
				} else {
					counts.NonSpaceCount++
				}
			}
		case t.Box(ic.Box).Kind == KindInlineRun:
			t.countJustifiableChars(ic.Box, counts)
		}
	}
}

// justifyState threads per-line distribution state through the child walk:
// the first non-space glyph of the line opens no gap, so it receives no
// adjustment. This keeps the distributed total equal to the slack.
type justifyState struct {
	seenNonSpace bool
}

// textAdjustment returns the total stretch a text adds across its own gaps.
func (st *justifyState) textAdjustment(tx *InlineText, info *JustificationInfo) float64 {
	var total float64
	for _, r := range tx.Text {
		if isJustifiableSpace(r) {
			total += info.SpaceAdjust
		} else if st.seenNonSpace {
			total += info.NonSpaceAdjust
		} else {
			st.seenNonSpace = true
		}
	}
	return total
}

// adjustHorizontalPosition shifts the run's contents right by the running
// adjustment and distributes per-gap stretch, returning the total stretch
// this run added (so following siblings shift by that much more).
func (t *Tree) adjustHorizontalPosition(run BoxID, info *JustificationInfo, adjust float64, st *justifyState) float64 {
	b := t.Box(run)
	countThis := justifiesText(b.Style)
	runningTotal := adjust
	var result float64
	for _, ic := range b.Run.Inline {
		switch {
		case ic.Text != nil:
			ic.Text.X += int(math.Round(runningTotal))
			if countThis {
				adj := st.textAdjustment(ic.Text, info)
				ic.Text.Width += int(math.Round(adj))
				result += adj
				runningTotal += adj
			}
		default:
			child := t.Box(ic.Box)
			child.X += int(math.Round(runningTotal))
			if child.Kind == KindInlineRun {
				adj := t.adjustHorizontalPosition(ic.Box, info, runningTotal, st)
				result += adj
				runningTotal += adj
			}
		}
	}
	return result
}

// adjustHorizontalPositionRTL is the mirror-image walk: contents shift left
// by the running adjustment while the line itself grows toward increasing
// width.
func (t *Tree) adjustHorizontalPositionRTL(run BoxID, info *JustificationInfo, adjust float64, st *justifyState) float64 {
	b := t.Box(run)
	countThis := justifiesText(b.Style)
	runningTotal := adjust
	var result float64
	for _, ic := range b.Run.Inline {
		switch {
		case ic.Text != nil:
			ic.Text.X -= int(math.Round(runningTotal))
			if countThis {
				adj := st.textAdjustment(ic.Text, info)
				ic.Text.Width += int(math.Round(adj))
				result += adj
				runningTotal += adj
			}
		default:
			child := t.Box(ic.Box)
			child.X -= int(math.Round(runningTotal))
			if child.Kind == KindInlineRun {
				adj := t.adjustHorizontalPositionRTL(ic.Box, info, runningTotal, st)
				result += adj
				runningTotal += adj
			}
		}
	}
	return result
}

// prunePending drops trailing pending nested runs, then reports whether the
// run itself is still pending.
func (t *Tree) prunePending(run BoxID) bool {
	b := t.Box(run)
	for i := len(b.Run.Inline) - 1; i >= 0; i-- {
		ic := b.Run.Inline[i]
		if ic.Text != nil || t.Box(ic.Box).Kind != KindInlineRun {
			break
		}
		if t.prunePending(ic.Box) {
			b.Run.Inline = b.Run.Inline[:i]
		} else {
			break
		}
	}
	return b.Run.Pending && len(b.Run.Inline) == 0
}

// findTrailingText returns the last text of the run, descending into
// nested trailing runs. Returns nil when the run ends in a non-run box.
func (t *Tree) findTrailingText(run BoxID) *InlineText {
	b := t.Box(run)
	for i := len(b.Run.Inline) - 1; i >= 0; i-- {
		ic := b.Run.Inline[i]
		if ic.Text != nil {
			return ic.Text
		}
		if t.Box(ic.Box).Kind == KindInlineRun {
			if tx := t.findTrailingText(ic.Box); tx != nil {
				return tx
			}
			continue
		}
		return nil
	}
	return nil
}

// runContainsVisibleContent reports whether any text or nested box of the
// run would paint something.
func (t *Tree) runContainsVisibleContent(run BoxID) bool {
	b := t.Box(run)
	for _, ic := range b.Run.Inline {
		switch {
		case ic.Text != nil:
			if !ic.Text.IsEmpty() {
				return true
			}
		case t.Box(ic.Box).Kind == KindInlineRun:
			if t.runContainsVisibleContent(ic.Box) {
				return true
			}
		default:
			child := t.Box(ic.Box)
			if child.Width() > 0 || child.Height > 0 {
				return true
			}
		}
	}
	return false
}

// runHasDynamicFunctions reports whether the run carries any dynamic text.
func (t *Tree) runHasDynamicFunctions(run BoxID) bool {
	b := t.Box(run)
	for _, ic := range b.Run.Inline {
		switch {
		case ic.Text != nil:
			if ic.Text.Dynamic != nil {
				return true
			}
		case t.Box(ic.Box).Kind == KindInlineRun:
			if t.runHasDynamicFunctions(ic.Box) {
				return true
			}
		}
	}
	return false
}
