package layout

import "golang.org/x/text/unicode/bidi"

// CharCounts accumulates the number of justifiable gap points found while
// scanning a line's inline runs: spaces stretch at inter-word gaps,
// everything else at inter-character gaps.
type CharCounts struct {
	SpaceCount    int
	NonSpaceCount int
}

// JustificationInfo carries the extra pixels added at each justifiable
// space and non-space gap after a line has been justified.
type JustificationInfo struct {
	SpaceAdjust    float64
	NonSpaceAdjust float64
}

// FloatDistances records how far floated content intrudes into a line's
// available band on each side.
type FloatDistances struct {
	LeftFloatDistance  int
	RightFloatDistance int
}

// DecorationKind identifies a text decoration drawn across a line.
type DecorationKind uint8

const (
	DecorationUnderline DecorationKind = iota
	DecorationOverline
	DecorationLineThrough
)

// TextDecoration describes one decoration stroke: its vertical offset from
// the line box top and its thickness, both in pixels.
type TextDecoration struct {
	Kind      DecorationKind
	Offset    int
	Thickness int
}

// MarkerData tracks which line a list marker is positioned against, so the
// marker can follow the first line of its principal box across relayouts.
type MarkerData struct {
	referenceLine         BoxID
	previousReferenceLine BoxID
}

func NewMarkerData() *MarkerData {
	return &MarkerData{referenceLine: None, previousReferenceLine: None}
}

func (m *MarkerData) ReferenceLine() BoxID { return m.referenceLine }

func (m *MarkerData) SetReferenceLine(line BoxID) {
	m.previousReferenceLine = m.referenceLine
	m.referenceLine = line
}

// RestorePreviousReferenceLine undoes SetReferenceLine if line is the
// current reference. Called when a line is reset before relayout.
func (m *MarkerData) RestorePreviousReferenceLine(line BoxID) {
	if m.referenceLine == line {
		m.referenceLine = m.previousReferenceLine
	}
}

// Direction is the resolved bidi direction of a line.
type Direction uint8

const (
	LTR Direction = iota
	RTL
)

// DirectionOf returns the paragraph-level direction of s. Mixed and neutral
// paragraphs resolve to LTR.
func DirectionOf(s string) Direction {
	var p bidi.Paragraph
	p.SetString(s)
	order, err := p.Order()
	if err != nil {
		return LTR
	}
	if order.Direction() == bidi.RightToLeft {
		return RTL
	}
	return LTR
}
