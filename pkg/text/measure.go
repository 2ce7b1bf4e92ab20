// Package text provides the text-measurement collaborator consumed by the
// layout engine. Shaping and font selection stay out here; the engine only
// ever sees advance widths and vertical metrics.
package text

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
)

// Measurer reports the horizontal advance of a string and the vertical
// metrics of the font it measures with. Implementations must be cheap to
// call repeatedly; the engine re-measures dynamic content at paint time.
type Measurer interface {
	// Width returns the advance of s in pixels.
	Width(s string) int
	// LineHeight returns the height of one line box in pixels.
	LineHeight() int
	// Baseline returns the distance from the line top to the alphabetic
	// baseline in pixels.
	Baseline() int
}

// FaceMeasurer measures with a real font face loaded through gg.
type FaceMeasurer struct {
	ctx        *gg.Context
	size       float64
	lineHeight int
	baseline   int
}

// NewFaceMeasurer loads the TTF/OTF at fontPath at the given point size.
func NewFaceMeasurer(fontPath string, size float64) (*FaceMeasurer, error) {
	ctx := gg.NewContext(1, 1)
	if err := ctx.LoadFontFace(fontPath, size); err != nil {
		return nil, fmt.Errorf("load font face %s: %w", fontPath, err)
	}
	lineHeight := int(math.Ceil(size * 1.2))
	return &FaceMeasurer{
		ctx:        ctx,
		size:       size,
		lineHeight: lineHeight,
		// The alphabetic baseline sits roughly 80% down the em box.
		baseline: int(math.Round(size * 0.8)),
	}, nil
}

func (m *FaceMeasurer) Width(s string) int {
	w, _ := m.ctx.MeasureString(s)
	return int(math.Ceil(w))
}

func (m *FaceMeasurer) LineHeight() int { return m.lineHeight }
func (m *FaceMeasurer) Baseline() int   { return m.baseline }

// Fixed is a fixed-advance measurer: every rune is Advance pixels wide.
// It keeps tests and examples deterministic without loading a font.
type Fixed struct {
	Advance int
	Line    int
	Base    int
}

func (m Fixed) Width(s string) int {
	n := 0
	for range s {
		n++
	}
	return n * m.Advance
}

func (m Fixed) LineHeight() int { return m.Line }
func (m Fixed) Baseline() int   { return m.Base }
