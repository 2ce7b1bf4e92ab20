package css

import (
	"strconv"
	"strings"
)

// Style holds resolved CSS properties for a box. Cascade and inheritance
// happen upstream; by the time a Style reaches the layout engine every
// property value is already computed.
type Style struct {
	Properties map[string]string
}

func NewStyle() *Style {
	return &Style{Properties: make(map[string]string)}
}

func (s *Style) Get(property string) (string, bool) {
	val, ok := s.Properties[property]
	return val, ok
}

func (s *Style) Set(property, value string) {
	s.Properties[property] = value
}

// Clone returns an independent copy of the style.
func (s *Style) Clone() *Style {
	c := NewStyle()
	for k, v := range s.Properties {
		c.Properties[k] = v
	}
	return c
}

func (s *Style) GetLength(property string) (float64, bool) {
	val, ok := s.Get(property)
	if !ok {
		return 0, false
	}
	return ParseLength(val)
}

// ParseLength parses a pixel length value (e.g., "100px" or "100").
func ParseLength(val string) (float64, bool) {
	val = strings.TrimSpace(val)
	val = strings.TrimSuffix(val, "px")
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// Length is a pixel length or a percentage of some reference width.
type Length struct {
	Value   float64
	Percent bool
}

// Resolve returns the length in pixels, resolving percentages against base.
func (l Length) Resolve(base int) float64 {
	if l.Percent {
		return l.Value / 100 * float64(base)
	}
	return l.Value
}

// ParseLengthOrPercent parses "12px", "12" or "1.5%".
func ParseLengthOrPercent(val string) (Length, bool) {
	val = strings.TrimSpace(val)
	if strings.HasSuffix(val, "%") {
		num, err := strconv.ParseFloat(strings.TrimSuffix(val, "%"), 64)
		if err != nil {
			return Length{}, false
		}
		return Length{Value: num, Percent: true}, true
	}
	num, ok := ParseLength(val)
	if !ok {
		return Length{}, false
	}
	return Length{Value: num}, true
}

// TextAlign represents the text-align property value
type TextAlign string

const (
	TextAlignLeft    TextAlign = "left"
	TextAlignCenter  TextAlign = "center"
	TextAlignRight   TextAlign = "right"
	TextAlignJustify TextAlign = "justify"
	TextAlignStart   TextAlign = "start"
)

// GetTextAlign returns the text-align value (default: left)
func (s *Style) GetTextAlign() TextAlign {
	if align, ok := s.Get("text-align"); ok {
		switch align {
		case "center":
			return TextAlignCenter
		case "right":
			return TextAlignRight
		case "justify":
			return TextAlignJustify
		case "start":
			return TextAlignStart
		}
	}
	return TextAlignLeft
}

// Whitespace represents the white-space property value
type Whitespace string

const (
	WhitespaceNormal  Whitespace = "normal"
	WhitespaceNowrap  Whitespace = "nowrap"
	WhitespacePre     Whitespace = "pre"
	WhitespacePreWrap Whitespace = "pre-wrap"
	WhitespacePreLine Whitespace = "pre-line"
)

// GetWhitespace returns the white-space value (default: normal)
func (s *Style) GetWhitespace() Whitespace {
	if ws, ok := s.Get("white-space"); ok {
		switch ws {
		case "nowrap":
			return WhitespaceNowrap
		case "pre":
			return WhitespacePre
		case "pre-wrap":
			return WhitespacePreWrap
		case "pre-line":
			return WhitespacePreLine
		}
	}
	return WhitespaceNormal
}

// GetLetterSpacing returns the letter-spacing in pixels (default: 0, i.e. normal)
func (s *Style) GetLetterSpacing() float64 {
	if ls, ok := s.GetLength("letter-spacing"); ok {
		return ls
	}
	return 0
}

// HasLetterSpacing reports whether a non-normal letter-spacing is set.
// Per CSS, any explicit letter-spacing disables text justification.
func (s *Style) HasLetterSpacing() bool {
	val, ok := s.Get("letter-spacing")
	if !ok || val == "normal" {
		return false
	}
	_, valid := ParseLength(val)
	return valid
}

// DecorationExtent represents how far a text decoration stretches:
// across the line's own content or across the whole block.
type DecorationExtent string

const (
	DecorationExtentLine  DecorationExtent = "line"
	DecorationExtentBlock DecorationExtent = "block"
)

// GetTextDecorationExtent returns the decoration extent (default: line)
func (s *Style) GetTextDecorationExtent() DecorationExtent {
	if ext, ok := s.Get("text-decoration-extent"); ok && ext == "block" {
		return DecorationExtentBlock
	}
	return DecorationExtentLine
}

// Default justification caps, applied when the style does not set its own.
const (
	DefaultMaxInterChar = 4.0
	DefaultMaxInterWord = 24.0
)

// GetMaxJustificationInterChar returns the cap, in pixels, on the extra
// space inserted at each inter-character gap during justification.
// Percentages resolve against parentWidth.
func (s *Style) GetMaxJustificationInterChar(parentWidth int) float64 {
	if val, ok := s.Get("max-justification-inter-char"); ok {
		if l, valid := ParseLengthOrPercent(val); valid {
			return l.Resolve(parentWidth)
		}
	}
	return DefaultMaxInterChar
}

// GetMaxJustificationInterWord returns the cap, in pixels, on the extra
// space inserted at each inter-word gap during justification.
// Percentages resolve against parentWidth.
func (s *Style) GetMaxJustificationInterWord(parentWidth int) float64 {
	if val, ok := s.Get("max-justification-inter-word"); ok {
		if l, valid := ParseLengthOrPercent(val); valid {
			return l.Resolve(parentWidth)
		}
	}
	return DefaultMaxInterWord
}

// PositionType represents the position property value
type PositionType string

const (
	PositionStatic   PositionType = "static"
	PositionRelative PositionType = "relative"
	PositionAbsolute PositionType = "absolute"
	PositionFixed    PositionType = "fixed"
)

// GetPosition returns the position type (default: static)
func (s *Style) GetPosition() PositionType {
	if pos, ok := s.Get("position"); ok {
		switch pos {
		case "relative":
			return PositionRelative
		case "absolute":
			return PositionAbsolute
		case "fixed":
			return PositionFixed
		}
	}
	return PositionStatic
}

// IsAbsolute reports whether the box is taken out of flow by absolute or
// fixed positioning.
func (s *Style) IsAbsolute() bool {
	pos := s.GetPosition()
	return pos == PositionAbsolute || pos == PositionFixed
}

// FloatType represents the float property value
type FloatType string

const (
	FloatNone  FloatType = "none"
	FloatLeft  FloatType = "left"
	FloatRight FloatType = "right"
)

// GetFloat returns the float value (default: none)
func (s *Style) GetFloat() FloatType {
	if floatVal, ok := s.Get("float"); ok {
		switch floatVal {
		case "left":
			return FloatLeft
		case "right":
			return FloatRight
		}
	}
	return FloatNone
}

// IsVisible reports whether content with this style paints at all.
func (s *Style) IsVisible() bool {
	if vis, ok := s.Get("visibility"); ok && vis == "hidden" {
		return false
	}
	if disp, ok := s.Get("display"); ok && disp == "none" {
		return false
	}
	return true
}

// GetFontSize returns the font-size in pixels (default: 16)
func (s *Style) GetFontSize() float64 {
	if size, ok := s.GetLength("font-size"); ok {
		return size
	}
	return 16
}

// GetLineHeight returns the line-height in pixels (default: 1.2 * font-size)
func (s *Style) GetLineHeight() float64 {
	if lh, ok := s.GetLength("line-height"); ok {
		return lh
	}
	return s.GetFontSize() * 1.2
}

// DeriveAnonymousBlock returns a copy of the style suitable for an
// anonymous block wrapper, as used when a line box is restyled from its
// parent's source element.
func (s *Style) DeriveAnonymousBlock() *Style {
	c := s.Clone()
	c.Set("display", "block")
	return c
}

// Resolver resolves the computed style for a source element. It is how the
// engine re-derives styles during a restyling pass; the actual cascade
// lives outside this module.
type Resolver interface {
	StyleFor(element string) *Style
}
