// Package layout holds the screen geometry that does not need a renderer:
// word wrapping, image fitting and page indicator placement.
package layout

import (
	"math"
	"strings"
)

// Measure returns the rendered width of s.
type Measure func(s string) int32

// Wrap breaks text into lines no wider than maxWidth, splitting on spaces.
// Explicit newlines are kept. A single word wider than maxWidth gets a line
// of its own.
func Wrap(text string, maxWidth int32, measure Measure) []string {
	if text == "" {
		return nil
	}

	normalized := strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")

	var lines []string
	for _, paragraph := range strings.Split(normalized, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if measure(candidate) > maxWidth {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}
	return lines
}

// FitWidth scales a w x h box to targetW wide, keeping its aspect ratio,
// then shrinks it further if it is taller than maxH. Non-positive inputs
// yield a zero size.
func FitWidth(w, h, targetW, maxH int32) (int32, int32) {
	if w <= 0 || h <= 0 || targetW <= 0 {
		return 0, 0
	}

	outW := targetW
	outH := int32(math.Round(float64(h) * float64(targetW) / float64(w)))

	if maxH > 0 && outH > maxH {
		outW = int32(math.Round(float64(outW) * float64(maxH) / float64(outH)))
		outH = maxH
	}
	return outW, outH
}

// Segment is one page indicator's horizontal extent.
type Segment struct {
	X int32
	W int32
	// Emphasis is 1 for the fully active indicator and 0 for an inactive one.
	Emphasis float64
}

// IndicatorSizes holds the dimensions of a row of page indicators.
type IndicatorSizes struct {
	ActiveWidth   int32
	InactiveWidth int32
	Spacing       int32
}

// TotalWidth returns the row width, which does not change while the
// active indicator moves.
func (s IndicatorSizes) TotalWidth(count int) int32 {
	if count <= 0 {
		return 0
	}
	n := int32(count)
	return s.ActiveWidth + (n-1)*s.InactiveWidth + (n-1)*s.Spacing
}

// Indicators lays out count indicators centered on centerX. position is the
// possibly fractional active index; while it moves between two indicators
// the width flows from one to the other.
func Indicators(sizes IndicatorSizes, count int, position float64, centerX int32) []Segment {
	if count <= 0 {
		return nil
	}

	position = math.Max(0, math.Min(position, float64(count-1)))

	segments := make([]Segment, count)
	extra := float64(sizes.ActiveWidth - sizes.InactiveWidth)

	// Widths are accumulated in float and rounded at the edges so adjacent
	// indicators never overlap or leave a one pixel gap.
	x := float64(centerX - sizes.TotalWidth(count)/2)
	for i := range segments {
		emphasis := math.Max(0, 1-math.Abs(float64(i)-position))
		end := x + float64(sizes.InactiveWidth) + extra*emphasis

		segments[i] = Segment{
			X:        int32(math.Round(x)),
			W:        int32(math.Round(end)) - int32(math.Round(x)),
			Emphasis: emphasis,
		}
		x = end + float64(sizes.Spacing)
	}
	return segments
}
