package internal

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

// FillRoundedRect draws a filled rectangle with circular corners, one
// scanline at a time. The radius is clamped to half the shorter side.
func FillRoundedRect(renderer *sdl.Renderer, rect sdl.Rect, radius int32, color sdl.Color) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	radius = min(radius, rect.W/2, rect.H/2)

	renderer.SetDrawColor(color.R, color.G, color.B, color.A)

	for row := int32(0); row < rect.H; row++ {
		inset := int32(0)
		switch {
		case row < radius:
			inset = cornerInset(radius, radius-row)
		case row >= rect.H-radius:
			inset = cornerInset(radius, row-(rect.H-radius)+1)
		}
		renderer.FillRect(&sdl.Rect{X: rect.X + inset, Y: rect.Y + row, W: rect.W - 2*inset, H: 1})
	}
}

// FillCircle draws a filled circle centered on (cx, cy).
func FillCircle(renderer *sdl.Renderer, cx, cy, radius int32, color sdl.Color) {
	if radius <= 0 {
		return
	}
	size := radius * 2
	FillRoundedRect(renderer, sdl.Rect{X: cx - radius, Y: cy - radius, W: size, H: size}, radius, color)
}

// cornerInset returns how far a scanline dist rows into a corner of the
// given radius starts from the straight edge.
func cornerInset(radius, dist int32) int32 {
	dy := float64(dist) - 0.5
	r := float64(radius)
	return int32(math.Round(r - math.Sqrt(max(r*r-dy*dy, 0))))
}
