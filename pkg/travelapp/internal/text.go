package internal

import (
	"github.com/BrandonKowalski/travelapp/pkg/travelapp/internal/layout"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// RenderText returns a texture for a single line of text, or nil when the
// text is empty or cannot be rendered.
func RenderText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color) *sdl.Texture {
	if text == "" || font == nil {
		return nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		GetInternalLogger().Debug("Failed to render text", "text", text, "error", err)
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil
	}
	return texture
}

// TextBlock is pre-rendered, horizontally centered, wrapped text.
type TextBlock struct {
	lines       []*sdl.Texture
	lineHeight  int32
	lineSpacing int32
}

// NewTextBlock wraps text to maxWidth and renders each line.
func NewTextBlock(renderer *sdl.Renderer, text string, font *ttf.Font, maxWidth int32, color sdl.Color) *TextBlock {
	block := &TextBlock{lineHeight: int32(font.Height())}
	block.lineSpacing = block.lineHeight / 5

	measure := func(s string) int32 {
		w, _, err := font.SizeUTF8(s)
		if err != nil {
			return 0
		}
		return int32(w)
	}

	for _, line := range layout.Wrap(text, maxWidth, measure) {
		block.lines = append(block.lines, RenderText(renderer, line, font, color))
	}
	return block
}

// Height returns the block's rendered height.
func (b *TextBlock) Height() int32 {
	n := int32(len(b.lines))
	if n == 0 {
		return 0
	}
	return n*b.lineHeight + (n-1)*b.lineSpacing
}

// Draw renders the block centered on centerX starting at y. alpha scales
// the block's opacity.
func (b *TextBlock) Draw(renderer *sdl.Renderer, centerX, y int32, alpha uint8) {
	for _, texture := range b.lines {
		if texture != nil {
			_, _, w, h, err := texture.Query()
			if err == nil {
				texture.SetAlphaMod(alpha)
				renderer.Copy(texture, nil, &sdl.Rect{X: centerX - w/2, Y: y, W: w, H: h})
			}
		}
		y += b.lineHeight + b.lineSpacing
	}
}

func (b *TextBlock) Destroy() {
	for _, texture := range b.lines {
		if texture != nil {
			texture.Destroy()
		}
	}
	b.lines = nil
}
