package internal

import (
	"fmt"

	"github.com/BrandonKowalski/travelapp/pkg/travelapp/internal/vector"
	"github.com/veandco/go-sdl2/sdl"
)

// SVGTexture rasterizes an SVG document into a texture of the given size.
func SVGTexture(renderer *sdl.Renderer, svg string, width, height int32) (*sdl.Texture, error) {
	img, err := vector.Rasterize(svg, int(width), int(height))
	if err != nil {
		return nil, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, width, height, 32, uint32(sdl.PIXELFORMAT_RGBA32))
	if err != nil {
		return nil, fmt.Errorf("create icon surface: %w", err)
	}
	defer surface.Free()

	if err := surface.Lock(); err != nil {
		return nil, fmt.Errorf("lock icon surface: %w", err)
	}
	pixels := surface.Pixels()
	rowBytes := int(width) * 4
	for y := 0; y < int(height); y++ {
		copy(pixels[y*int(surface.Pitch):y*int(surface.Pitch)+rowBytes], img.Pix[y*img.Stride:y*img.Stride+rowBytes])
	}
	surface.Unlock()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create icon texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
