package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes selects the point sizes opened for each font role.
type FontSizes struct {
	Title int
	Body  int
	Small int
}

type fontSet struct {
	TitleFont *ttf.Font
	BodyFont  *ttf.Font
	SmallFont *ttf.Font
}

// Fonts holds the fonts opened by Init.
var Fonts fontSet

func initFonts(path string, sizes FontSizes) error {
	open := func(size int) (*ttf.Font, error) {
		font, err := ttf.OpenFont(path, size)
		if err != nil {
			return nil, fmt.Errorf("open font %s at %dpt: %w", path, size, err)
		}
		return font, nil
	}

	var err error
	if Fonts.TitleFont, err = open(sizes.Title); err != nil {
		return err
	}
	Fonts.TitleFont.SetStyle(ttf.STYLE_BOLD)

	if Fonts.BodyFont, err = open(sizes.Body); err != nil {
		closeFonts()
		return err
	}
	if Fonts.SmallFont, err = open(sizes.Small); err != nil {
		closeFonts()
		return err
	}
	return nil
}

func closeFonts() {
	for _, font := range []*ttf.Font{Fonts.TitleFont, Fonts.BodyFont, Fonts.SmallFont} {
		if font != nil {
			font.Close()
		}
	}
	Fonts = fontSet{}
}
