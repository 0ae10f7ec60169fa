package onboarding

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// deckFile mirrors the on-disk TOML layout:
//
//	[[slide]]
//	image = "images/onboarding_slide_1.png"
//	title = "Explore Destinations"
//	description = "Discover the places for your trip in the world and feel great."
type deckFile struct {
	Slides []slideEntry `toml:"slide"`
}

type slideEntry struct {
	Image       string `toml:"image"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

// LoadDeckFile reads a deck from a TOML file. Relative image paths are
// resolved against the directory containing the file.
func LoadDeckFile(path string) (*Deck, error) {
	var file deckFile
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("onboarding: decode deck %s: %w", path, err)
	}

	return buildDeck(file, meta, filepath.Dir(path))
}

// ParseDeck decodes a deck from TOML text. Image paths are kept as written.
func ParseDeck(data string) (*Deck, error) {
	var file deckFile
	meta, err := toml.Decode(data, &file)
	if err != nil {
		return nil, fmt.Errorf("onboarding: decode deck: %w", err)
	}

	return buildDeck(file, meta, "")
}

func buildDeck(file deckFile, meta toml.MetaData, baseDir string) (*Deck, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("onboarding: unknown deck keys: %s", strings.Join(keys, ", "))
	}

	slides := make([]Slide, 0, len(file.Slides))
	for i, entry := range file.Slides {
		if strings.TrimSpace(entry.Title) == "" {
			return nil, fmt.Errorf("onboarding: slide %d has no title", i)
		}

		image := entry.Image
		if image != "" && baseDir != "" && !filepath.IsAbs(image) {
			image = filepath.Join(baseDir, image)
		}

		slides = append(slides, NewSlide(image, entry.Title, entry.Description))
	}

	return NewDeck(slides...)
}
