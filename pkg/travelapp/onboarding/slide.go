package onboarding

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors for deck construction.
var (
	// ErrEmptyDeck is returned when a deck is built without any slides.
	ErrEmptyDeck = errors.New("onboarding: deck must contain at least one slide")

	// ErrNilDeck is returned when a controller is created without a deck.
	ErrNilDeck = errors.New("onboarding: deck is nil")
)

// Slide is a single onboarding page. Slides are values and never change
// after construction.
type Slide struct {
	ID          uuid.UUID
	ImageRef    string // Image path or asset name shown above the title
	Title       string
	Description string
}

// NewSlide creates a slide with a fresh identifier.
func NewSlide(imageRef, title, description string) Slide {
	return Slide{
		ID:          uuid.New(),
		ImageRef:    imageRef,
		Title:       title,
		Description: description,
	}
}

// OutOfRangeError is returned by Deck.SlideAt for an index outside [0, Count).
type OutOfRangeError struct {
	Index int
	Count int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("onboarding: slide index %d out of range [0, %d)", e.Index, e.Count)
}

// IsOutOfRange reports whether err is, or wraps, an OutOfRangeError.
func IsOutOfRange(err error) bool {
	var rangeErr *OutOfRangeError
	return errors.As(err, &rangeErr)
}

// Deck is the fixed, ordered list of slides shown during onboarding.
type Deck struct {
	slides []Slide
}

// NewDeck builds a deck from the given slides. The slice is copied so later
// changes by the caller do not leak into the deck.
func NewDeck(slides ...Slide) (*Deck, error) {
	if len(slides) == 0 {
		return nil, ErrEmptyDeck
	}

	owned := make([]Slide, len(slides))
	copy(owned, slides)

	return &Deck{slides: owned}, nil
}

// Count returns the number of slides in the deck.
func (d *Deck) Count() int {
	return len(d.slides)
}

// SlideAt returns the slide at index.
func (d *Deck) SlideAt(index int) (Slide, error) {
	if index < 0 || index >= len(d.slides) {
		return Slide{}, &OutOfRangeError{Index: index, Count: len(d.slides)}
	}
	return d.slides[index], nil
}

// MustSlideAt is like SlideAt but panics on an invalid index.
// Use it where the index is guaranteed by an invariant.
func (d *Deck) MustSlideAt(index int) Slide {
	slide, err := d.SlideAt(index)
	if err != nil {
		panic(err)
	}
	return slide
}

// Slides returns a copy of the deck's slides in order.
func (d *Deck) Slides() []Slide {
	out := make([]Slide, len(d.slides))
	copy(out, d.slides)
	return out
}

// DefaultDeck returns the three travel slides shipped with the app.
func DefaultDeck() *Deck {
	deck, _ := NewDeck(
		NewSlide(
			"onboarding_slide_1",
			"Explore Destinations",
			"Discover the places for your trip in the world and feel great.",
		),
		NewSlide(
			"onboarding_slide_2",
			"Choose a Destination",
			"Select a place for your trip easily and know the exact cost of the tour.",
		),
		NewSlide(
			"onboarding_slide_3",
			"Fly to Destination",
			"Finally, get ready for the tour and go to your desired destination.",
		),
	)
	return deck
}
