// Package constants defines shared constants, types, and layout values
// used throughout the travelapp UI.
package constants

import "time"

// Development is the ENVIRONMENT value that enables development mode
// (windowed, fixed window size, verbose internal logging).
const Development = "DEV"

// VirtualButton represents an abstract input button, mapped from keyboard,
// game controller or raw evdev input.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Input timing.
const (
	DefaultInputDelay = 20 * time.Millisecond // Debounce delay between input events
	FrameDelay        = 16                    // Milliseconds to wait for events per frame (~60fps)
)

// Onboarding layout. Sizes are in logical pixels for a 1024px wide window
// and scaled by the screen to the actual window width.
const (
	SlideImageWidthRatio   = 0.65 // Image box edge as a fraction of window width
	TitleTopSpacing        = 42   // Gap between image and title
	DescriptionTopSpacing  = 12   // Gap between title and description
	DescriptionSideMargin  = 62   // Horizontal inset of the description
	IndicatorActiveWidth   = 62   // Width of the active page indicator
	IndicatorWidth         = 26   // Width of an inactive page indicator
	IndicatorHeight        = 8
	IndicatorSpacing       = 8
	IndicatorCornerRadius  = 4
	IndicatorButtonSpacing = 16 // Gap between indicators and the next button
	NextButtonIconSize     = 20
	NextButtonPadding      = 16 // Padding around the icon inside the round button
	BottomMargin           = 60 // Gap between the next button and the window bottom
	SlideTransitionMillis  = 350
	IndicatorAnimMillis    = 250
)

// Font sizes.
const (
	TitleFontSize = 40
	BodyFontSize  = 26
	SmallFontSize = 20
)
