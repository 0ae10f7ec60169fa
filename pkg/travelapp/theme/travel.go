// Package theme provides the default look of the travel app.
package theme

import (
	"github.com/BrandonKowalski/travelapp/pkg/travelapp/internal"
)

// DefaultAccentColor is the brand green used for the active page indicator
// and the next button.
const DefaultAccentColor uint32 = 0x29B573

// InitTravelTheme creates the light travel theme with the given font and
// accent color. A zero accent selects DefaultAccentColor.
func InitTravelTheme(fontPath string, accentHex uint32) internal.Theme {
	if accentHex == 0 {
		accentHex = DefaultAccentColor
	}

	return internal.Theme{
		AccentColor:      internal.HexToColor(accentHex),
		IndicatorColor:   internal.HexToColor(0xD9D9D9),
		ButtonIconColor:  internal.HexToColor(0xFFFFFF),
		TextColor:        internal.HexToColor(0x1B1E28),
		DescriptionColor: internal.HexToColor(0x7D848D),
		BackgroundColor:  internal.HexToColor(0xFFFFFF),
		FontPath:         fontPath,
	}
}
