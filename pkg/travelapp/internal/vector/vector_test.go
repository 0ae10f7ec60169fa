package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/travelapp/pkg/travelapp/constants"
)

func TestRasterizeArrow(t *testing.T) {
	img, err := Rasterize(constants.ArrowRightSVG, 48, 48)
	require.NoError(t, err)
	require.Equal(t, 48, img.Bounds().Dx())
	require.Equal(t, 48, img.Bounds().Dy())

	// The shaft crosses the vertical center; the corners stay transparent.
	shaft := img.RGBAAt(20, 24)
	assert.Greater(t, shaft.A, uint8(128))
	assert.Greater(t, shaft.R, uint8(128))

	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), img.RGBAAt(47, 47).A)
}

func TestRasterizeInvalidSize(t *testing.T) {
	_, err := Rasterize(constants.ArrowRightSVG, 0, 10)
	require.Error(t, err)

	_, err = Rasterize(constants.SuitcaseSVG, 10, -1)
	require.Error(t, err)
}
