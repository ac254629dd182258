package image

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromImageGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(1, 0, color.Gray{Y: 100})

	src := FromImage(img)
	require.Equal(t, 2, src.Width())
	require.Equal(t, 2, src.Height())

	lum, err := src.LuminanceAt(1, 0)
	require.NoError(t, err)
	require.Equal(t, uint8(100), lum)

	lum, err = src.LuminanceAt(0, 0)
	require.NoError(t, err)
	require.Equal(t, uint8(0), lum)
}

func TestFromImageRGBAverages(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 30, G: 60, B: 90, A: 255})

	lum, err := FromImage(img).LuminanceAt(0, 0)
	require.NoError(t, err)
	require.Equal(t, uint8(60), lum)
}

func TestFromImageNonZeroOrigin(t *testing.T) {
	img := image.NewGray(image.Rect(10, 20, 12, 22))
	img.SetGray(10, 20, color.Gray{Y: 42})

	src := FromImage(img)
	require.Equal(t, 2, src.Width())

	lum, err := src.LuminanceAt(0, 0)
	require.NoError(t, err)
	require.Equal(t, uint8(42), lum)
}

func TestConverterPrepare(t *testing.T) {
	c := &Converter{StripeSize: 408}

	short := image.NewGray(image.Rect(0, 0, 10, 100))
	require.Equal(t, 100, c.Prepare(short).Height(), "short images pass through")

	tall := image.NewGray(image.Rect(0, 0, 100, 816))
	prepared := c.Prepare(tall)
	require.Equal(t, 408, prepared.Height(), "tall images are scaled to the stripe")
	require.Equal(t, 50, prepared.Width(), "aspect ratio is kept")
}
