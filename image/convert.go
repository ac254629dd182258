package image

import (
	"image"

	"github.com/nfnt/resize"

	logInternal "github.com/AlexStarov/ptraster-GoLang-lib/log"
)

// Converter prepares arbitrary decoded images for a printer whose stripe is
// StripeSize dots tall. Images taller than the stripe are scaled down to fit;
// shorter images pass through untouched and get bottom-aligned by the framer.
type Converter struct {
	// StripeSize is the printable height in dots.
	StripeSize int
}

func (c *Converter) Prepare(img image.Image) Source {
	h := img.Bounds().Dy()
	if c.StripeSize > 0 && h > c.StripeSize {
		logInternal.Debugf("image height %d exceeds stripe %d, scaling down", h, c.StripeSize)
		img = resize.Resize(0, uint(c.StripeSize), img, resize.Lanczos3)
	}
	return FromImage(img)
}
