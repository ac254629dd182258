package image

import (
	"fmt"
)

// Threshold is the luminance at or below which a dot is printed. Hard
// threshold, no dithering.
const Threshold = 230

// RasterColumn samples column x of src into a stripe of exactly stripeBytes
// bytes, 8 vertically packed dots per byte, most significant bit first.
// offset shifts the image down inside the stripe: the image row for a dot is
// byteIdx*8 + bitIdx - offset, and dots that land outside the image stay
// unprinted.
func RasterColumn(src Source, x, stripeBytes, offset int) ([]byte, error) {
	stripe := make([]byte, stripeBytes)
	width := src.Width()
	height := src.Height()

	for idx := 0; idx < stripeBytes; idx++ {
		var bits byte
		for bit := 0; bit < 8; bit++ {
			y := idx*8 + bit - offset
			if x < 0 || x >= width || y < 0 || y >= height {
				continue
			}
			px, err := src.LuminanceAt(x, y)
			if err != nil {
				return nil, fmt.Errorf("sample pixel (%d,%d): %w", x, y, err)
			}
			if px <= Threshold {
				bits |= 0x80 >> uint(bit)
			}
		}
		stripe[idx] = bits
	}
	return stripe, nil
}
