package image

import (
	"image"
)

// FromImage wraps a decoded image as a Source. Grayscale images report their
// gray level directly; everything else averages the three color channels.
func FromImage(img image.Image) Source {
	if gray, ok := img.(*image.Gray); ok {
		return &graySource{img: gray}
	}
	return &rgbSource{img: img}
}

type graySource struct {
	img *image.Gray
}

func (s *graySource) Width() int  { return s.img.Bounds().Dx() }
func (s *graySource) Height() int { return s.img.Bounds().Dy() }

func (s *graySource) LuminanceAt(x, y int) (uint8, error) {
	min := s.img.Bounds().Min
	return s.img.GrayAt(min.X+x, min.Y+y).Y, nil
}

type rgbSource struct {
	img image.Image
}

func (s *rgbSource) Width() int  { return s.img.Bounds().Dx() }
func (s *rgbSource) Height() int { return s.img.Bounds().Dy() }

func (s *rgbSource) LuminanceAt(x, y int) (uint8, error) {
	min := s.img.Bounds().Min
	r, g, b, _ := s.img.At(min.X+x, min.Y+y).RGBA()
	// 16-bit channels; average first, then drop to 8 bits.
	return uint8(((r + g + b) / 3) >> 8), nil
}
