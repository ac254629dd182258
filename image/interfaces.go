package image

// Source — the pixel accessor the rasterizer samples from. LuminanceAt
// reduces whatever the underlying sample is (grayscale value or channel
// triple) to one effective luminance on a 0–255 scale. A failing read aborts
// the encode that is consuming the source.
type Source interface {
	Width() int
	Height() int
	LuminanceAt(x, y int) (uint8, error)
}
