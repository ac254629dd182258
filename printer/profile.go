package printer

// Model identifies a supported printer. Detection may also yield the
// ModelUnknown and ModelError sentinels; both fall back to the default
// stripe geometry.
type Model string

const (
	ModelP950NW  Model = "P950NW"
	Model9800PCN Model = "9800PCN"

	ModelUnknown Model = ""
	ModelError   Model = "error"
)

// Stripe heights in dots for 18mm tape. Always a multiple of 8 so a stripe
// is a whole number of bytes on the wire.
var stripeSizeByModel = map[Model]int{
	ModelP950NW:  408,
	Model9800PCN: 312,
}

// StripeSizeDefault is used for any model not in the table.
const StripeSizeDefault = 408

// StripeSize returns the stripe height in dots for a model, falling back to
// StripeSizeDefault for unknown models and sentinels.
func StripeSize(m Model) int {
	if size, ok := stripeSizeByModel[m]; ok {
		return size
	}
	return StripeSizeDefault
}
