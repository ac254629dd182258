package printer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripeSizeKnownModels(t *testing.T) {
	require.Equal(t, 408, StripeSize(ModelP950NW))
	require.Equal(t, 312, StripeSize(Model9800PCN))
}

func TestStripeSizeFallsBackToDefault(t *testing.T) {
	require.Equal(t, StripeSizeDefault, StripeSize(ModelUnknown))
	require.Equal(t, StripeSizeDefault, StripeSize(ModelError))
	require.Equal(t, StripeSizeDefault, StripeSize(Model("QL-820NWB")))
}

func TestStripeSizesAreWholeBytes(t *testing.T) {
	for model, size := range stripeSizeByModel {
		require.Zero(t, size%8, "model %s", model)
	}
	require.Zero(t, StripeSizeDefault%8)
}
