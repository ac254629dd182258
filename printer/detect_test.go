package printer

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func newProbeServer(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		require.Equal(t, "/admin/default.html", r.URL.Path)
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestDetectKnownModelsAndCache(t *testing.T) {
	srv, hits := newProbeServer(t, http.StatusOK,
		"<html><head><title>Brother PT-P950NW</title></head></html>")

	d := NewDetector()
	addr := srv.Listener.Addr().String()

	require.Equal(t, ModelP950NW, d.Detect(addr))
	require.Equal(t, ModelP950NW, d.Detect(addr))
	require.Equal(t, int32(1), atomic.LoadInt32(hits), "second lookup must hit the cache")
}

func TestDetectReads401Body(t *testing.T) {
	// The 9800PCN wants credentials for its admin page but still identifies
	// itself in the error body.
	srv, _ := newProbeServer(t, http.StatusUnauthorized,
		"<HTML><HEAD><TITLE>Brother PT-9800PCN</TITLE></HEAD></HTML>")

	d := NewDetector()
	require.Equal(t, Model9800PCN, d.Detect(srv.Listener.Addr().String()))
}

func TestDetectUnknownBodyNotCached(t *testing.T) {
	srv, hits := newProbeServer(t, http.StatusOK, "<html><title>Some Other Device</title></html>")

	d := NewDetector()
	addr := srv.Listener.Addr().String()

	require.Equal(t, ModelUnknown, d.Detect(addr))
	require.Equal(t, ModelUnknown, d.Detect(addr))
	require.Equal(t, int32(2), atomic.LoadInt32(hits), "unknown results must not be cached")
}

func TestDetectNetworkErrorSentinel(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.Listener.Addr().String()
	srv.Close()

	d := NewDetector()
	require.Equal(t, ModelError, d.Detect(addr))

	// The sentinel still resolves to usable default geometry.
	require.Equal(t, StripeSizeDefault, StripeSize(ModelError))
}
