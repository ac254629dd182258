package printer

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	logInternal "github.com/AlexStarov/ptraster-GoLang-lib/log"
)

// The two printers identify themselves in the title of their admin page.
var (
	marker9800PCN = []byte("<TITLE>Brother PT-9800PCN</TITLE>")
	markerP950NW  = []byte("<title>Brother PT-P950NW</title>")
)

// Detector probes network printers for their model and caches the answer per
// address. Entries are never evicted; a printer swapped behind an address
// keeps its stale entry for the detector's lifetime.
type Detector struct {
	client *http.Client

	mu    sync.Mutex
	cache map[string]Model
}

func NewDetector() *Detector {
	return &Detector{
		client: &http.Client{Timeout: 10 * time.Second},
		cache:  make(map[string]Model),
	}
}

// DefaultDetector serves callers that do not manage their own cache scope.
var DefaultDetector = NewDetector()

// Detect returns the model of the printer at addr (host or host:port of its
// web interface). Probe failures yield ModelError, an unrecognized admin
// page ModelUnknown; neither is cached, so a printer that comes online later
// can still be recognized.
func (d *Detector) Detect(addr string) Model {
	d.mu.Lock()
	cached, ok := d.cache[addr]
	d.mu.Unlock()
	if ok {
		return cached
	}

	model, err := d.probe(addr)
	if err != nil {
		logInternal.Warnf("failed to detect printer at %s: %v", addr, err)
		return ModelError
	}
	if model != ModelUnknown {
		d.mu.Lock()
		d.cache[addr] = model
		d.mu.Unlock()
	}
	return model
}

func (d *Detector) probe(addr string) (Model, error) {
	// /admin/default.html is the only URL both supported printers serve.
	resp, err := d.client.Get(fmt.Sprintf("http://%s/admin/default.html", addr))
	if err != nil {
		return ModelError, err
	}
	defer resp.Body.Close()

	// The page is readable even when the printer answers 401.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ModelError, err
	}

	switch {
	case bytes.Contains(body, marker9800PCN):
		return Model9800PCN, nil
	case bytes.Contains(body, markerP950NW):
		return ModelP950NW, nil
	}
	return ModelUnknown, nil
}
