package printer

import (
	"fmt"
	"image"
	"io"
	"net"
	"os"
	"strings"
	"sync"
	"time"

	// register the decoders PrintImageFile accepts
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	imgInternal "github.com/AlexStarov/ptraster-GoLang-lib/image"
	logInternal "github.com/AlexStarov/ptraster-GoLang-lib/log"
)

// rawPort is the standard raw-printing port. Jobs written there are consumed
// as-is with no response.
const rawPort = "9100"

// Printer renders raster jobs and sends them over a Transport.
type Printer struct {
	t   Transport
	cfg JobConfig

	sync.Mutex
}

// NewPrinter wraps w in the appropriate transport. Network connections to
// port 515 go through the buffered LPD transport; everything else is raw
// passthrough.
func NewPrinter(w io.ReadWriter) (*Printer, error) {
	var transport Transport

	if conn, ok := w.(net.Conn); ok {
		addr := conn.RemoteAddr().String()
		if strings.HasSuffix(addr, ":515") {
			transport = NewLPDTransport(conn, "BINARY_P1")
		} else {
			transport = &RawTransport{conn: conn}
		}
	} else if rc, ok := w.(io.ReadWriteCloser); ok {
		transport = &RawTransport{conn: rc}
	} else {
		// Any io.ReadWriter (e.g. bytes.Buffer) works for rendering into.
		transport = &RawTransport{conn: nopCloser{w}}
	}

	return &Printer{
		t:   transport,
		cfg: DefaultJobConfig(),
	}, nil
}

// NewNetPrinter connects to the printer's raw port and detects its model via
// the shared DefaultDetector. Detection failure is not fatal: the job is
// rendered with the default stripe geometry.
func NewNetPrinter(host string) (*Printer, error) {
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, rawPort), 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("connect to printer %s: %w", host, err)
	}

	p, err := NewPrinter(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	p.cfg.Model = DefaultDetector.Detect(host)
	logInternal.Debugf("printer at %s detected as %q", host, p.cfg.Model)
	return p, nil
}

// SetModel overrides the (detected) printer model.
func (p *Printer) SetModel(m Model) {
	p.Lock()
	p.cfg.Model = m
	p.Unlock()
}

// SetEncoding switches between raw and TIFF-compressed stripe payloads.
func (p *Printer) SetEncoding(e Encoding) {
	p.Lock()
	p.cfg.Encoding = e
	p.Unlock()
}

// SetMargins sets the leading and trailing margins in stripe rows.
func (p *Printer) SetMargins(top, bottom int) {
	p.Lock()
	p.cfg.TopMargin = top
	p.cfg.BottomMargin = bottom
	p.Unlock()
}

func (p *Printer) Config() JobConfig {
	p.Lock()
	defer p.Unlock()
	return p.cfg
}

// Print renders one job for the given images and streams it to the
// transport. Any image access or write error aborts the job; bytes already
// sent must be considered garbage by the printer.
func (p *Printer) Print(images ...imgInternal.Source) error {
	p.Lock()
	defer p.Unlock()
	if len(images) == 0 {
		return fmt.Errorf("no images to print")
	}
	return RenderJob(p.t, images, p.cfg)
}

// PrintImageFile decodes an image file, scales it to the stripe height if
// needed and prints it.
func (p *Printer) PrintImageFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	img, format, err := image.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	logInternal.Debugf("loaded %s image from %s", format, path)

	conv := &imgInternal.Converter{StripeSize: StripeSize(p.Config().Model)}
	return p.Print(conv.Prepare(img))
}

// Write sends raw bytes to the transport, bypassing the framer.
func (p *Printer) Write(buf []byte) (int, error) {
	return p.t.Write(buf)
}

// CloseConnection closes the transport. For LPD this is what actually
// submits the job.
func (p *Printer) CloseConnection() error {
	return p.t.Close()
}
