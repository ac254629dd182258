package printer

import (
	"bytes"
	"io"

	imgInternal "github.com/AlexStarov/ptraster-GoLang-lib/image"
	utilInternal "github.com/AlexStarov/ptraster-GoLang-lib/util"
)

// Encoding selects how stripe payloads go on the wire. The value doubles as
// the operand of the 'M' compression-mode command.
type Encoding byte

const (
	// EncodingRaw sends stripes uncompressed.
	EncodingRaw Encoding = 0x00
	// EncodingTIFF run-length compresses each stripe (see compressTIFF).
	EncodingTIFF Encoding = 0x02
)

// JobConfig describes one print job. The zero value prints raw-encoded with
// default geometry and no margins; DefaultJobConfig matches the margins the
// Windows driver uses.
type JobConfig struct {
	Model    Model
	Encoding Encoding

	// Margins in stripe rows, sent as empty rows for compatibility across
	// printers instead of a margin command.
	TopMargin    int
	BottomMargin int
}

func DefaultJobConfig() JobConfig {
	return JobConfig{
		Encoding:     EncodingRaw,
		TopMargin:    8,
		BottomMargin: 8,
	}
}

// jobWriter keeps the command emitters below free of per-write error
// plumbing; the first write error sticks and later writes are dropped.
type jobWriter struct {
	w   io.Writer
	err error
}

func (jw *jobWriter) write(b []byte) {
	if jw.err != nil {
		return
	}
	_, jw.err = jw.w.Write(b)
}

// RenderJob writes a complete raster job for images to w, in the fixed
// command order the printers require: init and mode setup once, then one
// block per image (print info, compression mode, margin rows, one row frame
// per image column, margin rows), page feeds between images and a final
// print command. The protocol is reverse-engineered from what the Windows
// driver sends; most commands are documented in Brother's raster command
// reference (cv_pth500p700e500).
func RenderJob(w io.Writer, images []imgInternal.Source, cfg JobConfig) error {
	stripeSize := StripeSize(cfg.Model)
	stripeBytes := stripeSize / 8

	jw := &jobWriter{w: w}

	jw.write([]byte{0x1b, '@'})                  // Init
	jw.write([]byte{0x1b, 'i', 'a', 0x01})       // Raster mode
	jw.write([]byte{0x1b, 'i', 'M', 0x00})       // Various mode settings: no auto cut
	jw.write([]byte{0x1b, 'i', 'd', 0x00, 0x00}) // Margin = 0

	empty := emptyRowFrame(stripeBytes, cfg.Encoding)

	for i, src := range images {
		if i > 0 {
			jw.write([]byte{0x0c}) // page feed
		}

		jw.write(printInfoCommand(src.Width(), cfg, i == 0))
		jw.write([]byte{'M', byte(cfg.Encoding)}) // Select compression mode

		for n := 0; n < cfg.TopMargin; n++ {
			jw.write(empty)
		}

		// Bottom-align short images; taller ones get their overhang clipped
		// by the rasterizer.
		offset := stripeSize - src.Height()
		for x := 0; x < src.Width(); x++ {
			stripe, err := imgInternal.RasterColumn(src, x, stripeBytes, offset)
			if err != nil {
				return err
			}
			jw.write(rowFrame(stripe, cfg.Encoding))
		}

		// The trailing edge reuses the top margin count; BottomMargin only
		// sizes the raster number. Kept as the original driver behaves.
		for n := 0; n < cfg.TopMargin; n++ {
			jw.write(empty)
		}
	}

	jw.write([]byte{0x1a}) // Print

	return jw.err
}

// Render buffers a whole job in memory. Convenient for tests and for blasting
// the job over a socket in one write.
func Render(images []imgInternal.Source, cfg JobConfig) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderJob(&buf, images, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// printInfoCommand builds ESC i z. The "raster number" tells the printer the
// logical page length: image width plus both margins, unrelated to the
// stripe height.
func printInfoCommand(imageWidth int, cfg JobConfig, first bool) []byte {
	rasterNumber := imageWidth + cfg.TopMargin + cfg.BottomMargin

	cmd := []byte{
		0x1b, 'i', 'z', // Print information command
		0xc0, // PI_RECOVER | PI_QUALITY
		0x00, // Media type: not set
		0x00, // Media width: 0 = unspecified
		0x00, // Media length: not set
	}
	cmd = append(cmd, utilInternal.IntLowHigh(rasterNumber, 4)...)
	if first {
		cmd = append(cmd, 0x00)
	} else {
		cmd = append(cmd, 0x01) // starting page
	}
	cmd = append(cmd, 0x00) // reserved
	return cmd
}

// rowFrame wraps one stripe payload as 'G' + 16-bit little-endian length +
// payload. The declared length always equals the payload length.
func rowFrame(stripe []byte, enc Encoding) []byte {
	payload := stripe
	if enc == EncodingTIFF {
		payload = compressTIFF(stripe)
	}
	frame := make([]byte, 0, 3+len(payload))
	frame = append(frame, 'G')
	frame = append(frame, utilInternal.IntLowHigh(len(payload), 2)...)
	return append(frame, payload...)
}

// emptyRowFrame is a blank stripe frame, used to draw margins. In TIFF mode
// an all-zero stripe of N bytes compresses to exactly (1-N, 0x00).
func emptyRowFrame(stripeBytes int, enc Encoding) []byte {
	return rowFrame(make([]byte, stripeBytes), enc)
}
