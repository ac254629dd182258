package printer

// compressTIFF encodes one stripe with Brother's TIFF run-length scheme
// (PackBits): a non-negative marker n is followed by n+1 literal bytes, a
// negative marker -n by one byte repeated n+1 times. Rows never exceed the
// stripe size, so a literal span length always fits in a signed byte.
// See page 34 & 36 of Brother's raster command reference (cv_pth500p700e500).
func compressTIFF(row []byte) []byte {
	out := make([]byte, 0, len(row)+2)

	pos := 0
	uncompressedStart := 0
	for pos < len(row) {
		count := 0
		for pos+count+1 < len(row) && row[pos+count+1] == row[pos+count] {
			count++
		}

		if count > 0 {
			// Flush the pending literal span.
			if uncompressedStart < pos {
				out = append(out, byte(int8(pos-uncompressedStart-1)))
				out = append(out, row[uncompressedStart:pos]...)
			}

			out = append(out, byte(int8(-count)), row[pos])
			pos += count + 1
			uncompressedStart = pos
		} else {
			pos++
		}
	}

	if uncompressedStart < pos {
		out = append(out, byte(int8(pos-uncompressedStart-1)))
		out = append(out, row[uncompressedStart:pos]...)
	}

	return out
}
