// SPDX-License-Identifier: GPL-3.0-or-later

package filter

import (
	"fmt"
	"io"
)

// PredictorOptions mirrors the handful of /DecodeParms entries that
// control a predictor: Predictor itself, plus the sample geometry
// needed to compute row length and bytes-per-pixel. It is a plain
// struct (not a pdf.Dict) so this package never needs to import the
// root package.
type PredictorOptions struct {
	// Predictor is 1 (no prediction), 2 (TIFF predictor 2), or one of
	// 10-15 (PNG prediction; the decoder always honors the per-row tag
	// byte regardless of which of the five values is declared here,
	// since only the encoder's declared intent differs, not the wire
	// format).
	Predictor        int
	Colors           int
	BitsPerComponent int
	Columns          int
}

func (o PredictorOptions) normalized() PredictorOptions {
	if o.Colors == 0 {
		o.Colors = 1
	}
	if o.BitsPerComponent == 0 {
		o.BitsPerComponent = 8
	}
	if o.Columns == 0 {
		o.Columns = 1
	}
	return o
}

func (o PredictorOptions) bytesPerPixel() int {
	return (o.Colors*o.BitsPerComponent + 7) / 8
}

func (o PredictorOptions) rowLength() int {
	return (o.Columns*o.Colors*o.BitsPerComponent + 7) / 8
}

// DecodePredictor wraps r to undo the predictor described by opts. A
// Predictor of 0 or 1 returns r unchanged.
func DecodePredictor(r io.Reader, opts PredictorOptions) io.Reader {
	opts = opts.normalized()
	switch {
	case opts.Predictor <= 1:
		return r
	case opts.Predictor == 2:
		return &tiffReader{r: r, opts: opts, rowLen: opts.rowLength()}
	default:
		return &pngReader{r: r, bpp: opts.bytesPerPixel(), rowLen: opts.rowLength()}
	}
}

// EncodePredictor wraps w to apply the predictor described by opts
// before the bytes reach w. A Predictor of 0 or 1 returns w unchanged.
func EncodePredictor(w io.WriteCloser, opts PredictorOptions) io.WriteCloser {
	opts = opts.normalized()
	if opts.Predictor <= 1 {
		return w
	}
	return &predictorWriter{w: w, opts: opts, rowLen: opts.rowLength(), bpp: opts.bytesPerPixel()}
}

// --- PNG predictor, decode side -------------------------------------------

type pngReader struct {
	r      io.Reader
	bpp    int
	rowLen int
	prev   []byte
	pend   []byte
}

func (r *pngReader) Read(b []byte) (int, error) {
	n := 0
	for len(b) > 0 {
		if len(r.pend) == 0 {
			if err := r.fillRow(); err != nil {
				return n, err
			}
		}
		m := copy(b, r.pend)
		n += m
		b = b[m:]
		r.pend = r.pend[m:]
	}
	return n, nil
}

func (r *pngReader) fillRow() error {
	buf := make([]byte, 1+r.rowLen)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return err
	}
	tag := buf[0]
	cur := buf[1:]
	if r.prev == nil {
		r.prev = make([]byte, r.rowLen)
	}
	switch tag {
	case 0: // None
	case 1: // Sub
		for i := range cur {
			var left byte
			if i >= r.bpp {
				left = cur[i-r.bpp]
			}
			cur[i] += left
		}
	case 2: // Up
		for i := range cur {
			cur[i] += r.prev[i]
		}
	case 3: // Average
		for i := range cur {
			var left int
			if i >= r.bpp {
				left = int(cur[i-r.bpp])
			}
			up := int(r.prev[i])
			cur[i] += byte((left + up) / 2)
		}
	case 4: // Paeth
		for i := range cur {
			var left, upLeft byte
			if i >= r.bpp {
				left = cur[i-r.bpp]
				upLeft = r.prev[i-r.bpp]
			}
			cur[i] += paethPredictor(left, r.prev[i], upLeft)
		}
	default:
		return fmt.Errorf("filter: unsupported PNG predictor tag %d", tag)
	}
	r.prev = append([]byte(nil), cur...)
	r.pend = r.prev
	return nil
}

func paethPredictor(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// --- PNG predictor, encode side -------------------------------------------
//
// The encoder always emits the Up filter, the cheapest predictor that
// still captures most of the gain for typical image data; a decoder
// honors whatever tag byte it finds regardless, so this is a policy
// choice rather than a format requirement.

type predictorWriter struct {
	w      io.WriteCloser
	opts   PredictorOptions
	rowLen int
	bpp    int
	buf    []byte
	prev   []byte
}

func (w *predictorWriter) Write(p []byte) (int, error) {
	total := len(p)
	w.buf = append(w.buf, p...)
	for len(w.buf) >= w.rowLen {
		row := w.buf[:w.rowLen]
		if err := w.flushRow(row); err != nil {
			return 0, err
		}
		w.buf = w.buf[w.rowLen:]
	}
	return total, nil
}

func (w *predictorWriter) flushRow(row []byte) error {
	if w.opts.Predictor == 2 {
		return w.flushTIFFRow(row)
	}
	return w.flushPNGRow(row)
}

func (w *predictorWriter) flushPNGRow(row []byte) error {
	if w.prev == nil {
		w.prev = make([]byte, w.rowLen)
	}
	out := make([]byte, 1+w.rowLen)
	out[0] = 2 // Up
	for i, c := range row {
		out[1+i] = c - w.prev[i]
	}
	w.prev = append([]byte(nil), row...)
	_, err := w.w.Write(out)
	return err
}

func (w *predictorWriter) flushTIFFRow(row []byte) error {
	out := append([]byte(nil), row...)
	encodeTIFFRow(out, w.opts)
	_, err := w.w.Write(out)
	return err
}

func (w *predictorWriter) Close() error {
	if len(w.buf) > 0 {
		padded := make([]byte, w.rowLen)
		copy(padded, w.buf)
		if err := w.flushRow(padded); err != nil {
			return err
		}
		w.buf = nil
	}
	return w.w.Close()
}

// --- TIFF predictor 2 ------------------------------------------------------

type tiffReader struct {
	r      io.Reader
	opts   PredictorOptions
	rowLen int
	pend   []byte
}

func (r *tiffReader) Read(b []byte) (int, error) {
	n := 0
	for len(b) > 0 {
		if len(r.pend) == 0 {
			row := make([]byte, r.rowLen)
			if _, err := io.ReadFull(r.r, row); err != nil {
				return n, err
			}
			decodeTIFFRow(row, r.opts)
			r.pend = row
		}
		m := copy(b, r.pend)
		n += m
		b = b[m:]
		r.pend = r.pend[m:]
	}
	return n, nil
}

// decodeTIFFRow undoes horizontal sample differencing in place. Only
// 8- and 16-bit components are supported; other bit depths (1, 2, 4,
// used by indexed-color images) are left unmodified.
func decodeTIFFRow(row []byte, opts PredictorOptions) {
	colors := opts.Colors
	switch opts.BitsPerComponent {
	case 8:
		for i := colors; i < len(row); i++ {
			row[i] += row[i-colors]
		}
	case 16:
		stride := colors * 2
		for i := stride; i+1 < len(row); i += 2 {
			prev := uint16(row[i-stride])<<8 | uint16(row[i-stride+1])
			cur := uint16(row[i])<<8 | uint16(row[i+1])
			sum := prev + cur
			row[i] = byte(sum >> 8)
			row[i+1] = byte(sum)
		}
	}
}

// encodeTIFFRow applies horizontal sample differencing in place,
// mirroring decodeTIFFRow.
func encodeTIFFRow(row []byte, opts PredictorOptions) {
	colors := opts.Colors
	switch opts.BitsPerComponent {
	case 8:
		for i := len(row) - 1; i >= colors; i-- {
			row[i] -= row[i-colors]
		}
	case 16:
		stride := colors * 2
		for i := len(row) - 2; i >= stride; i -= 2 {
			prev := uint16(row[i-stride])<<8 | uint16(row[i-stride+1])
			cur := uint16(row[i])<<8 | uint16(row[i+1])
			diff := cur - prev
			row[i] = byte(diff >> 8)
			row[i+1] = byte(diff)
		}
	}
}
