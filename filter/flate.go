// SPDX-License-Identifier: GPL-3.0-or-later

package filter

import (
	"io"

	"github.com/klauspost/compress/zlib"
)

// FlateProducer decodes a FlateDecode-encoded stream, optionally
// layering a predictor on top (spec §4.F).
type FlateProducer struct {
	inner ReaderProducer
}

// NewFlateDecoder returns a Producer that inflates r, applying the
// predictor described by opts (a zero PredictorOptions means no
// predictor).
func NewFlateDecoder(r io.Reader, opts PredictorOptions) (*FlateProducer, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, &DecodeError{Filter: "FlateDecode", Err: err}
	}
	decoded := DecodePredictor(zr, opts)
	return &FlateProducer{inner: ReaderProducer{R: decoded}}, nil
}

func (p *FlateProducer) Resume(dst []byte) (int, State, error) {
	n, state, err := p.inner.Resume(dst)
	if err != nil {
		return n, StateErrored, &DecodeError{Filter: "FlateDecode", Err: err}
	}
	return n, state, nil
}

func (p *FlateProducer) Alive() bool { return p.inner.Alive() }

// NewFlateEncoder returns a WriteCloser that deflates everything
// written to it into w at the given compression level (0-9),
// applying the predictor described by opts before compression. Close
// must be called to flush the final block.
func NewFlateEncoder(w io.Writer, level int, opts PredictorOptions) io.WriteCloser {
	zw, err := zlib.NewWriterLevel(w, level)
	if err != nil {
		zw = zlib.NewWriter(w)
	}
	return EncodePredictor(zw, opts)
}

// DecodeError wraps a codec failure with the name of the offending
// filter, mirroring the root package's FilterError without depending
// on it.
type DecodeError struct {
	Filter string
	Err    error
}

func (e *DecodeError) Error() string {
	return "problem while decoding " + e.Filter + " encoded stream: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }
