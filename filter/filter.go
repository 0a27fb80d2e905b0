// SPDX-License-Identifier: GPL-3.0-or-later

// Package filter implements the streaming decode/encode pipeline for
// stream objects: the Flate codec and the PNG/TIFF predictors layered
// on top of it. It is deliberately independent of the root pdf
// package's Dict type, so it can be imported from there without a
// cycle; callers translate a stream's /DecodeParms dictionary into a
// PredictorOptions value themselves.
package filter

import "io"

// State is the lifecycle of a Producer (spec's cooperative chunked
// producer design): a producer starts Fresh, moves to Streaming once
// Resume has been called at least once, and ends at Finished (payload
// fully delivered) or Errored (a codec error was hit).
type State int

const (
	StateFresh State = iota
	StateStreaming
	StateFinished
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateFresh:
		return "fresh"
	case StateStreaming:
		return "streaming"
	case StateFinished:
		return "finished"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Producer is a chunked, resumable source of decoded or encoded
// bytes. Unlike io.Reader, a Producer reports its own lifecycle state
// so a caller driving a stream incrementally (e.g. across multiple
// write calls to an underlying transport) can tell "no more data
// right now" apart from "finished" apart from "failed" without
// relying on sentinel errors alone.
type Producer interface {
	// Resume writes as much decoded/encoded data as fits into dst,
	// returning the number of bytes written and the producer's state
	// after the call. Resume may be called repeatedly until the
	// returned state is StateFinished or StateErrored.
	Resume(dst []byte) (n int, state State, err error)

	// Alive reports whether Resume may still be called productively.
	Alive() bool
}

// producerReader adapts a Producer to io.Reader, for callers that just
// want a plain streaming interface.
type producerReader struct {
	p Producer
}

// NewReader adapts a Producer into an io.Reader.
func NewReader(p Producer) io.Reader {
	return &producerReader{p: p}
}

func (r *producerReader) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	n, state, err := r.p.Resume(b)
	if err != nil {
		return n, err
	}
	if n == 0 && state == StateFinished {
		return 0, io.EOF
	}
	return n, nil
}

// ReaderProducer adapts a plain io.Reader into a Producer with no
// lifecycle tracking beyond EOF/error, for codecs (or test doubles)
// that have no native notion of resumability.
type ReaderProducer struct {
	R     io.Reader
	state State
}

func (p *ReaderProducer) Resume(dst []byte) (int, State, error) {
	if p.state == StateFinished || p.state == StateErrored {
		return 0, p.state, nil
	}
	p.state = StateStreaming
	n, err := p.R.Read(dst)
	if err == io.EOF {
		p.state = StateFinished
		return n, p.state, nil
	}
	if err != nil {
		p.state = StateErrored
		return n, p.state, err
	}
	return n, p.state, nil
}

func (p *ReaderProducer) Alive() bool {
	return p.state != StateFinished && p.state != StateErrored
}
