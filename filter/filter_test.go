// SPDX-License-Identifier: GPL-3.0-or-later

package filter

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReaderProducerTracksLifecycle(t *testing.T) {
	p := &ReaderProducer{R: strings.NewReader("hi")}
	if !p.Alive() {
		t.Fatal("a fresh ReaderProducer should be alive")
	}

	buf := make([]byte, 16)
	n, state, err := p.Resume(buf)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf[:n]) != "hi" {
		t.Errorf("got %q, want %q", buf[:n], "hi")
	}
	if state != StateFinished {
		t.Errorf("got state %v, want %v", state, StateFinished)
	}
	if p.Alive() {
		t.Error("a finished ReaderProducer should no longer be alive")
	}
}

type erroringReader struct{}

func (erroringReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestReaderProducerSurfacesErrors(t *testing.T) {
	p := &ReaderProducer{R: erroringReader{}}
	_, state, err := p.Resume(make([]byte, 4))
	if err == nil {
		t.Fatal("expected an error")
	}
	if state != StateErrored {
		t.Errorf("got state %v, want %v", state, StateErrored)
	}
	if p.Alive() {
		t.Error("an errored ReaderProducer should no longer be alive")
	}
}

func TestNewReaderAdaptsProducerToIOReader(t *testing.T) {
	p := &ReaderProducer{R: strings.NewReader("adapted")}
	out, err := io.ReadAll(NewReader(p))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "adapted" {
		t.Errorf("got %q, want %q", out, "adapted")
	}
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		StateFresh:     "fresh",
		StateStreaming: "streaming",
		StateFinished:  "finished",
		StateErrored:   "errored",
		State(99):      "unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}
