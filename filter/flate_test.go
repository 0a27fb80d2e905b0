// SPDX-License-Identifier: GPL-3.0-or-later

package filter

import (
	"bytes"
	"io"
	"testing"
)

func TestFlateRoundTrip(t *testing.T) {
	for _, in := range []string{"", "12345", "the quick brown fox jumps over the lazy dog"} {
		buf := &bytes.Buffer{}
		enc := NewFlateEncoder(buf, 6, PredictorOptions{})
		if _, err := enc.Write([]byte(in)); err != nil {
			t.Fatalf("Write(%q): %v", in, err)
		}
		if err := enc.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}

		prod, err := NewFlateDecoder(bytes.NewReader(buf.Bytes()), PredictorOptions{})
		if err != nil {
			t.Fatalf("NewFlateDecoder(%q): %v", in, err)
		}
		out, err := io.ReadAll(NewReader(prod))
		if err != nil {
			t.Fatalf("ReadAll(%q): %v", in, err)
		}
		if string(out) != in {
			t.Errorf("round trip mismatch: got %q, want %q", out, in)
		}
	}
}

func FuzzFlateRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("12345"))
	f.Add([]byte("the quick brown fox jumps over the lazy dog"))
	f.Fuzz(func(t *testing.T, data []byte) {
		buf := &bytes.Buffer{}
		enc := NewFlateEncoder(buf, 6, PredictorOptions{})
		if _, err := enc.Write(data); err != nil {
			t.Fatalf("Write: %v", err)
		}
		if err := enc.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}

		prod, err := NewFlateDecoder(bytes.NewReader(buf.Bytes()), PredictorOptions{})
		if err != nil {
			t.Fatalf("NewFlateDecoder: %v", err)
		}
		out, err := io.ReadAll(NewReader(prod))
		if err != nil {
			t.Fatalf("ReadAll: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Errorf("round trip mismatch: got %q, want %q", out, data)
		}
	})
}

// chunkedReader splits a byte slice into single-byte reads, modeling
// an upstream producer that yields its compressed payload one chunk
// at a time across many resumes.
type chunkedReader struct {
	data []byte
}

func (r *chunkedReader) Read(b []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := copy(b, r.data[:1])
	r.data = r.data[1:]
	return n, nil
}

func TestFlateDecoderToleratesChunkedInput(t *testing.T) {
	want := "Hello, world!"
	buf := &bytes.Buffer{}
	enc := NewFlateEncoder(buf, 6, PredictorOptions{})
	if _, err := enc.Write([]byte(want)); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}

	prod, err := NewFlateDecoder(&chunkedReader{data: buf.Bytes()}, PredictorOptions{})
	if err != nil {
		t.Fatal(err)
	}
	out, err := io.ReadAll(NewReader(prod))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestNewFlateDecoderRejectsNonZlibInput(t *testing.T) {
	_, err := NewFlateDecoder(bytes.NewReader([]byte("not zlib data")), PredictorOptions{})
	if err == nil {
		t.Fatal("expected an error constructing a decoder over non-zlib data")
	}
	if _, ok := err.(*DecodeError); !ok {
		t.Errorf("expected *DecodeError, got %T", err)
	}
}
