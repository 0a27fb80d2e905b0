// SPDX-License-Identifier: GPL-3.0-or-later

package filter

import (
	"bytes"
	"io"
	"testing"
)

type nopWriteCloser struct {
	*bytes.Buffer
}

func (nopWriteCloser) Close() error { return nil }

func TestPNGPredictorRoundTrip(t *testing.T) {
	opts := PredictorOptions{Predictor: 15, Colors: 1, BitsPerComponent: 8, Columns: 4}

	rows := [][]byte{
		{10, 20, 30, 40},
		{11, 22, 33, 44},
		{0, 0, 0, 0},
	}
	var plain []byte
	for _, row := range rows {
		plain = append(plain, row...)
	}

	buf := &bytes.Buffer{}
	w := EncodePredictor(nopWriteCloser{buf}, opts)
	if _, err := w.Write(plain); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r := DecodePredictor(bytes.NewReader(buf.Bytes()), opts)
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, plain) {
		t.Errorf("round trip mismatch:\n got  %v\n want %v", out, plain)
	}
}

func TestTIFFPredictor8BitRoundTrip(t *testing.T) {
	opts := PredictorOptions{Predictor: 2, Colors: 3, BitsPerComponent: 8, Columns: 2}
	plain := []byte{10, 20, 30, 15, 25, 35} // two RGB pixels

	buf := &bytes.Buffer{}
	w := EncodePredictor(nopWriteCloser{buf}, opts)
	if _, err := w.Write(plain); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r := DecodePredictor(bytes.NewReader(buf.Bytes()), opts)
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, plain) {
		t.Errorf("round trip mismatch:\n got  %v\n want %v", out, plain)
	}
}

func TestPredictorNoneIsPassthrough(t *testing.T) {
	opts := PredictorOptions{Predictor: 1}
	buf := &bytes.Buffer{}
	w := EncodePredictor(nopWriteCloser{buf}, opts)
	if _, err := w.Write([]byte("abc")); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "abc" {
		t.Errorf("predictor 1 should pass bytes through unchanged, got %q", buf.String())
	}
}
