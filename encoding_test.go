// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

import (
	"testing"
	"unicode/utf8"
)

func TestDecodeTextStringUTF16BOM(t *testing.T) {
	raw := String{0xFE, 0xFF, 0x00, 0x74, 0x00, 0x65, 0x00, 0x73, 0x00, 0x74}
	got := DecodeTextString(raw)
	if got != "test" {
		t.Errorf("got %q, want %q", got, "test")
	}
}

func TestDecodeTextStringPDFDocEncodingFallback(t *testing.T) {
	raw := String{0x54, 0x65, 0x73, 0x74, 0x69, 0x6E, 0x67, 0x9C, 0x92}
	got := DecodeTextString(raw)
	want := "Testing" + string(rune(0x0153)) + string(rune(0x2122))
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeTextStringRoundTripsASCII(t *testing.T) {
	in := "hello world"
	encoded := EncodeTextString(in)
	if DecodeTextString(encoded) != in {
		t.Errorf("round-trip failed for %q", in)
	}
}

func TestEncodeTextStringFallsBackToUTF16(t *testing.T) {
	in := "héllo 中文" // contains CJK, outside PDFDocEncoding
	encoded := EncodeTextString(in)
	if len(encoded) < 2 || encoded[0] != 0xFE || encoded[1] != 0xFF {
		t.Fatal("expected a UTF-16BE BOM when PDFDocEncoding cannot represent the string")
	}
	if DecodeTextString(encoded) != in {
		t.Errorf("round-trip through UTF-16BE failed for %q", in)
	}
}

func FuzzTextStringRoundTrip(f *testing.F) {
	f.Add("")
	f.Add("hello world")
	f.Add("héllo 中文")
	f.Add("Testing" + string(rune(0x0153)) + string(rune(0x2122)))
	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			t.Skip("EncodeTextString only round-trips well-formed text")
		}
		encoded := EncodeTextString(s)
		if got := DecodeTextString(encoded); got != s {
			t.Errorf("round trip mismatch: got %q, want %q", got, s)
		}
	})
}

func TestTextStringPDFRendersAsLiteral(t *testing.T) {
	ts := TextString("hi")
	got := Format(ts)
	want := "(hi)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
