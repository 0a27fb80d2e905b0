// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

import "io"

// TextString is a decoded PDF "text string" (UTF-8), as distinct from
// the raw octet String it was decoded from (spec §4.D #3, GLOSSARY).
type TextString string

// ByteString is a PDF string value carrying opaque binary data that
// must never be run through text decoding (spec §4.D #3).
type ByteString []byte

// PDF implements Object, encoding t back into a PDF string literal and
// choosing UTF-16BE with a byte-order mark whenever t contains
// characters outside PDFDocEncoding's repertoire.
func (t TextString) PDF(w io.Writer) error {
	return EncodeTextString(string(t)).PDF(w)
}

// PDF implements Object.
func (b ByteString) PDF(w io.Writer) error {
	return String(b).PDF(w)
}
