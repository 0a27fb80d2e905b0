// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

import (
	"io"

	"golang.org/x/text/language"
)

// LanguageTag is the decoded form of a PDF language identifier, a Name
// or string holding a BCP 47 language tag such as "en-US" (spec §4.D
// meta-tag set, PDF 1.4 /Lang). language.Tag itself does not implement
// Object, so this wrapper carries it through the value model.
type LanguageTag struct {
	Tag language.Tag
}

// PDF implements Object, rendering the tag back into its string form.
func (l LanguageTag) PDF(w io.Writer) error {
	return String(l.Tag.String()).PDF(w)
}

// ParseLanguageTag parses s as a BCP 47 language tag.
func ParseLanguageTag(s string) (LanguageTag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return LanguageTag{}, err
	}
	return LanguageTag{Tag: tag}, nil
}
