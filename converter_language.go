// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

// languageConverter parses a raw PDF string or name holding a BCP 47
// language tag (spec §4.D meta-tag set, PDF 1.4 /Lang) into a
// LanguageTag. Values that fail to parse are left as the raw String or
// Name, matching dateConverter's "never fail a read" posture.
type languageConverter struct{}

func (languageConverter) UsableFor(tag TypeTag) bool {
	return tag.variant == tagVariantMeta && tag.meta == MetaLanguage
}

func (languageConverter) AdditionalTypes() []TypeTag {
	return []TypeTag{TagKind(KindString), TagKind(KindName)}
}

func (languageConverter) ConvertNeeded(data Object, _ []TypeTag) bool {
	switch data.(type) {
	case String, Name:
		return true
	default:
		return false
	}
}

func (languageConverter) Convert(data Object, _ []TypeTag, doc *Document) (Object, error) {
	if ref, ok := data.(Reference); ok && doc != nil {
		data = doc.Deref(ref)
	}
	var raw string
	switch v := data.(type) {
	case String:
		raw = string(v)
	case Name:
		raw = string(v)
	default:
		return data, nil
	}
	tag, err := ParseLanguageTag(raw)
	if err != nil {
		return data, nil
	}
	return tag, nil
}
