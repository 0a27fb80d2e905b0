// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

// dateConverter parses a raw PDF string in the "D:YYYY..." date format
// (spec §4.D #4, §8 scenarios 1-2) into a DateTime. Values that fail
// to parse are left as the raw String rather than erroring, so a
// malformed date field stays readable and does not block access to
// the rest of the dictionary; no diagnostic is recorded for it.
type dateConverter struct{}

func (dateConverter) UsableFor(tag TypeTag) bool {
	return tag.variant == tagVariantMeta && tag.meta == MetaDate
}

func (dateConverter) AdditionalTypes() []TypeTag {
	return []TypeTag{TagKind(KindString)}
}

func (dateConverter) ConvertNeeded(data Object, _ []TypeTag) bool {
	_, isRaw := data.(String)
	return isRaw
}

func (dateConverter) Convert(data Object, _ []TypeTag, doc *Document) (Object, error) {
	if ref, ok := data.(Reference); ok && doc != nil {
		data = doc.Deref(ref)
	}
	raw, ok := data.(String)
	if !ok {
		return data, nil
	}
	dt, err := ParseDateString(string(raw))
	if err != nil {
		return data, nil
	}
	return dt, nil
}
