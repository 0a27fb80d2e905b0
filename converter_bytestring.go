// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

// byteStringConverter handles fields tagged as raw byte strings
// (signatures, hashes, binary blobs embedded as PDF strings) that must
// NOT go through text-string decoding. It mostly exists so the
// registry has an explicit, distinct entry for this meta-tag rather
// than letting such fields fall through to stringConverter by
// accident; the coercion itself is a type assertion into a named byte
// slice type.
type byteStringConverter struct{}

func (byteStringConverter) UsableFor(tag TypeTag) bool {
	return tag.variant == tagVariantMeta && tag.meta == MetaByteString
}

func (byteStringConverter) AdditionalTypes() []TypeTag {
	return []TypeTag{TagKind(KindString)}
}

func (byteStringConverter) ConvertNeeded(data Object, _ []TypeTag) bool {
	_, isRaw := data.(String)
	return isRaw
}

func (byteStringConverter) Convert(data Object, _ []TypeTag, doc *Document) (Object, error) {
	if ref, ok := data.(Reference); ok && doc != nil {
		data = doc.Deref(ref)
	}
	raw, ok := data.(String)
	if !ok {
		return data, nil
	}
	return ByteString(raw), nil
}
