// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

// fileSpecificationConverter promotes a bare string into a minimal
// file-specification dictionary {F: s} and wraps it as the
// Filespec class, or wraps an already-dictionary-shaped value the
// same way. It must precede dictionaryConverter in the registry
// order, since it matches the same shape of value (a Dict) but also
// handles the String-promotion case the generic converter does not.
type fileSpecificationConverter struct{}

func (fileSpecificationConverter) UsableFor(tag TypeTag) bool {
	return tag.variant == tagVariantClass && tag.class == "Filespec"
}

func (fileSpecificationConverter) AdditionalTypes() []TypeTag {
	return []TypeTag{TagKind(KindDict), TagKind(KindString)}
}

func (fileSpecificationConverter) ConvertNeeded(data Object, _ []TypeTag) bool {
	switch v := data.(type) {
	case *ObjectHandle:
		return v.class != FilespecClass
	case String, Dict:
		return true
	default:
		return false
	}
}

func (fileSpecificationConverter) Convert(data Object, _ []TypeTag, doc *Document) (Object, error) {
	switch v := data.(type) {
	case String:
		return doc.Wrap(Dict{"Type": Name("Filespec"), "F": v}, "Filespec")
	case Dict:
		return doc.Wrap(v, "Filespec")
	case *ObjectHandle:
		return doc.Wrap(v, "Filespec")
	case Reference:
		return doc.Wrap(v, "Filespec")
	default:
		return data, nil
	}
}
