// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

// dictionaryConverter is the generic typed-dictionary coercion: any
// field whose canonical type is a lazy class reference (a Name
// sentinel resolved through the ClassRegistry) is wrapped into that
// class by calling Document.Wrap. It sits after the more specific
// Name-tag converters (FileSpecificationConverter) in the registry
// order, since those claim narrower class tags first.
type dictionaryConverter struct{}

func (dictionaryConverter) UsableFor(tag TypeTag) bool {
	return tag.variant == tagVariantClass
}

func (dictionaryConverter) AdditionalTypes() []TypeTag {
	return []TypeTag{TagKind(KindDict)}
}

func (dictionaryConverter) ConvertNeeded(data Object, types []TypeTag) bool {
	switch v := data.(type) {
	case Dict:
		return true
	case *ObjectHandle:
		for _, t := range types {
			if t.variant == tagVariantClass {
				if v.class != nil && v.class.Tag == t.class {
					return false
				}
			}
		}
		return true
	default:
		return false
	}
}

func (dictionaryConverter) Convert(data Object, types []TypeTag, doc *Document) (Object, error) {
	var target Name
	for _, t := range types {
		if t.variant == tagVariantClass {
			target = t.class
			break
		}
	}
	if target == "" {
		return data, nil
	}
	return doc.Wrap(data, target)
}
