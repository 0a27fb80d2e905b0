// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

// rectangleConverter promotes a four-element numeric Array into a
// Rectangle (spec §4.D #5, §8 scenario 5).
type rectangleConverter struct{}

func (rectangleConverter) UsableFor(tag TypeTag) bool {
	return tag.variant == tagVariantMeta && tag.meta == MetaRectangle
}

func (rectangleConverter) AdditionalTypes() []TypeTag {
	return []TypeTag{TagKind(KindArray)}
}

func (rectangleConverter) ConvertNeeded(data Object, _ []TypeTag) bool {
	_, isArray := data.(Array)
	return isArray
}

func (rectangleConverter) Convert(data Object, _ []TypeTag, doc *Document) (Object, error) {
	if ref, ok := data.(Reference); ok && doc != nil {
		data = doc.Deref(ref)
	}
	arr, ok := data.(Array)
	if !ok {
		return data, nil
	}
	rect, err := NewRectangleFromArray(arr)
	if err != nil {
		return data, nil
	}
	return rect, nil
}
