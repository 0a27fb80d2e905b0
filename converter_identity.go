// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

// identityConverter is the terminal fallback converter: it claims
// every type tag but never performs coercion. Every ConverterRegistry
// eventually bottoms out here so Select always returns something.
type identityConverter struct{}

func (identityConverter) UsableFor(TypeTag) bool { return true }

func (identityConverter) AdditionalTypes() []TypeTag { return nil }

func (identityConverter) ConvertNeeded(Object, []TypeTag) bool { return false }

func (identityConverter) Convert(data Object, _ []TypeTag, _ *Document) (Object, error) {
	return data, nil
}
