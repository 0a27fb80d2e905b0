// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

// Converter is a stateless strategy that extends a field's allowed
// type set and coerces raw values at access time (spec §4.D). The
// four methods mirror the source's duck-typed converter protocol; see
// spec §9 "Duck-typed converters -> capability interface" for why this
// is modeled as an explicit interface plus an ordered registry rather
// than dispatch on Go's own type system.
type Converter interface {
	// UsableFor is the registry dispatch predicate: does this
	// converter claim responsibility for fields whose canonical type
	// tag is the given tag?
	UsableFor(tag TypeTag) bool

	// AdditionalTypes lists the extra type tags a field gains once
	// this converter is bound to it.
	AdditionalTypes() []TypeTag

	// ConvertNeeded reports whether data requires coercion given the
	// field's (already-augmented) type list.
	ConvertNeeded(data Object, types []TypeTag) bool

	// Convert performs the coercion.
	Convert(data Object, types []TypeTag, doc *Document) (Object, error)
}

// ConverterRegistry is an ordered list of converters. Select returns
// the first converter whose UsableFor predicate matches, never the
// best match — spec §4.D: "first-match, not best-match", and a
// converter registered at position K never shadows one before it
// (spec §8 "Converter dispatch is deterministic and first-match").
type ConverterRegistry struct {
	converters []Converter
}

// NewConverterRegistry builds a registry with the given converters in
// priority order.
func NewConverterRegistry(converters ...Converter) *ConverterRegistry {
	return &ConverterRegistry{converters: converters}
}

// Select returns the first converter usable for tag, falling back to
// an identity converter if the registry was built without its own
// terminal fallback.
func (r *ConverterRegistry) Select(tag TypeTag) Converter {
	for _, c := range r.converters {
		if c.UsableFor(tag) {
			return c
		}
	}
	return identityConverter{}
}

// DefaultConverterRegistry returns the canonical converter order
// specified in spec §4.D: FileSpecification, Dictionary, String,
// PDFByteString, Date, Rectangle, Language, Identity. Specific
// Name-tag converters precede the generic dictionary converter;
// concrete Date/Rectangle/Language conversions precede the terminal
// identity fallback.
func DefaultConverterRegistry() *ConverterRegistry {
	return NewConverterRegistry(
		fileSpecificationConverter{},
		dictionaryConverter{},
		stringConverter{},
		byteStringConverter{},
		dateConverter{},
		rectangleConverter{},
		languageConverter{},
		identityConverter{},
	)
}
