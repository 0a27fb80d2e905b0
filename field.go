// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

// Indirectness constrains whether a field's value must be stored as
// an indirect reference, must be inlined, or may be either. SetKey
// enforces it via checkIndirect (object.go); a violation is reported
// as an IndirectnessError.
type Indirectness int

const (
	IndirectEither Indirectness = iota
	IndirectMust
	IndirectForbidden
)

// Field is one entry in a typed-dictionary class's declarative field
// table (spec §3 "Field", §4.C). Types starts out as the author's
// literal declaration and is extended exactly once, on first use, by
// the converter chosen for it (spec §9 "Type-map with lazy Name tags
// -> two-level resolution").
type Field struct {
	Name       Name
	Types      []TypeTag
	Required   bool
	Default    Object
	Indirect   Indirectness
	MinVersion Version

	// AutoCorrect materializes a value for a missing required field
	// when Validate is called with autoCorrect set. It is nil for
	// fields that cannot be auto-corrected.
	AutoCorrect func(doc *Document) (Object, error)

	resolved  bool
	converter Converter
}

// resolve binds this field's converter and augments Types with the
// converter's AdditionalTypes, exactly once. Subsequent calls are
// no-ops, matching the single-threaded, memoized resolution model of
// §5 ("Ordering: reads and writes on a Document are strictly
// program-ordered").
func (f *Field) resolve(reg *ConverterRegistry) {
	if f.resolved {
		return
	}
	if len(f.Types) == 0 {
		f.resolved = true
		return
	}
	f.converter = reg.Select(f.Types[0])
	extra := f.converter.AdditionalTypes()
	merged := make([]TypeTag, 0, len(f.Types)+len(extra))
	merged = append(merged, f.Types...)
	merged = append(merged, extra...)
	f.Types = dedupeTags(merged)
	f.resolved = true
}

// ResolvedTypes returns the field's type list after converter
// augmentation, resolving it on first call.
func (f *Field) ResolvedTypes(reg *ConverterRegistry) []TypeTag {
	f.resolve(reg)
	return f.Types
}

// Converter returns the converter bound to this field, resolving it
// on first call if necessary.
func (f *Field) Converter(reg *ConverterRegistry) Converter {
	f.resolve(reg)
	return f.converter
}
