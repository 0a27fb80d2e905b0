// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

import (
	"fmt"
	"io"
)

// ObjectHandle is the object-wrapper layer (spec §4.B): it binds an
// indirect object identity (its Reference) and a document together
// with a decoded Dict payload and an optional bound Class. Raw value
// access bypasses converters entirely; typed field access goes
// through Key, which resolves and coerces lazily.
//
// The source calls this concept "Object" too, overloading the name it
// also uses for the value-model sum type; Go requires one name per
// interface, so this wrapper is named ObjectHandle throughout.
type ObjectHandle struct {
	doc   *Document
	ref   Reference
	class *Class
	data  Dict

	dirty bool

	// mustBeIndirect is stamped true once this object is written into
	// a field declared Indirect: IndirectMust (spec §3 Field
	// "indirect" tri-state), recording that the object may never be
	// inlined into its container even if some other field later
	// references it more loosely.
	mustBeIndirect bool
}

// MustBeIndirect reports whether this object has been bound to a
// field that requires it always be stored as an indirect reference.
func (h *ObjectHandle) MustBeIndirect() bool { return h.mustBeIndirect }

// Reference returns the indirect reference identifying this object.
func (h *ObjectHandle) Reference() Reference { return h.ref }

// Document returns the document this handle belongs to.
func (h *ObjectHandle) Document() *Document { return h.doc }

// Class returns the bound class, or nil if this handle was never
// wrapped into one (a raw dictionary fetched via Deref, for example).
func (h *ObjectHandle) Class() *Class { return h.class }

// Dirty reports whether this object has unsaved changes.
func (h *ObjectHandle) Dirty() bool { return h.dirty }

// Deleted reports whether Document.Delete has been called on this
// object. A deleted object no longer derefs to anything (Deref
// returns Null for its reference) but its slot is retained so
// Document.Each(false) can still enumerate it.
func (h *ObjectHandle) Deleted() bool {
	if s, ok := h.doc.slots[h.ref.Number]; ok {
		return s.deleted
	}
	return false
}

// Raw returns the underlying, uncoerced dictionary.
func (h *ObjectHandle) Raw() Dict { return h.data }

// Type returns the value of this object's /Type entry, or "" if
// absent.
func (h *ObjectHandle) Type() Name {
	if n, ok := h.data["Type"].(Name); ok {
		return n
	}
	return ""
}

// PDF renders the handle as a reference to its indirect object,
// matching how an ObjectHandle appears when embedded in another
// object's dictionary.
func (h *ObjectHandle) PDF(w io.Writer) error {
	return h.ref.PDF(w)
}

// Key looks up name in the bound class's field schema, derefs and
// coerces the raw value through the schema's declared converter, and
// memoizes the coerced value back into the underlying dictionary so
// repeated access is O(1) (spec §4.C "Access" and §9 "memoized
// in-place").
//
// A name with no schema entry is returned deref'd, without coercion.
// A field whose converter returns an error is returned as-is (deref'd
// but not type-checked) and a Diagnostic is recorded on the document
// rather than an error returned, matching the source's "never fail a
// read" posture.
func (h *ObjectHandle) Key(name Name) Object {
	raw, hasRaw := h.data[name]

	var field *Field
	if h.class != nil {
		field, _ = h.class.LookupField(name)
	}

	if !hasRaw {
		if field != nil && field.Default != nil {
			return Clone(field.Default)
		}
		return nil
	}

	resolved := h.doc.deref(raw)

	if field == nil {
		return resolved
	}

	reg := h.doc.converters
	types := field.ResolvedTypes(reg)
	converter := field.Converter(reg)

	if converter == nil || !converter.ConvertNeeded(resolved, types) {
		return resolved
	}

	// Convert is handed raw, not resolved: a converter that wraps a
	// Dict into a typed ObjectHandle (dictionaryConverter,
	// fileSpecificationConverter) must see the original Reference so
	// Document.Wrap reuses the existing indirect object instead of
	// allocating a duplicate one for the same underlying dictionary.
	converted, err := converter.Convert(raw, types, h.doc)
	if err != nil {
		h.doc.recordDiagnostic(Diagnostic{
			Field:   string(name),
			Message: fmt.Sprintf("conversion failed: %s", err),
		})
		return resolved
	}

	h.data[name] = converted
	return converted
}

// SetKey stores value under name, validating it against the bound
// class's field schema when one is present. A value outside the
// field's allowed types is rejected with a TypeMismatchError; a value
// whose indirect-ness conflicts with the field's declared Indirect
// constraint is rejected with an IndirectnessError.
func (h *ObjectHandle) SetKey(name Name, value Object) error {
	if h.class != nil && value != nil {
		if field, ok := h.class.LookupField(name); ok {
			reg := h.doc.converters
			types := field.ResolvedTypes(reg)
			if len(types) > 0 && !matchesAny(value, types, h.doc) {
				return &TypeMismatchError{Field: string(name), Want: types, Got: value}
			}
			if err := checkIndirect(field, name, value); err != nil {
				return err
			}
			if field.MinVersion != 0 {
				if err := h.doc.requireVersion(field.MinVersion, string(name)); err != nil {
					return err
				}
			}
			// A typed subdictionary is written as its indirect
			// Reference, never the wrapper, the same way Validate's
			// auto-correct path stores it; Key replaces the Reference
			// with the wrapped handle on the first read.
			if oh, ok := value.(*ObjectHandle); ok {
				if field.Indirect == IndirectMust {
					oh.mustBeIndirect = true
				}
				value = oh.Reference()
			}
		}
	}
	if value == nil {
		delete(h.data, name)
	} else {
		h.data[name] = value
	}
	h.dirty = true
	return nil
}

// checkIndirect enforces a field's declared Indirect tri-state against
// a value about to be written (spec §3 "Field" indirect tri-state).
// IndirectEither imposes no constraint.
func checkIndirect(field *Field, name Name, value Object) error {
	switch field.Indirect {
	case IndirectMust:
		switch value.(type) {
		case Reference, *ObjectHandle:
			return nil
		default:
			return &IndirectnessError{Field: string(name), Want: IndirectMust, Got: value}
		}
	case IndirectForbidden:
		switch value.(type) {
		case Reference, *ObjectHandle:
			return &IndirectnessError{Field: string(name), Want: IndirectForbidden, Got: value}
		}
	}
	return nil
}

// Validate walks the bound class's field schema, checking required
// fields and (when autoCorrect is true) materializing missing ones via
// their AutoCorrect function. Every problem is appended to diags
// rather than stopping at the first one, so a single call surfaces the
// complete picture (spec §8 "Validation reports every problem, not
// just the first").
func (h *ObjectHandle) Validate(autoCorrect bool) (diags []Diagnostic, err error) {
	if h.class == nil {
		return nil, nil
	}
	for _, field := range h.class.AllFields() {
		_, present := h.data[field.Name]
		if present {
			continue
		}
		if !field.Required {
			continue
		}
		if autoCorrect && field.AutoCorrect != nil {
			value, cerr := field.AutoCorrect(h.doc)
			if cerr != nil {
				diags = append(diags, Diagnostic{
					Field:   string(field.Name),
					Message: fmt.Sprintf("auto-correct failed: %s", cerr),
				})
				continue
			}
			// An AutoCorrect that materializes a typed subdictionary
			// returns the ObjectHandle it wrapped; the raw dict must
			// hold its indirect Reference, never the handle itself.
			if oh, ok := value.(*ObjectHandle); ok {
				if field.Indirect == IndirectMust {
					oh.mustBeIndirect = true
				}
				value = oh.Reference()
			}
			h.data[field.Name] = value
			h.dirty = true
			continue
		}
		diags = append(diags, Diagnostic{
			Field:   string(field.Name),
			Message: "required field is missing",
		})
	}
	return diags, nil
}

// matchesType reports whether value satisfies a single type tag,
// without invoking any converter (used for class-tag checks against
// an already-wrapped ObjectHandle and for plain Kind checks).
//
// An indirect Reference satisfies every tag: the object it names is
// resolved lazily, on the next Key read through the field's bound
// converter (which derefs and coerces it then), so a write-time check
// has nothing concrete to compare against. Rejecting references here
// would make SetKey unusable for the most common PDF value kind.
func matchesType(value Object, tag TypeTag, doc *Document) bool {
	if _, ok := value.(Reference); ok {
		return true
	}
	switch tag.variant {
	case tagVariantKind:
		if value == nil {
			return tag.kind == KindNull
		}
		return KindOf(value) == tag.kind
	case tagVariantClass:
		h, ok := value.(*ObjectHandle)
		if !ok {
			return false
		}
		cls, ok := doc.classes.Lookup(tag.class)
		if !ok {
			return false
		}
		return h.class != nil && h.class.DescendsFrom(cls)
	case tagVariantMeta:
		switch tag.meta {
		case MetaTextString:
			_, ok := value.(TextString)
			return ok
		case MetaByteString:
			_, ok := value.(ByteString)
			return ok
		case MetaDate:
			_, ok := value.(DateTime)
			return ok
		case MetaRectangle:
			_, ok := value.(Rectangle)
			return ok
		case MetaLanguage:
			_, ok := value.(LanguageTag)
			return ok
		}
	}
	return false
}

// matchesAny reports whether value matches at least one of types.
func matchesAny(value Object, types []TypeTag, doc *Document) bool {
	for _, t := range types {
		if matchesType(value, t, doc) {
			return true
		}
	}
	return false
}
