// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

import (
	"fmt"
	"iter"
	"sort"

	"golang.org/x/exp/maps"
)

// slot is one entry in a Document's object table: the raw stored
// value plus a lazily-created ObjectHandle wrapper and the
// pending-deletion flag (spec §4.E "Deletion": "the object number is
// not reused until the document is rewritten").
type slot struct {
	ref     Reference
	value   Object
	handle  *ObjectHandle
	deleted bool
}

// Document is the xref/object-table resolver (spec §4.E). It owns the
// object table, the class and converter registries used by typed
// dictionary access, and the document's PDF version.
type Document struct {
	classes    *ClassRegistry
	converters *ConverterRegistry

	version Version
	pinned  bool

	slots   map[uint32]*slot
	nextNum uint32

	flateCompression int

	diagnostics []Diagnostic
}

// NewDocument creates an empty document. A nil cfg is equivalent to
// DefaultConfig().
func NewDocument(cfg *Config) *Document {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Document{
		classes:          cfg.Classes,
		converters:       cfg.Converters,
		version:          cfg.Version,
		pinned:           cfg.PinVersion,
		slots:            make(map[uint32]*slot),
		nextNum:          1,
		flateCompression: cfg.FlateCompression,
	}
}

// FlateCompressionLevel returns the compression level new Flate
// streams are encoded at (config key filter.flate_compression).
func (doc *Document) FlateCompressionLevel() int {
	return doc.flateCompression
}

// Version returns the document's current PDF version.
func (doc *Document) Version() Version { return doc.version }

// SetVersion raises the document's version, ignoring v if it is not
// newer than the current one.
func (doc *Document) SetVersion(v Version) {
	if v > doc.version {
		doc.version = v
	}
}

// PinVersion controls whether writing a field with a higher
// MinVersion silently bumps the document version (the default) or
// fails with VersionConflictError.
func (doc *Document) PinVersion(pinned bool) { doc.pinned = pinned }

// requireVersion is called by ObjectHandle.SetKey before accepting a
// value for a field with a declared MinVersion.
func (doc *Document) requireVersion(min Version, field string) error {
	if min == 0 {
		return nil
	}
	if !doc.pinned {
		doc.SetVersion(min)
		return nil
	}
	if min > doc.version {
		return &VersionConflictError{Field: field, Have: doc.version, Want: min}
	}
	return nil
}

// Alloc reserves a fresh object number without storing a value for
// it yet.
func (doc *Document) Alloc() Reference {
	num := doc.nextNum
	doc.nextNum++
	ref := Reference{Number: num}
	doc.slots[num] = &slot{ref: ref, value: Null{}}
	return ref
}

// Put stores value at an already-allocated reference, overwriting
// whatever was there before.
func (doc *Document) Put(ref Reference, value Object) {
	s, ok := doc.slots[ref.Number]
	if !ok {
		s = &slot{ref: ref}
		doc.slots[ref.Number] = s
	}
	s.ref = ref
	s.value = value
	s.handle = nil
	s.deleted = false
}

// Add allocates a fresh indirect object and stores value in it,
// returning the new reference.
func (doc *Document) Add(value Object) Reference {
	ref := doc.Alloc()
	doc.Put(ref, value)
	return ref
}

// Delete removes ref from the live object table: subsequent Deref
// calls for it return Null. The slot itself is kept (not reused by
// Alloc) so Each(false) can still enumerate it as a deleted object.
func (doc *Document) Delete(ref Reference) {
	if s, ok := doc.slots[ref.Number]; ok {
		s.deleted = true
	}
}

// Deref resolves obj one level: a Reference becomes the stored value
// at that object number (Null if the reference is dangling, deleted,
// or was never allocated), and any other value is returned unchanged.
// It never errors, matching the source's "never fail a read" posture;
// use StrictDeref when a dangling reference should be surfaced.
func (doc *Document) Deref(obj Object) Object {
	ref, ok := obj.(Reference)
	if !ok {
		return obj
	}
	s, ok := doc.slots[ref.Number]
	if !ok || s.deleted {
		return Null{}
	}
	return s.value
}

// deref is the internal name ObjectHandle.Key calls; it is identical
// to Deref.
func (doc *Document) deref(obj Object) Object {
	return doc.Deref(obj)
}

// StrictDeref resolves obj like Deref but returns
// UnresolvableReferenceError instead of Null when the reference does
// not point at a stored object.
func (doc *Document) StrictDeref(obj Object) (Object, error) {
	ref, ok := obj.(Reference)
	if !ok {
		return obj, nil
	}
	s, ok := doc.slots[ref.Number]
	if !ok || s.deleted {
		return nil, &UnresolvableReferenceError{Ref: ref}
	}
	return s.value, nil
}

// Wrap binds data to the class registered under classTag, returning a
// typed ObjectHandle. data may be a Dict (promoted to a fresh
// indirect object), a Reference to an already-stored dictionary, or
// an existing ObjectHandle (rebound in place, spec §4.D converter
// re-wrap case).
func (doc *Document) Wrap(data Object, classTag Name) (*ObjectHandle, error) {
	cls, ok := doc.classes.Lookup(classTag)
	if !ok {
		return nil, fmt.Errorf("pdf: no class registered for %q", classTag)
	}

	switch v := data.(type) {
	case *ObjectHandle:
		v.class = cls
		return v, nil
	case Dict:
		ref := doc.Add(v)
		h := &ObjectHandle{doc: doc, ref: ref, class: cls, data: v}
		doc.slots[ref.Number].handle = h
		return h, nil
	case Reference:
		resolved := doc.Deref(v)
		dict, ok := resolved.(Dict)
		if !ok {
			return nil, fmt.Errorf("pdf: cannot wrap %s as %s: not a dictionary", Format(resolved), classTag)
		}
		h := &ObjectHandle{doc: doc, ref: v, class: cls, data: dict}
		if s, ok := doc.slots[v.Number]; ok {
			s.handle = h
		}
		return h, nil
	default:
		return nil, fmt.Errorf("pdf: cannot wrap %s as %s", Format(data), classTag)
	}
}

// handleFor lazily builds and caches the ObjectHandle for a slot whose
// stored value is a Dict or a *Stream (using the stream's dictionary),
// inferring its class from /Type when possible. Other slots
// (free-standing arrays, scalars) have no handle.
func (doc *Document) handleFor(s *slot) *ObjectHandle {
	if s.handle != nil {
		return s.handle
	}
	var dict Dict
	switch v := s.value.(type) {
	case Dict:
		dict = v
	case *Stream:
		dict = v.Dict
	default:
		return nil
	}
	var class *Class
	if typeName, ok := dict["Type"].(Name); ok {
		class, _ = doc.classes.Lookup(typeName)
	}
	h := &ObjectHandle{doc: doc, ref: s.ref, class: class, data: dict}
	s.handle = h
	return h
}

// Each iterates every dictionary-shaped indirect object in the
// document, in ascending object-number order. When current is true,
// objects marked Delete'd are skipped; when false, they are included
// (spec §4.E "each(current: bool)").
func (doc *Document) Each(current bool) iter.Seq[*ObjectHandle] {
	return func(yield func(*ObjectHandle) bool) {
		nums := maps.Keys(doc.slots)
		sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })
		for _, num := range nums {
			s := doc.slots[num]
			if current && s.deleted {
				continue
			}
			h := doc.handleFor(s)
			if h == nil {
				continue
			}
			if !yield(h) {
				return
			}
		}
	}
}

// IterType iterates every live object in the document whose class
// descends from the class registered under tag (or, if tag has no
// registered class, whose raw /Type equals tag).
func (doc *Document) IterType(tag Name) iter.Seq[*ObjectHandle] {
	cls, hasClass := doc.classes.Lookup(tag)
	return func(yield func(*ObjectHandle) bool) {
		for h := range doc.Each(true) {
			match := false
			if hasClass {
				match = h.class != nil && h.class.DescendsFrom(cls)
			} else {
				match = h.Type() == tag
			}
			if !match {
				continue
			}
			if !yield(h) {
				return
			}
		}
	}
}

// recordDiagnostic appends a non-fatal coercion or validation note.
func (doc *Document) recordDiagnostic(d Diagnostic) {
	doc.diagnostics = append(doc.diagnostics, d)
}

// Diagnostics returns every diagnostic recorded since the document was
// created.
func (doc *Document) Diagnostics() []Diagnostic {
	return doc.diagnostics
}
