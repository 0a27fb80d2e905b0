// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

import "fmt"

// TypeMismatchError is returned when set_key or validation rejects a
// value whose runtime type is outside a field's allowed type set.
type TypeMismatchError struct {
	Field string
	Want  []TypeTag
	Got   Object
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %s: value %s does not match allowed types %v",
		e.Field, Format(e.Got), e.Want)
}

// IndirectnessError is returned when SetKey writes a value whose
// indirect-ness conflicts with the field's declared Indirect
// constraint (spec §3 "Field" indirect tri-state).
type IndirectnessError struct {
	Field string
	Want  Indirectness
	Got   Object
}

func (e *IndirectnessError) Error() string {
	switch e.Want {
	case IndirectMust:
		return fmt.Sprintf("field %s: must be stored as an indirect reference, got %s", e.Field, Format(e.Got))
	case IndirectForbidden:
		return fmt.Sprintf("field %s: must be stored inline, not as an indirect reference", e.Field)
	default:
		return fmt.Sprintf("field %s: indirectness constraint violated", e.Field)
	}
}

// UnresolvableReferenceError is returned only by Document.StrictDeref;
// Document.deref never fails, returning Null for dangling references
// instead.
type UnresolvableReferenceError struct {
	Ref Reference
}

func (e *UnresolvableReferenceError) Error() string {
	return fmt.Sprintf("unresolvable reference %s", e.Ref)
}

// FilterError wraps any codec failure, or an unsupported filter name,
// encountered while Stream.Decode sets up a stream's decode chain.
// Name identifies the offending filter.
type FilterError struct {
	Name string
	Err  error
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("problem while decoding %s encoded stream: %s", e.Name, e.Err)
}

func (e *FilterError) Unwrap() error { return e.Err }

// VersionConflictError is returned when writing a field whose
// MinVersion exceeds a pinned document version and auto-upgrade has
// been disabled via Document.PinVersion.
type VersionConflictError struct {
	Field      string
	Have, Want Version
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("field %s requires PDF version %s, document is pinned at %s",
		e.Field, e.Want, e.Have)
}

// Diagnostic is a non-fatal note recorded during field coercion or
// validation. Coercion errors never fail a read (spec: "Propagation");
// they are recorded here instead, alongside the raw, unconverted
// value that was returned to the caller.
type Diagnostic struct {
	Field   string
	Message string
}

func (d Diagnostic) String() string {
	if d.Field == "" {
		return d.Message
	}
	return d.Field + ": " + d.Message
}
