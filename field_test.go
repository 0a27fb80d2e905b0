// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

import "testing"

func TestFieldResolveIsMemoized(t *testing.T) {
	reg := DefaultConverterRegistry()
	f := &Field{Name: "F", Types: []TypeTag{TagClass("Filespec")}}

	types1 := f.ResolvedTypes(reg)
	types2 := f.ResolvedTypes(reg)

	if len(types1) != len(types2) {
		t.Fatalf("resolve was not idempotent: %v vs %v", types1, types2)
	}
	if &f.Types[0] != &types1[0] {
		t.Error("ResolvedTypes should return the field's own backing slice")
	}
}

func TestFieldResolveAugmentsAndDedupes(t *testing.T) {
	reg := DefaultConverterRegistry()
	f := &Field{Name: "F", Types: []TypeTag{TagClass("Filespec"), TagKind(KindDict)}}

	types := f.ResolvedTypes(reg)

	// Filespec's canonical tag must remain first, and the Dict kind
	// tag the author already declared must not be duplicated by the
	// converter's own AdditionalTypes (which also includes Dict).
	if !types[0].Equal(TagClass("Filespec")) {
		t.Errorf("canonical tag moved: %v", types[0])
	}
	count := 0
	for _, ty := range types {
		if ty.Equal(TagKind(KindDict)) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one Dict kind tag after dedup, got %d in %v", count, types)
	}
}

func TestSchemaLookupField(t *testing.T) {
	s := NewSchema(
		&Field{Name: "A"},
		&Field{Name: "B"},
	)
	if _, ok := s.byName["A"]; !ok {
		t.Error("expected field A to be indexed")
	}
	if _, ok := s.byName["C"]; ok {
		t.Error("unexpected field C")
	}
}

func TestClassInheritanceShadowing(t *testing.T) {
	parent := &Class{
		Tag:    "Parent",
		Schema: NewSchema(&Field{Name: "Shared", Types: []TypeTag{TagKind(KindInteger)}}),
	}
	child := &Class{
		Tag:    "Child",
		Parent: parent,
		Schema: NewSchema(&Field{Name: "Shared", Types: []TypeTag{TagKind(KindName)}}, &Field{Name: "Own"}),
	}

	if !child.DescendsFrom(parent) {
		t.Error("child should descend from parent")
	}
	if !child.DescendsFrom(child) {
		t.Error("a class descends from itself")
	}

	f, ok := child.LookupField("Shared")
	if !ok {
		t.Fatal("expected Shared to resolve")
	}
	if f.Types[0].kind != KindName {
		t.Error("child's Shared field definition should shadow the parent's")
	}

	all := child.AllFields()
	if len(all) != 2 {
		t.Fatalf("expected 2 fields (Shared once, Own), got %d", len(all))
	}
}

func TestClassRegistry(t *testing.T) {
	reg := NewClassRegistry()
	cls := &Class{Tag: "Widget"}
	reg.Register(cls)

	got, ok := reg.Lookup("Widget")
	if !ok || got != cls {
		t.Error("expected registered class to be found by tag")
	}
	if _, ok := reg.Lookup("Missing"); ok {
		t.Error("unregistered tag should not resolve")
	}
}
