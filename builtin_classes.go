// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

// FilespecClass describes a minimal file specification dictionary,
// the target of fileSpecificationConverter's promotion of a bare
// string value.
var FilespecClass = &Class{
	Tag: "Filespec",
	Schema: NewSchema(
		&Field{Name: "Type", Types: []TypeTag{TagKind(KindName)}},
		&Field{Name: "F", Types: []TypeTag{TagMeta(MetaTextString)}, Required: true},
	),
	New: func() Dict { return Dict{"Type": Name("Filespec")} },
}

// PagesClass describes a page-tree node.
var PagesClass = &Class{
	Tag: "Pages",
	Schema: NewSchema(
		&Field{Name: "Type", Types: []TypeTag{TagKind(KindName)}},
		&Field{Name: "Parent", Types: []TypeTag{TagClass("Pages")}},
		&Field{Name: "Kids", Types: []TypeTag{TagKind(KindArray)}, Required: true, Default: Array{}},
		&Field{Name: "Count", Types: []TypeTag{TagKind(KindInteger)}, Required: true, Default: Integer(0)},
	),
	New: func() Dict { return Dict{"Type": Name("Pages"), "Kids": Array{}, "Count": Integer(0)} },
}

// CatalogClass describes the document catalog, the root of the object
// graph. Its Pages field auto-corrects to a freshly wrapped, empty
// page tree when missing, so a document built up programmatically
// from Document.Wrap(Dict{...}, "Catalog") never needs the caller to
// hand-construct the page tree just to pass validation.
var CatalogClass = &Class{
	Tag: "Catalog",
	Schema: NewSchema(
		&Field{Name: "Type", Types: []TypeTag{TagKind(KindName)}},
		&Field{
			Name:     "Pages",
			Types:    []TypeTag{TagClass("Pages")},
			Required: true,
			Indirect: IndirectMust,
			AutoCorrect: func(doc *Document) (Object, error) {
				return doc.Wrap(PagesClass.New(), "Pages")
			},
		},
		&Field{Name: "Version", Types: []TypeTag{TagKind(KindName)}, MinVersion: V1_4},
		&Field{Name: "Lang", Types: []TypeTag{TagMeta(MetaLanguage)}, MinVersion: V1_4},
	),
	New: func() Dict { return Dict{"Type": Name("Catalog")} },
}

// RegisterBuiltinClasses registers the classes every Document needs
// regardless of the document it was built to model.
func RegisterBuiltinClasses(reg *ClassRegistry) {
	reg.Register(FilespecClass)
	reg.Register(PagesClass)
	reg.Register(CatalogClass)
}
