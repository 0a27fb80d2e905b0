// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

// resolveAndCast dereferences obj through doc and asserts the result
// is of type T, returning the zero value and false on any mismatch
// (including a dangling reference, which derefs to Null and so never
// matches a concrete T). This underlies the Get* family below; it
// exists as its own generic so new shape-specific getters are one
// line each.
func resolveAndCast[T Object](doc *Document, obj Object) (T, bool) {
	resolved := doc.Deref(obj)
	v, ok := resolved.(T)
	return v, ok
}

// GetDict derefs obj and asserts it is a Dict.
func GetDict(doc *Document, obj Object) (Dict, bool) {
	return resolveAndCast[Dict](doc, obj)
}

// GetArray derefs obj and asserts it is an Array.
func GetArray(doc *Document, obj Object) (Array, bool) {
	return resolveAndCast[Array](doc, obj)
}

// GetName derefs obj and asserts it is a Name.
func GetName(doc *Document, obj Object) (Name, bool) {
	return resolveAndCast[Name](doc, obj)
}

// GetString derefs obj and asserts it is a String.
func GetString(doc *Document, obj Object) (String, bool) {
	return resolveAndCast[String](doc, obj)
}

// GetInteger derefs obj and asserts it is an Integer.
func GetInteger(doc *Document, obj Object) (Integer, bool) {
	return resolveAndCast[Integer](doc, obj)
}

// GetStream derefs obj and asserts it is a *Stream.
func GetStream(doc *Document, obj Object) (*Stream, bool) {
	return resolveAndCast[*Stream](doc, obj)
}
