// Package gomap lowers native Go values to the jdom variant set.
//
// The variant set is the dynamically-typed graph the document model
// exchanges at its conversion boundary: nil, bool, int64, float64,
// string, []any with variant elements, and map[string]any with variant
// values. Normalize reduces arbitrary Go values — structs, maps, slices,
// pointers, json.Number — to that set.
//
// # Usage
//
//	type User struct {
//	    Name  string `jdom:"name"`
//	    Email string `jdom:"email,omitempty"`
//	    local int    `jdom:"-"`
//	}
//	v, err := gomap.Normalize(User{Name: "alice"})
//	// v is map[string]any{"name": "alice"}
//
// Struct fields honor a `jdom` tag with the usual shape: an optional
// rename, "omitempty", and "-" to skip the field. Untagged exported
// fields use their Go name. Types implementing encoding.TextMarshaler
// normalize to their text form.
//
// The reverse direction needs no reflection: the document model emits
// the variant set directly (Array.ToSlice, Object.ToMap).
//
// # Related Packages
//
//   - github.com/jdom-format/go-jdom - public value types
package gomap
