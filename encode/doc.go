// Package encode renders jdom element trees as JSON text.
//
// # Usage
//
//	// Render an element tree
//	err := encode.Element(elem, os.Stdout)
//
//	// Render with options
//	err := encode.Element(elem, w, encode.Compact(true))
//	err := encode.Element(elem, w, encode.Indent(4))
//
//	// Render with terminal colors
//	err := encode.Element(elem, w, encode.EncodeColors(encode.NewColors()))
//
// The writer produces canonical JSON: object keys appear in container
// order (the jdom.Object type keeps them sorted), integer-valued numbers
// render without a decimal point, and non-finite doubles render as null
// since JSON has no representation for them.
//
// # Related Packages
//
//   - github.com/jdom-format/go-jdom - public value types
//   - github.com/jdom-format/go-jdom/container - element storage
package encode
