// Package jdom provides an implicitly-shared JSON document model layered
// on a reference-counted binary element container.
//
// # Overview
//
// The package centers on three handle types — Array, Object, and
// Document — over one public tagged union, Value. Handles share their
// backing container: Copy is O(1), and storage is duplicated only when
// one of the sharing handles mutates (copy-on-write). Reads never copy.
//
//	a := jdom.NewArray(jdom.FromInt(1), jdom.FromInt(2), jdom.FromInt(3))
//	b := a.Copy()        // O(1), shares storage
//	b.Append(jdom.FromInt(4))
//	// a is [1,2,3], b is [1,2,3,4]
//
// # Values
//
// A Value is null, bool, double, string, array, object, or the
// Undefined sentinel. Constructors mirror the kinds:
//
//	jdom.Null()
//	jdom.FromBool(true)
//	jdom.FromInt(42)        // exact int64 payload, DoubleType
//	jdom.FromFloat(2.5)
//	jdom.FromString("x")
//	jdom.FromArray(arr)
//	jdom.FromObject(obj)
//
// Accessors are total and take an explicit default:
//
//	v.Str("")          // "" unless v is a string
//	v.Int64(0)
//	v.Bool(false)
//
// # Two failure regimes
//
// Query-like operations never fail: At, TakeAt and Object.Get return the
// Undefined sentinel out of range or on absent keys, and out-of-range
// RemoveAt is a no-op. Contract operations — Insert, Replace, RefAt with
// an out-of-range index — treat the violation as a programming error and
// panic. The two regimes are deliberate and callers rely on the split;
// they are not unified into one error type.
//
// # Documents
//
// Document carries an array or object root across formats:
//
//	doc, err := jdom.FromJSON(data)
//	out, err := doc.ToJSON(encode.Compact(true))
//	cb, err := doc.ToCBOR()     // deterministic CBOR
//	yb, err := doc.ToYAML()
//	patched, err := doc.Patch(patchJSON)   // RFC 6902
//
// # Concurrency
//
// The container's reference count is atomic; there is no other locking.
// Independent, already-detached handles are safe to use from multiple
// goroutines. Two goroutines mutating handles that still share one
// container must synchronize externally, like any Go value.
//
// # Related Packages
//
//   - github.com/jdom-format/go-jdom/container - shared element storage
//   - github.com/jdom-format/go-jdom/encode - JSON text rendering
//   - github.com/jdom-format/go-jdom/gomap - Go value bridging
package jdom
