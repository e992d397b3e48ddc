// Package container implements the shared element store backing the jdom
// value types.
//
// A Container is an ordered sequence of Elements with an atomic reference
// count. Array and Object handles in the jdom package share a Container
// until one of them mutates, at which point the mutating handle detaches:
// it obtains a uniquely-owned copy via Detach and edits that copy. Reads
// never detach. This gives the public types copy-on-write value semantics
// with O(1) copies.
//
// The reference count tracks handles created through the jdom package's
// explicit Copy and conversion operations. Go's garbage collector owns the
// memory; the count exists only to drive the detach decision. A count
// snapshot greater than one forces a copy, which is the pessimistic (safe)
// policy under concurrent readers.
//
// An Element is one slot holding a binary-encodable value: a scalar, or a
// nested *Container for arrays and objects. Object containers hold
// alternating key/value slots with keys sorted ascending; the container
// itself is agnostic to that convention, the jdom.Object type maintains it.
//
// The cbor.go file provides a deterministic CBOR codec for element trees
// (RFC 8949 Core Deterministic Encoding) built on fxamacker/cbor.
package container
