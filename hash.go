package jdom

import (
	"encoding/binary"
	"hash/maphash"
	"math"

	"github.com/jdom-format/go-jdom/container"
)

// Hash returns a 64-bit hash of the value under the given seed. Equal
// values hash identically for the same seed; different seeds give
// independent hash functions.
func (v Value) Hash(seed maphash.Seed) uint64 {
	if v.t == UndefinedType {
		var h maphash.Hash
		h.SetSeed(seed)
		h.WriteByte(0xff)
		return h.Sum64()
	}
	return elementHash(v.toElement(), seed)
}

// Hash returns a 64-bit hash of the array under the given seed. The
// combination is order-sensitive: equal sequences hash identically,
// permutations carry no guarantee either way.
func (a *Array) Hash(seed maphash.Seed) uint64 {
	var c *container.Container
	if a != nil {
		c = a.c
	}
	return elementHash(container.FromArray(c), seed)
}

// Hash returns a 64-bit hash of the object under the given seed. Keys
// are stored sorted, so structurally equal objects hash identically.
func (o *Object) Hash(seed maphash.Seed) uint64 {
	var c *container.Container
	if o != nil {
		c = o.c
	}
	return elementHash(container.FromObject(c), seed)
}

func elementHash(e container.Element, seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)

	kind := e.Kind
	// Numbers hash by canonical float bits when the int payload survives
	// the round trip, keeping the hash consistent with numeric equality
	// across int and double payloads.
	if kind == container.IntKind && int64(float64(e.Int64)) == e.Int64 {
		kind = container.DoubleKind
		e = container.FromFloat(float64(e.Int64))
	}

	h.WriteByte(byte(kind))
	switch kind {
	case container.NullKind, container.FalseKind, container.TrueKind:
	case container.IntKind:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(e.Int64))
		h.Write(b[:])
	case container.DoubleKind:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(e.Float64))
		h.Write(b[:])
	case container.StringKind:
		h.WriteString(e.String)
	case container.ArrayKind, container.ObjectKind:
		var b [8]byte
		for i := range e.Sub.Len() {
			// combine child hashes order-dependently
			binary.LittleEndian.PutUint64(b[:], elementHash(e.Sub.At(i), seed))
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
