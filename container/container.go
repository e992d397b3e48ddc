package container

import (
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/jdom-format/go-jdom/debug"
)

// Container is an ordered element store with an atomic reference count.
// It is created uniquely owned (count 1) and becomes shared when a handle
// is copied. The index primitives must only be called on a uniquely-owned
// container; the jdom layer guarantees that by detaching first.
type Container struct {
	ref   atomic.Int64
	elems []Element
}

// New returns a uniquely-owned container with the given capacity reserved.
func New(capacity int) *Container {
	c := &Container{}
	if capacity > 0 {
		c.elems = make([]Element, 0, capacity)
	}
	c.ref.Store(1)
	return c
}

// Ref records one more handle sharing c. Nil-safe.
func (c *Container) Ref() {
	if c == nil {
		return
	}
	c.ref.Add(1)
}

// Deref records one fewer handle sharing c and reports whether the count
// reached zero. Nil-safe.
func (c *Container) Deref() bool {
	if c == nil {
		return false
	}
	return c.ref.Add(-1) == 0
}

// Shared reports whether the reference count snapshot exceeds one. A true
// result is stable only for the caller that holds a reference; detach
// decisions made on a false result require that caller to be the unique
// owner.
func (c *Container) Shared() bool {
	if c == nil {
		return false
	}
	return c.ref.Load() > 1
}

// Len returns the element count. Nil-safe.
func (c *Container) Len() int {
	if c == nil {
		return 0
	}
	return len(c.elems)
}

// Detach returns a container holding c's elements that is uniquely owned
// by the caller, with capacity for at least reserve elements. If c is
// shared the elements are copied into a fresh container, nested
// sub-containers gain a reference (copy-on-write recurses lazily), and
// the caller's reference on c is dropped. If c is nil a fresh container
// is allocated. The returned container is always safe to mutate.
func Detach(c *Container, reserve int) *Container {
	if c == nil {
		return New(reserve)
	}
	if reserve < len(c.elems) {
		reserve = len(c.elems)
	}
	if !c.Shared() {
		c.elems = slices.Grow(c.elems, reserve-len(c.elems))
		return c
	}
	if debug.Detach() {
		debug.Logf("container: detach copy of %d elements (ref=%d)\n", len(c.elems), c.ref.Load())
	}
	d := c.Clone(reserve)
	c.Deref()
	return d
}

// Clone returns a uniquely-owned copy of c with capacity for at least
// reserve elements. The element metadata is copied; nested sub-containers
// are shared with a bumped reference count.
func (c *Container) Clone(reserve int) *Container {
	if reserve < len(c.elems) {
		reserve = len(c.elems)
	}
	d := New(reserve)
	d.elems = d.elems[:len(c.elems)]
	copy(d.elems, c.elems)
	for i := range d.elems {
		d.elems[i].Sub.Ref()
	}
	return d
}

// At returns the element at index i. The index must be in [0, Len()); the
// jdom layer checks bounds before calling.
func (c *Container) At(i int) Element {
	c.check(i)
	return c.elems[i]
}

// InsertAt inserts e at index i, shifting later elements one slot right.
// i may equal Len() to append.
func (c *Container) InsertAt(i int, e Element) {
	if i < 0 || i > len(c.elems) {
		panic(fmt.Sprintf("container: InsertAt index %d out of range [0,%d]", i, len(c.elems)))
	}
	c.elems = slices.Insert(c.elems, i, e)
}

// RemoveAt removes the element at index i, shifting later elements one
// slot left.
func (c *Container) RemoveAt(i int) {
	c.check(i)
	c.elems = slices.Delete(c.elems, i, i+1)
}

// ReplaceAt overwrites the element at index i in place.
func (c *Container) ReplaceAt(i int, e Element) {
	c.check(i)
	c.elems[i] = e
}

// ExtractAt returns the element at index i without removing it; callers
// pair it with RemoveAt when taking a value out of the container.
func (c *Container) ExtractAt(i int) Element {
	c.check(i)
	return c.elems[i]
}

func (c *Container) check(i int) {
	if i < 0 || i >= len(c.elems) {
		panic(fmt.Sprintf("container: index %d out of range [0,%d)", i, len(c.elems)))
	}
}
