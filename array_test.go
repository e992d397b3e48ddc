package jdom

import (
	"hash/maphash"
	"testing"
)

func intArray(vs ...int64) *Array {
	a := NewArray()
	for _, v := range vs {
		a.Append(FromInt(v))
	}
	return a
}

func TestArrayAppendPrependScenario(t *testing.T) {
	a := NewArray()
	a.Append(FromInt(1))
	a.Append(FromFloat(2.5))
	a.Prepend(FromString("x"))

	if a.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", a.Len())
	}
	if got := a.At(0).Str(""); got != "x" {
		t.Errorf("At(0) = %q, want %q", got, "x")
	}
	if got := a.At(1).Int64(0); got != 1 {
		t.Errorf("At(1) = %d, want 1", got)
	}
	if got := a.At(2).Float64(0); got != 2.5 {
		t.Errorf("At(2) = %g, want 2.5", got)
	}
}

func TestArrayAtSentinel(t *testing.T) {
	var nilArr *Array
	tests := []struct {
		name string
		a    *Array
		i    int
	}{
		{"nil array at 0", nilArr, 0},
		{"nil array at -1", nilArr, -1},
		{"empty array at 0", NewArray(), 0},
		{"negative index", intArray(1, 2, 3), -1},
		{"index == len", intArray(1, 2, 3), 3},
		{"index > len", intArray(1, 2, 3), 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.At(tt.i); !got.IsUndefined() {
				t.Errorf("At(%d) = %v, want Undefined", tt.i, got)
			}
		})
	}
}

func TestArrayFirstLast(t *testing.T) {
	a := intArray(7, 8, 9)
	if got := a.First().Int64(0); got != 7 {
		t.Errorf("First() = %d, want 7", got)
	}
	if got := a.Last().Int64(0); got != 9 {
		t.Errorf("Last() = %d, want 9", got)
	}
	empty := NewArray()
	if !empty.First().IsUndefined() || !empty.Last().IsUndefined() {
		t.Errorf("First/Last on empty array must be Undefined")
	}
}

func TestArrayInsertShift(t *testing.T) {
	for i := 0; i <= 3; i++ {
		a := intArray(10, 20, 30)
		before := make([]Value, a.Len())
		for j := range a.Len() {
			before[j] = a.At(j)
		}
		a.Insert(i, FromString("v"))
		if a.Len() != 4 {
			t.Fatalf("Insert(%d): Len() = %d, want 4", i, a.Len())
		}
		if got := a.At(i).Str(""); got != "v" {
			t.Errorf("Insert(%d): At(%d) = %q, want %q", i, i, got, "v")
		}
		for j, v := range before {
			at := j
			if j >= i {
				at = j + 1
			}
			if !a.At(at).Equal(v) {
				t.Errorf("Insert(%d): element formerly at %d not found at %d", i, j, at)
			}
		}
	}
}

func TestArrayInsertUndefinedStoresNull(t *testing.T) {
	a := NewArray()
	a.Append(Undefined())
	if got := a.At(0); !got.IsNull() {
		t.Errorf("At(0) = %v, want null", got)
	}
}

func TestArrayInsertPanics(t *testing.T) {
	tests := []struct {
		name string
		f    func()
	}{
		{"insert negative", func() { intArray(1).Insert(-1, Null()) }},
		{"insert past end", func() { intArray(1).Insert(3, Null()) }},
		{"replace negative", func() { intArray(1).Replace(-1, Null()) }},
		{"replace at len", func() { intArray(1).Replace(1, Null()) }},
		{"refat out of range", func() { intArray(1).RefAt(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic")
				}
			}()
			tt.f()
		})
	}
}

func TestArrayRemoveAt(t *testing.T) {
	a := intArray(1, 2, 3)
	a.RemoveAt(1)
	if !a.Equal(intArray(1, 3)) {
		t.Errorf("RemoveAt(1) = %s, want [1,3]", a)
	}

	// out of range removal is a silent no-op
	b := intArray(1, 2, 3)
	b.RemoveAt(-1)
	b.RemoveAt(3)
	b.RemoveAt(100)
	if !b.Equal(intArray(1, 2, 3)) {
		t.Errorf("out-of-range RemoveAt mutated: %s", b)
	}

	var nilArr *Array
	nilArr.RemoveAt(0) // must not panic
}

func TestArrayTakeAt(t *testing.T) {
	a := intArray(1, 2, 3)
	v := a.TakeAt(1)
	if got := v.Int64(0); got != 2 {
		t.Errorf("TakeAt(1) = %v, want 2", v)
	}
	if !a.Equal(intArray(1, 3)) {
		t.Errorf("after TakeAt(1): %s, want [1,3]", a)
	}

	b := intArray(1, 2, 3)
	if got := b.TakeAt(5); !got.IsUndefined() {
		t.Errorf("TakeAt(5) = %v, want Undefined", got)
	}
	if !b.Equal(intArray(1, 2, 3)) {
		t.Errorf("out-of-range TakeAt mutated: %s", b)
	}
}

func TestArrayTakeEqualsRemove(t *testing.T) {
	for i := range 3 {
		a := intArray(5, 6, 7)
		b := a.Copy()
		want := a.At(i)
		got := a.TakeAt(i)
		b.RemoveAt(i)
		if !got.Equal(want) {
			t.Errorf("TakeAt(%d) = %v, want %v", i, got, want)
		}
		if !a.Equal(b) {
			t.Errorf("TakeAt(%d) result %s != RemoveAt result %s", i, a, b)
		}
	}
}

func TestArrayInsertRemoveInverse(t *testing.T) {
	values := []Value{Null(), FromBool(true), FromFloat(3.14), FromString("q")}
	for _, v := range values {
		for i := 0; i <= 3; i++ {
			a := intArray(1, 2, 3)
			orig := a.Copy()
			a.Insert(i, v)
			a.RemoveAt(i)
			if !a.Equal(orig) {
				t.Errorf("insert/remove at %d of %v not inverse: %s", i, v, a)
			}
		}
	}
}

func TestArrayReplace(t *testing.T) {
	a := intArray(1, 2, 3)
	a.Replace(1, FromString("mid"))
	if got := a.At(1).Str(""); got != "mid" {
		t.Errorf("At(1) = %q, want %q", got, "mid")
	}
	if a.Len() != 3 {
		t.Errorf("Replace changed size: %d", a.Len())
	}
	a.Set(0, FromBool(true))
	if got := a.At(0).Bool(false); !got {
		t.Errorf("Set(0, true) not visible")
	}
}

func TestArrayRefAt(t *testing.T) {
	a := intArray(1, 2, 3)
	r := a.RefAt(1)
	if got := r.Value().Int64(0); got != 2 {
		t.Errorf("RefAt(1).Value() = %d, want 2", got)
	}
	r.Set(FromInt(20))
	if got := a.At(1).Int64(0); got != 20 {
		t.Errorf("after RefAt(1).Set(20): At(1) = %d", got)
	}
}

func TestArrayContains(t *testing.T) {
	a := intArray(1, 2, 3)
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"present int", FromInt(2), true},
		{"absent int", FromInt(5), false},
		{"float equal to int", FromFloat(2.0), true},
		{"string", FromString("2"), false},
		{"undefined never contained", Undefined(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Contains(tt.v); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestArrayEqual(t *testing.T) {
	var nilArr *Array
	tests := []struct {
		name string
		a, b *Array
		want bool
	}{
		{"nil vs nil", nilArr, nilArr, true},
		{"nil vs empty", nilArr, NewArray(), true},
		{"empty vs empty", NewArray(), NewArray(), true},
		{"equal contents", intArray(1, 2, 3), intArray(1, 2, 3), true},
		{"different size", intArray(1, 2), intArray(1, 2, 3), false},
		{"different order", intArray(2, 1), intArray(1, 2), false},
		{"int vs float payload", intArray(1), NewArray(FromFloat(1)), true},
		{"nested equal", NewArray(FromArray(intArray(1))), NewArray(FromArray(intArray(1))), true},
		{"nested unequal", NewArray(FromArray(intArray(1))), NewArray(FromArray(intArray(2))), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			// symmetry
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal() not symmetric")
			}
		})
	}
}

func TestArrayCopyIsolation(t *testing.T) {
	a := intArray(1, 2, 3)
	b := a.Copy()
	if !a.Equal(b) {
		t.Fatalf("copy not equal: %s vs %s", a, b)
	}
	if a.c != b.c {
		t.Fatalf("copy must share the container")
	}

	b.Append(FromInt(4))
	if !a.Equal(intArray(1, 2, 3)) {
		t.Errorf("mutating copy changed original: %s", a)
	}
	if !b.Equal(intArray(1, 2, 3, 4)) {
		t.Errorf("copy = %s, want [1,2,3,4]", b)
	}

	// and the other direction
	c := intArray(1, 2, 3)
	d := c.Copy()
	c.Replace(0, FromInt(10))
	if !d.Equal(intArray(1, 2, 3)) {
		t.Errorf("mutating original changed copy: %s", d)
	}
}

func TestArrayUniqueMutatesInPlace(t *testing.T) {
	a := intArray(1, 2, 3)
	c := a.c
	a.Append(FromInt(4))
	a.Replace(0, FromInt(0))
	a.RemoveAt(3)
	if a.c != c {
		t.Errorf("uniquely-owned array reallocated on mutation")
	}
}

func TestArrayReadsNeverDetach(t *testing.T) {
	a := intArray(1, 2, 3)
	b := a.Copy()

	_ = a.At(1)
	_ = a.Len()
	_ = a.Contains(FromInt(2))
	_ = a.Equal(b)
	_ = a.Hash(maphash.MakeSeed())
	for range a.Values() {
	}

	if a.c != b.c {
		t.Errorf("read operations detached the shared container")
	}
}

func TestArrayIteration(t *testing.T) {
	a := NewArray(FromString("a"), FromString("b"), FromString("c"))
	var got []string
	for i, v := range a.All() {
		got = append(got, v.Str(""))
		if i != len(got)-1 {
			t.Errorf("All() index %d out of order", i)
		}
	}
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Errorf("All() = %v", got)
	}

	// early break
	n := 0
	for range a.Values() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("early break iterated %d", n)
	}
}

func TestArrayFromStrings(t *testing.T) {
	a := FromStrings([]string{"x", "y"})
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
	if a.At(0).Str("") != "x" || a.At(1).Str("") != "y" {
		t.Errorf("FromStrings order wrong: %s", a)
	}
	if FromStrings(nil).Len() != 0 {
		t.Errorf("FromStrings(nil) not empty")
	}
}

func TestArraySliceRoundTrip(t *testing.T) {
	a, err := FromSlice([]any{int64(1), "two", 2.5, true, nil})
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", a.Len())
	}
	out := a.ToSlice()
	b, err := FromSlice(out)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("ToSlice/FromSlice round trip: %s vs %s", a, b)
	}
}

func TestArrayString(t *testing.T) {
	tests := []struct {
		name string
		a    *Array
		want string
	}{
		{"empty", NewArray(), "[]"},
		{"ints", intArray(1, 2), "[1,2]"},
		{"mixed", NewArray(FromString("x"), Null(), FromBool(true)), `["x",null,true]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
