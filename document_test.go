package jdom

import (
	"errors"
	"strings"
	"testing"

	"github.com/jdom-format/go-jdom/encode"
)

const sampleJSON = `{"name":"svc","ports":[80,443],"tls":true,"weight":2.5,"note":null}`

func mustFromJSON(t *testing.T, s string) *Document {
	t.Helper()
	d, err := FromJSON([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestDocumentJSONRoundTrip(t *testing.T) {
	d := mustFromJSON(t, sampleJSON)
	out, err := d.ToJSON(encode.Compact(true))
	if err != nil {
		t.Fatal(err)
	}
	d2, err := FromJSON(out)
	if err != nil {
		t.Fatal(err)
	}
	if !d.Equal(d2) {
		t.Errorf("round trip changed document:\n%s\n%s", d, d2)
	}
}

func TestDocumentJSONAccess(t *testing.T) {
	d := mustFromJSON(t, sampleJSON)
	o, ok := d.Object()
	if !ok {
		t.Fatalf("root is not an object")
	}
	if got := o.Get("name").Str(""); got != "svc" {
		t.Errorf("name = %q", got)
	}
	ports := o.Get("ports").Array()
	if ports.Len() != 2 || ports.At(0).Int64(0) != 80 {
		t.Errorf("ports = %s", ports)
	}
	if !o.Get("note").IsNull() {
		t.Errorf("note not null")
	}
	if _, ok := d.Array(); ok {
		t.Errorf("Array() ok on object root")
	}
}

func TestDocumentIntExactness(t *testing.T) {
	d := mustFromJSON(t, `[9007199254740993]`) // 2^53+1, not float-representable
	a, _ := d.Array()
	if got := a.At(0).Int64(0); got != 9007199254740993 {
		t.Errorf("large int = %d", got)
	}
}

func TestDocumentEmptyRoot(t *testing.T) {
	d := NewDocument()
	if !d.IsEmpty() {
		t.Fatalf("NewDocument not empty")
	}
	if _, err := d.ToJSON(); !errors.Is(err, ErrRoot) {
		t.Errorf("ToJSON on empty = %v, want ErrRoot", err)
	}
	if _, err := d.ToCBOR(); !errors.Is(err, ErrRoot) {
		t.Errorf("ToCBOR on empty = %v, want ErrRoot", err)
	}
}

func TestDocumentScalarRootRejected(t *testing.T) {
	for _, s := range []string{`42`, `"str"`, `true`, `null`} {
		if _, err := FromJSON([]byte(s)); !errors.Is(err, ErrRoot) {
			t.Errorf("FromJSON(%s) = %v, want ErrRoot", s, err)
		}
	}
}

func TestDocumentCBORRoundTrip(t *testing.T) {
	d := mustFromJSON(t, sampleJSON)
	raw, err := d.ToCBOR()
	if err != nil {
		t.Fatal(err)
	}
	d2, err := FromCBOR(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !d.Equal(d2) {
		t.Errorf("CBOR round trip changed document:\n%s\n%s", d, d2)
	}
}

func TestDocumentCBORDeterministic(t *testing.T) {
	a := NewObjectDocument(objOf("b", FromInt(2), "a", FromInt(1)))
	b := NewObjectDocument(objOf("a", FromInt(1), "b", FromInt(2)))
	ra, err := a.ToCBOR()
	if err != nil {
		t.Fatal(err)
	}
	rb, err := b.ToCBOR()
	if err != nil {
		t.Fatal(err)
	}
	if string(ra) != string(rb) {
		t.Errorf("equal documents encode differently:\n% x\n% x", ra, rb)
	}
}

func TestDocumentYAMLRoundTrip(t *testing.T) {
	d := mustFromJSON(t, sampleJSON)
	raw, err := d.ToYAML()
	if err != nil {
		t.Fatal(err)
	}
	d2, err := FromYAML(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !d.Equal(d2) {
		t.Errorf("YAML round trip changed document:\n%s\n%s", d, d2)
	}
}

func TestDocumentPatch(t *testing.T) {
	d := mustFromJSON(t, `{"a":1,"list":[1,2,3]}`)
	patch := []byte(`[
		{"op":"replace","path":"/a","value":10},
		{"op":"add","path":"/list/1","value":99},
		{"op":"remove","path":"/list/3"}
	]`)
	got, err := d.Patch(patch)
	if err != nil {
		t.Fatal(err)
	}
	want := mustFromJSON(t, `{"a":10,"list":[1,99,2]}`)
	if !got.Equal(want) {
		t.Errorf("Patch = %s, want %s", got, want)
	}
	// receiver untouched
	if !d.Equal(mustFromJSON(t, `{"a":1,"list":[1,2,3]}`)) {
		t.Errorf("Patch mutated receiver: %s", d)
	}
}

func TestDocumentMerge(t *testing.T) {
	d := mustFromJSON(t, `{"a":1,"b":{"x":1,"y":2}}`)
	got, err := d.Merge([]byte(`{"a":null,"b":{"y":20}}`))
	if err != nil {
		t.Fatal(err)
	}
	want := mustFromJSON(t, `{"b":{"x":1,"y":20}}`)
	if !got.Equal(want) {
		t.Errorf("Merge = %s, want %s", got, want)
	}
}

func TestDocumentIndentedOutput(t *testing.T) {
	d := mustFromJSON(t, `{"a":[1]}`)
	out, err := d.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if !strings.Contains(s, "\n") || !strings.HasSuffix(s, "\n") {
		t.Errorf("indented output malformed: %q", s)
	}
	d2, err := FromJSON(out)
	if err != nil {
		t.Fatal(err)
	}
	if !d.Equal(d2) {
		t.Errorf("indented round trip changed document")
	}
}

func TestDocumentSetRoots(t *testing.T) {
	d := NewDocument()
	d.SetArray(intArray(1, 2))
	if !d.IsArray() {
		t.Fatalf("SetArray: IsArray false")
	}
	a, _ := d.Array()
	if !a.Equal(intArray(1, 2)) {
		t.Errorf("root = %s", a)
	}

	d.SetObject(objOf("k", Null()))
	if !d.IsObject() {
		t.Fatalf("SetObject: IsObject false")
	}
	o, _ := d.Object()
	if !o.Has("k") {
		t.Errorf("root = %s", o)
	}
}

func TestDocumentRootSharesContainer(t *testing.T) {
	a := intArray(1, 2)
	d := NewArrayDocument(a)
	// mutating the handle afterwards detaches it and leaves the
	// document's state behind
	a.Append(FromInt(3))
	got, _ := d.Array()
	if !got.Equal(intArray(1, 2)) {
		t.Errorf("document root changed after handle mutation: %s", got)
	}
}
