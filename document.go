package jdom

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"

	"github.com/jdom-format/go-jdom/container"
	"github.com/jdom-format/go-jdom/encode"
	"github.com/jdom-format/go-jdom/gomap"
)

// Document wraps a complete JSON document: an array root, an object
// root, or empty. It is the unit of interchange — text JSON in and out,
// deterministic CBOR, YAML, and RFC 6902/7386 patching all live here.
// The root shares its container with any handle it was built from, under
// the usual copy-on-write rules.
type Document struct {
	root Value
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{root: Undefined()}
}

// NewArrayDocument returns a document with a's contents as root.
func NewArrayDocument(a *Array) *Document {
	return &Document{root: FromArray(a)}
}

// NewObjectDocument returns a document with o's contents as root.
func NewObjectDocument(o *Object) *Document {
	return &Document{root: FromObject(o)}
}

func (d *Document) IsEmpty() bool {
	return d.root.IsUndefined()
}

func (d *Document) IsArray() bool {
	return d.root.IsArray()
}

func (d *Document) IsObject() bool {
	return d.root.IsObject()
}

// Array returns the root as an array handle; ok is false when the root
// is not an array.
func (d *Document) Array() (*Array, bool) {
	if !d.root.IsArray() {
		return nil, false
	}
	return d.root.Array(), true
}

// Object returns the root as an object handle; ok is false when the
// root is not an object.
func (d *Document) Object() (*Object, bool) {
	if !d.root.IsObject() {
		return nil, false
	}
	return d.root.Object(), true
}

// SetArray makes a's contents the document root.
func (d *Document) SetArray(a *Array) {
	d.root = FromArray(a)
}

// SetObject makes o's contents the document root.
func (d *Document) SetObject(o *Object) {
	d.root = FromObject(o)
}

// Equal reports whether both documents hold equal roots.
func (d *Document) Equal(e *Document) bool {
	return d.root.Equal(e.root)
}

func (d *Document) String() string {
	if d.IsEmpty() {
		return ""
	}
	return encode.MustString(d.root.toElement())
}

// ToJSON renders the document as JSON text. Defaults to indented form;
// pass encode.Compact(true) for wire form.
func (d *Document) ToJSON(opts ...encode.EncodeOption) ([]byte, error) {
	if d.IsEmpty() {
		return nil, ErrRoot
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Element(d.root.toElement(), buf, opts...); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// FromJSON builds a document from JSON text. The bytes are bridged
// through encoding/json with UseNumber, preserving integer exactness;
// this package implements no JSON grammar of its own.
func FromJSON(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("jdom: decoding JSON: %w", err)
	}
	// reduce json.Number and friends to the variant set
	norm, err := gomap.Normalize(v)
	if err != nil {
		return nil, err
	}
	return fromVariantRoot(norm)
}

// ToCBOR encodes the document to deterministic CBOR (RFC 8949 Core
// Deterministic Encoding).
func (d *Document) ToCBOR() ([]byte, error) {
	if d.IsEmpty() {
		return nil, ErrRoot
	}
	return container.EncodeCBOR(d.root.toElement())
}

// FromCBOR builds a document from CBOR bytes.
func FromCBOR(data []byte) (*Document, error) {
	e, err := container.DecodeCBOR(data)
	if err != nil {
		return nil, fmt.Errorf("jdom: decoding CBOR: %w", err)
	}
	root := fromElementOwned(e)
	if !root.IsArray() && !root.IsObject() {
		return nil, ErrRoot
	}
	return &Document{root: root}, nil
}

// ToYAML renders the document as YAML through the variant bridge.
func (d *Document) ToYAML() ([]byte, error) {
	if d.IsEmpty() {
		return nil, ErrRoot
	}
	return yaml.Marshal(d.root.ToGo())
}

// FromYAML builds a document from YAML text through the variant bridge.
func FromYAML(data []byte) (*Document, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("jdom: decoding YAML: %w", err)
	}
	norm, err := gomap.Normalize(v)
	if err != nil {
		return nil, err
	}
	return fromVariantRoot(norm)
}

// Patch applies an RFC 6902 JSON Patch and returns the patched document.
// The receiver is unchanged.
func (d *Document) Patch(patch []byte) (*Document, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("jdom: decoding patch: %w", err)
	}
	src, err := d.ToJSON(encode.Compact(true))
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(src)
	if err != nil {
		return nil, fmt.Errorf("jdom: applying patch: %w", err)
	}
	return FromJSON(out)
}

// Merge applies an RFC 7386 merge patch and returns the merged document.
// The receiver is unchanged.
func (d *Document) Merge(patch []byte) (*Document, error) {
	src, err := d.ToJSON(encode.Compact(true))
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(src, patch)
	if err != nil {
		return nil, fmt.Errorf("jdom: applying merge patch: %w", err)
	}
	return FromJSON(out)
}

func fromVariantRoot(v any) (*Document, error) {
	e, err := container.FromVariant(v)
	if err != nil {
		return nil, err
	}
	root := fromElementOwned(e)
	if !root.IsArray() && !root.IsObject() {
		return nil, ErrRoot
	}
	return &Document{root: root}, nil
}
