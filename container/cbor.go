package container

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/fxamacker/cbor/v2"

	"github.com/jdom-format/go-jdom/debug"
)

// encMode is the CBOR encoder configured with Core Deterministic Encoding
// (RFC 8949 §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. The same element tree always produces identical
// bytes.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured to accept standard CBOR, with
// integers decoded to int64 and maps to map[string]any so the decoded
// variant matches the element model.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("container: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		IntDec:         cbor.IntDecConvertSignedOrFail,
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("container: CBOR decoder initialization failed: " + err.Error())
	}
}

// EncodeCBOR encodes the element tree rooted at e to deterministic CBOR.
func EncodeCBOR(e Element) ([]byte, error) {
	v, err := ToVariant(e)
	if err != nil {
		return nil, err
	}
	d, err := encMode.Marshal(v)
	if err != nil {
		return nil, err
	}
	if debug.Codec() {
		debug.Logf("container: encoded %s root to %d CBOR bytes\n", e.Kind.String(), len(d))
	}
	return d, nil
}

// DecodeCBOR decodes CBOR data into an element tree. Maps decode to
// object containers with keys sorted ascending; non-string map keys are
// rejected.
func DecodeCBOR(data []byte) (Element, error) {
	var v any
	if err := decMode.Unmarshal(data, &v); err != nil {
		return Element{}, err
	}
	return FromVariant(v)
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) for data.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}

// ToVariant lowers an element tree to the Go variant set understood by
// the CBOR encoder: nil, bool, int64, float64, string, []any,
// map[string]any.
func ToVariant(e Element) (any, error) {
	switch e.Kind {
	case NullKind:
		return nil, nil
	case FalseKind:
		return false, nil
	case TrueKind:
		return true, nil
	case IntKind:
		return e.Int64, nil
	case DoubleKind:
		return e.Float64, nil
	case StringKind:
		return e.String, nil
	case ArrayKind:
		res := make([]any, e.Sub.Len())
		for i := range e.Sub.Len() {
			v, err := ToVariant(e.Sub.At(i))
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ObjectKind:
		n := e.Sub.Len()
		if n%2 != 0 {
			return nil, fmt.Errorf("container: object container with odd element count %d", n)
		}
		res := make(map[string]any, n/2)
		for i := 0; i < n; i += 2 {
			key := e.Sub.At(i)
			if key.Kind != StringKind {
				return nil, fmt.Errorf("container: object key at slot %d is %s, not String", i, key.Kind)
			}
			v, err := ToVariant(e.Sub.At(i + 1))
			if err != nil {
				return nil, err
			}
			res[key.String] = v
		}
		return res, nil
	}
	return nil, fmt.Errorf("container: cannot encode kind %s", e.Kind)
}

// FromVariant raises a Go variant value (nil, bool, int64, float64,
// string, []any, map[string]any) to an element tree. Object keys come
// out sorted ascending, matching the container convention for objects.
func FromVariant(v any) (Element, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case int64:
		return FromInt(x), nil
	case float64:
		return FromFloat(x), nil
	case string:
		return FromString(x), nil
	case []any:
		c := New(len(x))
		for i, item := range x {
			e, err := FromVariant(item)
			if err != nil {
				return Element{}, err
			}
			c.InsertAt(i, e)
		}
		return FromArray(c), nil
	case map[string]any:
		c := New(2 * len(x))
		keys := slices.Sorted(maps.Keys(x))
		for _, key := range keys {
			e, err := FromVariant(x[key])
			if err != nil {
				return Element{}, err
			}
			c.InsertAt(c.Len(), FromString(key))
			c.InsertAt(c.Len(), e)
		}
		return FromObject(c), nil
	}
	return Element{}, fmt.Errorf("container: unsupported variant type %T", v)
}
