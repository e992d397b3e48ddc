package gomap

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// Normalize reduces v to the variant set: nil, bool, int64, float64,
// string, []any, map[string]any. It follows pointers and interfaces,
// flattens structs honoring `jdom` tags, and uses TextMarshaler
// implementations for leaf types that have one.
func Normalize(v any) (any, error) {
	return normalize(reflect.ValueOf(v), "")
}

func normalize(val reflect.Value, path string) (any, error) {
	if !val.IsValid() {
		return nil, nil
	}

	switch n := val.Interface().(type) {
	case json.Number:
		return normalizeNumber(n, path)
	case encoding.TextMarshaler:
		d, err := n.MarshalText()
		if err != nil {
			return nil, &MarshalError{FieldPath: path, Message: "MarshalText failed", Err: err}
		}
		return string(d), nil
	}

	switch val.Kind() {
	case reflect.Invalid:
		return nil, nil
	case reflect.Bool:
		return val.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return val.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := val.Uint()
		if u > math.MaxInt64 {
			return nil, &MarshalError{FieldPath: path, Message: fmt.Sprintf("uint value %d overflows int64", u)}
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return val.Float(), nil
	case reflect.String:
		return val.String(), nil
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return nil, nil
		}
		return normalize(val.Elem(), path)
	case reflect.Slice, reflect.Array:
		if val.Kind() == reflect.Slice && val.IsNil() {
			return nil, nil
		}
		res := make([]any, val.Len())
		for i := range val.Len() {
			item, err := normalize(val.Index(i), fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			res[i] = item
		}
		return res, nil
	case reflect.Map:
		if val.IsNil() {
			return nil, nil
		}
		if val.Type().Key().Kind() != reflect.String {
			return nil, &TypeError{FieldPath: path, GoType: val.Type().String(),
				Message: "map keys must be strings"}
		}
		res := make(map[string]any, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			key := iter.Key().String()
			item, err := normalize(iter.Value(), joinPath(path, key))
			if err != nil {
				return nil, err
			}
			res[key] = item
		}
		return res, nil
	case reflect.Struct:
		return normalizeStruct(val, path)
	}
	return nil, &TypeError{FieldPath: path, GoType: val.Type().String()}
}

func normalizeStruct(val reflect.Value, path string) (any, error) {
	typ := val.Type()
	res := make(map[string]any, typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, omitEmpty, skip := parseFieldTag(field)
		if skip {
			continue
		}
		if field.Anonymous && field.Tag.Get("jdom") == "" {
			// untagged embedded struct: flatten its fields
			inner, err := normalize(val.Field(i), path)
			if err != nil {
				return nil, err
			}
			if m, ok := inner.(map[string]any); ok {
				for k, v := range m {
					res[k] = v
				}
				continue
			}
		}
		fv := val.Field(i)
		if omitEmpty && fv.IsZero() {
			continue
		}
		item, err := normalize(fv, joinPath(path, name))
		if err != nil {
			return nil, err
		}
		res[name] = item
	}
	return res, nil
}

// parseFieldTag reads the `jdom` tag: `jdom:"name,omitempty"`, `jdom:"-"`.
func parseFieldTag(field reflect.StructField) (name string, omitEmpty, skip bool) {
	name = field.Name
	tag, ok := field.Tag.Lookup("jdom")
	if !ok {
		return name, false, false
	}
	if tag == "-" {
		return "", false, true
	}
	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		name = parts[0]
	}
	for _, p := range parts[1:] {
		if p == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

func normalizeNumber(n json.Number, path string) (any, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return nil, &MarshalError{FieldPath: path, Message: fmt.Sprintf("bad number %q", s), Err: err}
	}
	return f, nil
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
