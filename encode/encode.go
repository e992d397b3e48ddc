package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jdom-format/go-jdom/container"
)

type EncState struct {
	depth   int
	indent  int
	compact bool

	Color func(container.Kind, ColorAttr, string) string
}

// Element writes the JSON rendering of the element tree rooted at e to w.
func Element(e container.Element, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(e, w, es)
}

func encode(e container.Element, w io.Writer, es *EncState) error {
	switch e.Kind {
	case container.NullKind:
		return writeValue(w, es, e.Kind, "null")
	case container.FalseKind:
		return writeValue(w, es, e.Kind, "false")
	case container.TrueKind:
		return writeValue(w, es, e.Kind, "true")
	case container.IntKind:
		return writeValue(w, es, e.Kind, strconv.FormatInt(e.Int64, 10))
	case container.DoubleKind:
		return writeValue(w, es, e.Kind, formatDouble(e.Float64))
	case container.StringKind:
		return writeValue(w, es, e.Kind, quote(e.String))
	case container.ArrayKind:
		return encodeArray(e.Sub, w, es)
	case container.ObjectKind:
		return encodeObject(e.Sub, w, es)
	}
	return fmt.Errorf("encode: unknown element kind %s", e.Kind)
}

func encodeArray(c *container.Container, w io.Writer, es *EncState) error {
	n := c.Len()
	if n == 0 {
		return writeSep(w, es, container.ArrayKind, "[]")
	}
	if err := writeSep(w, es, container.ArrayKind, "["); err != nil {
		return err
	}
	es.depth++
	for i := range n {
		if i > 0 {
			if err := writeSep(w, es, container.ArrayKind, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(c.At(i), w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, container.ArrayKind, "]")
}

func encodeObject(c *container.Container, w io.Writer, es *EncState) error {
	n := c.Len()
	if n == 0 {
		return writeSep(w, es, container.ObjectKind, "{}")
	}
	if err := writeSep(w, es, container.ObjectKind, "{"); err != nil {
		return err
	}
	es.depth++
	for i := 0; i < n; i += 2 {
		if i > 0 {
			if err := writeSep(w, es, container.ObjectKind, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		key := c.At(i)
		if key.Kind != container.StringKind {
			return fmt.Errorf("encode: object key at slot %d is %s, not String", i, key.Kind)
		}
		if err := writeField(w, es, quote(key.String)); err != nil {
			return err
		}
		if err := writeSep(w, es, container.ObjectKind, ":"); err != nil {
			return err
		}
		if !es.compact {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if err := encode(c.At(i+1), w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, container.ObjectKind, "}")
}

// formatDouble renders a float64 the way encoding/json does: shortest
// representation, 'e' notation only for very large or small magnitudes.
// Non-finite values render as null.
func formatDouble(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	s := strconv.FormatFloat(f, format, -1, 64)
	if format == 'e' {
		// clean up e-09 to e-9
		if n := len(s); n >= 4 && s[n-4] == 'e' && s[n-3] == '-' && s[n-2] == '0' {
			s = s[:n-2] + s[n-1:]
		}
	}
	return s
}

const hexDigits = "0123456789abcdef"

func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[byte(r)>>4])
				b.WriteByte(hexDigits[byte(r)&0xf])
			} else {
				// invalid UTF-8 comes out as the replacement rune
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func writeValue(w io.Writer, es *EncState, k container.Kind, s string) error {
	if es.Color != nil {
		s = es.Color(k, ValueColor, s)
	}
	return writeString(w, s)
}

func writeField(w io.Writer, es *EncState, s string) error {
	if es.Color != nil {
		s = es.Color(container.ObjectKind, FieldColor, s)
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, es *EncState, k container.Kind, s string) error {
	if es.Color != nil {
		s = es.Color(k, SepColor, s)
	}
	return writeString(w, s)
}

func writeNL(w io.Writer, es *EncState) error {
	if es.compact {
		return nil
	}
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	return writeString(w, strings.Repeat(" ", es.depth*es.indent))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
