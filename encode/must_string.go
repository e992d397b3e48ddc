package encode

import (
	"bytes"
	"strings"

	"github.com/jdom-format/go-jdom/container"
)

// MustString renders e as compact JSON, panicking on writer errors. It
// backs the String methods of the public value types.
func MustString(e container.Element) string {
	buf := bytes.NewBuffer(nil)
	if err := Element(e, buf, Compact(true)); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
