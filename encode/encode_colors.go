package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/jdom-format/go-jdom/container"
)

type Colorable struct {
	Kind container.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	kinds := []container.Kind{
		container.NullKind,
		container.FalseKind,
		container.TrueKind,
		container.IntKind,
		container.DoubleKind,
		container.StringKind,
		container.ArrayKind,
		container.ObjectKind,
	}
	for _, k := range kinds {
		able := Colorable{Kind: k, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = container.IntKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = container.DoubleKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = container.NullKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = container.FalseKind
	colors.Map[able] = color.CyanString
	able.Kind = container.TrueKind
	colors.Map[able] = color.CyanString

	able.Kind = container.StringKind
	colors.Map[able] = color.GreenString

	able.Kind = container.ObjectKind
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	return colors
}

func (c *Colors) Color(k container.Kind, attr ColorAttr, s string) string {
	f, ok := c.Map[Colorable{Kind: k, Attr: attr}]
	if !ok {
		f = c.Default
	}
	if f == nil {
		return s
	}
	return f("%s", s)
}

func colorDefault(format string, args ...any) string {
	var b strings.Builder
	b.WriteString(color.New().Sprintf(format, args...))
	return b.String()
}
