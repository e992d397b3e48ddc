package encode

type EncodeOption func(*EncState)

// Compact disables newlines and indentation, producing wire-form JSON.
func Compact(v bool) EncodeOption {
	return func(es *EncState) { es.compact = v }
}

// Indent sets the number of spaces per nesting level (default 2).
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Depth sets the starting nesting level, for embedding output in
// already-indented surroundings.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
