package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Detach bool
	Codec  bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Detach = boolEnv("JDOM_DEBUG_DETACH")
	d.Codec = boolEnv("JDOM_DEBUG_CODEC")
	d.Eval = boolEnv("JDOM_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Detach() bool {
	return d.Detach
}
func Codec() bool {
	return d.Codec
}
func Eval() bool {
	return d.Eval
}
