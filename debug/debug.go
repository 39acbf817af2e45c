// Package debug gates diagnostic output on environment variables.
// Set YAMLLINE_DEBUG_TOKENS, YAMLLINE_DEBUG_TREE, or
// YAMLLINE_DEBUG_RECON to a true value to dump the token stream, the
// composed tree, or the reconstructed lines to stderr.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Tree   bool
	Recon  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("YAMLLINE_DEBUG_TOKENS")
	d.Tree = boolEnv("YAMLLINE_DEBUG_TREE")
	d.Recon = boolEnv("YAMLLINE_DEBUG_RECON")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Tree() bool {
	return d.Tree
}
func Recon() bool {
	return d.Recon
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
