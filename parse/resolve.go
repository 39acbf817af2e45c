package parse

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/secretscan/yamlline/ir"
	"github.com/secretscan/yamlline/token"
)

// resolvePlain turns an untagged plain scalar into a typed node
// following the core schema: null and bool keywords in their usual
// spellings, then numbers, then strings.
func resolvePlain(s string) *ir.Node {
	switch s {
	case "", "~", "null", "Null", "NULL":
		return ir.Null()
	case "true", "True", "TRUE", "yes", "Yes", "YES", "on", "On", "ON":
		return ir.FromBool(true)
	case "false", "False", "FALSE", "no", "No", "NO", "off", "Off", "OFF":
		return ir.FromBool(false)
	}
	if looksNumeric(s) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return ir.FromInt(n)
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return ir.FromFloat(f)
		}
	}
	return ir.FromString(s)
}

func looksNumeric(s string) bool {
	switch s[0] {
	case '+', '-', '.':
		return true
	}
	return s[0] >= '0' && s[0] <= '9'
}

// resolveTagged applies a !! tag to scalar text.  The tag overrides
// plain-scalar resolution entirely.
func resolveTagged(tag, s string, p *token.Pos) (*ir.Node, error) {
	switch tag {
	case "!!str":
		return ir.FromString(s), nil
	case "!!null":
		return ir.Null(), nil
	case "!!bool":
		switch resolvePlain(s).Type {
		case ir.BoolType:
			return resolvePlain(s), nil
		}
		return nil, fmt.Errorf("%w: not a bool: %q at %s", ErrParse, s, p)
	case "!!int":
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: not an int: %q at %s", ErrParse, s, p)
		}
		return ir.FromInt(n), nil
	case "!!float":
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: not a float: %q at %s", ErrParse, s, p)
		}
		return ir.FromFloat(f), nil
	case "!!binary":
		d, err := base64.StdEncoding.DecodeString(stripSpace(s))
		if err != nil {
			return nil, fmt.Errorf("%w: bad base64 in !!binary at %s: %v", ErrParse, p, err)
		}
		return ir.FromBinary(d), nil
	case "!!map", "!!seq":
		return nil, fmt.Errorf("%w: tag %q requires a collection at %s", ErrParse, tag, p)
	}
	return nil, fmt.Errorf("%w: unrecognized tag %q at %s", ErrParse, tag, p)
}

// applyCollectionTag checks a tag attached to an object or array node.
func applyCollectionTag(tag string, n *ir.Node, p *token.Pos) (*ir.Node, error) {
	switch tag {
	case "!!map":
		if n.Type == ir.ObjectType {
			return n.WithTag(tag), nil
		}
	case "!!seq":
		if n.Type == ir.ArrayType {
			return n.WithTag(tag), nil
		}
	default:
		return nil, fmt.Errorf("%w: unrecognized tag %q at %s", ErrParse, tag, p)
	}
	return nil, fmt.Errorf("%w: tag %q does not match a %s at %s", ErrParse, tag, n.Type, p)
}

// base64 content may be wrapped across lines and indented.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}
