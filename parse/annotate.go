package parse

import "github.com/secretscan/yamlline/ir"

// finishObject runs once per composed mapping, flow or block.  It
// resets the flow corrector unconditionally and, when annotation is
// on, wraps eligible values in place.
func (p *parser) finishObject(obj *ir.Node) *ir.Node {
	p.fc.reset()
	if p.opts.annotate {
		annotateValues(obj)
	}
	return obj
}

// annotateValues replaces string and binary values of obj with
// Annotated wrappers.  Other value types, nested collections among
// them, pass through untouched; their own composition already handled
// them.
func annotateValues(obj *ir.Node) {
	for i, v := range obj.Values {
		switch v.Type {
		case ir.StringType, ir.BinaryType:
			obj.Values[i] = ir.Annotate(obj.Fields[i], v)
		}
	}
}
