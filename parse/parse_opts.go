package parse

type parseOpts struct {
	annotate bool
}

// ParseOption configures Parse.
type ParseOption func(*parseOpts)

// WithValueAnnotations causes string and binary mapping values to be
// replaced with ir Annotated nodes recording the value's source line
// and the key it appears under.  Sequence elements and non-string
// values are left as they are.
func WithValueAnnotations() ParseOption {
	return func(o *parseOpts) {
		o.annotate = true
	}
}
