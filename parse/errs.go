package parse

import "errors"

// ErrParse is the root of all composition errors.  Errors returned by
// Parse wrap it, so errors.Is(err, ErrParse) holds for any failed
// parse, tokenization failures included.
var ErrParse = errors.New("parse error")
