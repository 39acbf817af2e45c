package yamlline

import "errors"

// ErrParsing is the terminal signal that a file could not be
// transformed.  No partial output accompanies it, callers fall back to
// scanning the raw file.
var ErrParsing = errors.New("parsing failure")
