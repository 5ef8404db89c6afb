package parser

import "errors"

// ErrUnsupportedFormat indicates the input file extension is not handled.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ErrMalformedInput indicates input that could not be read even after the
// fallback decode. Unrecoverable; the caller must re-supply the file.
var ErrMalformedInput = errors.New("malformed input")
