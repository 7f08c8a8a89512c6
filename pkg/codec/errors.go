package codec

import "errors"

// ErrInvalidEncoding is returned when text is not valid hex, Base64 or PEM,
// or when a fixed-width value has the wrong length.
var ErrInvalidEncoding = errors.New("invalid encoding")
