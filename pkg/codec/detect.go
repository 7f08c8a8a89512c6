package codec

import (
	"fmt"
	"strings"
)

// Format is the encoding inferred for a piece of key or signature text.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatHex
	FormatBase64
)

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatBase64:
		return "base64"
	default:
		return "unknown"
	}
}

// Detect reports which decoder Base64OrHexToBytes would use for input.
// Blank input is FormatUnknown.
func Detect(input string) Format {
	if strings.TrimSpace(input) == "" {
		return FormatUnknown
	}
	return detectNormalized(ParsePemKey(input))
}

func detectNormalized(s string) Format {
	switch {
	case hexPattern.MatchString(s):
		return FormatHex
	case base64Pattern.MatchString(s):
		return FormatBase64
	default:
		return FormatUnknown
	}
}

// Base64OrHexToBytes decodes key or signature text whose encoding is not
// known in advance. PEM markers are stripped first, then hex is tried before
// Base64. Blank input returns nil and no error.
func Base64OrHexToBytes(input string) ([]byte, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	s := ParsePemKey(input)
	switch detectNormalized(s) {
	case FormatHex:
		return HexToBytes(s)
	case FormatBase64:
		return Base64ToBytes(s)
	default:
		return nil, fmt.Errorf("%w: neither hexadecimal nor base64", ErrInvalidEncoding)
	}
}

// IsBase64OrHex reports whether Base64OrHexToBytes would recognise input. It
// does not decode, so odd-length hex still reports true.
func IsBase64OrHex(input string) bool {
	if strings.TrimSpace(input) == "" {
		return false
	}
	return detectNormalized(ParsePemKey(input)) != FormatUnknown
}
