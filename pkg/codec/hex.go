package codec

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

var (
	hexPattern    = regexp.MustCompile(`^[a-fA-F0-9]+$`)
	base64Pattern = regexp.MustCompile(`^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?$`)
)

// BytesToHex encodes b as lower-case hex, two digits per byte.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// HexToBytes decodes a hex string. Surrounding whitespace and a leading "0x"
// are ignored. Empty input decodes to an empty slice.
func HexToBytes(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	if s == "" {
		return []byte{}, nil
	}
	if !hexPattern.MatchString(s) {
		return nil, fmt.Errorf("%w: not a hexadecimal string", ErrInvalidEncoding)
	}
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length hex string (%d digits)", ErrInvalidEncoding, len(s))
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return b, nil
}

// BytesToBase64 encodes b with the standard padded Base64 alphabet.
func BytesToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Base64ToBytes decodes standard padded Base64. Empty input decodes to an
// empty slice.
func Base64ToBytes(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return b, nil
}

// Base64ToHex re-encodes Base64 text as hex.
func Base64ToHex(s string) (string, error) {
	b, err := Base64ToBytes(s)
	if err != nil {
		return "", err
	}
	return BytesToHex(b), nil
}

// HexToBase64 re-encodes hex text as Base64.
func HexToBase64(s string) (string, error) {
	b, err := HexToBytes(s)
	if err != nil {
		return "", err
	}
	return BytesToBase64(b), nil
}
