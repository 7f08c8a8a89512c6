package codec

import (
	"encoding/pem"
	"strings"
)

// PEM block types written by the key export functions.
const (
	PrivateKeyBlockType = "PRIVATE KEY"
	PublicKeyBlockType  = "PUBLIC KEY"
)

// pemTokens are removed in order. Base64 bodies never contain '-' or spaces,
// so stripping these literals cannot touch key data.
var pemTokens = []string{"-BEGIN", "-END", " PRIVATE", " PUBLIC", "KEY-", "-"}

// ParsePemKey reduces PEM-wrapped key text to its Base64 body by deleting the
// marker tokens, every remaining dash and all whitespace. Input without
// markers is returned with whitespace removed, so the function is idempotent.
func ParsePemKey(pemKey string) string {
	s := strings.TrimSpace(pemKey)
	for _, tok := range pemTokens {
		s = strings.ReplaceAll(s, tok, "")
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			return -1
		}
		return r
	}, s)
}

// EncodePEM wraps der in BEGIN/END markers with the Base64 body on a single
// line and no trailing newline.
func EncodePEM(blockType string, der []byte) string {
	var sb strings.Builder
	sb.WriteString("-----BEGIN ")
	sb.WriteString(blockType)
	sb.WriteString("-----\n")
	sb.WriteString(BytesToBase64(der))
	sb.WriteString("\n-----END ")
	sb.WriteString(blockType)
	sb.WriteString("-----")
	return sb.String()
}

// EncodePEMStrict encodes der as an RFC 7468 block with 64 column lines.
func EncodePEMStrict(blockType string, der []byte) string {
	return string(pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der}))
}
