package sign

import (
	"encoding/json"
	"errors"

	"github.com/erc7824/fieldsig/pkg/codec"
)

var (
	// ErrProvider is returned when the underlying cryptographic implementation
	// fails to generate a key, sign, encrypt or decrypt.
	ErrProvider = errors.New("crypto provider error")
	// ErrKeyReconstruction is returned when encoded key bytes cannot be parsed.
	ErrKeyReconstruction = errors.New("key reconstruction failed")
	// ErrMissingPrivateKey is returned by operations that need the private half.
	ErrMissingPrivateKey = errors.New("private key not present")
	// ErrMissingPublicKey is returned by operations that need the public half.
	ErrMissingPublicKey = errors.New("public key not present")
)

// Signer produces signatures over arbitrary data.
type Signer interface {
	Sign(data []byte) (Signature, error)
}

// Verifier checks signatures produced by a matching Signer.
type Verifier interface {
	Verify(data []byte, sig Signature) bool
}

// Signature is an opaque signature value. Its text form is lower-case hex.
type Signature []byte

// String implements the fmt.Stringer interface.
func (s Signature) String() string {
	return codec.BytesToHex(s)
}

// MarshalJSON encodes the signature as a hex string.
func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts a hex string, with or without a 0x prefix.
func (s *Signature) UnmarshalJSON(data []byte) error {
	var hexStr string
	if err := json.Unmarshal(data, &hexStr); err != nil {
		return err
	}
	decoded, err := codec.HexToBytes(hexStr)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

// Result is the outcome of a signature check.
type Result uint8

const (
	// ResultMalformedInput means the key or signature could not be interpreted.
	ResultMalformedInput Result = iota
	// ResultInvalidSignature means the signature is well formed but does not
	// match the data and key.
	ResultInvalidSignature
	// ResultValid means the signature matches.
	ResultValid
)

// Valid reports whether r is ResultValid.
func (r Result) Valid() bool { return r == ResultValid }

// String returns the name of the result.
func (r Result) String() string {
	switch r {
	case ResultValid:
		return "valid"
	case ResultInvalidSignature:
		return "invalid-signature"
	default:
		return "malformed-input"
	}
}
