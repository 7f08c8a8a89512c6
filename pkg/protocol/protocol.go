package protocol

import (
	"errors"
	"fmt"
	"strings"

	"github.com/erc7824/fieldsig/pkg/canonical"
	"github.com/erc7824/fieldsig/pkg/codec"
	"github.com/erc7824/fieldsig/pkg/digest"
	"github.com/erc7824/fieldsig/pkg/sign"
)

// ErrMissingKey is returned when an operation is given an empty key text.
var ErrMissingKey = errors.New("key not provided")

// Convention selects which bytes derived from a digest are signed.
type Convention uint8

const (
	// ConventionRawDigest signs the raw digest bytes.
	ConventionRawDigest Convention = iota
	// ConventionHexText signs the UTF-8 bytes of the digest's hex text.
	ConventionHexText
)

// String returns the configuration name of the convention.
func (c Convention) String() string {
	switch c {
	case ConventionRawDigest:
		return "raw"
	case ConventionHexText:
		return "hex-text"
	default:
		return fmt.Sprintf("Convention(%d)", uint8(c))
	}
}

// ParseConvention maps a configuration name ("raw" or "hex-text") to a
// Convention. Matching is case-insensitive.
func ParseConvention(name string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "raw", "":
		return ConventionRawDigest, nil
	case "hex-text":
		return ConventionHexText, nil
	default:
		return 0, fmt.Errorf("unknown signing convention %q", name)
	}
}

// Option configures a Protocol.
type Option func(*Protocol)

// WithConvention sets the signing convention. Default: ConventionRawDigest.
func WithConvention(c Convention) Option {
	return func(p *Protocol) {
		p.convention = c
	}
}

// WithRegistry sets the registry the field digest algorithm is resolved from.
// Default: digest.DefaultRegistry().
func WithRegistry(r *digest.Registry) Option {
	return func(p *Protocol) {
		p.registry = r
	}
}

// WithHashAlgorithm sets the algorithm used to digest canonical field sets.
// Default: digest.SHA256.
func WithHashAlgorithm(name string) Option {
	return func(p *Protocol) {
		p.algorithm = name
	}
}

// Protocol signs and verifies field sets. A Protocol is immutable and safe for
// concurrent use. The zero value uses the raw digest convention and SHA-256
// from the default registry.
type Protocol struct {
	convention Convention
	registry   *digest.Registry
	algorithm  string
}

// New creates a Protocol. It fails with digest.ErrAlgorithmUnavailable if the
// configured hash algorithm is not in the registry.
func New(opts ...Option) (*Protocol, error) {
	p := &Protocol{
		convention: ConventionRawDigest,
		registry:   digest.DefaultRegistry(),
		algorithm:  digest.SHA256,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.convention != ConventionRawDigest && p.convention != ConventionHexText {
		return nil, fmt.Errorf("unsupported signing convention %s", p.convention)
	}
	if p.registry == nil || !p.registry.Has(p.algorithm) {
		return nil, fmt.Errorf("%w: %s", digest.ErrAlgorithmUnavailable, p.algorithm)
	}
	return p, nil
}

// Convention returns the protocol's signing convention.
func (p *Protocol) Convention() Convention { return p.convention }

// Algorithm returns the name of the field digest algorithm.
func (p *Protocol) Algorithm() string {
	if p.algorithm == "" {
		return digest.SHA256
	}
	return p.algorithm
}

func (p *Protocol) digests() *digest.Registry {
	if p.registry == nil {
		return digest.DefaultRegistry()
	}
	return p.registry
}

// HashHex returns the lower-case hex digest of the canonical form of values.
func (p *Protocol) HashHex(values ...any) string {
	d, err := p.digests().Hash([]byte(canonical.Concatenate(values...)), p.Algorithm())
	if err != nil {
		// Only a Protocol built outside New can name an unknown algorithm.
		panic(fmt.Sprintf("protocol: %v", err))
	}
	return d.Hex()
}

// Sign signs the canonical form of values with the encoded private key and
// returns the signature as lower-case hex.
func (p *Protocol) Sign(privateKeyEncoded string, values ...any) (string, error) {
	return p.SignHash(privateKeyEncoded, p.HashHex(values...))
}

// SignHash signs a precomputed hex digest with the encoded private key.
func (p *Protocol) SignHash(privateKeyEncoded, hashHex string) (string, error) {
	der, err := codec.Base64OrHexToBytes(privateKeyEncoded)
	if err != nil {
		return "", fmt.Errorf("decoding private key: %w", err)
	}
	if len(der) == 0 {
		return "", fmt.Errorf("%w: private key", ErrMissingKey)
	}
	signer, err := sign.ParsePrivateKey(der)
	if err != nil {
		return "", err
	}
	return p.signHash(signer, hashHex)
}

// SignWith signs the canonical form of values with signer.
func (p *Protocol) SignWith(signer sign.Signer, values ...any) (string, error) {
	return p.signHash(signer, p.HashHex(values...))
}

func (p *Protocol) signHash(signer sign.Signer, hashHex string) (string, error) {
	input, err := p.signingInput(hashHex)
	if err != nil {
		return "", err
	}
	sig, err := signer.Sign(input)
	if err != nil {
		return "", err
	}
	return sig.String(), nil
}

// VerifySignature reports whether signatureEncoded is a valid signature of the
// canonical form of values by the encoded public key. Any failure yields false.
func (p *Protocol) VerifySignature(publicKeyEncoded, signatureEncoded string, values ...any) bool {
	return p.CheckSignatureHash(publicKeyEncoded, signatureEncoded, p.HashHex(values...)).Valid()
}

// VerifySignatureHash reports whether signatureEncoded is a valid signature of
// the hex digest hashHex by the encoded public key. Any failure yields false.
func (p *Protocol) VerifySignatureHash(publicKeyEncoded, signatureEncoded, hashHex string) bool {
	return p.CheckSignatureHash(publicKeyEncoded, signatureEncoded, hashHex).Valid()
}

// CheckSignatureHash verifies like VerifySignatureHash and reports whether a
// failure came from undecodable input or from a mismatching signature.
func (p *Protocol) CheckSignatureHash(publicKeyEncoded, signatureEncoded, hashHex string) sign.Result {
	input, err := p.signingInput(hashHex)
	if err != nil {
		return sign.ResultMalformedInput
	}
	pubDER, err := codec.Base64OrHexToBytes(publicKeyEncoded)
	if err != nil || len(pubDER) == 0 {
		return sign.ResultMalformedInput
	}
	sig, err := codec.Base64OrHexToBytes(signatureEncoded)
	if err != nil || len(sig) == 0 {
		return sign.ResultMalformedInput
	}
	verifier, err := sign.ParsePublicKey(pubDER)
	if err != nil {
		return sign.ResultMalformedInput
	}
	return verifier.CheckSignature(input, sig)
}

// VerifyWith reports whether signatureEncoded is a valid signature of the
// canonical form of values according to verifier.
func (p *Protocol) VerifyWith(verifier sign.Verifier, signatureEncoded string, values ...any) bool {
	input, err := p.signingInput(p.HashHex(values...))
	if err != nil {
		return false
	}
	sig, err := codec.Base64OrHexToBytes(signatureEncoded)
	if err != nil {
		return false
	}
	return verifier.Verify(input, sig)
}

// signingInput returns the bytes handed to the signer for hashHex.
func (p *Protocol) signingInput(hashHex string) ([]byte, error) {
	if p.convention == ConventionHexText {
		return []byte(hashHex), nil
	}
	raw, err := codec.HexToBytes(hashHex)
	if err != nil {
		return nil, fmt.Errorf("decoding digest: %w", err)
	}
	return raw, nil
}
