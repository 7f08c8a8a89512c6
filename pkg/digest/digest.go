// Package digest hashes canonical payloads and issues random identifiers.
//
// Hash functions are resolved by name from an immutable Registry. The default
// registry is built once at package initialisation and never changes, so
// lookups need no locking.
package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"

	"github.com/erc7824/fieldsig/pkg/codec"
)

// Algorithm names understood by the default registry.
const (
	SHA256    = "SHA-256"
	SHA3_256  = "SHA3-256"
	Keccak256 = "KECCAK-256"
	SHA512    = "SHA-512"
)

// ErrAlgorithmUnavailable is returned when a hash algorithm is not registered.
var ErrAlgorithmUnavailable = errors.New("hash algorithm not available")

// Digest is the output of a hash function together with the name of the
// algorithm that produced it.
type Digest struct {
	Algorithm string
	Sum       []byte
}

// Hex returns the digest as lower-case hex.
func (d Digest) Hex() string {
	return codec.BytesToHex(d.Sum)
}

// Algorithm binds a name to a hash constructor.
type Algorithm struct {
	Name string
	New  func() hash.Hash
}

// Registry resolves hash algorithms by name. The zero value has no
// algorithms; use NewRegistry or DefaultRegistry.
type Registry struct {
	algorithms map[string]Algorithm
}

// NewRegistry returns a registry holding algs. Names are matched without
// regard to case; a later duplicate replaces an earlier one.
func NewRegistry(algs ...Algorithm) *Registry {
	r := &Registry{algorithms: make(map[string]Algorithm, len(algs))}
	for _, alg := range algs {
		r.algorithms[strings.ToUpper(alg.Name)] = alg
	}
	return r
}

var defaultRegistry = NewRegistry(
	Algorithm{Name: SHA256, New: sha256.New},
	Algorithm{Name: SHA3_256, New: sha3.New256},
	Algorithm{Name: Keccak256, New: func() hash.Hash { return crypto.NewKeccakState() }},
	Algorithm{Name: SHA512, New: sha512.New},
)

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.algorithms[strings.ToUpper(name)]
	return ok
}

// Algorithms returns the registered names in sorted order.
func (r *Registry) Algorithms() []string {
	names := make([]string, 0, len(r.algorithms))
	for _, alg := range r.algorithms {
		names = append(names, alg.Name)
	}
	sort.Strings(names)
	return names
}

// Hash computes the named digest of data.
func (r *Registry) Hash(data []byte, algorithm string) (Digest, error) {
	alg, ok := r.algorithms[strings.ToUpper(algorithm)]
	if !ok {
		return Digest{}, fmt.Errorf("%w: %q", ErrAlgorithmUnavailable, algorithm)
	}

	h := alg.New()
	h.Write(data)
	return Digest{Algorithm: alg.Name, Sum: h.Sum(nil)}, nil
}

// Hash computes the named digest of data using the default registry.
func Hash(data []byte, algorithm string) (Digest, error) {
	return defaultRegistry.Hash(data, algorithm)
}

// SHA256Bytes returns the SHA-256 digest of data.
func SHA256Bytes(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// SHA256Hex returns the SHA-256 digest of data as lower-case hex.
func SHA256Hex(data []byte) string {
	return codec.BytesToHex(SHA256Bytes(data))
}

// SHA256String returns the SHA-256 digest of the UTF-8 bytes of s.
func SHA256String(s string) []byte {
	return SHA256Bytes([]byte(s))
}

// SHA256HexString returns the SHA-256 digest of s as lower-case hex.
func SHA256HexString(s string) string {
	return SHA256Hex([]byte(s))
}

// SHA3Bytes returns the SHA3-256 digest of data.
func SHA3Bytes(data []byte) []byte {
	sum := sha3.Sum256(data)
	return sum[:]
}

// SHA3Hex returns the SHA3-256 digest of data as lower-case hex.
func SHA3Hex(data []byte) string {
	return codec.BytesToHex(SHA3Bytes(data))
}

// SHA3String returns the SHA3-256 digest of the UTF-8 bytes of s.
func SHA3String(s string) []byte {
	return SHA3Bytes([]byte(s))
}

// SHA3HexString returns the SHA3-256 digest of s as lower-case hex.
func SHA3HexString(s string) string {
	return SHA3Hex([]byte(s))
}

// UUID returns a random version 4 UUID in canonical form. It is an opaque
// token and must not be used as key material.
func UUID() string {
	return uuid.NewString()
}
