package sign

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/crypto/ecies"
	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/erc7824/fieldsig/pkg/codec"
)

// Ensure KeyPair implements the interfaces at compile time.
var _ Signer = KeyPair{}
var _ Verifier = KeyPair{}

// KeyPair is a secp256k1 key pair in which either half may be absent.
// The zero value has neither half.
type KeyPair struct {
	private *ecdsa.PrivateKey
	public  *ecdsa.PublicKey
}

// GenerateKeyPair returns a fresh key pair with both halves present.
func GenerateKeyPair() (KeyPair, error) {
	priv, err := ethcrypto.GenerateKey()
	if err != nil {
		return KeyPair{}, fmt.Errorf("%w: generating secp256k1 key: %v", ErrProvider, err)
	}
	return KeyPair{private: priv, public: &priv.PublicKey}, nil
}

// HasPrivate reports whether the private half is present.
func (kp KeyPair) HasPrivate() bool { return kp.private != nil }

// HasPublic reports whether the public half is present.
func (kp KeyPair) HasPublic() bool { return kp.public != nil }

// WithDerivedPublic returns a copy of kp whose public half is computed from
// the private half. Without a private half kp is returned unchanged.
func (kp KeyPair) WithDerivedPublic() KeyPair {
	if kp.private == nil {
		return kp
	}
	return KeyPair{private: kp.private, public: &kp.private.PublicKey}
}

// PublicOnly returns a verifier-only copy of kp.
func (kp KeyPair) PublicOnly() KeyPair {
	return KeyPair{public: kp.public}
}

// Address returns the Ethereum-style address of the public half, a short
// fingerprint suitable for logs.
func (kp KeyPair) Address() (common.Address, error) {
	if kp.public == nil {
		return common.Address{}, ErrMissingPublicKey
	}
	return ethcrypto.PubkeyToAddress(*kp.public), nil
}

// Sign returns a DER encoded ECDSA signature over the SHA-256 digest of data.
// A fresh random nonce is used on every call.
func (kp KeyPair) Sign(data []byte) (Signature, error) {
	if kp.private == nil {
		return nil, ErrMissingPrivateKey
	}

	digest := sha256.Sum256(data)
	sig, err := ecdsa.SignASN1(rand.Reader, kp.private, digest[:])
	if err != nil {
		return nil, fmt.Errorf("%w: signing: %v", ErrProvider, err)
	}
	return Signature(sig), nil
}

// Verify reports whether sig is a valid signature of data by the public half.
// Any failure, including a missing public half, yields false.
func (kp KeyPair) Verify(data []byte, sig Signature) bool {
	return kp.CheckSignature(data, sig).Valid()
}

// CheckSignature verifies sig like Verify but distinguishes a mismatching
// signature from input that cannot be a signature at all.
func (kp KeyPair) CheckSignature(data []byte, sig Signature) Result {
	if kp.public == nil || !isDERSignature(sig) {
		return ResultMalformedInput
	}

	digest := sha256.Sum256(data)
	if !ecdsa.VerifyASN1(kp.public, digest[:], sig) {
		return ResultInvalidSignature
	}
	return ResultValid
}

// isDERSignature reports whether sig is a single SEQUENCE of two INTEGERs.
func isDERSignature(sig []byte) bool {
	input := cryptobyte.String(sig)
	var inner cryptobyte.String
	r, s := new(big.Int), new(big.Int)
	return input.ReadASN1(&inner, casn1.SEQUENCE) && input.Empty() &&
		inner.ReadASN1Integer(r) && inner.ReadASN1Integer(s) && inner.Empty()
}

// Encrypt encrypts data to the public half with ECIES.
func (kp KeyPair) Encrypt(data []byte) ([]byte, error) {
	if kp.public == nil {
		return nil, ErrMissingPublicKey
	}
	ct, err := ecies.Encrypt(rand.Reader, ecies.ImportECDSAPublic(kp.public), data, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: encrypting: %v", ErrProvider, err)
	}
	return ct, nil
}

// Decrypt reverses Encrypt using the private half.
func (kp KeyPair) Decrypt(ciphertext []byte) ([]byte, error) {
	if kp.private == nil {
		return nil, ErrMissingPrivateKey
	}
	pt, err := ecies.ImportECDSA(kp.private).Decrypt(ciphertext, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: decrypting: %v", ErrProvider, err)
	}
	return pt, nil
}

// PrivateKeyBytes returns the PKCS#8 encoding of the private half, or nil if
// it is absent.
func (kp KeyPair) PrivateKeyBytes() []byte {
	if kp.private == nil {
		return nil
	}
	der, err := marshalPKCS8(kp.private)
	if err != nil {
		// The builder only fails on length overflow, impossible for a 32 byte scalar.
		panic(fmt.Sprintf("sign: encoding private key: %v", err))
	}
	return der
}

// PublicKeyBytes returns the SubjectPublicKeyInfo encoding of the public half,
// or nil if it is absent.
func (kp KeyPair) PublicKeyBytes() []byte {
	if kp.public == nil {
		return nil
	}
	der, err := marshalPKIX(kp.public)
	if err != nil {
		panic(fmt.Sprintf("sign: encoding public key: %v", err))
	}
	return der
}

// ExportPrivateKeyToPEM returns the private half in a single-line PEM envelope.
func (kp KeyPair) ExportPrivateKeyToPEM() (string, error) {
	if kp.private == nil {
		return "", ErrMissingPrivateKey
	}
	return codec.EncodePEM(codec.PrivateKeyBlockType, kp.PrivateKeyBytes()), nil
}

// ExportPublicKeyToPEM returns the public half in a single-line PEM envelope.
func (kp KeyPair) ExportPublicKeyToPEM() (string, error) {
	if kp.public == nil {
		return "", ErrMissingPublicKey
	}
	return codec.EncodePEM(codec.PublicKeyBlockType, kp.PublicKeyBytes()), nil
}
