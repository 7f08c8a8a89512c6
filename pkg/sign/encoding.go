package sign

import (
	"crypto/ecdsa"
	encasn1 "encoding/asn1"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// crypto/x509 only knows the NIST curves, so secp256k1 containers are built
// and parsed here.

var (
	oidPublicKeyECDSA      = encasn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidNamedCurveSecp256k1 = encasn1.ObjectIdentifier{1, 3, 132, 0, 10}
)

var (
	tagECParameters = casn1.Tag(0).ContextSpecific().Constructed()
	tagECPublicKey  = casn1.Tag(1).ContextSpecific().Constructed()
)

const privateScalarSize = 32

// marshalPKCS8 encodes priv as a PKCS#8 PrivateKeyInfo wrapping an RFC 5915
// ECPrivateKey. The curve is named in the outer algorithm identifier and the
// public point is embedded in the inner structure.
func marshalPKCS8(priv *ecdsa.PrivateKey) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(0)
		addAlgorithmIdentifier(b)
		b.AddASN1(casn1.OCTET_STRING, func(b *cryptobyte.Builder) {
			b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
				b.AddASN1Int64(1)
				b.AddASN1OctetString(ethcrypto.FromECDSA(priv))
				b.AddASN1(tagECPublicKey, func(b *cryptobyte.Builder) {
					b.AddASN1BitString(ethcrypto.FromECDSAPub(&priv.PublicKey))
				})
			})
		})
	})
	return b.Bytes()
}

// marshalPKIX encodes pub as an X.509 SubjectPublicKeyInfo with an
// uncompressed point.
func marshalPKIX(pub *ecdsa.PublicKey) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		addAlgorithmIdentifier(b)
		b.AddASN1BitString(ethcrypto.FromECDSAPub(pub))
	})
	return b.Bytes()
}

func addAlgorithmIdentifier(b *cryptobyte.Builder) {
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1ObjectIdentifier(oidPublicKeyECDSA)
		b.AddASN1ObjectIdentifier(oidNamedCurveSecp256k1)
	})
}

// readAlgorithmIdentifier checks for id-ecPublicKey and returns the curve OID
// if one is present.
func readAlgorithmIdentifier(s *cryptobyte.String) (curve encasn1.ObjectIdentifier, err error) {
	var algID cryptobyte.String
	var algorithm encasn1.ObjectIdentifier
	if !s.ReadASN1(&algID, casn1.SEQUENCE) || !algID.ReadASN1ObjectIdentifier(&algorithm) {
		return nil, errors.New("malformed algorithm identifier")
	}
	if !algorithm.Equal(oidPublicKeyECDSA) {
		return nil, fmt.Errorf("unsupported key algorithm %s", algorithm)
	}
	if algID.Empty() {
		return nil, nil
	}
	if !algID.ReadASN1ObjectIdentifier(&curve) {
		return nil, errors.New("curve parameters must be a named curve")
	}
	return curve, nil
}

func checkCurve(curve encasn1.ObjectIdentifier) error {
	if curve == nil {
		return errors.New("missing named curve")
	}
	if !curve.Equal(oidNamedCurveSecp256k1) {
		return fmt.Errorf("unsupported curve %s", curve)
	}
	return nil
}

func parsePKCS8(der []byte) (*ecdsa.PrivateKey, error) {
	input := cryptobyte.String(der)
	var pki cryptobyte.String
	var version int
	if !input.ReadASN1(&pki, casn1.SEQUENCE) || !input.Empty() {
		return nil, errors.New("malformed PKCS#8 structure")
	}
	if !pki.ReadASN1Integer(&version) || version > 1 {
		return nil, errors.New("unsupported PKCS#8 version")
	}
	curve, err := readAlgorithmIdentifier(&pki)
	if err != nil {
		return nil, err
	}

	var inner []byte
	if !pki.ReadASN1Bytes(&inner, casn1.OCTET_STRING) {
		return nil, errors.New("malformed PKCS#8 private key field")
	}

	ec := cryptobyte.String(inner)
	var ecKey cryptobyte.String
	var ecVersion int
	var scalar []byte
	if !ec.ReadASN1(&ecKey, casn1.SEQUENCE) ||
		!ecKey.ReadASN1Integer(&ecVersion) || ecVersion != 1 ||
		!ecKey.ReadASN1Bytes(&scalar, casn1.OCTET_STRING) {
		return nil, errors.New("malformed EC private key")
	}

	var params cryptobyte.String
	var hasParams bool
	if !ecKey.ReadOptionalASN1(&params, &hasParams, tagECParameters) {
		return nil, errors.New("malformed EC private key parameters")
	}
	if hasParams {
		var innerCurve encasn1.ObjectIdentifier
		if !params.ReadASN1ObjectIdentifier(&innerCurve) {
			return nil, errors.New("EC private key parameters must be a named curve")
		}
		if curve != nil && !curve.Equal(innerCurve) {
			return nil, errors.New("conflicting curve parameters")
		}
		curve = innerCurve
	}
	if err := checkCurve(curve); err != nil {
		return nil, err
	}

	if len(scalar) == 0 || len(scalar) > privateScalarSize {
		return nil, fmt.Errorf("invalid private scalar length %d", len(scalar))
	}
	return ethcrypto.ToECDSA(common.LeftPadBytes(scalar, privateScalarSize))
}

func parsePKIX(der []byte) (*ecdsa.PublicKey, error) {
	input := cryptobyte.String(der)
	var spki cryptobyte.String
	if !input.ReadASN1(&spki, casn1.SEQUENCE) || !input.Empty() {
		return nil, errors.New("malformed SubjectPublicKeyInfo structure")
	}
	curve, err := readAlgorithmIdentifier(&spki)
	if err != nil {
		return nil, err
	}
	if err := checkCurve(curve); err != nil {
		return nil, err
	}

	var point encasn1.BitString
	if !spki.ReadASN1BitString(&point) || !spki.Empty() {
		return nil, errors.New("malformed subject public key")
	}
	if point.BitLength%8 != 0 {
		return nil, errors.New("subject public key is not a whole number of bytes")
	}
	return unmarshalPoint(point.Bytes)
}

func unmarshalPoint(b []byte) (*ecdsa.PublicKey, error) {
	switch len(b) {
	case 33:
		pub, err := ethcrypto.DecompressPubkey(b)
		if err != nil {
			return nil, err
		}
		// Rebind to S256() so that ecies resolves the curve parameters.
		return ethcrypto.UnmarshalPubkey(ethcrypto.FromECDSAPub(pub))
	default:
		return ethcrypto.UnmarshalPubkey(b)
	}
}

// ParsePrivateKey decodes a PKCS#8 secp256k1 private key into a signer-only
// KeyPair.
func ParsePrivateKey(der []byte) (KeyPair, error) {
	priv, err := parsePKCS8(der)
	if err != nil {
		return KeyPair{}, fmt.Errorf("%w: private key: %v", ErrKeyReconstruction, err)
	}
	return KeyPair{private: priv}, nil
}

// ParsePublicKey decodes a SubjectPublicKeyInfo secp256k1 public key into a
// verifier-only KeyPair.
func ParsePublicKey(der []byte) (KeyPair, error) {
	pub, err := parsePKIX(der)
	if err != nil {
		return KeyPair{}, fmt.Errorf("%w: public key: %v", ErrKeyReconstruction, err)
	}
	return KeyPair{public: pub}, nil
}

// ParseKeyPair rebuilds a KeyPair from encoded halves. A nil argument leaves
// that half absent; the two halves are not checked against each other.
func ParseKeyPair(privateDER, publicDER []byte) (KeyPair, error) {
	var kp KeyPair
	if privateDER != nil {
		priv, err := ParsePrivateKey(privateDER)
		if err != nil {
			return KeyPair{}, err
		}
		kp.private = priv.private
	}
	if publicDER != nil {
		pub, err := ParsePublicKey(publicDER)
		if err != nil {
			return KeyPair{}, err
		}
		kp.public = pub.public
	}
	return kp, nil
}
