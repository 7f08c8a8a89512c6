// Package sign holds secp256k1 key material and the signing, verification and
// encryption operations performed with it.
//
// The central type is KeyPair, an immutable value carrying an optional private
// half and an optional public half:
//
//   - GenerateKeyPair creates both halves.
//   - ParseKeyPair rebuilds either half from standard DER encodings: PKCS#8
//     PrivateKeyInfo for the private half and X.509 SubjectPublicKeyInfo for the
//     public half, both tagged id-ecPublicKey with the secp256k1 named curve.
//     Passing only one encoding yields a signer-only or verifier-only pair.
//
// To rotate a key, generate a new KeyPair and replace the old value. A KeyPair
// is never modified after construction and may be shared between goroutines.
//
// # Signatures
//
// Sign hashes its input with SHA-256 and produces a randomized ECDSA signature
// in ASN.1 DER form, the layout used by SHA256withECDSA implementations.
// Signing the same input twice gives different signatures; both verify.
//
// Verify returns a plain bool. CheckSignature returns a Result that tells an
// invalid signature apart from input that could not be interpreted at all
// (missing public half, truncated DER). Neither reports an error.
//
// # Encryption
//
// Encrypt and Decrypt use ECIES as implemented by go-ethereum: ECDH on
// secp256k1, NIST SP 800-56 concatenation KDF, AES-128-CTR and HMAC-SHA-256.
//
// # Usage
//
//	kp, err := sign.GenerateKeyPair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sig, err := kp.Sign([]byte("hello world"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	verifier, err := sign.ParseKeyPair(nil, kp.PublicKeyBytes())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(verifier.Verify([]byte("hello world"), sig)) // true
package sign
