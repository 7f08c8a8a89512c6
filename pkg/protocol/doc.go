// Package protocol signs and verifies sets of fields.
//
// A field set is reduced to its canonical form (see package canonical), hashed
// to a lower-case hex digest and the digest is signed with a secp256k1 key.
// Keys and signatures travel as text: hex, Base64 or PEM wrapped Base64 are all
// accepted on input; signatures are returned as lower-case hex.
//
// # Conventions
//
// The ECDSA input derived from a digest is selected by a Convention:
//
//   - ConventionRawDigest (default) feeds the raw digest bytes to the signer.
//   - ConventionHexText feeds the UTF-8 bytes of the hex text of the digest.
//
// A Protocol applies its convention on both the signing and the verifying
// side, so a signature only verifies under the convention it was made with.
// ConventionHexText exists to check artifacts produced by signers that hash
// the text form of the digest.
//
// # Example
//
//	sig, err := protocol.Sign(privateKeyPEM, "transfer", "alice", "bob", 100)
//	if err != nil {
//		return err
//	}
//	ok := protocol.VerifySignature(publicKeyPEM, sig, "transfer", "alice", "bob", 100)
package protocol
