package protocol

var defaultProtocol = func() *Protocol {
	p, err := New()
	if err != nil {
		panic(err)
	}
	return p
}()

// Default returns the protocol used by the package-level functions: SHA-256
// field digests signed under ConventionRawDigest.
func Default() *Protocol { return defaultProtocol }

// Sign signs values with the default protocol.
func Sign(privateKeyEncoded string, values ...any) (string, error) {
	return defaultProtocol.Sign(privateKeyEncoded, values...)
}

// SignHash signs hashHex with the default protocol.
func SignHash(privateKeyEncoded, hashHex string) (string, error) {
	return defaultProtocol.SignHash(privateKeyEncoded, hashHex)
}

// VerifySignature verifies a field set signature with the default protocol.
func VerifySignature(publicKeyEncoded, signatureEncoded string, values ...any) bool {
	return defaultProtocol.VerifySignature(publicKeyEncoded, signatureEncoded, values...)
}

// VerifySignatureHash verifies a digest signature with the default protocol.
func VerifySignatureHash(publicKeyEncoded, signatureEncoded, hashHex string) bool {
	return defaultProtocol.VerifySignatureHash(publicKeyEncoded, signatureEncoded, hashHex)
}
