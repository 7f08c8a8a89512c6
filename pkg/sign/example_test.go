package sign_test

import (
	"fmt"
	"log"

	"github.com/erc7824/fieldsig/pkg/codec"
	"github.com/erc7824/fieldsig/pkg/sign"
)

// ExampleGenerateKeyPair demonstrates signing with a fresh key pair and
// verifying with only its public half.
func ExampleGenerateKeyPair() {
	kp, err := sign.GenerateKeyPair()
	if err != nil {
		log.Fatal(err)
	}

	message := []byte("hello world")
	sig, err := kp.Sign(message)
	if err != nil {
		log.Fatal(err)
	}

	verifier := kp.PublicOnly()
	fmt.Println("Valid:", verifier.Verify(message, sig))
	fmt.Println("Tampered:", verifier.Verify([]byte("hello world!"), sig))
	// Output:
	// Valid: true
	// Tampered: false
}

// ExampleParsePublicKey demonstrates moving a public key through its PEM text form.
func ExampleParsePublicKey() {
	kp, err := sign.GenerateKeyPair()
	if err != nil {
		log.Fatal(err)
	}

	pem, err := kp.ExportPublicKeyToPEM()
	if err != nil {
		log.Fatal(err)
	}

	der, err := codec.Base64OrHexToBytes(pem)
	if err != nil {
		log.Fatal(err)
	}
	restored, err := sign.ParsePublicKey(der)
	if err != nil {
		log.Fatal(err)
	}

	original, _ := kp.Address()
	roundTripped, _ := restored.Address()
	fmt.Println("Same key:", original == roundTripped)
	// Output:
	// Same key: true
}

// ExampleSignature_String demonstrates the String method of Signature.
func ExampleSignature_String() {
	sig := sign.Signature([]byte{0x01, 0x02, 0x03, 0x04})
	fmt.Println(sig.String())
	// Output:
	// 01020304
}
