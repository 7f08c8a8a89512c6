package sign

import (
	"bytes"
)

var _ Signer = (*MockSigner)(nil)
var _ Verifier = (*MockVerifier)(nil)

// MockSigner is a Signer for tests. Its signatures are the signed data
// followed by a marker naming the signer, so tests can see exactly which
// bytes reached the signer.
type MockSigner struct {
	id string
}

// NewMockSigner creates a MockSigner with the given identity.
func NewMockSigner(id string) *MockSigner {
	return &MockSigner{id: id}
}

// Sign returns data with "-signed-by-<id>" appended.
func (m *MockSigner) Sign(data []byte) (Signature, error) {
	sig := make([]byte, 0, len(data)+len(m.suffix()))
	sig = append(sig, data...)
	sig = append(sig, m.suffix()...)
	return Signature(sig), nil
}

func (m *MockSigner) suffix() []byte {
	return []byte("-signed-by-" + m.id)
}

// MockVerifier accepts signatures made by the MockSigner with the same id.
type MockVerifier struct {
	signer MockSigner
}

// NewMockVerifier creates a MockVerifier for signatures of signer id.
func NewMockVerifier(id string) *MockVerifier {
	return &MockVerifier{signer: MockSigner{id: id}}
}

// Verify reports whether sig is data signed by the matching MockSigner.
func (m *MockVerifier) Verify(data []byte, sig Signature) bool {
	expected, _ := m.signer.Sign(data)
	return bytes.Equal(expected, sig)
}
