package digest

import (
	"crypto/sha256"
	"hash"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWellKnownVectors(t *testing.T) {
	tests := []struct {
		algorithm string
		input     string
		expected  string
	}{
		{SHA256, "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{SHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{SHA3_256, "", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{SHA3_256, "abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{Keccak256, "", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
	}

	for _, test := range tests {
		t.Run(test.algorithm+"/"+test.input, func(t *testing.T) {
			d, err := Hash([]byte(test.input), test.algorithm)
			require.NoError(t, err)
			assert.Equal(t, test.algorithm, d.Algorithm)
			assert.Len(t, d.Sum, 32)
			assert.Equal(t, test.expected, d.Hex())
		})
	}
}

func TestWrappers(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", SHA256Hex(nil))
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", SHA256HexString(""))
	assert.Equal(t, SHA256Bytes([]byte("abc")), SHA256String("abc"))

	assert.Equal(t, "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532", SHA3HexString("abc"))
	assert.Equal(t, SHA3Bytes([]byte("abc")), SHA3String("abc"))
	assert.Equal(t, SHA3HexString("abc"), SHA3Hex([]byte("abc")))

	// Strings are hashed as UTF-8.
	assert.Equal(t, SHA256Hex([]byte{0xC3, 0xA9}), SHA256HexString("é"))
}

func TestRegistry(t *testing.T) {
	t.Run("Lookup is case insensitive", func(t *testing.T) {
		d, err := Hash([]byte("abc"), "sha-256")
		require.NoError(t, err)
		assert.Equal(t, SHA256, d.Algorithm)
		assert.True(t, DefaultRegistry().Has("sha3-256"))
	})

	t.Run("Unavailable algorithm", func(t *testing.T) {
		_, err := Hash([]byte("abc"), "MD5")
		assert.ErrorIs(t, err, ErrAlgorithmUnavailable)
		assert.ErrorContains(t, err, `"MD5"`)
	})

	t.Run("Custom registry", func(t *testing.T) {
		r := NewRegistry(Algorithm{Name: "sha-256", New: func() hash.Hash { return sha256.New() }})
		assert.Equal(t, []string{"sha-256"}, r.Algorithms())

		_, err := r.Hash(nil, SHA3_256)
		assert.ErrorIs(t, err, ErrAlgorithmUnavailable)
	})

	t.Run("Zero registry", func(t *testing.T) {
		var r Registry
		assert.False(t, r.Has(SHA256))
		_, err := r.Hash(nil, SHA256)
		assert.ErrorIs(t, err, ErrAlgorithmUnavailable)
	})

	t.Run("Default algorithms", func(t *testing.T) {
		assert.Equal(t, []string{Keccak256, SHA256, SHA512, SHA3_256}, DefaultRegistry().Algorithms())
	})
}

func TestUUID(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

	seen := make(map[string]struct{})
	for i := 0; i < 64; i++ {
		id := UUID()
		assert.Regexp(t, pattern, id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 64)
}
