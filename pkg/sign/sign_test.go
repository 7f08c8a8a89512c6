package sign

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	t.Run("String representation", func(t *testing.T) {
		tests := []struct {
			result   Result
			expected string
		}{
			{ResultValid, "valid"},
			{ResultInvalidSignature, "invalid-signature"},
			{ResultMalformedInput, "malformed-input"},
			{Result(42), "malformed-input"},
		}

		for _, test := range tests {
			assert.Equal(t, test.expected, test.result.String())
		}
	})

	t.Run("Valid", func(t *testing.T) {
		assert.True(t, ResultValid.Valid())
		assert.False(t, ResultInvalidSignature.Valid())
		assert.False(t, ResultMalformedInput.Valid())
	})

	t.Run("Zero value is malformed", func(t *testing.T) {
		var r Result
		assert.Equal(t, ResultMalformedInput, r)
	})
}

func TestSignature(t *testing.T) {
	t.Run("String is lower-case hex", func(t *testing.T) {
		sig := Signature{0xDE, 0xAD, 0xBE, 0xEF}
		assert.Equal(t, "deadbeef", sig.String())
		assert.Equal(t, "", Signature{}.String())
	})

	t.Run("JSON marshaling", func(t *testing.T) {
		sig := Signature{0x01, 0x02, 0x03}

		jsonData, err := json.Marshal(sig)
		require.NoError(t, err)
		assert.Equal(t, `"010203"`, string(jsonData))

		var unmarshaled Signature
		require.NoError(t, json.Unmarshal(jsonData, &unmarshaled))
		assert.Equal(t, sig, unmarshaled)
	})

	t.Run("JSON unmarshaling accepts 0x prefix", func(t *testing.T) {
		var sig Signature
		require.NoError(t, json.Unmarshal([]byte(`"0xA0B1"`), &sig))
		assert.Equal(t, Signature{0xa0, 0xb1}, sig)
	})

	t.Run("JSON in struct", func(t *testing.T) {
		type envelope struct {
			Sig Signature `json:"sig"`
		}

		data, err := json.Marshal(envelope{Sig: Signature{0xff}})
		require.NoError(t, err)
		assert.JSONEq(t, `{"sig":"ff"}`, string(data))
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		var sig Signature
		assert.Error(t, json.Unmarshal([]byte(`"not-hex"`), &sig))
		assert.Error(t, json.Unmarshal([]byte(`"abc"`), &sig))
		assert.Error(t, json.Unmarshal([]byte(`123`), &sig))
	})
}
