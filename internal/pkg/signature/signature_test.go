//go:build unit

package signature_test

import (
	"encoding/hex"
	"testing"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/signature"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-key-with-at-least-32-bytes!!")

func TestCanonical(t *testing.T) {
	t.Run("fixed key order and compact form", func(t *testing.T) {
		got, err := signature.Canonical(signature.Payload{
			BadgeID:   "64b7f0c2a1e4d3b2c1a09f8e",
			Timestamp: "2025-07-01T09:30:00.000Z",
			Nonce:     "00112233445566778899aabbccddeeff",
		})
		require.NoError(t, err)
		assert.Equal(t,
			`{"badgeId":"64b7f0c2a1e4d3b2c1a09f8e","timestamp":"2025-07-01T09:30:00.000Z","nonce":"00112233445566778899aabbccddeeff"}`,
			string(got))
	})

	t.Run("html characters are not escaped", func(t *testing.T) {
		got, err := signature.Canonical(signature.Payload{BadgeID: "a<b>&c", Timestamp: "t", Nonce: "n"})
		require.NoError(t, err)
		assert.Equal(t, `{"badgeId":"a<b>&c","timestamp":"t","nonce":"n"}`, string(got))
	})
}

func TestSign(t *testing.T) {
	t.Run("known vector", func(t *testing.T) {
		sig, err := signature.Sign(signature.Payload{
			BadgeID:   "64b7f0c2a1e4d3b2c1a09f8e",
			Timestamp: "2025-07-01T09:30:00.000Z",
			Nonce:     "00112233445566778899aabbccddeeff",
		}, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "7ff805998fb1994bf76ac489506c74bc035c6bc41b5a3b00a33336fdfea61164", sig)
	})

	t.Run("empty secret is rejected", func(t *testing.T) {
		_, err := signature.Sign(signature.Payload{BadgeID: "b"}, nil)
		require.ErrorIs(t, err, signature.ErrEmptySecret)
	})
}

func TestVerify(t *testing.T) {
	payloads := []signature.Payload{
		{BadgeID: "64b7f0c2a1e4d3b2c1a09f8e", Timestamp: "2025-07-01T09:30:00.000Z", Nonce: "00112233445566778899aabbccddeeff"},
		{BadgeID: "", Timestamp: "", Nonce: ""},
		{BadgeID: "한라산", Timestamp: "2025-12-31T23:59:59.999Z", Nonce: "ff"},
		{BadgeID: `quote"and\backslash`, Timestamp: "x", Nonce: "y"},
	}
	secrets := [][]byte{testSecret, []byte("another-secret-another-secret-xx"), []byte{0x00, 0xff}}

	t.Run("round trip", func(t *testing.T) {
		for _, p := range payloads {
			for _, s := range secrets {
				sig, err := signature.Sign(p, s)
				require.NoError(t, err)
				assert.True(t, signature.Verify(p, sig, s), "payload %+v", p)
			}
		}
	})

	t.Run("any flipped bit is rejected", func(t *testing.T) {
		p := payloads[0]
		sig, err := signature.Sign(p, testSecret)
		require.NoError(t, err)
		raw, err := hex.DecodeString(sig)
		require.NoError(t, err)

		for i := range raw {
			for bit := 0; bit < 8; bit++ {
				flipped := make([]byte, len(raw))
				copy(flipped, raw)
				flipped[i] ^= 1 << bit
				assert.False(t, signature.Verify(p, hex.EncodeToString(flipped), testSecret), "byte %d bit %d", i, bit)
			}
		}
	})

	t.Run("rejections", func(t *testing.T) {
		p := payloads[0]
		sig, err := signature.Sign(p, testSecret)
		require.NoError(t, err)

		cases := []struct {
			name    string
			payload signature.Payload
			sig     string
			secret  []byte
		}{
			{name: "wrong secret", payload: p, sig: sig, secret: secrets[1]},
			{name: "tampered badge", payload: signature.Payload{BadgeID: "other", Timestamp: p.Timestamp, Nonce: p.Nonce}, sig: sig, secret: testSecret},
			{name: "tampered timestamp", payload: signature.Payload{BadgeID: p.BadgeID, Timestamp: "2025-07-02T09:30:00.000Z", Nonce: p.Nonce}, sig: sig, secret: testSecret},
			{name: "malformed hex", payload: p, sig: "zz" + sig[2:], secret: testSecret},
			{name: "truncated", payload: p, sig: sig[:10], secret: testSecret},
			{name: "empty signature", payload: p, sig: "", secret: testSecret},
			{name: "empty secret", payload: p, sig: sig, secret: nil},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.False(t, signature.Verify(tc.payload, tc.sig, tc.secret))
			})
		}
	})
}

func TestNewNonce(t *testing.T) {
	a, err := signature.NewNonce(signature.DefaultNonceBytes)
	require.NoError(t, err)
	b, err := signature.NewNonce(signature.DefaultNonceBytes)
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)

	_, err = signature.NewNonce(0)
	require.ErrorIs(t, err, signature.ErrInvalidNonce)
}
