package signature

import (
	"bytes"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
)

var (
	ErrEmptySecret  = errors.New("signing secret is empty")
	ErrInvalidNonce = errors.New("nonce size must be positive")
)

const DefaultNonceBytes = 16

// Payload is the signed portion of a dynamic QR code.
// Field order is part of the wire format; do not reorder.
type Payload struct {
	BadgeID   string `json:"badgeId"`
	Timestamp string `json:"timestamp"`
	Nonce     string `json:"nonce"`
}

// Canonical returns the exact bytes that are fed into the MAC:
// compact JSON, fixed key order, no HTML escaping.
func Canonical(p Payload) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func Sign(p Payload, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", ErrEmptySecret
	}

	sum, err := mac(p, secret)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}

// Verify never reports why a signature was rejected.
func Verify(p Payload, sig string, secret []byte) bool {
	if len(secret) == 0 || sig == "" {
		return false
	}

	presented, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}

	expected, err := mac(p, secret)
	if err != nil {
		return false
	}
	return hmac.Equal(presented, expected)
}

func NewNonce(size int) (string, error) {
	if size <= 0 {
		return "", ErrInvalidNonce
	}
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func mac(p Payload, secret []byte) ([]byte, error) {
	msg, err := Canonical(p)
	if err != nil {
		return nil, err
	}
	h := hmac.New(sha256.New, secret)
	h.Write(msg)
	return h.Sum(nil), nil
}
