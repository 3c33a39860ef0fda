package qrcode

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/signature"
)

const (
	// TimestampLayout matches what browsers emit for Date.prototype.toISOString.
	TimestampLayout = "2006-01-02T15:04:05.000Z"
	PayloadVersion  = "1.0"

	// MaxPayloadBytes bounds a submitted payload. Generated codes are under 300 bytes.
	MaxPayloadBytes = 4 << 10
)

// DynamicPayload is the JSON object encoded into a signed, time-boxed QR code.
type DynamicPayload struct {
	BadgeID   string `json:"badgeId"`
	Timestamp string `json:"timestamp"`
	Nonce     string `json:"nonce"`
	Signature string `json:"signature"`
	Version   string `json:"version,omitempty"`
}

func (p DynamicPayload) signed() signature.Payload {
	return signature.Payload{BadgeID: p.BadgeID, Timestamp: p.Timestamp, Nonce: p.Nonce}
}

// Raw returns the payload as it would be submitted by a scanner.
func (p DynamicPayload) Raw() (json.RawMessage, error) {
	return json.Marshal(p)
}

// SimplePayload wraps a static token as a submitted QR payload.
func SimplePayload(token string) json.RawMessage {
	b, _ := json.Marshal(token)
	return b
}

type payloadKind int

const (
	kindMalformed payloadKind = iota
	kindSimple
	kindDynamic
)

type parsedPayload struct {
	kind    payloadKind
	token   string
	dynamic DynamicPayload
	// missing is set when a dynamic object lacks a required string field.
	missing bool
	// key is the hex SHA-256 of the compacted payload. Empty means uncacheable.
	key string
}

func parsePayload(raw json.RawMessage) parsedPayload {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || len(trimmed) > MaxPayloadBytes || !json.Valid(trimmed) {
		return parsedPayload{kind: kindMalformed}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return parsedPayload{kind: kindMalformed}
	}
	sum := sha256.Sum256(compact.Bytes())
	key := hex.EncodeToString(sum[:])

	switch trimmed[0] {
	case '"':
		var token string
		if err := json.Unmarshal(trimmed, &token); err != nil {
			return parsedPayload{kind: kindMalformed, key: key}
		}
		return parsedPayload{kind: kindSimple, token: token, key: key}
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return parsedPayload{kind: kindMalformed, key: key}
		}
		p := parsedPayload{kind: kindDynamic, key: key}
		var ok [4]bool
		p.dynamic.BadgeID, ok[0] = stringField(fields, "badgeId")
		p.dynamic.Timestamp, ok[1] = stringField(fields, "timestamp")
		p.dynamic.Nonce, ok[2] = stringField(fields, "nonce")
		p.dynamic.Signature, ok[3] = stringField(fields, "signature")
		p.dynamic.Version, _ = stringField(fields, "version")
		p.missing = !(ok[0] && ok[1] && ok[2] && ok[3])
		return p
	default:
		return parsedPayload{kind: kindMalformed, key: key}
	}
}

// stringField reports false for absent, non-string and empty values alike.
func stringField(fields map[string]json.RawMessage, name string) (string, bool) {
	raw, exists := fields[name]
	if !exists {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || s == "" {
		return "", false
	}
	return s, true
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
