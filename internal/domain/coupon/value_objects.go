package coupon

import (
	"crypto/rand"
	"errors"
	"io"
	"regexp"
	"strings"
)

var ErrInvalidCouponCode = errors.New("invalid coupon code format")

const (
	CodePrefix = "JEJU"
	CodeLength = 12
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var couponCodeRegex = regexp.MustCompile(`^JEJU[A-Z0-9]{8}$`)

type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

// GenerateCode draws the random suffix from r, or crypto/rand when r is nil.
func GenerateCode(r io.Reader) (Code, error) {
	if r == nil {
		r = rand.Reader
	}

	suffix := CodeLength - len(CodePrefix)
	buf := make([]byte, suffix)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(CodeLength)
	b.WriteString(CodePrefix)
	for _, v := range buf {
		b.WriteByte(codeAlphabet[int(v)%len(codeAlphabet)])
	}
	return Code(b.String()), nil
}

func (c Code) String() string {
	return string(c)
}
