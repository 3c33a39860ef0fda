//go:build unit

package partner_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/partner"
)

func validPartner() partner.Partner {
	return partner.Partner{
		Name:          "Udo Peanut Cafe",
		Category:      "cafe",
		Contact:       "064-000-0000",
		DiscountRate:  5,
		MinimumBadges: 3,
		IsActive:      true,
	}
}

func TestPartner_Eligible(t *testing.T) {
	p := validPartner()
	assert.False(t, p.Eligible(2))
	assert.True(t, p.Eligible(3))
	assert.True(t, p.Eligible(10))

	p.IsActive = false
	assert.False(t, p.Eligible(10), "inactive partners never issue coupons")
}

func TestPartner_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *partner.Partner)
		wantErr error
	}{
		{name: "valid", mutate: func(*partner.Partner) {}},
		{name: "blank name", mutate: func(p *partner.Partner) { p.Name = "  " }, wantErr: partner.ErrMissingField},
		{name: "no contact", mutate: func(p *partner.Partner) { p.Contact = "" }, wantErr: partner.ErrMissingField},
		{name: "negative rate", mutate: func(p *partner.Partner) { p.DiscountRate = -1 }, wantErr: partner.ErrInvalidDiscountRate},
		{name: "rate over 100", mutate: func(p *partner.Partner) { p.DiscountRate = 100.5 }, wantErr: partner.ErrInvalidDiscountRate},
		{name: "NaN rate", mutate: func(p *partner.Partner) { p.DiscountRate = math.NaN() }, wantErr: partner.ErrInvalidDiscountRate},
		{name: "zero minimum", mutate: func(p *partner.Partner) { p.MinimumBadges = 0 }, wantErr: partner.ErrInvalidMinimum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPartner()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
