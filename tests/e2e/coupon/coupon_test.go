//go:build e2e

package coupon_test

import (
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/partner"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/user"
	resdto "github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/dto/response"
	"github.com/Yanolja-Travel-Innovation-2025/backend/tests/common/authtest"
	"github.com/Yanolja-Travel-Innovation-2025/backend/tests/common/builder"
	"github.com/Yanolja-Travel-Innovation-2025/backend/tests/common/dbtest"
	"github.com/Yanolja-Travel-Innovation-2025/backend/tests/common/httptest"
	"github.com/Yanolja-Travel-Innovation-2025/backend/tests/e2e"
)

const couponsURL = "/api/coupons"

var codePattern = regexp.MustCompile(`^JEJU[A-Z0-9]{8}$`)

type couponSuite struct {
	e2e.SharedSuite
	partnerID string
}

func TestCouponSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(couponSuite))
}

func (s *couponSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()

	p := builder.NewPartnerBuilder().With(func(p *partner.Partner) { p.ID = "" }).Build()
	id, err := s.Catalog.InsertPartner(s.T().Context(), p)
	require.NoError(s.T(), err)
	s.partnerID = id
}

func (s *couponSuite) loginWithBadges(email string, badges int) string {
	t := s.T()
	userID := dbtest.CreateTestUser(t, s.DB, email, string(user.RoleUser))
	for i := range badges {
		dbtest.GrantTestBadge(t, s.DB, userID, badgeIDs[i])
	}
	return authtest.LoginUser(t, s.Router, email, dbtest.TestPassword)
}

var badgeIDs = []string{
	"64b7f0c2e1a2b3c4d5e6f701",
	"64b7f0c2e1a2b3c4d5e6f702",
	"64b7f0c2e1a2b3c4d5e6f703",
}

func (s *couponSuite) TestIssue() {
	tests := []struct {
		name     string
		badges   int
		wantCode int
		wantRate float64
		wantErr  string
	}{
		{name: "below partner minimum", badges: 1, wantCode: http.StatusForbidden, wantErr: "Not enough badges"},
		{name: "at partner minimum", badges: 2, wantCode: http.StatusCreated, wantRate: 10},
		{name: "silver tier bonus", badges: 3, wantCode: http.StatusCreated, wantRate: 15},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			token := s.loginWithBadges("collector@example.com", tt.badges)

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, map[string]any{"partnerId": s.partnerID}, token)
			if tt.wantErr != "" {
				httptest.AssertErrorResponse(t, w, tt.wantCode, tt.wantErr)
				return
			}

			var res resdto.IssuedCouponResponse
			httptest.AssertSuccessResponse(t, w, tt.wantCode, &res)
			require.Regexp(t, codePattern, res.Code)
			require.Equal(t, s.partnerID, res.PartnerID)
			require.Equal(t, tt.badges, res.BadgeCount)
			require.InDelta(t, tt.wantRate, res.DiscountRate, 0.001)
			require.WithinDuration(t, time.Now().Add(s.Config.Coupon.Validity), res.ValidUntil, time.Minute)
		})
	}

	s.Run("unknown partner", func() {
		t := s.T()
		token := s.loginWithBadges("collector@example.com", 3)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, map[string]any{"partnerId": "64b7f0c2e1a2b3c4d5e6ffff"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Partner not found")
	})

	s.Run("requires auth", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, couponsURL, map[string]any{"partnerId": s.partnerID}, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *couponSuite) TestRedeem() {
	s.Run("full lifecycle", func() {
		t := s.T()
		token := s.loginWithBadges("redeemer@example.com", 2)

		issued := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, map[string]any{"partnerId": s.partnerID}, token)
		var coupon resdto.IssuedCouponResponse
		httptest.AssertSuccessResponse(t, issued, http.StatusCreated, &coupon)

		list := httptest.PerformRequest(t, s.Router, http.MethodGet, couponsURL, nil, token)
		var owned []resdto.CouponResponse
		httptest.AssertSuccessResponse(t, list, http.StatusOK, &owned)
		require.Len(t, owned, 1)
		require.Equal(t, coupon.Code, owned[0].Code)
		require.False(t, owned[0].IsUsed)

		redeemURL := couponsURL + "/" + coupon.Code + "/redeem"
		first := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL, nil, token)
		var redeemed resdto.RedeemedCouponResponse
		httptest.AssertSuccessResponse(t, first, http.StatusOK, &redeemed)
		require.Equal(t, coupon.ID, redeemed.ID)

		second := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL, nil, token)
		httptest.AssertErrorResponse(t, second, http.StatusConflict, "Coupon already used")

		var usedAtSet bool
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT used_at IS NOT NULL FROM coupons WHERE code = $1", coupon.Code).Scan(&usedAtSet))
		require.True(t, usedAtSet)
	})

	s.Run("another user's coupon is not found", func() {
		t := s.T()
		owner := s.loginWithBadges("owner@example.com", 2)
		other := s.loginWithBadges("other@example.com", 2)

		issued := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, map[string]any{"partnerId": s.partnerID}, owner)
		var coupon resdto.IssuedCouponResponse
		httptest.AssertSuccessResponse(t, issued, http.StatusCreated, &coupon)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL+"/"+coupon.Code+"/redeem", nil, other)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Coupon not found")
	})

	s.Run("expired coupon", func() {
		t := s.T()
		token := s.loginWithBadges("late@example.com", 2)

		issued := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, map[string]any{"partnerId": s.partnerID}, token)
		var coupon resdto.IssuedCouponResponse
		httptest.AssertSuccessResponse(t, issued, http.StatusCreated, &coupon)

		_, err := s.DB.Exec(t.Context(),
			"UPDATE coupons SET valid_until = NOW() - INTERVAL '1 minute' WHERE code = $1", coupon.Code)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL+"/"+coupon.Code+"/redeem", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusGone, "Coupon has expired")
	})

	s.Run("unknown code", func() {
		t := s.T()
		token := s.loginWithBadges("nobody@example.com", 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL+"/JEJU00000000/redeem", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Coupon not found")
	})
}
