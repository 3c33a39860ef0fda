//go:build e2e

package badge_test

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/user"
	resdto "github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/dto/response"
	"github.com/Yanolja-Travel-Innovation-2025/backend/tests/common/authtest"
	"github.com/Yanolja-Travel-Innovation-2025/backend/tests/common/builder"
	"github.com/Yanolja-Travel-Innovation-2025/backend/tests/common/httptest"
	"github.com/Yanolja-Travel-Innovation-2025/backend/tests/e2e"
)

const (
	scanURL     = "/api/badges/scan"
	validateURL = "/api/badges/validate"
	myURL       = "/api/badges/my"
	listURL     = "/api/badges"
	qrURL       = "/api/admin/qr"
)

type badgeSuite struct {
	e2e.SharedSuite
	badgeID string
	qrToken string
}

func TestBadgeSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(badgeSuite))
}

func (s *badgeSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()

	b := builder.NewBadgeBuilder().With(func(b *builder.BadgeBuilder) {
		b.ID = ""
		b.QRCode = "E2E_HALLASAN_001"
	}).Build()
	id, err := s.Catalog.InsertBadge(s.T().Context(), b)
	require.NoError(s.T(), err)
	s.badgeID = id
	s.qrToken = b.Location.QRCode
}

// at the summit unless lat is overridden
func scanBody(qr any, lat float64) map[string]any {
	return map[string]any{
		"qrCode":   qr,
		"location": map[string]any{"latitude": lat, "longitude": 126.5312},
	}
}

func (s *badgeSuite) TestListIsPublic() {
	s.Run("catalog without auth", func() {
		w := httptest.PerformRequest(s.T(), s.Router, "GET", listURL, nil, "")

		var res []resdto.BadgeResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		require.NotEmpty(s.T(), res)
		require.NotContains(s.T(), w.Body.String(), s.qrToken, "static QR token must not leak")
	})
}

func (s *badgeSuite) TestStaticScan() {
	s.Run("grants once and records a visit", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "scanner@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, scanURL, scanBody(s.qrToken, 33.3617), token)
		var res resdto.ScanResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		require.Equal(t, s.badgeID, res.Badge.ID)
		require.Equal(t, "simple", res.ValidationType)

		again := httptest.PerformRequest(t, s.Router, http.MethodPost, scanURL, scanBody(s.qrToken, 33.3617), token)
		httptest.AssertErrorResponse(t, again, http.StatusConflict, "Badge already owned")

		my := httptest.PerformRequest(t, s.Router, http.MethodGet, myURL, nil, token)
		var owned []resdto.OwnedBadgeResponse
		httptest.AssertSuccessResponse(t, my, http.StatusOK, &owned)
		require.Len(t, owned, 1)
		require.Equal(t, s.badgeID, owned[0].Badge.ID)

		var visits int
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT visit_count FROM users WHERE email = 'scanner@example.com'").Scan(&visits))
		require.Equal(t, 1, visits)
	})

	s.Run("unknown code", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "lost@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, validateURL, scanBody("NOT_A_BADGE", 33.3617), token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Unknown QR code")
	})
}

func (s *badgeSuite) TestDynamicScan() {
	s.Run("admin code is single use", func() {
		t := s.T()
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "dynamic@example.com", string(user.RoleUser))

		gen := httptest.PerformRequest(t, s.Router, http.MethodPost, qrURL, map[string]any{"badgeId": s.badgeID}, adminToken)
		var qr resdto.DynamicQRResponse
		httptest.AssertSuccessResponse(t, gen, http.StatusOK, &qr)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, scanURL, scanBody(json.RawMessage(qr.QRCode), 33.3617), token)
		var res resdto.ScanResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		require.Equal(t, "dynamic", res.ValidationType)
		require.NotNil(t, res.QRTimestamp)

		replay := httptest.PerformRequest(t, s.Router, http.MethodPost, validateURL, scanBody(json.RawMessage(qr.QRCode), 33.3617), token)
		httptest.AssertErrorResponse(t, replay, http.StatusConflict, "already been used")
	})

	s.Run("too far from the site", func() {
		t := s.T()
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "far@example.com", string(user.RoleUser))

		gen := httptest.PerformRequest(t, s.Router, http.MethodPost, qrURL, map[string]any{"badgeId": s.badgeID}, adminToken)
		var qr resdto.DynamicQRResponse
		httptest.AssertSuccessResponse(t, gen, http.StatusOK, &qr)

		// 0.0135 degrees of latitude is roughly 1500 m.
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, scanURL, scanBody(json.RawMessage(qr.QRCode), 33.3617+0.0135), token)
		var detail resdto.RejectionDetail
		httptest.AssertErrorDetail(t, w, http.StatusForbidden, &detail)
		require.Equal(t, "too_far", detail.Reason)
		require.NotNil(t, detail.Distance)
		require.InDelta(t, 1500, *detail.Distance, 20)

		// a rejected attempt leaves the nonce unspent
		near := httptest.PerformRequest(t, s.Router, http.MethodPost, scanURL, scanBody(json.RawMessage(qr.QRCode), 33.3617), token)
		require.Equal(t, http.StatusCreated, near.Code, near.Body.String())
	})

	s.Run("validate does not spend the code", func() {
		t := s.T()
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "preview@example.com", string(user.RoleUser))

		gen := httptest.PerformRequest(t, s.Router, http.MethodPost, qrURL, map[string]any{"badgeId": s.badgeID}, adminToken)
		var qr resdto.DynamicQRResponse
		httptest.AssertSuccessResponse(t, gen, http.StatusOK, &qr)

		for range 2 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, validateURL, scanBody(json.RawMessage(qr.QRCode), 33.3617), token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, scanURL, scanBody(json.RawMessage(qr.QRCode), 33.3617), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("concurrent scans admit exactly one", func() {
		t := s.T()
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "racer@example.com", string(user.RoleUser))

		gen := httptest.PerformRequest(t, s.Router, http.MethodPost, qrURL, map[string]any{"badgeId": s.badgeID}, adminToken)
		var qr resdto.DynamicQRResponse
		httptest.AssertSuccessResponse(t, gen, http.StatusOK, &qr)

		const workers = 8
		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, scanURL, scanBody(json.RawMessage(qr.QRCode), 33.3617), token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		ok := 0
		for _, c := range codes {
			if c == http.StatusCreated {
				ok++
			} else {
				require.Equal(t, http.StatusConflict, c)
			}
		}
		require.Equal(t, 1, ok)
	})

	s.Run("tampered signature", func() {
		t := s.T()
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "forger@example.com", string(user.RoleUser))

		gen := httptest.PerformRequest(t, s.Router, http.MethodPost, qrURL, map[string]any{"badgeId": s.badgeID}, adminToken)
		var qr resdto.DynamicQRResponse
		httptest.AssertSuccessResponse(t, gen, http.StatusOK, &qr)

		forged := qr.Payload
		forged.Nonce = forged.Nonce[:len(forged.Nonce)-1] + "0"
		if forged.Nonce == qr.Payload.Nonce {
			forged.Nonce = forged.Nonce[:len(forged.Nonce)-1] + "1"
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, validateURL, scanBody(forged, 33.3617), token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid QR code signature")
	})
}
