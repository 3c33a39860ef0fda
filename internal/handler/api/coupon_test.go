//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/coupon"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/api"
	reqdto "github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/dto/request"
	resdto "github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/dto/response"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/errs"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/commands"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/queries"
	"github.com/Yanolja-Travel-Innovation-2025/backend/tests/common/httptest"
	commandsmock "github.com/Yanolja-Travel-Innovation-2025/backend/tests/mock/commands"
	queriesmock "github.com/Yanolja-Travel-Innovation-2025/backend/tests/mock/queries"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCouponCommands
	mockQueries  *queriesmock.MockCouponQueries
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCouponCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCouponQueries(s.mockCtrl)
	h := api.NewCouponHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/coupons", asUser(h.Issue))
	s.router.GET("/coupons", asUser(h.List))
	s.router.POST("/coupons/:code/redeem", asUser(h.Redeem))
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

func (s *CouponHandlerTestSuite) TestIssue() {
	reqBody := reqdto.IssueCouponRequest{PartnerID: "p1"}
	validUntil := time.Date(2025, 8, 14, 3, 0, 0, 0, time.UTC)

	s.Run("success: returns 201 with the discount", func() {
		s.mockCommands.EXPECT().IssueCoupon(gomock.Any(), testUserID, reqBody).Return(&commands.IssueCouponResult{
			CouponID:     uuid.New(),
			Code:         "JEJUAB12CD34",
			PartnerID:    "p1",
			DiscountRate: 15,
			BadgeCount:   3,
			ValidUntil:   validUntil,
			Description:  "Black Pork House 15% off",
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/coupons", reqBody, "bearer-token")

		var response resdto.IssuedCouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("JEJUAB12CD34", response.Code)
		s.Equal(15.0, response.DiscountRate)
		s.Equal(3, response.BadgeCount)
		s.True(validUntil.Equal(response.ValidUntil))
	})

	s.Run("error: missing partnerId returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/coupons", map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 without a user", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/coupons", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "partner not found", commandsError: errs.ErrPartnerNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Partner not found"},
			{name: "not enough badges", commandsError: errs.Mark(errors.New("have 1"), errs.ErrInsufficientBadges), expectedStatus: http.StatusForbidden, expectedMsg: "Not enough badges"},
			{name: "code collision", commandsError: errs.Mark(errors.New("3 attempts"), errs.ErrCouponCodeCollision), expectedStatus: http.StatusServiceUnavailable, expectedMsg: "try again"},
			{name: "invalid partner rate", commandsError: errs.Mark(coupon.ErrInvalidBaseRate, errs.ErrDomainValidation), expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "discount settings are invalid"},
			{name: "internal", commandsError: errors.New("tx aborted"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().IssueCoupon(gomock.Any(), testUserID, reqBody).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/coupons", reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CouponHandlerTestSuite) TestList() {
	s.Run("success: returns the user's coupons", func() {
		used := time.Date(2025, 7, 20, 9, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().ListMyCoupons(gomock.Any(), testUserID).Return([]queries.CouponView{
			{ID: uuid.New(), PartnerID: "p1", Code: "JEJUAB12CD34", DiscountRate: 15, RequiredBadges: 2, IsUsed: true, UsedAt: &used},
			{ID: uuid.New(), PartnerID: "p2", Code: "JEJUZZ99YY88", DiscountRate: 10, RequiredBadges: 1},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons", nil, "bearer-token")

		var response []resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.True(response[0].IsUsed)
		s.Require().NotNil(response[0].UsedAt)
		s.Nil(response[1].UsedAt)
	})

	s.Run("error: store failure returns 500", func() {
		s.mockQueries.EXPECT().ListMyCoupons(gomock.Any(), testUserID).Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load coupons")
	})
}

func (s *CouponHandlerTestSuite) TestRedeem() {
	code := "JEJUAB12CD34"
	url := "/coupons/" + code + "/redeem"

	s.Run("success: returns 200 with the redemption time", func() {
		usedAt := time.Date(2025, 7, 20, 9, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().RedeemCoupon(gomock.Any(), testUserID, code).
			Return(&commands.RedeemCouponResult{CouponID: uuid.New(), Code: code, UsedAt: usedAt}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.RedeemedCouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(code, response.Code)
		s.True(usedAt.Equal(response.UsedAt))
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "not found", commandsError: errs.ErrCouponNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Coupon not found"},
			{name: "already used", commandsError: errs.Wrap(coupon.ErrCouponAlreadyUsed, "redeem"), expectedStatus: http.StatusConflict, expectedMsg: "Coupon already used"},
			{name: "expired", commandsError: errs.Wrap(coupon.ErrCouponExpired, "redeem"), expectedStatus: http.StatusGone, expectedMsg: "Coupon has expired"},
			{name: "internal", commandsError: errors.New("tx aborted"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RedeemCoupon(gomock.Any(), testUserID, code).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
