package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/coupon"
	reqdto "github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/dto/request"
	resdto "github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/dto/response"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/httperr"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/middleware"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/errs"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/commands"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/queries"
)

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary Issue coupon
// @Description Issue a partner coupon discounted by the number of badges owned
// @Tags coupons
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.IssueCouponRequest true "Partner"
// @Success 201 {object} resdto.IssuedCouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /coupons [post]
func (h *CouponHandler) Issue(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.IssueCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.IssueCoupon(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrPartnerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Partner not found", nil)
		case errs.Is(err, errs.ErrInsufficientBadges):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not enough badges for this partner", nil)
		case errs.Is(err, errs.ErrCouponCodeCollision):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Could not allocate a coupon code, try again", nil)
		case errs.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Partner discount settings are invalid", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromIssueCouponResult(result))
}

// @Summary My coupons
// @Description List the current user's coupons, newest first
// @Tags coupons
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.CouponResponse
// @Failure 401 {object} httperr.Response
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListMyCoupons(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load coupons", nil)
		return
	}
	res, err := resdto.FromCouponViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Redeem coupon
// @Description Mark one of the current user's coupons as used
// @Tags coupons
// @Security BearerAuth
// @Produce json
// @Param code path string true "Coupon code"
// @Success 200 {object} resdto.RedeemedCouponResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /coupons/{code}/redeem [post]
func (h *CouponHandler) Redeem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	result, err := h.cmds.RedeemCoupon(c.Request.Context(), userID, c.Param("code"))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
		case errs.Is(err, coupon.ErrCouponAlreadyUsed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Coupon already used", nil)
		case errs.Is(err, coupon.ErrCouponExpired):
			httperr.AbortWithError(c, http.StatusGone, err, "Coupon has expired", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedeemCouponResult(result))
}
