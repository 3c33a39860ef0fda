package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/dto/request"
	resdto "github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/dto/response"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/httperr"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/middleware"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/errs"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/commands"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/qrcode"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/queries"
)

type BadgeHandler struct {
	cmds commands.BadgeCommands
	q    queries.BadgeQueries
}

func NewBadgeHandler(cmds commands.BadgeCommands, q queries.BadgeQueries) *BadgeHandler {
	return &BadgeHandler{cmds: cmds, q: q}
}

var rejectionMessages = map[qrcode.Reason]string{
	qrcode.ReasonMalformed:     "Malformed QR code",
	qrcode.ReasonMissingFields: "QR code is missing required fields",
	qrcode.ReasonExpired:       "QR code has expired",
	qrcode.ReasonUnknownCode:   "Unknown QR code",
	qrcode.ReasonUnknownBadge:  "Badge not found",
	qrcode.ReasonBadSignature:  "Invalid QR code signature",
	qrcode.ReasonReplay:        "QR code has already been used",
	qrcode.ReasonTooFar:        "Too far from the badge location",
	qrcode.ReasonCancelled:     "Validation was cancelled",
}

func rejectionStatus(r qrcode.Reason) int {
	switch r {
	case qrcode.ReasonReplay:
		return http.StatusConflict
	case qrcode.ReasonTooFar:
		return http.StatusForbidden
	case qrcode.ReasonCancelled:
		return http.StatusRequestTimeout
	default:
		return http.StatusBadRequest
	}
}

func abortRejected(c *gin.Context, res qrcode.Result) {
	msg, ok := rejectionMessages[res.Reason]
	if !ok {
		msg = "Invalid QR code"
	}
	middleware.SetQRReason(c, res.Reason.String())
	httperr.AbortWithError(c, rejectionStatus(res.Reason), nil, msg, resdto.FromRejection(res))
}

func abortValidationFailure(c *gin.Context, err error) {
	if errs.Is(err, qrcode.ErrLookupFailed) {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Badge catalog unavailable", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

// @Summary List badges
// @Description List every badge in the catalog
// @Tags badges
// @Produce json
// @Success 200 {array} resdto.BadgeResponse
// @Failure 500 {object} httperr.Response
// @Router /badges [get]
func (h *BadgeHandler) List(c *gin.Context) {
	views, err := h.q.ListBadges(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load badges", nil)
		return
	}
	res, err := resdto.FromBadgeViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary My badges
// @Description List badges owned by the current user in acquisition order
// @Tags badges
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.OwnedBadgeResponse
// @Failure 401 {object} httperr.Response
// @Router /badges/my [get]
func (h *BadgeHandler) My(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	views, err := h.q.MyBadges(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load badges", nil)
		return
	}
	res, err := resdto.FromOwnedBadgeViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Validate QR code
// @Description Check a scanned QR payload without granting the badge. Dynamic codes are not spent; call /badges/scan to redeem them.
// @Tags badges
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateQRRequest true "Scanned payload"
// @Success 200 {object} resdto.ValidationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /badges/validate [post]
func (h *BadgeHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateQRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	res, err := h.cmds.ValidateQR(c.Request.Context(), req)
	if err != nil {
		abortValidationFailure(c, err)
		return
	}
	if !res.Valid {
		abortRejected(c, res)
		return
	}
	c.JSON(http.StatusOK, resdto.FromValidationResult(res))
}

// @Summary Scan badge
// @Description Validate a scanned QR payload and grant the badge to the current user
// @Tags badges
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateQRRequest true "Scanned payload"
// @Success 201 {object} resdto.ScanResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /badges/scan [post]
func (h *BadgeHandler) Scan(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.ValidateQRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	scan, err := h.cmds.ScanBadge(c.Request.Context(), userID, req)
	if err != nil {
		if errs.Is(err, errs.ErrBadgeAlreadyOwned) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Badge already owned", nil)
			return
		}
		abortValidationFailure(c, err)
		return
	}
	if !scan.Result.Valid {
		abortRejected(c, scan.Result)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromScanResult(scan))
}
