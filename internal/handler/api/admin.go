package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/dto/request"
	resdto "github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/dto/response"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/httperr"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/errs"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/commands"
)

type AdminHandler struct {
	badges   commands.BadgeCommands
	partners commands.PartnerCommands
}

func NewAdminHandler(badges commands.BadgeCommands, partners commands.PartnerCommands) *AdminHandler {
	return &AdminHandler{badges: badges, partners: partners}
}

// @Summary Generate dynamic QR code
// @Description Issue a signed, single-use QR payload for a badge
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.GenerateQRRequest true "Badge to encode"
// @Success 200 {object} resdto.DynamicQRResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/qr [post]
func (h *AdminHandler) GenerateQR(c *gin.Context) {
	var req reqdto.GenerateQRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	payload, err := h.badges.GenerateQR(c.Request.Context(), req.BadgeID)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrBadgeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Badge not found", nil)
		default:
			abortValidationFailure(c, err)
		}
		return
	}

	raw, err := payload.Raw()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.DynamicQRResponse{QRCode: string(raw), Payload: payload})
}

// @Summary Create partner
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePartnerRequest true "Partner"
// @Success 201 {object} resdto.PartnerCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/partners [post]
func (h *AdminHandler) CreatePartner(c *gin.Context) {
	var req reqdto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.partners.CreatePartner(c.Request.Context(), req)
	if err != nil {
		abortPartnerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.PartnerCreatedResponse{ID: id})
}

// @Summary Update partner
// @Description Replace the supplied fields of a partner
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Partner ID"
// @Param request body reqdto.UpdatePartnerRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/partners/{id} [patch]
func (h *AdminHandler) UpdatePartner(c *gin.Context) {
	var req reqdto.UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.partners.UpdatePartner(c.Request.Context(), c.Param("id"), req); err != nil {
		abortPartnerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Deactivate partner
// @Description Hide a partner and stop new coupons. Issued coupons stay redeemable.
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Partner ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/partners/{id} [delete]
func (h *AdminHandler) DeactivatePartner(c *gin.Context) {
	if err := h.partners.DeactivatePartner(c.Request.Context(), c.Param("id")); err != nil {
		abortPartnerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func abortPartnerError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrPartnerNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Partner not found", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid partner", err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
