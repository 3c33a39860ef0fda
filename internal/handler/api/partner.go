package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/dto/response"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/httperr"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/errs"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/queries"
)

type PartnerHandler struct {
	q queries.PartnerQueries
}

func NewPartnerHandler(q queries.PartnerQueries) *PartnerHandler {
	return &PartnerHandler{q: q}
}

// @Summary List partners
// @Description List active partner merchants
// @Tags partners
// @Produce json
// @Success 200 {array} resdto.PartnerResponse
// @Router /partners [get]
func (h *PartnerHandler) List(c *gin.Context) {
	views, err := h.q.ListPartners(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load partners", nil)
		return
	}
	res, err := resdto.FromPartnerViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get partner
// @Tags partners
// @Produce json
// @Param id path string true "Partner ID"
// @Success 200 {object} resdto.PartnerResponse
// @Failure 404 {object} httperr.Response
// @Router /partners/{id} [get]
func (h *PartnerHandler) Get(c *gin.Context) {
	view, err := h.q.GetPartner(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errs.Is(err, errs.ErrPartnerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Partner not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load partner", nil)
		return
	}
	res, err := resdto.FromPartnerView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
