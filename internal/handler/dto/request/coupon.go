package request

type IssueCouponRequest struct {
	PartnerID string `json:"partnerId" binding:"required"`
}
