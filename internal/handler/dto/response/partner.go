package response

import "github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/queries"

type PartnerResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	Location      LocationResponse `json:"location"`
	DiscountRate  float64          `json:"discountRate"`
	MinimumBadges int              `json:"minimumBadges"`
	Contact       string           `json:"contact"`
	Description   string           `json:"description,omitempty"`
}

func FromPartnerView(v *queries.PartnerView) (*PartnerResponse, error) {
	r, err := mapTo[PartnerResponse](v)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func FromPartnerViews(views []queries.PartnerView) ([]PartnerResponse, error) {
	return mapSlice[PartnerResponse](views)
}

type PartnerCreatedResponse struct {
	ID string `json:"id"`
}
