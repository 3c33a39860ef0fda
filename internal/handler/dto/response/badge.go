package response

import (
	"time"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/ptr"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/commands"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/qrcode"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/queries"
)

type LocationResponse struct {
	Name      string   `json:"name"`
	Address   string   `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type BadgeResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Location    LocationResponse `json:"location"`
	Rarity      string           `json:"rarity"`
	IsActive    bool             `json:"isActive"`
}

func FromBadgeViews(views []queries.BadgeView) ([]BadgeResponse, error) {
	return mapSlice[BadgeResponse](views)
}

type OwnedBadgeResponse struct {
	Badge          BadgeResponse `json:"badge"`
	ValidationType string        `json:"validationType"`
	QRTimestamp    *time.Time    `json:"qrTimestamp,omitempty"`
	AcquiredAt     time.Time     `json:"acquiredAt"`
}

func FromOwnedBadgeViews(views []queries.OwnedBadgeView) ([]OwnedBadgeResponse, error) {
	out := make([]OwnedBadgeResponse, 0, len(views))
	for _, v := range views {
		b, err := mapTo[BadgeResponse](v.BadgeView)
		if err != nil {
			return nil, err
		}
		out = append(out, OwnedBadgeResponse{
			Badge:          b,
			ValidationType: v.ValidationType,
			QRTimestamp:    v.QRTimestamp,
			AcquiredAt:     v.AcquiredAt,
		})
	}
	return out, nil
}

// ValidationResponse is returned for accepted codes only. Rejections use the error body.
type ValidationResponse struct {
	Valid          bool           `json:"valid"`
	ValidationType string         `json:"validationType"`
	Badge          *BadgeResponse `json:"badge,omitempty"`
	QRTimestamp    *time.Time     `json:"qrTimestamp,omitempty"`
}

func FromValidationResult(res qrcode.Result) *ValidationResponse {
	r := &ValidationResponse{
		Valid:          res.Valid,
		ValidationType: string(res.ValidationType),
		QRTimestamp:    res.QRTimestamp,
	}
	if res.Badge != nil {
		b := badgeResponse(res)
		r.Badge = &b
	}
	return r
}

type ScanResponse struct {
	Badge          BadgeResponse `json:"badge"`
	ValidationType string        `json:"validationType"`
	QRTimestamp    *time.Time    `json:"qrTimestamp,omitempty"`
	AcquiredAt     time.Time     `json:"acquiredAt"`
}

func FromScanResult(s *commands.ScanResult) *ScanResponse {
	r := &ScanResponse{
		Badge:          badgeResponse(s.Result),
		ValidationType: string(s.Result.ValidationType),
		QRTimestamp:    s.Result.QRTimestamp,
	}
	if s.AcquiredAt != nil {
		r.AcquiredAt = *s.AcquiredAt
	}
	return r
}

// RejectionDetail accompanies a rejected scan in the error body.
type RejectionDetail struct {
	Reason         string `json:"reason"`
	ValidationType string `json:"validationType,omitempty"`
	Distance       *int   `json:"distance,omitempty"`
}

func FromRejection(res qrcode.Result) RejectionDetail {
	return RejectionDetail{
		Reason:         res.Reason.String(),
		ValidationType: string(res.ValidationType),
		Distance:       res.Distance,
	}
}

type DynamicQRResponse struct {
	// QRCode is the exact string to encode into the QR image.
	QRCode  string                `json:"qrCode"`
	Payload qrcode.DynamicPayload `json:"payload"`
}

func badgeResponse(res qrcode.Result) BadgeResponse {
	b := res.Badge
	r := BadgeResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Image:       b.Image,
		Location:    LocationResponse{Name: b.Location.Name},
		Rarity:      b.Rarity.String(),
		IsActive:    b.IsActive,
	}
	if c := b.Location.Coordinates; c != nil {
		r.Location.Latitude = ptr.Of(c.Latitude)
		r.Location.Longitude = ptr.Of(c.Longitude)
	}
	return r
}
