package queries

//go:generate mockgen -source=badge.go -destination=../../../tests/mock/queries/badge.go -package=queriesmock

import (
	"context"

	"github.com/google/uuid"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/badge"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/ptr"
)

type BadgeQueries interface {
	ListBadges(ctx context.Context) ([]BadgeView, error)
	MyBadges(ctx context.Context, userID uuid.UUID) ([]OwnedBadgeView, error)
}

type BadgeCatalogReader interface {
	ListBadges(ctx context.Context) ([]*badge.Badge, error)
	FindBadgesByIDs(ctx context.Context, ids []string) ([]*badge.Badge, error)
}

type UserBadgeReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]UserBadgeRow, error)
}

type badgeQueriesImpl struct {
	catalog   BadgeCatalogReader
	readStore UserBadgeReadStore
}

func NewBadgeQueries(catalog BadgeCatalogReader, readStore UserBadgeReadStore) BadgeQueries {
	return &badgeQueriesImpl{
		catalog:   catalog,
		readStore: readStore,
	}
}

func (q *badgeQueriesImpl) ListBadges(ctx context.Context) ([]BadgeView, error) {
	badges, err := q.catalog.ListBadges(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]BadgeView, 0, len(badges))
	for _, b := range badges {
		views = append(views, toBadgeView(b))
	}
	return views, nil
}

// MyBadges keeps acquisition order. Rows whose badge has left the catalog are skipped.
func (q *badgeQueriesImpl) MyBadges(ctx context.Context, userID uuid.UUID) ([]OwnedBadgeView, error) {
	rows, err := q.readStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []OwnedBadgeView{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.BadgeID)
	}
	badges, err := q.catalog.FindBadgesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*badge.Badge, len(badges))
	for _, b := range badges {
		byID[b.ID] = b
	}

	views := make([]OwnedBadgeView, 0, len(rows))
	for _, r := range rows {
		b, ok := byID[r.BadgeID]
		if !ok {
			continue
		}
		views = append(views, OwnedBadgeView{
			BadgeView:      toBadgeView(b),
			ValidationType: r.ValidationType,
			QRTimestamp:    r.QRTimestamp,
			AcquiredAt:     r.AcquiredAt,
		})
	}
	return views, nil
}

func toBadgeView(b *badge.Badge) BadgeView {
	v := BadgeView{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Image:       b.Image,
		Location:    LocationView{Name: b.Location.Name},
		Rarity:      b.Rarity.String(),
		IsActive:    b.IsActive,
	}
	if c := b.Location.Coordinates; c != nil {
		v.Location.Latitude = ptr.Of(c.Latitude)
		v.Location.Longitude = ptr.Of(c.Longitude)
	}
	return v
}
