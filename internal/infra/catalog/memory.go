package catalog

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/badge"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/partner"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra"
)

// MemoryCatalog is an in-process catalog used by local runs and end-to-end tests.
type MemoryCatalog struct {
	mu       sync.RWMutex
	badges   map[string]badge.Badge
	partners map[string]partner.Partner
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		badges:   make(map[string]badge.Badge),
		partners: make(map[string]partner.Partner),
	}
}

func (c *MemoryCatalog) InsertBadge(_ context.Context, b *badge.Badge) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := *b
	if stored.ID == "" {
		stored.ID = primitive.NewObjectID().Hex()
	}
	c.badges[stored.ID] = stored
	return stored.ID, nil
}

func (c *MemoryCatalog) InsertPartner(_ context.Context, p *partner.Partner) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := *p
	if stored.ID == "" {
		stored.ID = primitive.NewObjectID().Hex()
	}
	c.partners[stored.ID] = stored
	return stored.ID, nil
}

func (c *MemoryCatalog) FindByQRToken(_ context.Context, token string) (*badge.Badge, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, b := range c.badges {
		if b.Location.QRCode == token && b.IsActive {
			out := b
			return &out, nil
		}
	}
	return nil, nil
}

func (c *MemoryCatalog) FindByID(_ context.Context, id string) (*badge.Badge, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	b, ok := c.badges[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (c *MemoryCatalog) ListBadges(_ context.Context) ([]*badge.Badge, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*badge.Badge, 0, len(c.badges))
	for _, b := range c.badges {
		b := b
		out = append(out, &b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (c *MemoryCatalog) FindBadgesByIDs(_ context.Context, ids []string) ([]*badge.Badge, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*badge.Badge, 0, len(ids))
	for _, id := range ids {
		if b, ok := c.badges[id]; ok {
			out = append(out, &b)
		}
	}
	return out, nil
}

func (c *MemoryCatalog) ListActivePartners(_ context.Context) ([]*partner.Partner, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*partner.Partner, 0, len(c.partners))
	for _, p := range c.partners {
		if !p.IsActive {
			continue
		}
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (c *MemoryCatalog) FindPartnerByID(_ context.Context, id string) (*partner.Partner, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.partners[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (c *MemoryCatalog) UpdatePartner(_ context.Context, p *partner.Partner) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.partners[p.ID]; !ok {
		return infra.WrapRepoErr("partner not found", nil, infra.KindNotFound)
	}
	c.partners[p.ID] = *p
	return nil
}
