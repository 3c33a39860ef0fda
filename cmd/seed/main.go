// Command seed loads the starter Jeju badge and partner catalog into an empty MongoDB.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/badge"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/partner"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/catalog"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/config"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	var cfg config.MongoConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logger.Error("failed to load mongo config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		logger.Error("failed to connect to mongo", "error", err)
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	c := catalog.NewMongoCatalog(client.Database(cfg.Database))
	if err := c.EnsureIndexes(ctx); err != nil {
		logger.Error("failed to create indexes", "error", err)
		os.Exit(1)
	}

	if err := seed(ctx, logger, c); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

type store interface {
	ListBadges(ctx context.Context) ([]*badge.Badge, error)
	InsertBadge(ctx context.Context, b *badge.Badge) (string, error)
	ListActivePartners(ctx context.Context) ([]*partner.Partner, error)
	InsertPartner(ctx context.Context, p *partner.Partner) (string, error)
}

// seed skips a collection that already holds documents.
func seed(ctx context.Context, logger *slog.Logger, s store) error {
	existing, err := s.ListBadges(ctx)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		for _, b := range starterBadges() {
			id, err := s.InsertBadge(ctx, b)
			if err != nil {
				return err
			}
			logger.Info("badge inserted", "id", id, "name", b.Name, "qr_code", b.Location.QRCode)
		}
	} else {
		logger.Info("badges already present, skipping", "count", len(existing))
	}

	partners, err := s.ListActivePartners(ctx)
	if err != nil {
		return err
	}
	if len(partners) > 0 {
		logger.Info("partners already present, skipping", "count", len(partners))
		return nil
	}
	for _, p := range starterPartners() {
		id, err := s.InsertPartner(ctx, p)
		if err != nil {
			return err
		}
		logger.Info("partner inserted", "id", id, "name", p.Name)
	}
	return nil
}

func site(name, qr string, lng, lat float64) badge.Location {
	return badge.Location{
		Name:        name,
		QRCode:      qr,
		Coordinates: &badge.Coordinates{Longitude: lng, Latitude: lat},
	}
}

func starterBadges() []*badge.Badge {
	return []*badge.Badge{
		{
			Name:        "한라산 정상 탐험가",
			Description: "제주도의 최고봉 한라산 정상을 정복한 용감한 탐험가",
			Location:    site("한라산 백록담", "HALLASAN_SUMMIT_2024", 126.5312, 33.3617),
			Rarity:      badge.RarityGold,
			IsActive:    true,
		},
		{
			Name:        "성산일출봉 일출 감상가",
			Description: "유네스코 세계자연유산 성산일출봉에서 일출을 감상한 여행자",
			Location:    site("성산일출봉", "SEONGSAN_SUNRISE_2024", 126.9423, 33.4584),
			Rarity:      badge.RaritySilver,
			IsActive:    true,
		},
		{
			Name:        "우도 자전거 일주자",
			Description: "섬 속의 작은 섬 우도를 자전거로 일주한 모험가",
			Location:    site("우도 등대", "UDO_LIGHTHOUSE_2024", 126.9502, 33.5064),
			Rarity:      badge.RaritySilver,
			IsActive:    true,
		},
		{
			Name:        "협재해수욕장 해양 탐험가",
			Description: "에메랄드빛 협재해수욕장을 만끽한 여행자",
			Location:    site("협재해수욕장", "HYEOPJAE_BEACH_2024", 126.2394, 33.3939),
			Rarity:      badge.RarityBronze,
			IsActive:    true,
		},
		{
			Name:        "올레길 7코스 완주자",
			Description: "제주 올레길 7코스를 완주한 올레꾼",
			Location:    site("올레길 7코스 시작점", "OLLE_TRAIL_7_2024", 126.2654, 33.2450),
			Rarity:      badge.RarityBronze,
			IsActive:    true,
		},
	}
}

func starterPartners() []*partner.Partner {
	at := func(name, address string, lng, lat float64) partner.Location {
		return partner.Location{Name: name, Address: address, Coordinates: &badge.Coordinates{Longitude: lng, Latitude: lat}}
	}
	return []*partner.Partner{
		{
			Name: "제주도민회관 맛집거리", Category: "한식",
			Location:     at("제주시 중심가", "제주특별자치도 제주시 문연로 69", 126.5219, 33.5101),
			DiscountRate: 10, MinimumBadges: 1, Contact: "064-123-4567",
			Description: "제주 향토 음식을 맛볼 수 있는 전통 맛집", IsActive: true,
		},
		{
			Name: "성산포 횟집", Category: "해산물",
			Location:     at("성산일출봉 근처", "제주특별자치도 서귀포시 성산읍 성산리", 126.9403, 33.4584),
			DiscountRate: 15, MinimumBadges: 2, Contact: "064-784-5678",
			Description: "성산일출봉 방문 후 신선한 회를 맛볼 수 있는 맛집", IsActive: true,
		},
		{
			Name: "카페 더 클리프", Category: "카페",
			Location:     at("협재해수욕장 근처", "제주특별자치도 제주시 한림읍 협재리", 126.2394, 33.3939),
			DiscountRate: 5, MinimumBadges: 1, Contact: "064-796-1234",
			Description: "협재해수욕장 전망의 오션뷰 카페", IsActive: true,
		},
		{
			Name: "중문리조트 스파", Category: "휴양시설",
			Location:     at("중문관광단지", "제주특별자치도 서귀포시 중문동", 126.4123, 33.2394),
			DiscountRate: 20, MinimumBadges: 3, Contact: "064-738-9012",
			Description: "제주 여행의 피로를 풀 수 있는 프리미엄 스파", IsActive: true,
		},
	}
}
