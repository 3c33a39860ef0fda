package catalog

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/badge"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/partner"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra"
)

const (
	BadgesCollection   = "badges"
	PartnersCollection = "partners"

	queryTimeout = 5 * time.Second
)

// MongoCatalog reads badges and partners from the collections the admin tooling maintains.
type MongoCatalog struct {
	badges   *mongo.Collection
	partners *mongo.Collection
}

func NewMongoCatalog(database *mongo.Database) *MongoCatalog {
	return &MongoCatalog{
		badges:   database.Collection(BadgesCollection),
		partners: database.Collection(PartnersCollection),
	}
}

func (c *MongoCatalog) EnsureIndexes(ctx context.Context) error {
	_, err := c.badges.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "location.qrCode", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"location.qrCode": bson.M{"$type": "string"}}),
	})
	if err != nil {
		return err
	}
	_, err = c.partners.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "isActive", Value: 1}},
	})
	return err
}

func (c *MongoCatalog) FindByQRToken(ctx context.Context, token string) (*badge.Badge, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"location.qrCode": token, "isActive": bson.M{"$ne": false}}
	return c.findBadge(ctx, filter, "failed to find badge by qr token")
}

// FindByID treats a malformed id as an unknown badge.
func (c *MongoCatalog) FindByID(ctx context.Context, id string) (*badge.Badge, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return c.findBadge(ctx, bson.M{"_id": oid}, "failed to find badge by id")
}

func (c *MongoCatalog) ListBadges(ctx context.Context) ([]*badge.Badge, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	return c.findBadges(ctx, bson.M{}, opts)
}

func (c *MongoCatalog) FindBadgesByIDs(ctx context.Context, ids []string) ([]*badge.Badge, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return []*badge.Badge{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return c.findBadges(ctx, bson.M{"_id": bson.M{"$in": oids}}, options.Find())
}

func (c *MongoCatalog) InsertBadge(ctx context.Context, b *badge.Badge) (string, error) {
	doc, err := fromBadge(b)
	if err != nil {
		return "", infra.WrapRepoErr("invalid badge id", err)
	}
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	if _, err := c.badges.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", infra.WrapRepoErr("badge already exists", err, infra.KindDuplicateKey)
		}
		return "", infra.WrapRepoErr("failed to insert badge", err)
	}
	return doc.ID.Hex(), nil
}

func (c *MongoCatalog) ListActivePartners(ctx context.Context) ([]*partner.Partner, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := c.partners.Find(ctx, bson.M{"isActive": bson.M{"$ne": false}},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list partners", err)
	}
	defer func() { _ = cur.Close(ctx) }()

	out := []*partner.Partner{}
	for cur.Next(ctx) {
		var doc partnerDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, infra.WrapRepoErr("failed to decode partner", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate partners", err)
	}
	return out, nil
}

func (c *MongoCatalog) FindPartnerByID(ctx context.Context, id string) (*partner.Partner, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var doc partnerDocument
	err = c.partners.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find partner by id", err)
	}
	return doc.toDomain(), nil
}

func (c *MongoCatalog) InsertPartner(ctx context.Context, p *partner.Partner) (string, error) {
	doc, err := fromPartner(p)
	if err != nil {
		return "", infra.WrapRepoErr("invalid partner id", err)
	}
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	if _, err := c.partners.InsertOne(ctx, doc); err != nil {
		return "", infra.WrapRepoErr("failed to insert partner", err)
	}
	return doc.ID.Hex(), nil
}

// UpdatePartner replaces the stored partner. A missing document yields a KindNotFound error.
func (c *MongoCatalog) UpdatePartner(ctx context.Context, p *partner.Partner) error {
	doc, err := fromPartner(p)
	if err != nil || doc.ID.IsZero() {
		return infra.WrapRepoErr("partner not found", err, infra.KindNotFound)
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	res, err := c.partners.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return infra.WrapRepoErr("failed to update partner", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("partner not found", nil, infra.KindNotFound)
	}
	return nil
}

func (c *MongoCatalog) findBadge(ctx context.Context, filter bson.M, msg string) (*badge.Badge, error) {
	var doc badgeDocument
	err := c.badges.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	return doc.toDomain(), nil
}

func (c *MongoCatalog) findBadges(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*badge.Badge, error) {
	cur, err := c.badges.Find(ctx, filter, opts)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list badges", err)
	}
	defer func() { _ = cur.Close(ctx) }()

	out := []*badge.Badge{}
	for cur.Next(ctx) {
		var doc badgeDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, infra.WrapRepoErr("failed to decode badge", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate badges", err)
	}
	return out, nil
}
