package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo is the MongoDB-backed Store.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB and verifies the primary is reachable.
func Connect(ctx context.Context, cfg config.StorageConfig) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURL).
		SetServerSelectionTimeout(cfg.Timeout()).
		SetConnectTimeout(cfg.Timeout())

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("store: connect mongo: %w", err)
	}
	m := &Mongo{client: client, db: client.Database(cfg.Database)}
	if err := m.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return m, nil
}

func (m *Mongo) WithSession(ctx context.Context, fn func(ctx context.Context, db Database) error) error {
	return m.client.UseSession(ctx, func(sc mongo.SessionContext) error {
		return fn(sc, mongoDatabase{db: m.db})
	})
}

func (m *Mongo) Ping(ctx context.Context) error {
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("store: ping mongo: %w", err)
	}
	return nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

type mongoDatabase struct {
	db *mongo.Database
}

func (d mongoDatabase) Collection(name string) Collection {
	return mongoCollection{coll: d.db.Collection(name)}
}

type mongoCollection struct {
	coll *mongo.Collection
}

func (c mongoCollection) Exists(ctx context.Context, filter bson.M) (bool, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := c.coll.FindOne(ctx, filter, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: find_one %s: %w", c.coll.Name(), err)
	}
	return true, nil
}

func (c mongoCollection) Insert(ctx context.Context, doc any) error {
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("store: insert_one %s: %w", c.coll.Name(), err)
	}
	return nil
}

func (c mongoCollection) Recent(ctx context.Context, sortField string, limit int64) ([]bson.M, error) {
	opts := options.Find().SetSort(bson.D{{Key: sortField, Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := c.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("store: find %s: %w", c.coll.Name(), err)
	}
	defer cur.Close(ctx)

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("store: read %s: %w", c.coll.Name(), err)
	}
	return docs, nil
}

func (c mongoCollection) Count(ctx context.Context) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("store: count %s: %w", c.coll.Name(), err)
	}
	return n, nil
}
