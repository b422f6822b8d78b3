package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/domain"
)

// IndexSpec describes one secondary index.
type IndexSpec struct {
	Collection string
	Name       string
	Keys       bson.D
}

// Indexes backs the duplicate-email lookup and the newest-first listings.
// The email index is not unique; duplicates are rejected by lookup in the
// lead service.
var Indexes = []IndexSpec{
	{Collection: domain.CollectionNewsletter, Name: "email_1", Keys: bson.D{{Key: "email", Value: 1}}},
	{Collection: domain.CollectionNewsletter, Name: "subscribed_at_-1", Keys: bson.D{{Key: "subscribed_at", Value: -1}}},
	{Collection: domain.CollectionContacts, Name: "submitted_at_-1", Keys: bson.D{{Key: "submitted_at", Value: -1}}},
	{Collection: domain.CollectionAssessments, Name: "completed_at_-1", Keys: bson.D{{Key: "completed_at", Value: -1}}},
	{Collection: domain.CollectionROI, Name: "calculated_at_-1", Keys: bson.D{{Key: "calculated_at", Value: -1}}},
}

// IndexesFor returns the specs declared for one collection.
func IndexesFor(collection string) []IndexSpec {
	var out []IndexSpec
	for _, spec := range Indexes {
		if spec.Collection == collection {
			out = append(out, spec)
		}
	}
	return out
}

// Indexer is implemented by backends that support secondary indexes.
type Indexer interface {
	EnsureIndexes(ctx context.Context, specs []IndexSpec) ([]string, error)
	IndexNames(ctx context.Context, collection string) ([]string, error)
}

// EnsureIndexes creates every IndexSpec, grouped per collection. Creating an index
// that already exists with the same keys is a no-op on the server.
func (m *Mongo) EnsureIndexes(ctx context.Context, specs []IndexSpec) ([]string, error) {
	grouped := map[string][]mongo.IndexModel{}
	var order []string
	for _, spec := range specs {
		if _, ok := grouped[spec.Collection]; !ok {
			order = append(order, spec.Collection)
		}
		grouped[spec.Collection] = append(grouped[spec.Collection], mongo.IndexModel{
			Keys:    spec.Keys,
			Options: options.Index().SetName(spec.Name),
		})
	}

	var created []string
	for _, coll := range order {
		names, err := m.db.Collection(coll).Indexes().CreateMany(ctx, grouped[coll])
		if err != nil {
			return created, fmt.Errorf("store: create indexes on %s: %w", coll, err)
		}
		for _, n := range names {
			created = append(created, coll+"."+n)
		}
	}
	return created, nil
}

// IndexNames lists the index names present on a collection.
func (m *Mongo) IndexNames(ctx context.Context, collection string) ([]string, error) {
	specs, err := m.db.Collection(collection).Indexes().ListSpecifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: list indexes on %s: %w", collection, err)
	}
	names := make([]string, 0, len(specs))
	for _, s := range specs {
		names = append(names, s.Name)
	}
	return names, nil
}
