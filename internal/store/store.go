// Package store is the document store the lead service appends records to.
//
// Two backends exist: MongoDB for deployments and an in-memory store for local
// runs and tests. Both are reached through Store.WithSession so every request
// holds exactly one handle and releases it on all exit paths.
package store

import (
	"context"
	"fmt"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/config"
	"go.mongodb.org/mongo-driver/bson"
)

// Collection is one append-only collection of documents.
type Collection interface {
	// Exists reports whether any document matches filter (find_one).
	Exists(ctx context.Context, filter bson.M) (bool, error)
	// Insert appends doc (insert_one).
	Insert(ctx context.Context, doc any) error
	// Recent returns documents sorted by sortField descending. limit <= 0
	// returns all of them.
	Recent(ctx context.Context, sortField string, limit int64) ([]bson.M, error)
	// Count returns the number of documents (count_documents({})).
	Count(ctx context.Context) (int64, error)
}

// Database hands out collections by name.
type Database interface {
	Collection(name string) Collection
}

// Store owns the connection to the backend.
type Store interface {
	// WithSession runs fn with a scoped database handle. The handle is
	// released when fn returns, whether or not it failed.
	WithSession(ctx context.Context, fn func(ctx context.Context, db Database) error) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// New creates the store selected by cfg.Type.
func New(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Type {
	case "memory":
		return NewMemory(), nil
	case "mongo", "":
		m, err := Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("store: unknown storage type %q", cfg.Type)
	}
}

// DecodeAll converts raw documents into typed records.
func DecodeAll[T any](docs []bson.M) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		data, err := bson.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("store: re-encode document: %w", err)
		}
		var v T
		if err := bson.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("store: decode document: %w", err)
		}
		out = append(out, v)
	}
	return out, nil
}
