package store

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Store. Documents are round-tripped through BSON on
// insert so reads observe the same shapes a MongoDB cursor would return.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
	sessions    int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]bson.M)}
}

func (m *Memory) WithSession(ctx context.Context, fn func(ctx context.Context, db Database) error) error {
	m.mu.Lock()
	m.sessions++
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.sessions--
		m.mu.Unlock()
	}()
	return fn(ctx, memoryDatabase{m: m})
}

// OpenSessions reports how many WithSession calls are still running.
func (m *Memory) OpenSessions() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions
}

func (m *Memory) Ping(context.Context) error  { return nil }
func (m *Memory) Close(context.Context) error { return nil }

type memoryDatabase struct {
	m *Memory
}

func (d memoryDatabase) Collection(name string) Collection {
	return memoryCollection{m: d.m, name: name}
}

type memoryCollection struct {
	m    *Memory
	name string
}

func (c memoryCollection) Exists(ctx context.Context, filter bson.M) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	c.m.mu.RLock()
	defer c.m.mu.RUnlock()
	for _, doc := range c.m.collections[c.name] {
		if matches(doc, filter) {
			return true, nil
		}
	}
	return false, nil
}

func (c memoryCollection) Insert(ctx context.Context, doc any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("store: encode %s document: %w", c.name, err)
	}
	var stored bson.M
	if err := bson.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("store: decode %s document: %w", c.name, err)
	}
	if _, ok := stored["_id"]; !ok {
		stored["_id"] = primitive.NewObjectID()
	}

	c.m.mu.Lock()
	c.m.collections[c.name] = append(c.m.collections[c.name], stored)
	c.m.mu.Unlock()
	return nil
}

func (c memoryCollection) Recent(ctx context.Context, sortField string, limit int64) ([]bson.M, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.m.mu.RLock()
	docs := make([]bson.M, len(c.m.collections[c.name]))
	copy(docs, c.m.collections[c.name])
	c.m.mu.RUnlock()

	// Reverse first so documents with equal keys come out newest-inserted first.
	for i, j := 0, len(docs)-1; i < j; i, j = i+1, j-1 {
		docs[i], docs[j] = docs[j], docs[i]
	}
	sort.SliceStable(docs, func(i, j int) bool {
		return greater(docs[i][sortField], docs[j][sortField])
	})
	if limit > 0 && int64(len(docs)) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

func (c memoryCollection) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	c.m.mu.RLock()
	defer c.m.mu.RUnlock()
	return int64(len(c.m.collections[c.name])), nil
}

// matches implements equality-only filters, which is all the service issues.
func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// greater orders values for a descending sort. Missing values sort last.
func greater(a, b any) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	switch x := a.(type) {
	case primitive.DateTime:
		if y, ok := b.(primitive.DateTime); ok {
			return x > y
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.After(y)
		}
	case primitive.ObjectID:
		if y, ok := b.(primitive.ObjectID); ok {
			return bytes.Compare(x[:], y[:]) > 0
		}
	case string:
		if y, ok := b.(string); ok {
			return x > y
		}
	}
	fa, aok := asFloat(a)
	fb, bok := asFloat(b)
	return aok && bok && fa > fb
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
