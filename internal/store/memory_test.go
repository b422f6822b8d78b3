package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/config"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func subscription(id, email string, at time.Time) domain.NewsletterSubscription {
	return domain.NewsletterSubscription{
		ID:           id,
		Email:        email,
		Region:       domain.DefaultRegion,
		SubscribedAt: at,
		Status:       domain.SubscriptionActive,
		Preferences:  domain.DefaultPreferences(),
		Source:       domain.SourceNewsletter,
	}
}

func TestMemory_InsertExistsCount(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	err := m.WithSession(ctx, func(ctx context.Context, db Database) error {
		coll := db.Collection(domain.CollectionNewsletter)

		ok, err := coll.Exists(ctx, bson.M{"email": "ada@example.com"})
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, coll.Insert(ctx, subscription("1", "ada@example.com", base)))

		ok, err = coll.Exists(ctx, bson.M{"email": "ada@example.com"})
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = coll.Exists(ctx, bson.M{"email": "ada@example.com", "status": "unsubscribed"})
		require.NoError(t, err)
		assert.False(t, ok)

		n, err := coll.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		other, err := db.Collection(domain.CollectionContacts).Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, other)
		return nil
	})
	require.NoError(t, err)
}

func TestMemory_RecentSortsDescending(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, m.WithSession(ctx, func(ctx context.Context, db Database) error {
		coll := db.Collection(domain.CollectionNewsletter)
		require.NoError(t, coll.Insert(ctx, subscription("old", "a@x.io", base)))
		require.NoError(t, coll.Insert(ctx, subscription("new", "b@x.io", base.Add(2*time.Hour))))
		require.NoError(t, coll.Insert(ctx, subscription("mid", "c@x.io", base.Add(time.Hour))))

		docs, err := coll.Recent(ctx, "subscribed_at", 2)
		require.NoError(t, err)
		subs, err := DecodeAll[domain.NewsletterSubscription](docs)
		require.NoError(t, err)
		require.Len(t, subs, 2)
		assert.Equal(t, "new", subs[0].ID)
		assert.Equal(t, "mid", subs[1].ID)
		assert.True(t, subs[0].SubscribedAt.Equal(base.Add(2*time.Hour)))

		all, err := coll.Recent(ctx, "_id", 0)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "mid", all[0]["id"], "_id order follows insertion")
		return nil
	}))
}

func TestMemory_SessionReleasedOnError(t *testing.T) {
	m := NewMemory()
	boom := errors.New("boom")

	err := m.WithSession(context.Background(), func(ctx context.Context, db Database) error {
		assert.Equal(t, 1, m.OpenSessions())
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, m.OpenSessions())
}

func TestMemory_CanceledContext(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.WithSession(ctx, func(ctx context.Context, db Database) error {
		return db.Collection("x").Insert(ctx, bson.M{"a": 1})
	})
	assert.ErrorIs(t, err, context.Canceled)

	assert.Zero(t, countDocs(t, m, "x"))
}

func countDocs(t *testing.T, m *Memory, name string) int64 {
	t.Helper()
	var n int64
	err := m.WithSession(context.Background(), func(ctx context.Context, db Database) error {
		var err error
		n, err = db.Collection(name).Count(ctx)
		return err
	})
	require.NoError(t, err)
	return n
}

func TestNew_SelectsBackend(t *testing.T) {
	s, err := New(context.Background(), config.StorageConfig{Type: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	_, err = New(context.Background(), config.StorageConfig{Type: "cassandra"})
	assert.Error(t, err)
}

func TestDecodeAll_RejectsMismatchedShape(t *testing.T) {
	_, err := DecodeAll[domain.NewsletterSubscription]([]bson.M{{"preferences": "all"}})
	assert.Error(t, err)
}
