package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/domain"
)

func TestIndexes_CoverLeadCollections(t *testing.T) {
	for _, coll := range []string{
		domain.CollectionNewsletter,
		domain.CollectionContacts,
		domain.CollectionAssessments,
		domain.CollectionROI,
	} {
		assert.NotEmpty(t, IndexesFor(coll), coll)
	}
}

func TestIndexes_UniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, spec := range Indexes {
		key := spec.Collection + "." + spec.Name
		require.False(t, seen[key], "duplicate index %s", key)
		seen[key] = true
		assert.NotEmpty(t, spec.Keys)
	}
}

func TestMemory_IsNotAnIndexer(t *testing.T) {
	var s Store = NewMemory()
	_, ok := s.(Indexer)
	assert.False(t, ok)
}

func TestMongo_IsAnIndexer(t *testing.T) {
	var _ Indexer = (*Mongo)(nil)
}
