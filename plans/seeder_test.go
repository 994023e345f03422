package plans

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	docs   map[string]interface{}
	writes []string
	failOn string
}

func (m *memoryStore) SetDocument(_ context.Context, collection, id string, doc interface{}) error {
	if id == m.failOn {
		return errors.New("permission denied")
	}
	if m.docs == nil {
		m.docs = map[string]interface{}{}
	}
	m.docs[collection+"/"+id] = doc
	m.writes = append(m.writes, id)
	return nil
}

func TestDefaults(t *testing.T) {
	plans := Defaults()
	require.Len(t, plans, 3)

	var ids []string
	for _, p := range plans {
		ids = append(ids, p.ID)
		assert.True(t, p.IsActive)
	}
	assert.Equal(t, []string{"free", "pro", "enterprise"}, ids)

	assert.Equal(t, 0, plans[0].PriceMonthly)
	assert.Equal(t, Unlimited, plans[2].Limits.MaxUsers)
	assert.True(t, plans[2].Features.SSO)
	assert.False(t, plans[0].Features.CustomTemplates)
}

func TestSeedWritesEveryPlan(t *testing.T) {
	store := &memoryStore{}
	require.NoError(t, Seed(context.Background(), store, Defaults()))

	assert.Equal(t, []string{"free", "pro", "enterprise"}, store.writes)
	assert.Contains(t, store.docs, "subscription_plans/pro")
}

func TestSeedIsIdempotent(t *testing.T) {
	store := &memoryStore{}
	require.NoError(t, Seed(context.Background(), store, Defaults()))
	require.NoError(t, Seed(context.Background(), store, Defaults()))
	assert.Len(t, store.docs, 3)
}

func TestSeedStopsAtFirstFailure(t *testing.T) {
	store := &memoryStore{failOn: "pro"}
	err := Seed(context.Background(), store, Defaults())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pro")

	assert.Equal(t, []string{"free"}, store.writes)
	assert.NotContains(t, store.docs, "subscription_plans/enterprise")
}
