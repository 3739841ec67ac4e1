package repository

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/post"
)

// fakeCache giữ values trong memory, ghi lại các keys bị Delete
// để assert invalidation behavior.
type fakeCache struct {
	mu      sync.Mutex
	store   map[string][]byte
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string][]byte{}}
}

func (c *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = data
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.store, key)
		c.deleted = append(c.deleted, key)
	}
	return nil
}

func (c *fakeCache) DeletePattern(ctx context.Context, pattern string) error { return nil }

func (c *fakeCache) Ping(ctx context.Context) error { return nil }

// Pool để nil: cache hit không được chạm database, chạm là panic.
func TestPostgresGetBySlugServedFromCache(t *testing.T) {
	fc := newFakeCache()
	ctx := context.Background()

	cached := newPost("Từ cache", "tu-cache", time.Now())
	require.NoError(t, fc.Set(ctx, postSlugKeyPrefix+"tu-cache", cached, cacheTTL))

	repo := &postgresRepository{pool: nil, cache: fc}

	got, err := repo.GetBySlug(ctx, "tu-cache")
	require.NoError(t, err)
	assert.Equal(t, cached.ID, got.ID)
	assert.Equal(t, "Từ cache", got.Title)
}

func TestPostgresGetAllServedFromCache(t *testing.T) {
	fc := newFakeCache()
	ctx := context.Background()

	list := []post.Post{
		*newPost("Một", "mot", time.Now()),
		*newPost("Hai", "hai", time.Now().Add(-time.Hour)),
	}
	require.NoError(t, fc.Set(ctx, postListKey, list, cacheTTL))

	repo := &postgresRepository{pool: nil, cache: fc}

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "mot", got[0].Slug)
}

// Đổi title đổi slug: cả key slug cũ lẫn slug mới phải bị xóa,
// không thì slug cũ vẫn serve bản stale từ cache suốt TTL.
func TestInvalidateCacheDropsOldAndNewSlug(t *testing.T) {
	fc := newFakeCache()
	ctx := context.Background()

	stale := newPost("Tiêu đề cũ", "tieu-de-cu", time.Now())
	require.NoError(t, fc.Set(ctx, postSlugKeyPrefix+"tieu-de-cu", stale, cacheTTL))
	require.NoError(t, fc.Set(ctx, postSlugKeyPrefix+"tieu-de-moi", stale, cacheTTL))
	require.NoError(t, fc.Set(ctx, postListKey, []post.Post{*stale}, cacheTTL))

	repo := &postgresRepository{pool: nil, cache: fc}
	repo.invalidateCache(ctx, "tieu-de-cu", "tieu-de-moi")

	assert.Contains(t, fc.deleted, postSlugKeyPrefix+"tieu-de-cu")
	assert.Contains(t, fc.deleted, postSlugKeyPrefix+"tieu-de-moi")
	assert.Contains(t, fc.deleted, postListKey)
	assert.Empty(t, fc.store, "mọi key liên quan phải bị xóa")
}
