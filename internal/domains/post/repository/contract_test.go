package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/post"
)

// runRepositoryContract chạy cùng một bộ assertions trên bất kỳ
// backend nào của record store. Hai implementation phải không phân
// biệt được qua interface này.
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) post.Repository) {
	ctx := context.Background()

	t.Run("create rồi đọc lại qua id và slug", func(t *testing.T) {
		repo := newRepo(t)

		p := newPost("Hợp đồng", "hop-dong", time.Now())
		require.NoError(t, repo.Create(ctx, p))

		byID, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "hop-dong", byID.Slug)

		bySlug, err := repo.GetBySlug(ctx, "hop-dong")
		require.NoError(t, err)
		assert.Equal(t, p.ID, bySlug.ID)

		exists, err := repo.ExistsBySlug(ctx, "hop-dong")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("not found", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, post.ErrPostNotFound)

		_, err = repo.GetBySlug(ctx, "khong-ton-tai")
		assert.ErrorIs(t, err, post.ErrPostNotFound)
	})

	t.Run("slug trùng bị reject", func(t *testing.T) {
		repo := newRepo(t)

		require.NoError(t, repo.Create(ctx, newPost("A", "trung", time.Now())))
		err := repo.Create(ctx, newPost("B", "trung", time.Now()))
		assert.ErrorIs(t, err, post.ErrDuplicateSlug)
	})

	t.Run("getAll newest-first", func(t *testing.T) {
		repo := newRepo(t)

		base := time.Now()
		require.NoError(t, repo.Create(ctx, newPost("Cũ", "cu", base.Add(-time.Hour))))
		require.NoError(t, repo.Create(ctx, newPost("Mới", "moi", base)))

		posts, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "moi", posts[0].Slug)
		assert.Equal(t, "cu", posts[1].Slug)
	})

	t.Run("update ghi lại toàn bộ record kể cả slug", func(t *testing.T) {
		repo := newRepo(t)

		p := newPost("Trước", "truoc", time.Now())
		require.NoError(t, repo.Create(ctx, p))

		p.Title = "Sau"
		p.Slug = "sau"
		p.Excerpt = "excerpt mới"
		require.NoError(t, repo.Update(ctx, p))

		got, err := repo.GetBySlug(ctx, "sau")
		require.NoError(t, err)
		assert.Equal(t, "Sau", got.Title)
		assert.Equal(t, "excerpt mới", got.Excerpt)

		// Slug cũ không còn resolve được
		_, err = repo.GetBySlug(ctx, "truoc")
		assert.ErrorIs(t, err, post.ErrPostNotFound)

		// Update record không tồn tại
		ghost := newPost("Ma", "ma", time.Now())
		assert.ErrorIs(t, repo.Update(ctx, ghost), post.ErrPostNotFound)
	})

	t.Run("delete trả found flag", func(t *testing.T) {
		repo := newRepo(t)

		p := newPost("Xóa", "xoa", time.Now())
		require.NoError(t, repo.Create(ctx, p))

		found, err := repo.Delete(ctx, p.ID)
		require.NoError(t, err)
		assert.True(t, found)

		found, err = repo.Delete(ctx, p.ID)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestRepositoryContractJSONFile(t *testing.T) {
	runRepositoryContract(t, func(t *testing.T) post.Repository {
		return NewJSONFileRepository(t.TempDir())
	})
}

// Chạy khi có database thật, vd:
//
//	TEST_DATABASE_URL=postgres://... go test ./internal/domains/post/...
func TestRepositoryContractPostgres(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL chưa set, bỏ qua postgres contract")
	}

	pool, err := pgxpool.New(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	runRepositoryContract(t, func(t *testing.T) post.Repository {
		_, err := pool.Exec(context.Background(), `TRUNCATE posts`)
		require.NoError(t, err)
		return NewPostgresRepository(pool, nil)
	})
}
