package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/post"
	"github.com/phongnguyen123/treow-physio-sub000/pkg/cache"
)

// postgresRepository implements post.Repository
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache // nil khi Redis không được configure
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) post.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	postSlugKeyPrefix = "post:slug:"
	postListKey       = "posts:list"
	cacheTTL          = 15 * time.Minute
)

const postColumns = `id, title, slug, excerpt, content, category, image, read_time, published, author_id, created_at, updated_at`

func scanPost(row pgx.Row) (*post.Post, error) {
	var p post.Post
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Excerpt,
		&p.Content,
		&p.Category,
		&p.Image,
		&p.ReadTime,
		&p.Published,
		&p.AuthorID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]post.Post, error) {
	if r.cache != nil {
		var cached []post.Post
		if found, err := r.cache.Get(ctx, postListKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	query := fmt.Sprintf(`SELECT %s FROM posts ORDER BY created_at DESC`, postColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []post.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	if r.cache != nil {
		if data, err := json.Marshal(posts); err == nil {
			r.cache.Set(ctx, postListKey, json.RawMessage(data), cacheTTL)
		}
	}

	return posts, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts WHERE id = $1`, postColumns)

	p, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return p, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*post.Post, error) {
	// Try cache first
	cacheKey := postSlugKeyPrefix + slug

	if r.cache != nil {
		var cached post.Post
		if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
			return &cached, nil
		}
	}

	query := fmt.Sprintf(`SELECT %s FROM posts WHERE slug = $1`, postColumns)

	p, err := scanPost(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}

	if r.cache != nil {
		if data, err := json.Marshal(p); err == nil {
			r.cache.Set(ctx, cacheKey, json.RawMessage(data), cacheTTL)
		}
	}

	return p, nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *post.Post) error {
	query := `
        INSERT INTO posts (id, title, slug, excerpt, content, category, image, read_time, published, author_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.Category,
		p.Image, p.ReadTime, p.Published, p.AuthorID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.Message, "slug") {
			return post.ErrDuplicateSlug
		}
		return fmt.Errorf("failed to create post: %w", err)
	}

	r.invalidateCache(ctx, p.Slug)
	return nil
}

// Update ghi lại mọi column từ merged record, không chỉ changed fields
func (r *postgresRepository) Update(ctx context.Context, p *post.Post) error {
	// Lấy slug hiện tại trước: đổi title đổi slug, cache key của
	// slug cũ cũng phải invalidate, không thì GetBySlug(slug cũ)
	// serve bản stale suốt TTL
	var oldSlug string
	if err := r.pool.QueryRow(ctx, `SELECT slug FROM posts WHERE id = $1`, p.ID).Scan(&oldSlug); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return post.ErrPostNotFound
		}
		return fmt.Errorf("failed to look up post: %w", err)
	}

	query := `
        UPDATE posts
        SET title = $2, slug = $3, excerpt = $4, content = $5, category = $6,
            image = $7, read_time = $8, published = $9, author_id = $10, updated_at = $11
        WHERE id = $1
    `

	cmdTag, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.Category,
		p.Image, p.ReadTime, p.Published, p.AuthorID, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.Message, "slug") {
			return post.ErrDuplicateSlug
		}
		return fmt.Errorf("failed to update post: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}

	r.invalidateCache(ctx, oldSlug, p.Slug)
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	// Lấy slug trước để invalidate cache
	var slug string
	err := r.pool.QueryRow(ctx, `SELECT slug FROM posts WHERE id = $1`, id).Scan(&slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up post: %w", err)
	}

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	r.invalidateCache(ctx, slug)
	return cmdTag.RowsAffected() > 0, nil
}

func (r *postgresRepository) invalidateCache(ctx context.Context, slugs ...string) {
	if r.cache == nil {
		return
	}
	keys := make([]string, 0, len(slugs)+1)
	for _, slug := range slugs {
		keys = append(keys, postSlugKeyPrefix+slug)
	}
	keys = append(keys, postListKey)
	r.cache.Delete(ctx, keys...)
}
