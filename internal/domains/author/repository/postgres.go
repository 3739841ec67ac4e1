package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/author"
)

// postgresRepository implements author.Repository.
// SocialLinks lưu dưới dạng JSONB column (có thể NULL).
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

const authorColumns = `id, name, slug, title, avatar, bio, social_links, created_at, updated_at`

func scanAuthor(row pgx.Row) (*author.Author, error) {
	var a author.Author
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Slug,
		&a.Title,
		&a.Avatar,
		&a.Bio,
		&a.SocialLinks,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM authors ORDER BY created_at DESC`, authorColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM authors WHERE id = $1`, authorColumns)

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return a, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*author.Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM authors WHERE slug = $1`, authorColumns)

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by slug: %w", err)
	}

	return a, nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE slug = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) error {
	query := `
        INSERT INTO authors (id, name, slug, title, avatar, bio, social_links, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Name, a.Slug, a.Title, a.Avatar, a.Bio, a.SocialLinks, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create author: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) error {
	query := `
        UPDATE authors
        SET name = $2, slug = $3, title = $4, avatar = $5, bio = $6,
            social_links = $7, updated_at = $8
        WHERE id = $1
    `

	cmdTag, err := r.pool.Exec(ctx, query,
		a.ID, a.Name, a.Slug, a.Title, a.Avatar, a.Bio, a.SocialLinks, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	return nil
}

// Delete không cascade: posts giữ nguyên author_id cũ.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete author: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
