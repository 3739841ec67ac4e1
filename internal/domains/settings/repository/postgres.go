package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/settings"
)

// postgresRepository lưu settings thành một row duy nhất, hai JSONB
// columns cho seo và smtp.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) settings.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Get(ctx context.Context) (*settings.Settings, error) {
	query := `SELECT id, seo, smtp, updated_at FROM settings WHERE id = $1`

	var s settings.Settings
	err := r.pool.QueryRow(ctx, query, settings.DefaultID).Scan(&s.ID, &s.Seo, &s.Smtp, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, settings.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return &s, nil
}

func (r *postgresRepository) Upsert(ctx context.Context, s *settings.Settings) error {
	query := `
        INSERT INTO settings (id, seo, smtp, updated_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO UPDATE
        SET seo = EXCLUDED.seo, smtp = EXCLUDED.smtp, updated_at = EXCLUDED.updated_at
    `

	_, err := r.pool.Exec(ctx, query, s.ID, s.Seo, s.Smtp, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}

	return nil
}
