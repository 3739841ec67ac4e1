package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/newsletter"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) newsletter.Repository {
	return &postgresRepository{pool: pool}
}

const subscriberColumns = `id, email, status, subscribed_at`

func scanSubscriber(row pgx.Row) (*newsletter.Subscriber, error) {
	var s newsletter.Subscriber
	err := row.Scan(&s.ID, &s.Email, &s.Status, &s.SubscribedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]newsletter.Subscriber, error) {
	query := fmt.Sprintf(`SELECT %s FROM subscribers ORDER BY subscribed_at DESC`, subscriberColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscribers: %w", err)
	}
	defer rows.Close()

	var subscribers []newsletter.Subscriber
	for rows.Next() {
		s, err := scanSubscriber(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subscribers = append(subscribers, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscribers: %w", err)
	}

	return subscribers, nil
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*newsletter.Subscriber, error) {
	query := fmt.Sprintf(`SELECT %s FROM subscribers WHERE email = $1`, subscriberColumns)

	s, err := scanSubscriber(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, newsletter.ErrSubscriberNotFound
		}
		return nil, fmt.Errorf("failed to get subscriber by email: %w", err)
	}

	return s, nil
}

func (r *postgresRepository) Create(ctx context.Context, s *newsletter.Subscriber) error {
	query := `
        INSERT INTO subscribers (id, email, status, subscribed_at)
        VALUES ($1, $2, $3, $4)
    `

	_, err := r.pool.Exec(ctx, query, s.ID, s.Email, s.Status, s.SubscribedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return newsletter.ErrAlreadySubscribed
		}
		return fmt.Errorf("failed to create subscriber: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, s *newsletter.Subscriber) error {
	query := `UPDATE subscribers SET email = $2, status = $3 WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, s.ID, s.Email, s.Status)
	if err != nil {
		return fmt.Errorf("failed to update subscriber: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return newsletter.ErrSubscriberNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM subscribers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete subscriber: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
