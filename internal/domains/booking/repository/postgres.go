package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/booking"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) booking.Repository {
	return &postgresRepository{pool: pool}
}

const bookingColumns = `id, full_name, phone, email, service, date, time, message, status, created_at, updated_at`

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var b booking.Booking
	err := row.Scan(
		&b.ID,
		&b.FullName,
		&b.Phone,
		&b.Email,
		&b.Service,
		&b.Date,
		&b.Time,
		&b.Message,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]booking.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings ORDER BY created_at DESC`, bookingColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)

	b, err := scanBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking by id: %w", err)
	}

	return b, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *booking.Booking) error {
	query := `
        INSERT INTO bookings (id, full_name, phone, email, service, date, time, message, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `

	_, err := r.pool.Exec(ctx, query,
		b.ID, b.FullName, b.Phone, b.Email, b.Service, b.Date, b.Time,
		b.Message, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, b *booking.Booking) error {
	query := `
        UPDATE bookings
        SET full_name = $2, phone = $3, email = $4, service = $5, date = $6,
            time = $7, message = $8, status = $9, updated_at = $10
        WHERE id = $1
    `

	cmdTag, err := r.pool.Exec(ctx, query,
		b.ID, b.FullName, b.Phone, b.Email, b.Service, b.Date, b.Time,
		b.Message, b.Status, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return booking.ErrBookingNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete booking: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
