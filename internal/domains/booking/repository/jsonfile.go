package repository

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/booking"
	"github.com/phongnguyen123/treow-physio-sub000/internal/infrastructure/jsonstore"
)

type jsonFileRepository struct {
	collection *jsonstore.Collection[booking.Booking]
}

func NewJSONFileRepository(dataDir string) booking.Repository {
	return &jsonFileRepository{
		collection: jsonstore.NewCollection[booking.Booking](dataDir, "bookings"),
	}
}

func (r *jsonFileRepository) GetAll(ctx context.Context) ([]booking.Booking, error) {
	bookings, err := r.collection.Read()
	if err != nil {
		return nil, err
	}

	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	return bookings, nil
}

func (r *jsonFileRepository) GetByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	bookings, err := r.collection.Read()
	if err != nil {
		return nil, err
	}

	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}

	return nil, booking.ErrBookingNotFound
}

func (r *jsonFileRepository) Create(ctx context.Context, b *booking.Booking) error {
	return r.collection.Mutate(func(bookings []booking.Booking) ([]booking.Booking, error) {
		return append(bookings, *b), nil
	})
}

func (r *jsonFileRepository) Update(ctx context.Context, b *booking.Booking) error {
	return r.collection.Mutate(func(bookings []booking.Booking) ([]booking.Booking, error) {
		for i := range bookings {
			if bookings[i].ID == b.ID {
				bookings[i] = *b
				return bookings, nil
			}
		}
		return nil, booking.ErrBookingNotFound
	})
}

func (r *jsonFileRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	found := false
	err := r.collection.Mutate(func(bookings []booking.Booking) ([]booking.Booking, error) {
		out := bookings[:0]
		for i := range bookings {
			if bookings[i].ID == id {
				found = true
				continue
			}
			out = append(out, bookings[i])
		}
		return out, nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
