package booking

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	Create(ctx context.Context, b *Booking) error
	Update(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service interface {
	GetAll(ctx context.Context) ([]Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	// Create validate, persist, rồi gửi notification emails (admin +
	// customer) concurrent và đợi xong. Email failure chỉ log,
	// booking vẫn thành công.
	Create(ctx context.Context, req *CreateBookingRequest) (*Booking, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateBookingRequest) (*Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
