package newsletter

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Subscriber, error)
	// GetByEmail match mọi status, dùng cho duplicate check
	GetByEmail(ctx context.Context, email string) (*Subscriber, error)
	Create(ctx context.Context, s *Subscriber) error
	Update(ctx context.Context, s *Subscriber) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service interface {
	GetAll(ctx context.Context) ([]Subscriber, error)
	// Subscribe reject mọi email đã tồn tại, kể cả UNSUBSCRIBED
	Subscribe(ctx context.Context, email string) (*Subscriber, error)
	// Unsubscribe flip status, không xóa record
	Unsubscribe(ctx context.Context, email string) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Broadcast gửi tuần tự tới mọi ACTIVE subscriber với delay cố định
	// giữa các lần gửi. Failure một recipient không dừng đợt gửi.
	Broadcast(ctx context.Context, req *BroadcastRequest) (*BroadcastResult, error)
}
