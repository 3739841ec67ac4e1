package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository là dumb persister, giống post.Repository.
type Repository interface {
	GetAll(ctx context.Context) ([]Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)
	GetBySlug(ctx context.Context, slug string) (*Author, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, a *Author) error
	Update(ctx context.Context, a *Author) error
	// Delete chỉ xóa author record. Posts tham chiếu author này
	// giữ nguyên authorId (dangling reference, không cascade).
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service interface {
	GetAll(ctx context.Context) ([]Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)
	GetBySlug(ctx context.Context, slug string) (*Author, error)
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateAuthorRequest) (*Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
