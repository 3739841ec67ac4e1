package post

import (
	"context"

	"github.com/google/uuid"
)

// Repository là dumb persister: ID, slug và timestamps do service layer
// assign, store chỉ đọc/ghi records. Hai implementations (PostgreSQL và
// JSON-file) phải trả về shapes giống hệt nhau.
type Repository interface {
	// GetAll trả về posts sorted newest-first theo createdAt
	GetAll(ctx context.Context) ([]Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, p *Post) error
	// Update ghi lại toàn bộ record đã merge (read-modify-write ở service)
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service là action layer: validation, slug generation, timestamps,
// và error degradation (store errors log rồi degrade, không leak).
type Service interface {
	GetAll(ctx context.Context, includeDrafts bool) ([]Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	Create(ctx context.Context, req *CreatePostRequest) (*Post, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdatePostRequest) (*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
