package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/post"
	"github.com/phongnguyen123/treow-physio-sub000/internal/shared/utils"
	"github.com/phongnguyen123/treow-physio-sub000/pkg/logger"
)

// postService implements post.Service
type postService struct {
	repo post.Repository
}

func NewPostService(repo post.Repository) post.Service {
	return &postService{repo: repo}
}

// GetAll trả về posts newest-first; store error log rồi degrade về
// empty list, caller (UI) không bao giờ thấy stack trace.
func (s *postService) GetAll(ctx context.Context, includeDrafts bool) ([]post.Post, error) {
	posts, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to load posts", err)
		return []post.Post{}, nil
	}

	if includeDrafts {
		return posts, nil
	}

	published := make([]post.Post, 0, len(posts))
	for _, p := range posts {
		if p.Published {
			published = append(published, p)
		}
	}
	return published, nil
}

func (s *postService) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	if id == uuid.Nil {
		return nil, post.ErrPostNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *postService) GetBySlug(ctx context.Context, slug string) (*post.Post, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, post.ErrPostNotFound
	}
	return s.repo.GetBySlug(ctx, slug)
}

func (s *postService) Create(ctx context.Context, req *post.CreatePostRequest) (*post.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	slug := utils.GenerateSlug(title)
	if slug == "" {
		// Input không có nội dung alphanumeric sau transliteration
		return nil, post.ErrInvalidTitle
	}

	// Post slug collision → reject, không auto-suffix
	exists, err := s.repo.ExistsBySlug(ctx, slug)
	if err != nil {
		logger.Error("Failed to check slug uniqueness", err)
		return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	if exists {
		return nil, post.ErrDuplicateSlug
	}

	now := time.Now()
	newPost := &post.Post{
		ID:        uuid.New(),
		Title:     title,
		Slug:      slug,
		Excerpt:   strings.TrimSpace(req.Excerpt),
		Content:   req.Content,
		Category:  strings.TrimSpace(req.Category),
		Image:     req.Image,
		ReadTime:  req.ReadTime,
		Published: req.Published,
		AuthorID:  req.AuthorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, newPost); err != nil {
		return nil, err
	}

	return newPost, nil
}

// Update là read-modify-write: fetch current, shallow-merge partial,
// stamp updatedAt, ghi lại toàn bộ merged record. Hai updates đồng thời
// trên cùng record là last-write-wins (known limitation).
func (s *postService) Update(ctx context.Context, id uuid.UUID, req *post.UpdatePostRequest) (*post.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *current

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title != current.Title {
			newSlug := utils.GenerateSlug(title)
			if newSlug == "" {
				return nil, post.ErrInvalidTitle
			}
			if newSlug != current.Slug {
				exists, err := s.repo.ExistsBySlug(ctx, newSlug)
				if err != nil {
					return nil, err
				}
				if exists {
					return nil, post.ErrDuplicateSlug
				}
				merged.Slug = newSlug
			}
			merged.Title = title
		}
	}

	if req.Excerpt != nil {
		merged.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		merged.Content = *req.Content
	}
	if req.Category != nil {
		merged.Category = *req.Category
	}
	if req.Image != nil {
		merged.Image = *req.Image
	}
	if req.ReadTime != nil {
		merged.ReadTime = *req.ReadTime
	}
	if req.Published != nil {
		merged.Published = *req.Published
	}
	if req.AuthorID != nil {
		merged.AuthorID = req.AuthorID
	}

	merged.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, &merged); err != nil {
		return nil, err
	}

	return &merged, nil
}

func (s *postService) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		logger.Error("Failed to delete post", err)
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if !found {
		return post.ErrPostNotFound
	}
	return nil
}
