package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/author"
	"github.com/phongnguyen123/treow-physio-sub000/internal/shared/utils"
	"github.com/phongnguyen123/treow-physio-sub000/pkg/logger"
)

type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) GetAll(ctx context.Context) ([]author.Author, error) {
	authors, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to load authors", err)
		return []author.Author{}, nil
	}
	return authors, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	if id == uuid.Nil {
		return nil, author.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) GetBySlug(ctx context.Context, slug string) (*author.Author, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, author.ErrAuthorNotFound
	}
	return s.repo.GetBySlug(ctx, slug)
}

// uniqueSlug: khác post, author slug collision không reject mà
// auto-suffix bằng millisecond timestamp.
func (s *authorService) uniqueSlug(ctx context.Context, name string) (string, error) {
	slug := utils.GenerateSlug(name)
	if slug == "" {
		return "", author.ErrInvalidName
	}

	exists, err := s.repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return "", fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	if exists {
		slug = fmt.Sprintf("%s-%d", slug, time.Now().UnixMilli())
	}

	return slug, nil
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	slug, err := s.uniqueSlug(ctx, name)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	a := &author.Author{
		ID:          uuid.New(),
		Name:        name,
		Slug:        slug,
		Title:       strings.TrimSpace(req.Title),
		Avatar:      req.Avatar,
		Bio:         req.Bio,
		SocialLinks: req.SocialLinks,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *author.UpdateAuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *current

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != current.Name {
			slug, err := s.uniqueSlug(ctx, name)
			if err != nil {
				return nil, err
			}
			merged.Name = name
			merged.Slug = slug
		}
	}

	if req.Title != nil {
		merged.Title = *req.Title
	}
	if req.Avatar != nil {
		merged.Avatar = *req.Avatar
	}
	if req.Bio != nil {
		merged.Bio = *req.Bio
	}
	if req.SocialLinks != nil {
		merged.SocialLinks = req.SocialLinks
	}

	merged.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, &merged); err != nil {
		return nil, err
	}

	return &merged, nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		logger.Error("Failed to delete author", err)
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if !found {
		return author.ErrAuthorNotFound
	}
	return nil
}
