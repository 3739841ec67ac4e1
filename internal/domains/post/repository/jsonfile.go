package repository

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/post"
	"github.com/phongnguyen123/treow-physio-sub000/internal/infrastructure/jsonstore"
)

// jsonFileRepository implements post.Repository trên data/posts.json.
// Local-development fallback khi DATABASE_URL không được set.
type jsonFileRepository struct {
	collection *jsonstore.Collection[post.Post]
}

func NewJSONFileRepository(dataDir string) post.Repository {
	return &jsonFileRepository{
		collection: jsonstore.NewCollection[post.Post](dataDir, "posts"),
	}
}

func (r *jsonFileRepository) GetAll(ctx context.Context) ([]post.Post, error) {
	posts, err := r.collection.Read()
	if err != nil {
		return nil, err
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	return posts, nil
}

func (r *jsonFileRepository) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	posts, err := r.collection.Read()
	if err != nil {
		return nil, err
	}

	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}

	return nil, post.ErrPostNotFound
}

func (r *jsonFileRepository) GetBySlug(ctx context.Context, slug string) (*post.Post, error) {
	posts, err := r.collection.Read()
	if err != nil {
		return nil, err
	}

	for i := range posts {
		if posts[i].Slug == slug {
			return &posts[i], nil
		}
	}

	return nil, post.ErrPostNotFound
}

func (r *jsonFileRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	posts, err := r.collection.Read()
	if err != nil {
		return false, err
	}

	for i := range posts {
		if posts[i].Slug == slug {
			return true, nil
		}
	}

	return false, nil
}

func (r *jsonFileRepository) Create(ctx context.Context, p *post.Post) error {
	return r.collection.Mutate(func(posts []post.Post) ([]post.Post, error) {
		for i := range posts {
			if posts[i].Slug == p.Slug {
				return nil, post.ErrDuplicateSlug
			}
		}
		return append(posts, *p), nil
	})
}

func (r *jsonFileRepository) Update(ctx context.Context, p *post.Post) error {
	return r.collection.Mutate(func(posts []post.Post) ([]post.Post, error) {
		for i := range posts {
			if posts[i].ID == p.ID {
				posts[i] = *p
				return posts, nil
			}
		}
		return nil, post.ErrPostNotFound
	})
}

func (r *jsonFileRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	found := false
	err := r.collection.Mutate(func(posts []post.Post) ([]post.Post, error) {
		out := posts[:0]
		for i := range posts {
			if posts[i].ID == id {
				found = true
				continue
			}
			out = append(out, posts[i])
		}
		return out, nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
