package repository

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/author"
	"github.com/phongnguyen123/treow-physio-sub000/internal/infrastructure/jsonstore"
)

// jsonFileRepository implements author.Repository trên data/authors.json.
type jsonFileRepository struct {
	collection *jsonstore.Collection[author.Author]
}

func NewJSONFileRepository(dataDir string) author.Repository {
	return &jsonFileRepository{
		collection: jsonstore.NewCollection[author.Author](dataDir, "authors"),
	}
}

func (r *jsonFileRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	authors, err := r.collection.Read()
	if err != nil {
		return nil, err
	}

	sort.Slice(authors, func(i, j int) bool {
		return authors[i].CreatedAt.After(authors[j].CreatedAt)
	})

	return authors, nil
}

func (r *jsonFileRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	authors, err := r.collection.Read()
	if err != nil {
		return nil, err
	}

	for i := range authors {
		if authors[i].ID == id {
			return &authors[i], nil
		}
	}

	return nil, author.ErrAuthorNotFound
}

func (r *jsonFileRepository) GetBySlug(ctx context.Context, slug string) (*author.Author, error) {
	authors, err := r.collection.Read()
	if err != nil {
		return nil, err
	}

	for i := range authors {
		if authors[i].Slug == slug {
			return &authors[i], nil
		}
	}

	return nil, author.ErrAuthorNotFound
}

func (r *jsonFileRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	authors, err := r.collection.Read()
	if err != nil {
		return false, err
	}

	for i := range authors {
		if authors[i].Slug == slug {
			return true, nil
		}
	}

	return false, nil
}

func (r *jsonFileRepository) Create(ctx context.Context, a *author.Author) error {
	return r.collection.Mutate(func(authors []author.Author) ([]author.Author, error) {
		return append(authors, *a), nil
	})
}

func (r *jsonFileRepository) Update(ctx context.Context, a *author.Author) error {
	return r.collection.Mutate(func(authors []author.Author) ([]author.Author, error) {
		for i := range authors {
			if authors[i].ID == a.ID {
				authors[i] = *a
				return authors, nil
			}
		}
		return nil, author.ErrAuthorNotFound
	})
}

func (r *jsonFileRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	found := false
	err := r.collection.Mutate(func(authors []author.Author) ([]author.Author, error) {
		out := authors[:0]
		for i := range authors {
			if authors[i].ID == id {
				found = true
				continue
			}
			out = append(out, authors[i])
		}
		return out, nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
