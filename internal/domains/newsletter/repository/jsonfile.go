package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/newsletter"
	"github.com/phongnguyen123/treow-physio-sub000/internal/infrastructure/jsonstore"
)

type jsonFileRepository struct {
	collection *jsonstore.Collection[newsletter.Subscriber]
}

func NewJSONFileRepository(dataDir string) newsletter.Repository {
	return &jsonFileRepository{
		collection: jsonstore.NewCollection[newsletter.Subscriber](dataDir, "subscribers"),
	}
}

func (r *jsonFileRepository) GetAll(ctx context.Context) ([]newsletter.Subscriber, error) {
	subscribers, err := r.collection.Read()
	if err != nil {
		return nil, err
	}

	sort.Slice(subscribers, func(i, j int) bool {
		return subscribers[i].SubscribedAt.After(subscribers[j].SubscribedAt)
	})

	return subscribers, nil
}

func (r *jsonFileRepository) GetByEmail(ctx context.Context, email string) (*newsletter.Subscriber, error) {
	subscribers, err := r.collection.Read()
	if err != nil {
		return nil, err
	}

	for i := range subscribers {
		if strings.EqualFold(subscribers[i].Email, email) {
			return &subscribers[i], nil
		}
	}

	return nil, newsletter.ErrSubscriberNotFound
}

func (r *jsonFileRepository) Create(ctx context.Context, s *newsletter.Subscriber) error {
	return r.collection.Mutate(func(subscribers []newsletter.Subscriber) ([]newsletter.Subscriber, error) {
		for i := range subscribers {
			if strings.EqualFold(subscribers[i].Email, s.Email) {
				return nil, newsletter.ErrAlreadySubscribed
			}
		}
		return append(subscribers, *s), nil
	})
}

func (r *jsonFileRepository) Update(ctx context.Context, s *newsletter.Subscriber) error {
	return r.collection.Mutate(func(subscribers []newsletter.Subscriber) ([]newsletter.Subscriber, error) {
		for i := range subscribers {
			if subscribers[i].ID == s.ID {
				subscribers[i] = *s
				return subscribers, nil
			}
		}
		return nil, newsletter.ErrSubscriberNotFound
	})
}

func (r *jsonFileRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	found := false
	err := r.collection.Mutate(func(subscribers []newsletter.Subscriber) ([]newsletter.Subscriber, error) {
		out := subscribers[:0]
		for i := range subscribers {
			if subscribers[i].ID == id {
				found = true
				continue
			}
			out = append(out, subscribers[i])
		}
		return out, nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
