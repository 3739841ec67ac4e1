package repository

import (
	"context"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/settings"
	"github.com/phongnguyen123/treow-physio-sub000/internal/infrastructure/jsonstore"
)

// jsonFileRepository giữ settings.json là array một phần tử, cùng
// layout array-of-objects như các entity files khác.
type jsonFileRepository struct {
	collection *jsonstore.Collection[settings.Settings]
}

func NewJSONFileRepository(dataDir string) settings.Repository {
	return &jsonFileRepository{
		collection: jsonstore.NewCollection[settings.Settings](dataDir, "settings"),
	}
}

func (r *jsonFileRepository) Get(ctx context.Context) (*settings.Settings, error) {
	records, err := r.collection.Read()
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].ID == settings.DefaultID {
			return &records[i], nil
		}
	}

	return nil, settings.ErrSettingsNotFound
}

func (r *jsonFileRepository) Upsert(ctx context.Context, s *settings.Settings) error {
	return r.collection.Mutate(func(records []settings.Settings) ([]settings.Settings, error) {
		for i := range records {
			if records[i].ID == s.ID {
				records[i] = *s
				return records, nil
			}
		}
		return append(records, *s), nil
	})
}
