package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/author"
)

type fakeRepo struct {
	authors map[uuid.UUID]author.Author
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{authors: make(map[uuid.UUID]author.Author)}
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]author.Author, error) {
	out := make([]author.Author, 0, len(f.authors))
	for _, a := range f.authors {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	if a, ok := f.authors[id]; ok {
		return &a, nil
	}
	return nil, author.ErrAuthorNotFound
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (*author.Author, error) {
	for _, a := range f.authors {
		if a.Slug == slug {
			return &a, nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

func (f *fakeRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	for _, a := range f.authors {
		if a.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) Create(ctx context.Context, a *author.Author) error {
	f.authors[a.ID] = *a
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, a *author.Author) error {
	if _, ok := f.authors[a.ID]; !ok {
		return author.ErrAuthorNotFound
	}
	f.authors[a.ID] = *a
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.authors[id]; !ok {
		return false, nil
	}
	delete(f.authors, id)
	return true, nil
}

func TestCreateAuthorSlug(t *testing.T) {
	svc := NewAuthorService(newFakeRepo())

	a, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		Name:  "Bác sỹ Nguyễn Văn A",
		Title: "Trưởng khoa Vật lý trị liệu",
	})
	require.NoError(t, err)
	assert.Equal(t, "bac-sy-nguyen-van-a", a.Slug)
}

// Khác post: trùng tên không fail mà auto-suffix slug.
func TestCreateAuthorDuplicateNameGetsSuffix(t *testing.T) {
	svc := NewAuthorService(newFakeRepo())
	ctx := context.Background()

	first, err := svc.Create(ctx, &author.CreateAuthorRequest{Name: "Trần Thị B"})
	require.NoError(t, err)

	second, err := svc.Create(ctx, &author.CreateAuthorRequest{Name: "Trần Thị B"})
	require.NoError(t, err)

	assert.Equal(t, "tran-thi-b", first.Slug)
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Contains(t, second.Slug, "tran-thi-b-")
}

func TestCreateAuthorInvalidName(t *testing.T) {
	svc := NewAuthorService(newFakeRepo())

	_, err := svc.Create(context.Background(), &author.CreateAuthorRequest{Name: "?!"})
	assert.ErrorIs(t, err, author.ErrInvalidName)
}

func TestUpdateAuthorPartialMerge(t *testing.T) {
	svc := NewAuthorService(newFakeRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, &author.CreateAuthorRequest{
		Name: "Lê Văn C",
		Bio:  "Bio ban đầu",
	})
	require.NoError(t, err)

	newBio := "Bio cập nhật"
	updated, err := svc.Update(ctx, created.ID, &author.UpdateAuthorRequest{Bio: &newBio})
	require.NoError(t, err)

	assert.Equal(t, newBio, updated.Bio)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Slug, updated.Slug)
}

func TestUpdateAuthorSocialLinks(t *testing.T) {
	svc := NewAuthorService(newFakeRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, &author.CreateAuthorRequest{Name: "Phạm Thị D"})
	require.NoError(t, err)
	assert.Nil(t, created.SocialLinks)

	links := &author.SocialLinks{Facebook: "https://facebook.com/ptd"}
	updated, err := svc.Update(ctx, created.ID, &author.UpdateAuthorRequest{SocialLinks: links})
	require.NoError(t, err)
	require.NotNil(t, updated.SocialLinks)
	assert.Equal(t, "https://facebook.com/ptd", updated.SocialLinks.Facebook)
}

func TestDeleteAuthor(t *testing.T) {
	svc := NewAuthorService(newFakeRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, &author.CreateAuthorRequest{Name: "Hoàng Văn E"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), author.ErrAuthorNotFound)
}
