package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/settings"
	settingsRepo "github.com/phongnguyen123/treow-physio-sub000/internal/domains/settings/repository"
)

func newService(t *testing.T) settings.Service {
	t.Helper()
	return NewSettingsService(settingsRepo.NewJSONFileRepository(t.TempDir()))
}

func strPtr(s string) *string { return &s }

func TestGetSeoReturnsDefaultsWhenUnset(t *testing.T) {
	svc := newService(t)

	seo, err := svc.GetSeo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Phòng khám Vật lý trị liệu", seo.SiteTitle)
}

func TestUpdateSeoPartialMerge(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.UpdateSeo(ctx, &settings.UpdateSeoRequest{
		SiteTitle: strPtr("Treow Physio"),
		Keywords:  strPtr("vật lý trị liệu, phục hồi chức năng"),
	})
	require.NoError(t, err)

	// Update thứ hai chỉ đổi description, các field trước giữ nguyên
	seo, err := svc.UpdateSeo(ctx, &settings.UpdateSeoRequest{
		SiteDescription: strPtr("Mô tả mới"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Treow Physio", seo.SiteTitle)
	assert.Equal(t, "vật lý trị liệu, phục hồi chức năng", seo.Keywords)
	assert.Equal(t, "Mô tả mới", seo.SiteDescription)
}

func TestSmtpPasswordRedaction(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	port := 465
	updated, err := svc.UpdateSmtp(ctx, &settings.UpdateSmtpRequest{
		Host:     strPtr("smtp.example.com"),
		Port:     &port,
		Username: strPtr("mailer"),
		Password: strPtr("super-secret"),
	})
	require.NoError(t, err)
	assert.Equal(t, "********", updated.Password, "update response cũng phải redact")

	got, err := svc.GetSmtp(ctx)
	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com", got.Host)
	assert.Equal(t, "********", got.Password)

	// Mailer path đọc bản không redact
	account, err := svc.SmtpAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, "super-secret", account.Password)
}

func TestSmtpPasswordNotRedactedWhenEmpty(t *testing.T) {
	svc := newService(t)

	got, err := svc.GetSmtp(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Password)
}

func TestSettingsPersistAcrossServiceInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first := NewSettingsService(settingsRepo.NewJSONFileRepository(dir))
	_, err := first.UpdateSeo(ctx, &settings.UpdateSeoRequest{SiteTitle: strPtr("Giữ lại")})
	require.NoError(t, err)

	second := NewSettingsService(settingsRepo.NewJSONFileRepository(dir))
	seo, err := second.GetSeo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Giữ lại", seo.SiteTitle)
}
