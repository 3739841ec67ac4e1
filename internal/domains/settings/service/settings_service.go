package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/settings"
	"github.com/phongnguyen123/treow-physio-sub000/pkg/logger"
)

type settingsService struct {
	repo settings.Repository
}

func NewSettingsService(repo settings.Repository) settings.Service {
	return &settingsService{repo: repo}
}

// load trả về record hiện tại hoặc defaults khi chưa có gì được lưu.
func (s *settingsService) load(ctx context.Context) (*settings.Settings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.Defaults(), nil
		}
		logger.Error("Failed to load settings", err)
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return current, nil
}

func (s *settingsService) GetSeo(ctx context.Context) (*settings.SeoSettings, error) {
	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return &current.Seo, nil
}

func (s *settingsService) UpdateSeo(ctx context.Context, req *settings.UpdateSeoRequest) (*settings.SeoSettings, error) {
	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if req.SiteTitle != nil {
		current.Seo.SiteTitle = *req.SiteTitle
	}
	if req.SiteDescription != nil {
		current.Seo.SiteDescription = *req.SiteDescription
	}
	if req.Keywords != nil {
		current.Seo.Keywords = *req.Keywords
	}
	if req.OgImage != nil {
		current.Seo.OgImage = *req.OgImage
	}
	if req.CanonicalURL != nil {
		current.Seo.CanonicalURL = *req.CanonicalURL
	}
	if req.GoogleAnalytics != nil {
		current.Seo.GoogleAnalytics = *req.GoogleAnalytics
	}

	current.UpdatedAt = time.Now()

	if err := s.repo.Upsert(ctx, current); err != nil {
		logger.Error("Failed to save SEO settings", err)
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &current.Seo, nil
}

// GetSmtp redact password: admin UI chỉ cần biết password đã set hay chưa.
func (s *settingsService) GetSmtp(ctx context.Context) (*settings.SmtpSettings, error) {
	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	smtp := current.Smtp
	if smtp.Password != "" {
		smtp.Password = "********"
	}
	return &smtp, nil
}

func (s *settingsService) UpdateSmtp(ctx context.Context, req *settings.UpdateSmtpRequest) (*settings.SmtpSettings, error) {
	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if req.Host != nil {
		current.Smtp.Host = *req.Host
	}
	if req.Port != nil {
		current.Smtp.Port = *req.Port
	}
	if req.Username != nil {
		current.Smtp.Username = *req.Username
	}
	if req.Password != nil {
		current.Smtp.Password = *req.Password
	}
	if req.FromEmail != nil {
		current.Smtp.FromEmail = *req.FromEmail
	}
	if req.FromName != nil {
		current.Smtp.FromName = *req.FromName
	}

	current.UpdatedAt = time.Now()

	if err := s.repo.Upsert(ctx, current); err != nil {
		logger.Error("Failed to save SMTP settings", err)
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	redacted := current.Smtp
	if redacted.Password != "" {
		redacted.Password = "********"
	}
	return &redacted, nil
}

// SmtpAccount: bản không redact, chỉ mailer dùng.
func (s *settingsService) SmtpAccount(ctx context.Context) (*settings.SmtpSettings, error) {
	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return &current.Smtp, nil
}
