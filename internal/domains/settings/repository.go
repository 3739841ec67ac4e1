package settings

import (
	"context"
	"errors"
)

var ErrSettingsNotFound = errors.New("settings chưa được khởi tạo")

type Repository interface {
	// Get trả về ErrSettingsNotFound khi chưa có record, caller
	// (service) chịu trách nhiệm fill defaults
	Get(ctx context.Context) (*Settings, error)
	// Upsert ghi đè toàn bộ singleton record
	Upsert(ctx context.Context, s *Settings) error
}

type Service interface {
	// GetSeo không bao giờ fail vì thiếu record, trả defaults
	GetSeo(ctx context.Context) (*SeoSettings, error)
	UpdateSeo(ctx context.Context, req *UpdateSeoRequest) (*SeoSettings, error)
	// GetSmtp redact password trước khi trả về
	GetSmtp(ctx context.Context) (*SmtpSettings, error)
	UpdateSmtp(ctx context.Context, req *UpdateSmtpRequest) (*SmtpSettings, error)
	// SmtpAccount trả credentials đầy đủ (không redact), dùng nội bộ
	// làm fallback cho mailer khi env không có SMTP config
	SmtpAccount(ctx context.Context) (*SmtpSettings, error)
}
