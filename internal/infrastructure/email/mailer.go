package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/phongnguyen123/treow-physio-sub000/pkg/logger"
)

// Account là SMTP credentials đã resolve (env hoặc persisted settings)
type Account struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (a Account) complete() bool {
	return strings.TrimSpace(a.Host) != "" && strings.TrimSpace(a.From) != ""
}

// Message is a single outbound HTML email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer gửi một email và trả về message ID.
// Transport construction và send đều fallible; caller không bao giờ
// nhận panic, chỉ nhận error per-recipient.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

type smtpMailer struct {
	env      Account
	fallback func(ctx context.Context) (Account, error)
}

// NewSMTPMailer resolve account env-first; fallback đọc từ persisted
// SMTP settings record khi environment không đầy đủ.
func NewSMTPMailer(env Account, fallback func(ctx context.Context) (Account, error)) Mailer {
	return &smtpMailer{env: env, fallback: fallback}
}

func (s *smtpMailer) resolve(ctx context.Context) (Account, error) {
	if s.env.complete() {
		return s.env, nil
	}

	if s.fallback != nil {
		account, err := s.fallback(ctx)
		if err == nil && account.complete() {
			return account, nil
		}
		if err != nil {
			logger.Error("Failed to load persisted SMTP settings", err)
		}
	}

	return Account{}, fmt.Errorf("smtp transport is not configured")
}

func (s *smtpMailer) Send(ctx context.Context, msg Message) (string, error) {
	account, err := s.resolve(ctx)
	if err != nil {
		return "", err
	}

	addr := fmt.Sprintf("%s:%d", account.Host, account.Port)

	var auth smtp.Auth
	if account.Username != "" {
		auth = smtp.PlainAuth("", account.Username, account.Password, account.Host)
	}

	headers := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n",
		account.From, msg.To, msg.Subject)

	if err := smtp.SendMail(addr, auth, account.From, []string{msg.To}, []byte(headers+msg.HTML)); err != nil {
		logger.Info("Failed to send email", map[string]interface{}{
			"error":     err.Error(),
			"to":        msg.To,
			"smtp_addr": addr,
		})
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	// SMTP không trả message ID, generate một pseudo ID
	return fmt.Sprintf("smtp-%s-%d", msg.To, time.Now().UnixNano()), nil
}
