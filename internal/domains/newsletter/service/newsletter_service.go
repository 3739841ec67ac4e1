package service

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/newsletter"
	"github.com/phongnguyen123/treow-physio-sub000/internal/infrastructure/email"
	"github.com/phongnguyen123/treow-physio-sub000/pkg/logger"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type newsletterService struct {
	repo      newsletter.Repository
	mailer    email.Mailer
	baseURL   string
	sendDelay time.Duration
}

// NewNewsletterService: baseURL dùng để build unsubscribe link,
// sendDelay là khoảng nghỉ giữa các recipient (SMTP rate limiting).
func NewNewsletterService(repo newsletter.Repository, mailer email.Mailer, baseURL string, sendDelay time.Duration) newsletter.Service {
	return &newsletterService{
		repo:      repo,
		mailer:    mailer,
		baseURL:   strings.TrimRight(baseURL, "/"),
		sendDelay: sendDelay,
	}
}

func (s *newsletterService) GetAll(ctx context.Context) ([]newsletter.Subscriber, error) {
	subscribers, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to load subscribers", err)
		return []newsletter.Subscriber{}, nil
	}
	return subscribers, nil
}

func (s *newsletterService) Subscribe(ctx context.Context, rawEmail string) (*newsletter.Subscriber, error) {
	addr := strings.ToLower(strings.TrimSpace(rawEmail))
	if !emailPattern.MatchString(addr) {
		return nil, newsletter.ErrInvalidEmail
	}

	// Duplicate check mọi status: email đã unsubscribe cũng bị reject,
	// tránh re-subscribe loop từ phía form
	if existing, err := s.repo.GetByEmail(ctx, addr); err == nil && existing != nil {
		return nil, newsletter.ErrAlreadySubscribed
	}

	sub := &newsletter.Subscriber{
		ID:           uuid.New(),
		Email:        addr,
		Status:       newsletter.StatusActive,
		SubscribedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		if err == newsletter.ErrAlreadySubscribed {
			return nil, err
		}
		logger.Error("Failed to persist subscriber", err)
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	return sub, nil
}

func (s *newsletterService) Unsubscribe(ctx context.Context, rawEmail string) error {
	addr := strings.ToLower(strings.TrimSpace(rawEmail))

	sub, err := s.repo.GetByEmail(ctx, addr)
	if err != nil {
		return err
	}

	if sub.Status == newsletter.StatusUnsubscribed {
		return nil // idempotent
	}

	sub.Status = newsletter.StatusUnsubscribed
	return s.repo.Update(ctx, sub)
}

func (s *newsletterService) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		logger.Error("Failed to delete subscriber", err)
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}
	if !found {
		return newsletter.ErrSubscriberNotFound
	}
	return nil
}

// Broadcast gửi tuần tự (không concurrent) với delay giữa mỗi lần gửi
// để không vượt rate limit SMTP. Một recipient fail không dừng đợt gửi,
// lỗi được gom vào result.Errors.
func (s *newsletterService) Broadcast(ctx context.Context, req *newsletter.BroadcastRequest) (*newsletter.BroadcastResult, error) {
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.HTML) == "" {
		return nil, newsletter.ErrEmptyBroadcast
	}

	subscribers, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to load subscribers for broadcast", err)
		return nil, fmt.Errorf("failed to load subscribers: %w", err)
	}

	active := make([]newsletter.Subscriber, 0, len(subscribers))
	for _, sub := range subscribers {
		if sub.Status == newsletter.StatusActive {
			active = append(active, sub)
		}
	}

	result := &newsletter.BroadcastResult{
		Success:    true,
		TotalCount: len(active),
	}

	for i, sub := range active {
		if i > 0 && s.sendDelay > 0 {
			select {
			case <-ctx.Done():
				result.Errors = append(result.Errors, "broadcast cancelled: "+ctx.Err().Error())
				return result, nil
			case <-time.After(s.sendDelay):
			}
		}

		msg := email.Message{
			To:      sub.Email,
			Subject: req.Subject,
			HTML:    req.HTML + s.unsubscribeFooter(sub.Email),
		}

		// Một recipient fail là partial failure bình thường của đợt
		// gửi, warn thôi, lỗi đã nằm trong result.Errors
		if _, err := s.mailer.Send(ctx, msg); err != nil {
			logger.Warn("Failed to send newsletter", map[string]interface{}{
				"to":    sub.Email,
				"error": err.Error(),
			})
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", sub.Email, err))
			continue
		}

		result.SentCount++
	}

	logger.Info("Newsletter broadcast finished", map[string]interface{}{
		"sent":   result.SentCount,
		"total":  result.TotalCount,
		"failed": len(result.Errors),
	})

	return result, nil
}

func (s *newsletterService) unsubscribeFooter(addr string) string {
	link := fmt.Sprintf("%s/api/v1/newsletter/unsubscribe?email=%s", s.baseURL, url.QueryEscape(addr))
	return fmt.Sprintf(`
        <hr>
        <p style="font-size:12px;color:#888">
            Bạn nhận được email này vì đã đăng ký nhận tin từ phòng khám.
            <a href="%s">Hủy đăng ký</a>
        </p>`, link)
}
