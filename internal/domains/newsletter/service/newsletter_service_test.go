package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/newsletter"
	"github.com/phongnguyen123/treow-physio-sub000/internal/infrastructure/email"
)

type fakeRepo struct {
	subscribers map[uuid.UUID]newsletter.Subscriber
	order       []uuid.UUID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{subscribers: make(map[uuid.UUID]newsletter.Subscriber)}
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]newsletter.Subscriber, error) {
	out := make([]newsletter.Subscriber, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.subscribers[id])
	}
	return out, nil
}

func (f *fakeRepo) GetByEmail(ctx context.Context, addr string) (*newsletter.Subscriber, error) {
	for _, s := range f.subscribers {
		if s.Email == addr {
			return &s, nil
		}
	}
	return nil, newsletter.ErrSubscriberNotFound
}

func (f *fakeRepo) Create(ctx context.Context, s *newsletter.Subscriber) error {
	f.subscribers[s.ID] = *s
	f.order = append(f.order, s.ID)
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, s *newsletter.Subscriber) error {
	if _, ok := f.subscribers[s.ID]; !ok {
		return newsletter.ErrSubscriberNotFound
	}
	f.subscribers[s.ID] = *s
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.subscribers[id]; !ok {
		return false, nil
	}
	delete(f.subscribers, id)
	return true, nil
}

// fakeMailer ghi lại messages và fail theo chỉ số gửi (1-based).
type fakeMailer struct {
	sent   []email.Message
	failAt map[int]bool
	calls  int
}

func (m *fakeMailer) Send(ctx context.Context, msg email.Message) (string, error) {
	m.calls++
	if m.failAt[m.calls] {
		return "", errors.New("smtp: connection reset")
	}
	m.sent = append(m.sent, msg)
	return "fake-id", nil
}

func newService(repo newsletter.Repository, mailer email.Mailer) newsletter.Service {
	return NewNewsletterService(repo, mailer, "http://localhost:8080", 0)
}

func TestSubscribe(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeMailer{})

	sub, err := svc.Subscribe(context.Background(), "  Khach@Example.com ")
	require.NoError(t, err)

	// Email normalize về lowercase, trim
	assert.Equal(t, "khach@example.com", sub.Email)
	assert.Equal(t, newsletter.StatusActive, sub.Status)
	assert.False(t, sub.SubscribedAt.IsZero())
}

func TestSubscribeInvalidEmail(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeMailer{})

	_, err := svc.Subscribe(context.Background(), "khong-phai-email")
	assert.ErrorIs(t, err, newsletter.ErrInvalidEmail)
}

func TestSubscribeDuplicateRejected(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeMailer{})
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "a@example.com")
	require.NoError(t, err)

	_, err = svc.Subscribe(ctx, "a@example.com")
	assert.ErrorIs(t, err, newsletter.ErrAlreadySubscribed)

	// Đã unsubscribe vẫn reject re-subscribe
	require.NoError(t, svc.Unsubscribe(ctx, "a@example.com"))
	_, err = svc.Subscribe(ctx, "a@example.com")
	assert.ErrorIs(t, err, newsletter.ErrAlreadySubscribed)
}

func TestUnsubscribeFlipsStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakeMailer{})
	ctx := context.Background()

	sub, err := svc.Subscribe(ctx, "b@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe(ctx, "b@example.com"))

	stored := repo.subscribers[sub.ID]
	assert.Equal(t, newsletter.StatusUnsubscribed, stored.Status)

	// Idempotent
	assert.NoError(t, svc.Unsubscribe(ctx, "b@example.com"))

	// Email chưa từng đăng ký
	assert.ErrorIs(t, svc.Unsubscribe(ctx, "nobody@example.com"), newsletter.ErrSubscriberNotFound)
}

func TestBroadcastPartialFailure(t *testing.T) {
	repo := newFakeRepo()
	mailer := &fakeMailer{failAt: map[int]bool{2: true}}
	svc := newService(repo, mailer)
	ctx := context.Background()

	for _, addr := range []string{"s1@example.com", "s2@example.com", "s3@example.com"} {
		_, err := svc.Subscribe(ctx, addr)
		require.NoError(t, err)
	}

	result, err := svc.Broadcast(ctx, &newsletter.BroadcastRequest{
		Subject: "Bản tin tháng 8",
		HTML:    "<p>Nội dung</p>",
	})
	require.NoError(t, err)

	// Recipient thứ 2 fail: đợt gửi vẫn hoàn thành, success=true
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.SentCount)
	assert.Equal(t, 3, result.TotalCount)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "s2@example.com")
}

func TestBroadcastSkipsUnsubscribed(t *testing.T) {
	repo := newFakeRepo()
	mailer := &fakeMailer{}
	svc := newService(repo, mailer)
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "active@example.com")
	require.NoError(t, err)
	_, err = svc.Subscribe(ctx, "gone@example.com")
	require.NoError(t, err)
	require.NoError(t, svc.Unsubscribe(ctx, "gone@example.com"))

	result, err := svc.Broadcast(ctx, &newsletter.BroadcastRequest{Subject: "s", HTML: "<p>x</p>"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalCount)
	assert.Equal(t, 1, result.SentCount)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "active@example.com", mailer.sent[0].To)
}

func TestBroadcastAppendsUnsubscribeLink(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newService(newFakeRepo(), mailer)
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "c@example.com")
	require.NoError(t, err)

	_, err = svc.Broadcast(ctx, &newsletter.BroadcastRequest{Subject: "s", HTML: "<p>x</p>"})
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].HTML,
		"http://localhost:8080/api/v1/newsletter/unsubscribe?email=c%40example.com")
}

func TestBroadcastEmptyContentRejected(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeMailer{})

	_, err := svc.Broadcast(context.Background(), &newsletter.BroadcastRequest{Subject: "s", HTML: "  "})
	assert.ErrorIs(t, err, newsletter.ErrEmptyBroadcast)
}

func TestBroadcastThrottleDelay(t *testing.T) {
	repo := newFakeRepo()
	mailer := &fakeMailer{}
	svc := NewNewsletterService(repo, mailer, "http://localhost:8080", 20*time.Millisecond)
	ctx := context.Background()

	for _, addr := range []string{"d1@example.com", "d2@example.com", "d3@example.com"} {
		_, err := svc.Subscribe(ctx, addr)
		require.NoError(t, err)
	}

	start := time.Now()
	result, err := svc.Broadcast(ctx, &newsletter.BroadcastRequest{Subject: "s", HTML: "<p>x</p>"})
	require.NoError(t, err)

	assert.Equal(t, 3, result.SentCount)
	// 3 recipients = 2 khoảng delay
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}
