package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/booking"
	bookingRepo "github.com/phongnguyen123/treow-physio-sub000/internal/domains/booking/repository"
	"github.com/phongnguyen123/treow-physio-sub000/internal/infrastructure/email"
)

// fakeMailer thread-safe: notify gửi concurrent từ nhiều goroutines.
type fakeMailer struct {
	mu   sync.Mutex
	sent []email.Message
	fail bool
}

func (m *fakeMailer) Send(ctx context.Context, msg email.Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return "", errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, msg)
	return "fake-id", nil
}

func (m *fakeMailer) sentTo(addr string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, msg := range m.sent {
		if msg.To == addr {
			n++
		}
	}
	return n
}

func newService(t *testing.T, mailer email.Mailer, adminEmails []string) booking.Service {
	t.Helper()
	validator, err := booking.NewValidator("")
	require.NoError(t, err)
	return NewBookingService(bookingRepo.NewJSONFileRepository(t.TempDir()), validator, mailer, adminEmails)
}

func tomorrowISO() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}

func TestCreateBookingEndToEnd(t *testing.T) {
	mailer := &fakeMailer{}
	admins := []string{"admin1@clinic.vn", "admin2@clinic.vn"}
	svc := newService(t, mailer, admins)
	ctx := context.Background()

	created, err := svc.Create(ctx, &booking.CreateBookingRequest{
		FullName: "Nguyễn Văn A",
		Phone:    "0912345678",
		Email:    "khach@example.com",
		Service:  "Cơ xương khớp",
		Date:     tomorrowISO(),
		Time:     "09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, booking.StatusPending, created.Status)

	// Record retrievable qua GetAll
	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Equal(t, booking.StatusPending, all[0].Status)

	// Một notification per admin email + một confirmation cho khách
	for _, admin := range admins {
		assert.Equal(t, 1, mailer.sentTo(admin))
	}
	assert.Equal(t, 1, mailer.sentTo("khach@example.com"))
}

func TestCreateBookingNormalizesPhone(t *testing.T) {
	svc := newService(t, &fakeMailer{}, nil)
	ctx := context.Background()

	// Số có khoảng trắng bên trong vẫn hợp lệ, persist dạng đã strip
	created, err := svc.Create(ctx, &booking.CreateBookingRequest{
		FullName: "Đỗ Thị G",
		Phone:    "0912 345 678",
		Service:  "Cơ xương khớp",
		Date:     tomorrowISO(),
		Time:     "09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "0912345678", created.Phone)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "0912345678", got.Phone)

	// Update cũng normalize
	newPhone := "+84 912 345 678"
	updated, err := svc.Update(ctx, created.ID, &booking.UpdateBookingRequest{Phone: &newPhone})
	require.NoError(t, err)
	assert.Equal(t, "+84912345678", updated.Phone)
}

func TestCreateBookingWithoutEmailSkipsConfirmation(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newService(t, mailer, []string{"admin@clinic.vn"})

	_, err := svc.Create(context.Background(), &booking.CreateBookingRequest{
		FullName: "Trần Thị B",
		Phone:    "0987654321",
		Service:  "Trị liệu cột sống",
		Date:     tomorrowISO(),
		Time:     "14:00",
	})
	require.NoError(t, err)

	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	assert.Len(t, mailer.sent, 1, "chỉ có admin notification, không có customer email")
}

func TestCreateBookingSucceedsWhenMailFails(t *testing.T) {
	mailer := &fakeMailer{fail: true}
	svc := newService(t, mailer, []string{"admin@clinic.vn"})
	ctx := context.Background()

	// Email failure chỉ log, booking vẫn persist
	created, err := svc.Create(ctx, &booking.CreateBookingRequest{
		FullName: "Lê Văn C",
		Phone:    "0911222333",
		Service:  "Massage trị liệu",
		Date:     tomorrowISO(),
		Time:     "10:00",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusPending, got.Status)
}

func TestCreateBookingValidationShortCircuits(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newService(t, mailer, []string{"admin@clinic.vn"})

	_, err := svc.Create(context.Background(), &booking.CreateBookingRequest{
		FullName: "Phạm Văn D",
		Phone:    "12345", // sai format
		Service:  "Cơ xương khớp",
		Date:     tomorrowISO(),
		Time:     "09:00",
	})
	assert.ErrorIs(t, err, booking.ErrInvalidPhone)

	// Không persist, không gửi mail
	all, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Empty(t, mailer.sent)
}

func TestUpdateStatus(t *testing.T) {
	svc := newService(t, &fakeMailer{}, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, &booking.CreateBookingRequest{
		FullName: "Hoàng Thị E",
		Phone:    "0933444555",
		Service:  "Phục hồi chức năng",
		Date:     tomorrowISO(),
		Time:     "15:00",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, created.ID, booking.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, updated.Status)
	assert.True(t, updated.UpdatedAt.After(created.CreatedAt) || updated.UpdatedAt.Equal(created.CreatedAt))

	_, err = svc.UpdateStatus(ctx, created.ID, booking.Status("NONSENSE"))
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}

func TestUpdateBookingPartialMerge(t *testing.T) {
	svc := newService(t, &fakeMailer{}, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, &booking.CreateBookingRequest{
		FullName: "Vũ Văn F",
		Phone:    "0944555666",
		Service:  "Cơ xương khớp",
		Date:     tomorrowISO(),
		Time:     "11:00",
		Message:  "ghi chú gốc",
	})
	require.NoError(t, err)

	newTime := "16:00"
	updated, err := svc.Update(ctx, created.ID, &booking.UpdateBookingRequest{Time: &newTime})
	require.NoError(t, err)

	assert.Equal(t, "16:00", updated.Time)
	assert.Equal(t, created.FullName, updated.FullName)
	assert.Equal(t, "ghi chú gốc", updated.Message)
}
