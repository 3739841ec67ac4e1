package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/booking"
	"github.com/phongnguyen123/treow-physio-sub000/internal/infrastructure/email"
	"github.com/phongnguyen123/treow-physio-sub000/pkg/logger"
)

type bookingService struct {
	repo        booking.Repository
	validator   *booking.Validator
	mailer      email.Mailer
	adminEmails []string
}

func NewBookingService(repo booking.Repository, validator *booking.Validator, mailer email.Mailer, adminEmails []string) booking.Service {
	return &bookingService{
		repo:        repo,
		validator:   validator,
		mailer:      mailer,
		adminEmails: adminEmails,
	}
}

func (s *bookingService) GetAll(ctx context.Context) ([]booking.Booking, error) {
	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to load bookings", err)
		return []booking.Booking{}, nil
	}
	return bookings, nil
}

func (s *bookingService) GetByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if id == uuid.Nil {
		return nil, booking.ErrBookingNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *bookingService) Create(ctx context.Context, req *booking.CreateBookingRequest) (*booking.Booking, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	b := &booking.Booking{
		ID:        uuid.New(),
		FullName:  strings.TrimSpace(req.FullName),
		Phone:     booking.NormalizePhone(req.Phone),
		Email:     strings.TrimSpace(req.Email),
		Service:   strings.TrimSpace(req.Service),
		Date:      strings.TrimSpace(req.Date),
		Time:      strings.TrimSpace(req.Time),
		Message:   strings.TrimSpace(req.Message),
		Status:    booking.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		logger.Error("Failed to persist booking", err)
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	// Notifications gửi concurrent và đợi xong trước khi trả response.
	// Failure chỉ log, booking đã persist thành công.
	s.notify(ctx, b)

	return b, nil
}

func (s *bookingService) notify(ctx context.Context, b *booking.Booking) {
	if s.mailer == nil {
		return
	}

	var wg sync.WaitGroup

	adminSubject, adminHTML := adminNotification(b)
	for _, to := range s.adminEmails {
		wg.Add(1)
		go func(to string) {
			defer wg.Done()
			if _, err := s.mailer.Send(ctx, email.Message{To: to, Subject: adminSubject, HTML: adminHTML}); err != nil {
				logger.Error("Failed to send admin booking notification", err)
			}
		}(to)
	}

	// Confirmation cho khách chỉ gửi khi booking có email
	if b.Email != "" {
		custSubject, custHTML := customerConfirmation(b)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.mailer.Send(ctx, email.Message{To: b.Email, Subject: custSubject, HTML: custHTML}); err != nil {
				logger.Error("Failed to send customer booking confirmation", err)
			}
		}()
	}

	wg.Wait()
}

func (s *bookingService) Update(ctx context.Context, id uuid.UUID, req *booking.UpdateBookingRequest) (*booking.Booking, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *current

	if req.FullName != nil {
		merged.FullName = *req.FullName
	}
	if req.Phone != nil {
		merged.Phone = booking.NormalizePhone(*req.Phone)
	}
	if req.Email != nil {
		merged.Email = *req.Email
	}
	if req.Service != nil {
		merged.Service = *req.Service
	}
	if req.Date != nil {
		merged.Date = *req.Date
	}
	if req.Time != nil {
		merged.Time = *req.Time
	}
	if req.Message != nil {
		merged.Message = *req.Message
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, booking.ErrInvalidStatus
		}
		merged.Status = *req.Status
	}

	merged.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, &merged); err != nil {
		return nil, err
	}

	return &merged, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error) {
	if !status.Valid() {
		return nil, booking.ErrInvalidStatus
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *current
	merged.Status = status
	merged.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, &merged); err != nil {
		return nil, err
	}

	return &merged, nil
}

func (s *bookingService) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		logger.Error("Failed to delete booking", err)
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if !found {
		return booking.ErrBookingNotFound
	}
	return nil
}
