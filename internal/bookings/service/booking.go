package service

import (
	"context"

	"paintbooking/internal/bookings/repository"
	"paintbooking/internal/bookings/validator"
	"paintbooking/pkg/config"
	apperrors "paintbooking/pkg/errors"
	"paintbooking/pkg/events"
	"paintbooking/pkg/model"
	"paintbooking/pkg/sanitizer"
)

type BookingService interface {
	Submit(ctx context.Context, sub *model.BookingSubmission) (*model.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	bookingValidator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: bookingValidator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Submit persists one booking request. Submissions are never cross-checked
// against accounts or other bookings; any well-formed tuple is accepted.
func (s *bookingService) Submit(ctx context.Context, sub *model.BookingSubmission) (*model.Booking, error) {
	s.sanitize(sub)

	if err := s.validator.Validate(sub); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return nil, apperrors.Validation(err.Error())
	}

	date, err := s.validator.ParseDate(sub.Date)
	if err != nil {
		s.cfg.Log.Warn("Booking date rejected", "date", sub.Date)
		return nil, apperrors.Validation(err.Error())
	}

	booking := &model.Booking{
		Name:  sub.Name,
		Phone: sub.Phone,
		Email: sub.Email,
		Date:  date,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	s.publishEvent(ctx, events.TypeBookingCreated, booking.ID, booking)

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"date", booking.Date,
	)
	return booking, nil
}

func (s *bookingService) sanitize(sub *model.BookingSubmission) {
	sub.Name = sanitizer.SanitizeName(sub.Name)
	sub.Phone = sanitizer.SanitizePhone(sub.Phone)
	sub.Email = sanitizer.SanitizeEmail(sub.Email)
}

func (s *bookingService) publishEvent(ctx context.Context, eventType, key string, payload any) {
	if err := s.publisher.Publish(ctx, key, eventType, payload); err != nil {
		s.cfg.Log.Warn("Failed to publish event", "type", eventType, "error", err)
	}
}
