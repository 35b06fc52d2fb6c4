package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/yookve/api/internal/model"
)

// BookingRepository defines the interface for booking storage
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, bool, error)
	GetByUserID(ctx context.Context, userID string) ([]*model.Booking, error)
	UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, bool, error)
	UpdatePayment(ctx context.Context, id string, payment model.PaymentStatus, status model.BookingStatus) (*model.Booking, bool, error)
}

// PackageGetter is the slice of the catalog a booking needs
type PackageGetter interface {
	GetByID(ctx context.Context, id string) (*model.TravelPackage, bool, error)
}

// BookingObserver receives booking and payment lifecycle events,
// satisfied by the metrics collector.
type BookingObserver interface {
	ObserveBooking(status string)
	ObservePayment(outcome string)
}

// BookingService handles the booking lifecycle
type BookingService struct {
	bookings BookingRepository
	packages PackageGetter
	observer BookingObserver
}

// NewBookingService creates a new booking service
func NewBookingService(bookings BookingRepository, packages PackageGetter, observer BookingObserver) *BookingService {
	return &BookingService{bookings: bookings, packages: packages, observer: observer}
}

func (s *BookingService) observeBooking(status model.BookingStatus) {
	if s.observer != nil {
		s.observer.ObserveBooking(string(status))
	}
}

func (s *BookingService) observePayment(outcome string) {
	if s.observer != nil {
		s.observer.ObservePayment(outcome)
	}
}

// Create stores a new booking. The referenced package must exist, and
// the booking always starts pending/unpaid regardless of client input.
func (s *BookingService) Create(ctx context.Context, userID string, booking *model.Booking) (*model.Booking, error) {
	_, found, err := s.packages.GetByID(ctx, booking.PackageID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrPackageNotFound
	}

	if booking.NumAdults <= 0 || booking.TotalPrice <= 0 {
		return nil, ErrInvalidBooking
	}

	booking.ID = ""
	booking.UserID = userID
	booking.Status = model.BookingStatusPending
	booking.PaymentStatus = model.PaymentStatusUnpaid
	booking.BookingDate = time.Now().UTC()

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	s.observeBooking(model.BookingStatusPending)
	return created, nil
}

// GetByID retrieves a booking owned by the given user
func (s *BookingService) GetByID(ctx context.Context, userID, id string) (*model.Booking, error) {
	booking, found, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrBookingNotFound
	}
	if booking.UserID != userID {
		return nil, ErrNotOwner
	}
	return booking, nil
}

// ListByUser retrieves the user's bookings, most recent first
func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*model.Booking, error) {
	return s.bookings.GetByUserID(ctx, userID)
}

// UpdateStatus transitions a booking's lifecycle status. Only the
// closed enum values are accepted.
func (s *BookingService) UpdateStatus(ctx context.Context, userID, id string, status model.BookingStatus) (*model.Booking, error) {
	if !status.Valid() {
		return nil, ErrInvalidBookingStatus
	}

	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return nil, err
	}

	updated, found, err := s.bookings.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrBookingNotFound
	}

	s.observeBooking(status)
	return updated, nil
}

// ApplyPaymentSucceeded marks a booking paid and confirmed in one
// write. Re-delivery of the same payment event is a no-op, so webhook
// retries stay safe.
func (s *BookingService) ApplyPaymentSucceeded(ctx context.Context, bookingID string) (*model.Booking, error) {
	booking, found, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrBookingNotFound
	}

	if booking.PaymentStatus == model.PaymentStatusPaid {
		slog.Info("payment already applied, skipping",
			slog.String("booking_id", bookingID),
		)
		return booking, nil
	}

	updated, found, err := s.bookings.UpdatePayment(ctx, bookingID,
		model.PaymentStatusPaid, model.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrBookingNotFound
	}

	s.observePayment("succeeded")
	s.observeBooking(model.BookingStatusConfirmed)

	slog.Info("booking confirmed after payment",
		slog.String("booking_id", bookingID),
		slog.String("user_id", updated.UserID),
	)
	return updated, nil
}
