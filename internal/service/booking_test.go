package service

import (
	"context"
	"errors"
	"testing"

	"github.com/yookve/api/internal/model"
)

type recordingObserver struct {
	bookings []string
	payments []string
}

func (r *recordingObserver) ObserveBooking(status string)  { r.bookings = append(r.bookings, status) }
func (r *recordingObserver) ObservePayment(outcome string) { r.payments = append(r.payments, outcome) }

func newTestBookingService() (*BookingService, *mockBookingRepo, *recordingObserver) {
	bookings := newMockBookingRepo()
	packages := newMockPackageRepo(&model.TravelPackage{ID: "1", Title: "Weekend Culturale a Roma", Price: 650})
	observer := &recordingObserver{}
	return NewBookingService(bookings, packages, observer), bookings, observer
}

func validBooking() *model.Booking {
	return &model.Booking{
		PackageID:  "1",
		TravelDate: "2026-09-10",
		ReturnDate: "2026-09-13",
		NumAdults:  2,
		TotalPrice: 1300,
	}
}

// ===========================================================================
// Create
// ===========================================================================

func TestBookingCreate_Success(t *testing.T) {
	svc, _, observer := newTestBookingService()

	created, err := svc.Create(context.Background(), "user-1", validBooking())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == "" {
		t.Error("expected booking to be assigned an id")
	}
	if created.UserID != "user-1" {
		t.Errorf("expected user-1, got %s", created.UserID)
	}
	if created.Status != model.BookingStatusPending {
		t.Errorf("expected pending, got %s", created.Status)
	}
	if created.PaymentStatus != model.PaymentStatusUnpaid {
		t.Errorf("expected unpaid, got %s", created.PaymentStatus)
	}
	if created.BookingDate.IsZero() {
		t.Error("expected booking date to be stamped")
	}
	if len(observer.bookings) != 1 || observer.bookings[0] != "pending" {
		t.Errorf("expected one pending observation, got %v", observer.bookings)
	}
}

func TestBookingCreate_IgnoresClientStatus(t *testing.T) {
	svc, _, _ := newTestBookingService()

	booking := validBooking()
	booking.Status = model.BookingStatusConfirmed
	booking.PaymentStatus = model.PaymentStatusPaid
	booking.UserID = "someone-else"

	created, err := svc.Create(context.Background(), "user-1", booking)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Status != model.BookingStatusPending || created.PaymentStatus != model.PaymentStatusUnpaid {
		t.Errorf("client-supplied status survived: %s/%s", created.Status, created.PaymentStatus)
	}
	if created.UserID != "user-1" {
		t.Errorf("client-supplied user id survived: %s", created.UserID)
	}
}

func TestBookingCreate_UnknownPackage(t *testing.T) {
	svc, _, _ := newTestBookingService()

	booking := validBooking()
	booking.PackageID = "missing"

	_, err := svc.Create(context.Background(), "user-1", booking)
	if !errors.Is(err, ErrPackageNotFound) {
		t.Errorf("expected ErrPackageNotFound, got %v", err)
	}
}

func TestBookingCreate_Invalid(t *testing.T) {
	svc, _, _ := newTestBookingService()

	tests := []struct {
		name   string
		mutate func(*model.Booking)
	}{
		{"zero adults", func(b *model.Booking) { b.NumAdults = 0 }},
		{"negative adults", func(b *model.Booking) { b.NumAdults = -1 }},
		{"zero price", func(b *model.Booking) { b.TotalPrice = 0 }},
		{"negative price", func(b *model.Booking) { b.TotalPrice = -10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := validBooking()
			tt.mutate(booking)
			_, err := svc.Create(context.Background(), "user-1", booking)
			if !errors.Is(err, ErrInvalidBooking) {
				t.Errorf("expected ErrInvalidBooking, got %v", err)
			}
		})
	}
}

// ===========================================================================
// GetByID / ListByUser
// ===========================================================================

func TestBookingGetByID_Ownership(t *testing.T) {
	svc, _, _ := newTestBookingService()

	created, err := svc.Create(context.Background(), "user-1", validBooking())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := svc.GetByID(context.Background(), "user-1", created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("got booking %s, want %s", got.ID, created.ID)
	}

	if _, err := svc.GetByID(context.Background(), "user-2", created.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
	if _, err := svc.GetByID(context.Background(), "user-1", "missing"); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestBookingListByUser(t *testing.T) {
	svc, _, _ := newTestBookingService()

	if _, err := svc.Create(context.Background(), "user-1", validBooking()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), "user-2", validBooking()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	list, err := svc.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 booking, got %d", len(list))
	}
}

// ===========================================================================
// UpdateStatus
// ===========================================================================

func TestBookingUpdateStatus(t *testing.T) {
	svc, _, _ := newTestBookingService()

	created, err := svc.Create(context.Background(), "user-1", validBooking())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), "user-1", created.ID, model.BookingStatusCancelled)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != model.BookingStatusCancelled {
		t.Errorf("expected cancelled, got %s", updated.Status)
	}
}

func TestBookingUpdateStatus_InvalidStatus(t *testing.T) {
	svc, _, _ := newTestBookingService()

	created, err := svc.Create(context.Background(), "user-1", validBooking())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = svc.UpdateStatus(context.Background(), "user-1", created.ID, model.BookingStatus("shipped"))
	if !errors.Is(err, ErrInvalidBookingStatus) {
		t.Errorf("expected ErrInvalidBookingStatus, got %v", err)
	}
}

func TestBookingUpdateStatus_NotOwner(t *testing.T) {
	svc, _, _ := newTestBookingService()

	created, err := svc.Create(context.Background(), "user-1", validBooking())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = svc.UpdateStatus(context.Background(), "user-2", created.ID, model.BookingStatusCancelled)
	if !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
}

// ===========================================================================
// ApplyPaymentSucceeded
// ===========================================================================

func TestApplyPaymentSucceeded(t *testing.T) {
	svc, _, observer := newTestBookingService()

	created, err := svc.Create(context.Background(), "user-1", validBooking())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := svc.ApplyPaymentSucceeded(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("ApplyPaymentSucceeded failed: %v", err)
	}
	if updated.PaymentStatus != model.PaymentStatusPaid {
		t.Errorf("expected paid, got %s", updated.PaymentStatus)
	}
	if updated.Status != model.BookingStatusConfirmed {
		t.Errorf("expected confirmed, got %s", updated.Status)
	}
	if len(observer.payments) != 1 || observer.payments[0] != "succeeded" {
		t.Errorf("expected one succeeded payment observation, got %v", observer.payments)
	}
}

func TestApplyPaymentSucceeded_Idempotent(t *testing.T) {
	svc, _, observer := newTestBookingService()

	created, err := svc.Create(context.Background(), "user-1", validBooking())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.ApplyPaymentSucceeded(context.Background(), created.ID); err != nil {
		t.Fatalf("first ApplyPaymentSucceeded failed: %v", err)
	}

	// Webhook re-delivery must not re-apply or re-observe
	again, err := svc.ApplyPaymentSucceeded(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("second ApplyPaymentSucceeded failed: %v", err)
	}
	if again.PaymentStatus != model.PaymentStatusPaid || again.Status != model.BookingStatusConfirmed {
		t.Errorf("unexpected state after re-delivery: %s/%s", again.Status, again.PaymentStatus)
	}
	if len(observer.payments) != 1 {
		t.Errorf("expected a single payment observation, got %d", len(observer.payments))
	}
}

func TestApplyPaymentSucceeded_UnknownBooking(t *testing.T) {
	svc, _, _ := newTestBookingService()

	_, err := svc.ApplyPaymentSucceeded(context.Background(), "missing")
	if !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestBookingService_NilObserver(t *testing.T) {
	bookings := newMockBookingRepo()
	packages := newMockPackageRepo(&model.TravelPackage{ID: "1", Price: 650})
	svc := NewBookingService(bookings, packages, nil)

	created, err := svc.Create(context.Background(), "user-1", validBooking())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.ApplyPaymentSucceeded(context.Background(), created.ID); err != nil {
		t.Fatalf("ApplyPaymentSucceeded failed: %v", err)
	}
}
