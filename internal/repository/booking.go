package repository

import (
	"context"
	"time"

	"github.com/yookve/api/internal/database"
	"github.com/yookve/api/internal/model"
)

// BookingRepository handles booking data access
type BookingRepository struct {
	*Repository[*model.Booking]
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(store database.Store) *BookingRepository {
	return &BookingRepository{newRepository(store, TableBookings, decodeBooking)}
}

// GetByUserID retrieves a user's bookings, most recent first
func (r *BookingRepository) GetByUserID(ctx context.Context, userID string) ([]*model.Booking, error) {
	return r.Search(ctx, "userId = $user_id", map[string]interface{}{
		"user_id": userID,
	}, "bookingDate DESC", 0)
}

// GetStalePending retrieves pending unpaid bookings created before the
// cutoff, oldest first.
func (r *BookingRepository) GetStalePending(ctx context.Context, cutoff time.Time) ([]*model.Booking, error) {
	return r.Search(ctx, "status = $status AND paymentStatus = $payment AND bookingDate < $cutoff", map[string]interface{}{
		"status":  string(model.BookingStatusPending),
		"payment": string(model.PaymentStatusUnpaid),
		"cutoff":  cutoff,
	}, "bookingDate ASC", 0)
}

// UpdateStatus sets the booking lifecycle status
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, bool, error) {
	return r.Update(ctx, id, map[string]interface{}{
		"status": string(status),
	})
}

// UpdatePayment sets the payment status and lifecycle status together,
// as a single document write.
func (r *BookingRepository) UpdatePayment(ctx context.Context, id string, payment model.PaymentStatus, status model.BookingStatus) (*model.Booking, bool, error) {
	return r.Update(ctx, id, map[string]interface{}{
		"paymentStatus": string(payment),
		"status":        string(status),
	})
}

func decodeBooking(doc database.Document) *model.Booking {
	return &model.Booking{
		ID:              recordKey(doc["id"]),
		UserID:          getString(doc, "userId"),
		PackageID:       getString(doc, "packageId"),
		TravelDate:      getString(doc, "travelDate"),
		ReturnDate:      getString(doc, "returnDate"),
		NumAdults:       getInt(doc, "numAdults"),
		NumChildren:     getInt(doc, "numChildren"),
		NumInfants:      getInt(doc, "numInfants"),
		TotalPrice:      getFloat(doc, "totalPrice"),
		SpecialRequests: getString(doc, "specialRequests"),
		ContactPhone:    getString(doc, "contactPhone"),
		ContactEmail:    getString(doc, "contactEmail"),
		Status:          model.BookingStatus(getString(doc, "status")),
		PaymentStatus:   model.PaymentStatus(getString(doc, "paymentStatus")),
		BookingDate:     getTime(doc, "bookingDate"),
	}
}
