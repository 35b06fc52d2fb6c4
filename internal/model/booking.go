package model

import "time"

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether the status is one of the closed enum values
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus tracks whether a booking has been paid
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// Valid reports whether the payment status is one of the closed enum values
func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusUnpaid || s == PaymentStatusPaid
}

// Booking represents a reservation of a travel package. New bookings always
// start as pending/unpaid regardless of client input.
type Booking struct {
	ID              string        `json:"id"`
	UserID          string        `json:"userId"`
	PackageID       string        `json:"packageId"`
	TravelDate      string        `json:"travelDate"`
	ReturnDate      string        `json:"returnDate"`
	NumAdults       int           `json:"numAdults"`
	NumChildren     int           `json:"numChildren"`
	NumInfants      int           `json:"numInfants"`
	TotalPrice      float64       `json:"totalPrice"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	ContactPhone    string        `json:"contactPhone,omitempty"`
	ContactEmail    string        `json:"contactEmail,omitempty"`
	Status          BookingStatus `json:"status"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	BookingDate     time.Time     `json:"bookingDate"`
}

// EntityID returns the record id
func (b *Booking) EntityID() string { return b.ID }

// Document returns the store representation of the booking
func (b *Booking) Document() map[string]interface{} {
	return map[string]interface{}{
		"userId":          b.UserID,
		"packageId":       b.PackageID,
		"travelDate":      b.TravelDate,
		"returnDate":      b.ReturnDate,
		"numAdults":       b.NumAdults,
		"numChildren":     b.NumChildren,
		"numInfants":      b.NumInfants,
		"totalPrice":      b.TotalPrice,
		"specialRequests": b.SpecialRequests,
		"contactPhone":    b.ContactPhone,
		"contactEmail":    b.ContactEmail,
		"status":          string(b.Status),
		"paymentStatus":   string(b.PaymentStatus),
		"bookingDate":     b.BookingDate,
	}
}
