package handler

import (
	"io"
	"net/http"

	"github.com/yookve/api/internal/middleware"
	"github.com/yookve/api/internal/model"
	"github.com/yookve/api/internal/service"
)

// Stripe webhook payloads are small; cap reads to guard against junk
const maxWebhookBody = 64 * 1024

// BookingHandler handles booking and payment endpoints
type BookingHandler struct {
	bookings *service.BookingService
	payments *service.PaymentService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookings *service.BookingService, payments *service.PaymentService) *BookingHandler {
	return &BookingHandler{bookings: bookings, payments: payments}
}

// BookingRequest represents a booking creation request
type BookingRequest struct {
	PackageID       string  `json:"packageId"`
	TravelDate      string  `json:"travelDate"`
	ReturnDate      string  `json:"returnDate"`
	NumAdults       int     `json:"numAdults"`
	NumChildren     int     `json:"numChildren,omitempty"`
	NumInfants      int     `json:"numInfants,omitempty"`
	TotalPrice      float64 `json:"totalPrice"`
	SpecialRequests string  `json:"specialRequests,omitempty"`
	ContactPhone    string  `json:"contactPhone,omitempty"`
	ContactEmail    string  `json:"contactEmail,omitempty"`
}

// StatusRequest represents a booking status update
type StatusRequest struct {
	Status string `json:"status"`
}

// PaymentIntentRequest identifies the booking to pay for
type PaymentIntentRequest struct {
	BookingID string `json:"bookingId"`
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req BookingRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Corpo della richiesta non valido"))
		return
	}

	created, err := h.bookings.Create(r.Context(), userID, &model.Booking{
		PackageID:       req.PackageID,
		TravelDate:      req.TravelDate,
		ReturnDate:      req.ReturnDate,
		NumAdults:       req.NumAdults,
		NumChildren:     req.NumChildren,
		NumInfants:      req.NumInfants,
		TotalPrice:      req.TotalPrice,
		SpecialRequests: req.SpecialRequests,
		ContactPhone:    req.ContactPhone,
		ContactEmail:    req.ContactEmail,
	})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusCreated, created)
}

// List handles GET /api/bookings
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	bookings, err := h.bookings.ListByUser(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	if bookings == nil {
		bookings = []*model.Booking{}
	}

	WriteJSON(w, http.StatusOK, bookings)
}

// Get handles GET /api/bookings/{id}
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	booking, err := h.bookings.GetByID(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, booking)
}

// UpdateStatus handles PATCH /api/bookings/{id}/status
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req StatusRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Corpo della richiesta non valido"))
		return
	}

	updated, err := h.bookings.UpdateStatus(r.Context(), userID, r.PathValue("id"),
		model.BookingStatus(req.Status))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, updated)
}

// CreatePaymentIntent handles POST /api/bookings/create-payment-intent
func (h *BookingHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req PaymentIntentRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Corpo della richiesta non valido"))
		return
	}
	if req.BookingID == "" {
		WriteError(w, model.NewBadRequestError("ID prenotazione mancante"))
		return
	}

	booking, err := h.bookings.GetByID(r.Context(), userID, req.BookingID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	clientSecret, err := h.payments.CreateIntent(r.Context(), booking)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

// Webhook handles POST /api/bookings/webhook. Stripe retries on
// non-2xx, so unknown events are still acknowledged.
func (h *BookingHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		WriteError(w, model.NewBadRequestError("Webhook non valido"))
		return
	}

	event, err := h.payments.ParseWebhook(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	if err := h.payments.HandleEvent(r.Context(), event); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"received": true})
}
