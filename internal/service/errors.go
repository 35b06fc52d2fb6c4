package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
)

// ===== Catalog Errors =====
var (
	ErrPackageNotFound = errors.New("travel package not found")
	ErrPackageInvalid  = errors.New("package title and destination are required")
)

// ===== Preference Errors =====
var (
	ErrNoPreferences = errors.New("no preference found")
)

// ===== Booking Errors =====
var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrNotOwner             = errors.New("not the owner of this resource")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
	ErrInvalidBooking       = errors.New("booking requires travelers and a positive total price")
)

// ===== Saved Package Errors =====
var (
	ErrSavedPackageNotFound = errors.New("saved package not found")
)

// ===== Payment Errors =====
var (
	ErrPaymentsDisabled  = errors.New("payment service is not configured")
	ErrMissingBookingID  = errors.New("payment event carries no booking id")
	ErrInvalidWebhook    = errors.New("invalid webhook payload")
)

// ===== External API Errors =====
var (
	ErrExternalUnavailable = errors.New("external travel service unavailable")
)
