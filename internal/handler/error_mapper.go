package handler

import (
	"errors"

	"github.com/yookve/api/internal/model"
	"github.com/yookve/api/internal/service"
)

// MapServiceError converts a service error to an APIError response.
// This centralizes error handling for all handlers, keeping status
// codes and user-facing messages consistent across the API.
func MapServiceError(err error) *model.APIError {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError("Invalid username or password")

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrNotOwner):
		return model.NewForbiddenError("Non autorizzato")

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("User not found")
	case errors.Is(err, service.ErrPackageNotFound):
		return model.NewNotFoundError("Pacchetto di viaggio non trovato")
	case errors.Is(err, service.ErrBookingNotFound):
		return model.NewNotFoundError("Prenotazione non trovata")
	case errors.Is(err, service.ErrSavedPackageNotFound):
		return model.NewNotFoundError("Pacchetto salvato non trovato")
	case errors.Is(err, service.ErrNoPreferences):
		return model.NewNotFoundError("Nessuna preferenza trovata")

	// ===== Validation Errors → 400 =====
	case errors.Is(err, service.ErrUsernameTaken):
		return model.NewBadRequestError("Username already exists")
	case errors.Is(err, service.ErrUsernameRequired):
		return model.NewBadRequestError("Username obbligatorio")
	case errors.Is(err, service.ErrPasswordRequired):
		return model.NewBadRequestError("Password obbligatoria")
	case errors.Is(err, service.ErrPasswordTooShort):
		return model.NewBadRequestError("La password deve contenere almeno 8 caratteri")
	case errors.Is(err, service.ErrPasswordTooLong):
		return model.NewBadRequestError("La password non può superare 128 caratteri")
	case errors.Is(err, service.ErrInvalidBooking):
		return model.NewBadRequestError("Dati prenotazione non validi")
	case errors.Is(err, service.ErrInvalidBookingStatus):
		return model.NewBadRequestError("Stato non valido")
	case errors.Is(err, service.ErrPackageInvalid):
		return model.NewBadRequestError("Dati pacchetto non validi")
	case errors.Is(err, service.ErrMissingBookingID),
		errors.Is(err, service.ErrInvalidWebhook):
		return model.NewBadRequestError("Webhook non valido")

	// ===== External/Unavailable Errors → 503 =====
	case errors.Is(err, service.ErrPaymentsDisabled):
		return model.NewServiceUnavailableError("Servizio di pagamento non disponibile")
	case errors.Is(err, service.ErrExternalUnavailable):
		return model.NewServiceUnavailableError("Servizio di raccomandazione non disponibile")

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
