// internal/controller/respond.go
package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	appErrors "github.com/unclebandit/sparkles-site/internal/errors"
	"github.com/unclebandit/sparkles-site/internal/geocode"
)

// RespondJSON writes v with the given status.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("⚠️ failed to encode response:", err)
	}
}

// RespondError maps err onto a status code and writes {"error": ...}.
func RespondError(w http.ResponseWriter, err error) {
	status, msg := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Println("❌ request failed:", err)
	}
	RespondJSON(w, status, map[string]string{"error": msg})
}

// StatusFor returns the HTTP status and client-facing message for err.
func StatusFor(err error) (int, string) {
	switch {
	case appErrors.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	case appErrors.IsNotFound(err):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, appErrors.ErrUnauthorized):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, appErrors.ErrAddressRequired), errors.Is(err, appErrors.ErrGeocodeMissingKey):
		return http.StatusBadRequest, geocode.UserMessage(err)
	case errors.Is(err, appErrors.ErrGeocodeNoResults):
		return http.StatusUnprocessableEntity, geocode.UserMessage(err)
	case errors.Is(err, appErrors.ErrGeocodeDenied):
		return http.StatusBadGateway, geocode.UserMessage(err)
	}
	return http.StatusInternalServerError, "internal server error"
}

// decodeJSON reads the request body into dst; a malformed body is a
// validation error.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return appErrors.NewValidation("body", err)
	}
	return nil
}
