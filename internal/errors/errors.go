// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrAddressRequired   = errors.New("address is required before geocoding")
	ErrGeocodeMissingKey = errors.New("google maps api key is not configured")
	ErrGeocodeNoResults  = errors.New("no results found for this address")
	ErrGeocodeDenied     = errors.New("geocoding request denied")
)

// NotFoundError is returned when a keyed record does not exist.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

// Helper constructor
func NewNotFound(entity, key string) error {
	return &NotFoundError{Entity: entity, Key: key}
}

// ValidationError wraps input problems so controllers can answer 400.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Err: err}
}

// GeocodeDeniedError keeps the provider's explanation next to the sentinel.
type GeocodeDeniedError struct {
	Reason string
}

func (e *GeocodeDeniedError) Error() string {
	if e.Reason == "" {
		return ErrGeocodeDenied.Error()
	}
	return fmt.Sprintf("%s: %s", ErrGeocodeDenied.Error(), e.Reason)
}

func (e *GeocodeDeniedError) Unwrap() error {
	return ErrGeocodeDenied
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
