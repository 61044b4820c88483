// internal/model/store_location.go
package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const DefaultStoreType = "Retail Partner"

type StoreLocation struct {
	ID        string    `db:"id" json:"id,omitempty"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	Phone     string    `db:"phone" json:"phone"`
	StoreType string    `db:"store_type" json:"store_type"`
	Latitude  *float64  `db:"latitude" json:"latitude"`
	Longitude *float64  `db:"longitude" json:"longitude"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// HasCoordinates reports whether both latitude and longitude are present.
func (l StoreLocation) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

func (l *StoreLocation) Validate() error {
	return validation.ValidateStruct(l,
		validation.Field(&l.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&l.Address, validation.Required),
		validation.Field(&l.Latitude, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&l.Longitude, validation.Min(-180.0), validation.Max(180.0)),
	)
}
