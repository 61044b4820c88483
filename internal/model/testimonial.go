// internal/model/testimonial.go
package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type Testimonial struct {
	ID        string    `db:"id" json:"id,omitempty"`
	Name      string    `db:"name" json:"name"`
	Location  string    `db:"location" json:"location"`
	Message   string    `db:"message" json:"message"`
	Rating    int       `db:"rating" json:"rating"`
	AvatarURL string    `db:"avatar_url" json:"avatar_url"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func (t *Testimonial) Validate() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&t.Message, validation.Required, validation.Length(1, 2000)),
		validation.Field(&t.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&t.AvatarURL, is.URL),
	)
}
