// internal/model/faq.go
package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type FAQ struct {
	ID         string    `db:"id" json:"id,omitempty"`
	Question   string    `db:"question" json:"question"`
	Answer     string    `db:"answer" json:"answer"`
	OrderIndex int       `db:"order_index" json:"order_index"`
	IsActive   bool      `db:"is_active" json:"is_active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

func (f *FAQ) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Question, validation.Required, validation.Length(1, 500)),
		validation.Field(&f.Answer, validation.Required),
		validation.Field(&f.OrderIndex, validation.Min(0)),
	)
}
