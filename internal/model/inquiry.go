// internal/model/inquiry.go
package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	MessagePending   = "pending"
	MessageForwarded = "forwarded"
	MessageFailed    = "failed"
)

// ContactMessage is a visitor submission from the contact form.
type ContactMessage struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Message   string    `db:"message" json:"message"`
	Status    string    `db:"status" json:"status"`
	LastError string    `db:"last_error" json:"last_error,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func (m *ContactMessage) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&m.Email, validation.Required, is.EmailFormat),
		validation.Field(&m.Message, validation.Required, validation.Length(1, 5000)),
	)
}

type Subscriber struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func (s *Subscriber) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Email, validation.Required, is.EmailFormat),
	)
}
