// internal/model/contact_settings.go
package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ContactSettings is a single-row table.
type ContactSettings struct {
	ID             string    `db:"id" json:"id,omitempty"`
	Phone          string    `db:"phone" json:"phone"`
	Email          string    `db:"email" json:"email"`
	WhatsAppNumber string    `db:"whatsapp_number" json:"whatsapp_number"`
	InstagramURL   string    `db:"instagram_url" json:"instagram_url"`
	FacebookURL    string    `db:"facebook_url" json:"facebook_url"`
	TikTokURL      string    `db:"tiktok_url" json:"tiktok_url"`
	Address        string    `db:"address" json:"address"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

func (c *ContactSettings) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Email, is.EmailFormat),
		validation.Field(&c.InstagramURL, is.URL),
		validation.Field(&c.FacebookURL, is.URL),
		validation.Field(&c.TikTokURL, is.URL),
	)
}
