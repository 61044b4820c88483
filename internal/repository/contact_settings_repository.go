package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/unclebandit/sparkles-site/internal/model"
)

type ContactSettingsRepositoryInterface interface {
	Get(ctx context.Context) (*model.ContactSettings, error)
	Insert(ctx context.Context, c *model.ContactSettings) error
	Update(ctx context.Context, c *model.ContactSettings) error
}

type ContactSettingsRepository struct {
	DB *sql.DB
}

var _ ContactSettingsRepositoryInterface = (*ContactSettingsRepository)(nil)

// Get returns the first settings row, or nil, nil when none exists.
func (r *ContactSettingsRepository) Get(ctx context.Context) (*model.ContactSettings, error) {
	query := `
        SELECT id, phone, email, whatsapp_number, instagram_url, facebook_url, tiktok_url, address, created_at, updated_at
        FROM contact_settings ORDER BY created_at ASC LIMIT 1
    `
	var c model.ContactSettings
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&c.ID, &c.Phone, &c.Email, &c.WhatsAppNumber,
		&c.InstagramURL, &c.FacebookURL, &c.TikTokURL, &c.Address,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *ContactSettingsRepository) Insert(ctx context.Context, c *model.ContactSettings) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	query := `
        INSERT INTO contact_settings (id, phone, email, whatsapp_number, instagram_url, facebook_url, tiktok_url, address, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
        RETURNING created_at, updated_at
    `
	return r.DB.QueryRowContext(ctx, query,
		c.ID, c.Phone, c.Email, c.WhatsAppNumber, c.InstagramURL, c.FacebookURL, c.TikTokURL, c.Address,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (r *ContactSettingsRepository) Update(ctx context.Context, c *model.ContactSettings) error {
	query := `
        UPDATE contact_settings
        SET phone=$1, email=$2, whatsapp_number=$3, instagram_url=$4, facebook_url=$5, tiktok_url=$6, address=$7, updated_at=NOW()
        WHERE id=$8
        RETURNING created_at, updated_at
    `
	err := r.DB.QueryRowContext(ctx, query,
		c.Phone, c.Email, c.WhatsAppNumber, c.InstagramURL, c.FacebookURL, c.TikTokURL, c.Address, c.ID,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return notFound("contact settings", c.ID)
	}
	return err
}
