package repository

import (
	"context"
	"database/sql"

	"github.com/unclebandit/sparkles-site/internal/model"
)

type SiteSettingRepositoryInterface interface {
	Get(ctx context.Context, key string) (*model.SiteSetting, error)
	Insert(ctx context.Context, s *model.SiteSetting) error
	Update(ctx context.Context, s *model.SiteSetting) error
}

type SiteSettingRepository struct {
	DB *sql.DB
}

var _ SiteSettingRepositoryInterface = (*SiteSettingRepository)(nil)

func (r *SiteSettingRepository) Get(ctx context.Context, key string) (*model.SiteSetting, error) {
	query := `SELECT setting_key, setting_value, created_at, updated_at FROM site_settings WHERE setting_key=$1`
	var s model.SiteSetting
	var raw []byte
	err := r.DB.QueryRowContext(ctx, query, key).Scan(&s.Key, &raw, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	s.Value = raw
	return &s, nil
}

func (r *SiteSettingRepository) Insert(ctx context.Context, s *model.SiteSetting) error {
	query := `
        INSERT INTO site_settings (setting_key, setting_value, created_at, updated_at)
        VALUES ($1, $2, NOW(), NOW())
        RETURNING created_at, updated_at
    `
	return r.DB.QueryRowContext(ctx, query, s.Key, string(s.Value)).Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *SiteSettingRepository) Update(ctx context.Context, s *model.SiteSetting) error {
	query := `
        UPDATE site_settings SET setting_value=$1, updated_at=NOW()
        WHERE setting_key=$2
        RETURNING created_at, updated_at
    `
	err := r.DB.QueryRowContext(ctx, query, string(s.Value), s.Key).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return notFound("site setting", s.Key)
	}
	return err
}
