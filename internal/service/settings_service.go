package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	appErrors "github.com/unclebandit/sparkles-site/internal/errors"
	"github.com/unclebandit/sparkles-site/internal/model"
	"github.com/unclebandit/sparkles-site/internal/repository"
)

// ====================== Contact settings ======================

type ContactService struct {
	Repo repository.ContactSettingsRepositoryInterface
}

func (s *ContactService) Public(ctx context.Context) model.ContactSettings {
	c, err := s.Repo.Get(ctx)
	if err != nil {
		log.Println("⚠️ failed to load contact settings, using fallback:", err)
		return model.DefaultContactSettings()
	}
	if c == nil {
		return model.DefaultContactSettings()
	}
	return *c
}

// Admin returns the stored row for the editor. Store errors are returned;
// an empty table yields the defaults.
func (s *ContactService) Admin(ctx context.Context) (model.ContactSettings, error) {
	c, err := s.Repo.Get(ctx)
	if err != nil {
		return model.ContactSettings{}, err
	}
	if c == nil {
		return model.DefaultContactSettings(), nil
	}
	return *c, nil
}

// Save writes the single settings row, updating it when present.
func (s *ContactService) Save(ctx context.Context, in *model.ContactSettings) (*model.ContactSettings, error) {
	if err := in.Validate(); err != nil {
		return nil, appErrors.NewValidation("", err)
	}
	existing, err := s.Repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		in.ID = existing.ID
		if err := s.Repo.Update(ctx, in); err != nil {
			return nil, err
		}
		return in, nil
	}
	in.ID = ""
	if err := s.Repo.Insert(ctx, in); err != nil {
		return nil, err
	}
	return in, nil
}

// ====================== Site settings ======================

type SettingsService struct {
	Repo          repository.SiteSettingRepositoryInterface
	DefaultMapKey string
}

// read decodes the setting into dst. Only store errors are returned; a
// missing or unreadable value reports false.
func (s *SettingsService) read(ctx context.Context, key string, dst any) (bool, error) {
	setting, err := s.Repo.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if setting == nil || len(setting.Value) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(setting.Value, dst); err != nil {
		log.Printf("⚠️ setting %s holds unreadable value: %v", key, err)
		return false, nil
	}
	return true, nil
}

func (s *SettingsService) load(ctx context.Context, key string, dst any) bool {
	ok, err := s.read(ctx, key, dst)
	if err != nil {
		log.Printf("⚠️ failed to load setting %s: %v", key, err)
	}
	return ok
}

func (s *SettingsService) save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	existing, err := s.Repo.Get(ctx, key)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.Value = raw
		return s.Repo.Update(ctx, existing)
	}
	return s.Repo.Insert(ctx, &model.SiteSetting{Key: key, Value: raw})
}

func mergeLogo(stored model.LogoSetting) model.LogoSetting {
	logo := model.DefaultLogo()
	logo.URL = stored.URL
	if strings.TrimSpace(stored.Alt) != "" {
		logo.Alt = stored.Alt
	}
	return logo
}

// Logo returns the stored logo; a missing alt text gets the brand default.
func (s *SettingsService) Logo(ctx context.Context) model.LogoSetting {
	var stored model.LogoSetting
	if s.load(ctx, model.SettingLogo, &stored) {
		return mergeLogo(stored)
	}
	return model.DefaultLogo()
}

// AdminLogo is Logo for the dashboard: store errors are returned.
func (s *SettingsService) AdminLogo(ctx context.Context) (model.LogoSetting, error) {
	var stored model.LogoSetting
	ok, err := s.read(ctx, model.SettingLogo, &stored)
	if err != nil {
		return model.LogoSetting{}, err
	}
	if !ok {
		return model.DefaultLogo(), nil
	}
	return mergeLogo(stored), nil
}

func (s *SettingsService) SaveLogo(ctx context.Context, logo model.LogoSetting) (model.LogoSetting, error) {
	if strings.TrimSpace(logo.Alt) == "" {
		logo.Alt = model.DefaultLogo().Alt
	}
	if err := s.save(ctx, model.SettingLogo, logo); err != nil {
		return model.LogoSetting{}, err
	}
	return logo, nil
}

// MapsAPIKey prefers the key saved from the admin dashboard over the
// configured one.
func (s *SettingsService) MapsAPIKey(ctx context.Context) string {
	var key string
	if s.load(ctx, model.SettingMapsAPIKey, &key) && strings.TrimSpace(key) != "" {
		return strings.TrimSpace(key)
	}
	return s.DefaultMapKey
}

func (s *SettingsService) SaveMapsAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return appErrors.NewValidation("api_key", errors.New("cannot be blank"))
	}
	return s.save(ctx, model.SettingMapsAPIKey, key)
}
