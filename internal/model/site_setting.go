// internal/model/site_setting.go
package model

import (
	"encoding/json"
	"time"
)

const (
	SettingLogo       = "logo"
	SettingMapsAPIKey = "google_maps_api_key"
)

type SiteSetting struct {
	Key       string          `db:"setting_key" json:"setting_key"`
	Value     json.RawMessage `db:"setting_value" json:"setting_value"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

type LogoSetting struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}
