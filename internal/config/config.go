package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Media    MediaConfig
	Maps     MapsConfig
	Queue    QueueConfig
	Admin    AdminConfig
	Brand    BrandConfig
}

type ServerConfig struct {
	Addr          string
	Env           string
	SessionSecret string
	BaseURL       string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	URL      string
}

type MediaConfig struct {
	Root           string
	PublicPrefix   string
	MaxUploadBytes int64
}

type MapsConfig struct {
	GeocodeEndpoint string
	APIKey          string
}

type QueueConfig struct {
	AMQPURL string
}

type AdminConfig struct {
	Email    string
	Password string
}

type BrandConfig struct {
	Name           string
	WhatsAppNumber string
	OrderMessage   string
	HelpMessage    string
	ProductMessage string
	InquiryMessage string
}

// DSN returns the lib/pq connection string, preferring DATABASE_URL.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

func (s ServerConfig) IsProduction() bool {
	return strings.EqualFold(s.Env, "production")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("SERVER_ENV", "development")
	v.SetDefault("APP_URL", "http://localhost:8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "sparkles")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("MEDIA_ROOT", "./uploads")
	v.SetDefault("MEDIA_PUBLIC_PREFIX", "/media")
	v.SetDefault("MEDIA_MAX_UPLOAD_BYTES", 20<<20)
	v.SetDefault("GEOCODE_ENDPOINT", "https://maps.googleapis.com/maps/api/geocode/json")
	v.SetDefault("BRAND_NAME", "Tiffany Sparkles")
	v.SetDefault("WHATSAPP_NUMBER", "+919876543210")
	v.SetDefault("WHATSAPP_ORDER_MESSAGE", "Hi, I'm interested in Tiffany Sparkles microfiber cloths. Can I place an order?")
	v.SetDefault("WHATSAPP_HELP_MESSAGE", "Hi! I'm interested in Tiffany Sparkles microfiber cloths. Could you please help me?")
	v.SetDefault("WHATSAPP_PRODUCT_MESSAGE", "Hi, I'm interested in the {product} ({price}). Can I place an order?")
	v.SetDefault("WHATSAPP_INQUIRY_MESSAGE", "Hi! I'm interested in Tiffany Sparkles microfiber cloths. Could you please provide more information?")
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on OS environment variables")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	// Fallbacks used by common hosting platforms.
	_ = v.BindEnv("SERVER_ADDR", "SERVER_ADDR", "ADDR")
	_ = v.BindEnv("DATABASE_URL")
	_ = v.BindEnv("GOOGLE_MAPS_API_KEY", "GOOGLE_MAPS_API_KEY", "MAPS_API_KEY")

	cfg := &Config{
		Server: ServerConfig{
			Addr:          v.GetString("SERVER_ADDR"),
			Env:           v.GetString("SERVER_ENV"),
			SessionSecret: v.GetString("SESSION_SECRET"),
			BaseURL:       strings.TrimRight(v.GetString("APP_URL"), "/"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			URL:      v.GetString("DATABASE_URL"),
		},
		Media: MediaConfig{
			Root:           v.GetString("MEDIA_ROOT"),
			PublicPrefix:   strings.TrimRight(v.GetString("MEDIA_PUBLIC_PREFIX"), "/"),
			MaxUploadBytes: v.GetInt64("MEDIA_MAX_UPLOAD_BYTES"),
		},
		Maps: MapsConfig{
			GeocodeEndpoint: v.GetString("GEOCODE_ENDPOINT"),
			APIKey:          v.GetString("GOOGLE_MAPS_API_KEY"),
		},
		Queue: QueueConfig{
			AMQPURL: v.GetString("AMQP_URL"),
		},
		Admin: AdminConfig{
			Email:    v.GetString("ADMIN_EMAIL"),
			Password: v.GetString("ADMIN_PASSWORD"),
		},
		Brand: BrandConfig{
			Name:           v.GetString("BRAND_NAME"),
			WhatsAppNumber: v.GetString("WHATSAPP_NUMBER"),
			OrderMessage:   v.GetString("WHATSAPP_ORDER_MESSAGE"),
			HelpMessage:    v.GetString("WHATSAPP_HELP_MESSAGE"),
			ProductMessage: v.GetString("WHATSAPP_PRODUCT_MESSAGE"),
			InquiryMessage: v.GetString("WHATSAPP_INQUIRY_MESSAGE"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log.Printf("Configuration loaded: addr=%s env=%s db_url=%s amqp=%s maps_key=%s",
		cfg.Server.Addr, cfg.Server.Env,
		setOrNot(cfg.Database.URL), setOrNot(cfg.Queue.AMQPURL), setOrNot(cfg.Maps.APIKey))
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.SessionSecret == "" {
		if c.Server.IsProduction() {
			return errors.New("SESSION_SECRET must be set in production")
		}
		log.Println("SESSION_SECRET not set, using an insecure development secret")
		c.Server.SessionSecret = "dev-only-session-secret-change-me"
	}
	if c.Media.MaxUploadBytes <= 0 {
		return fmt.Errorf("MEDIA_MAX_UPLOAD_BYTES must be positive, got %d", c.Media.MaxUploadBytes)
	}
	return nil
}

func setOrNot(s string) string {
	if s != "" {
		return "SET"
	}
	return "NOT SET"
}
