package site

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/unclebandit/sparkles-site/internal/config"
	"github.com/unclebandit/sparkles-site/internal/model"
	"github.com/unclebandit/sparkles-site/internal/service"
)

var errDown = errors.New("database unavailable")

type downContent struct{}

func (downContent) GetBySection(ctx context.Context, name string) (*model.ContentSection, error) {
	return nil, errDown
}
func (downContent) Insert(ctx context.Context, s *model.ContentSection) error { return errDown }
func (downContent) Update(ctx context.Context, s *model.ContentSection) error { return errDown }
func (downContent) List(ctx context.Context) ([]*model.ContentSection, error) {
	return nil, errDown
}

type downTestimonials struct{}

func (downTestimonials) ListActive(ctx context.Context) ([]*model.Testimonial, error) {
	return nil, errDown
}
func (downTestimonials) ListAll(ctx context.Context) ([]*model.Testimonial, error) {
	return nil, errDown
}
func (downTestimonials) Insert(ctx context.Context, t *model.Testimonial) error { return errDown }
func (downTestimonials) Update(ctx context.Context, t *model.Testimonial) error { return errDown }
func (downTestimonials) Delete(ctx context.Context, id string) error            { return errDown }

type downFAQs struct{}

func (downFAQs) ListActive(ctx context.Context) ([]*model.FAQ, error) { return nil, errDown }
func (downFAQs) ListAll(ctx context.Context) ([]*model.FAQ, error)    { return nil, errDown }
func (downFAQs) Insert(ctx context.Context, f *model.FAQ) error       { return errDown }
func (downFAQs) Update(ctx context.Context, f *model.FAQ) error       { return errDown }
func (downFAQs) Delete(ctx context.Context, id string) error          { return errDown }
func (downFAQs) Reorder(ctx context.Context, ids []string) error      { return errDown }

type downLocations struct{}

func (downLocations) ListActive(ctx context.Context) ([]*model.StoreLocation, error) {
	return nil, errDown
}
func (downLocations) ListAll(ctx context.Context) ([]*model.StoreLocation, error) {
	return nil, errDown
}
func (downLocations) GetByID(ctx context.Context, id string) (*model.StoreLocation, error) {
	return nil, errDown
}
func (downLocations) Insert(ctx context.Context, l *model.StoreLocation) error { return errDown }
func (downLocations) Update(ctx context.Context, l *model.StoreLocation) error { return errDown }
func (downLocations) Delete(ctx context.Context, id string) error              { return errDown }

type downContact struct{}

func (downContact) Get(ctx context.Context) (*model.ContactSettings, error)    { return nil, errDown }
func (downContact) Insert(ctx context.Context, c *model.ContactSettings) error { return errDown }
func (downContact) Update(ctx context.Context, c *model.ContactSettings) error { return errDown }

type downSettings struct{}

func (downSettings) Get(ctx context.Context, key string) (*model.SiteSetting, error) {
	return nil, errDown
}
func (downSettings) Insert(ctx context.Context, s *model.SiteSetting) error { return errDown }
func (downSettings) Update(ctx context.Context, s *model.SiteSetting) error { return errDown }

func downLoader() *Loader {
	settings := &service.SettingsService{Repo: downSettings{}}
	return &Loader{
		Content:      &service.ContentService{ContentRepo: downContent{}},
		Testimonials: &service.TestimonialService{Repo: downTestimonials{}},
		FAQs:         &service.FAQService{Repo: downFAQs{}},
		Locations:    &service.LocationService{Repo: downLocations{}, Settings: settings},
		Contact:      &service.ContactService{Repo: downContact{}},
		Settings:     settings,
		Brand: config.BrandConfig{
			Name:           "Tiffany Sparkles",
			WhatsAppNumber: "+910000000000",
			OrderMessage:   "I want to order",
			ProductMessage: "Hi, I'm interested in the {product} ({price}). Can I place an order?",
		},
	}
}

func TestLoadFallsBackEverywhere(t *testing.T) {
	p := downLoader().Load(context.Background())

	if p.Hero.Title != model.DefaultHero().Title {
		t.Errorf("expected fallback hero, got %q", p.Hero.Title)
	}
	if len(p.Testimonials) != len(model.DefaultTestimonials()) {
		t.Errorf("expected fallback testimonials, got %d", len(p.Testimonials))
	}
	if len(p.FAQs) != len(model.DefaultFAQs()) {
		t.Errorf("expected fallback faqs, got %d", len(p.FAQs))
	}
	if p.Contact.Email != model.DefaultContactSettings().Email {
		t.Errorf("expected fallback contact, got %q", p.Contact.Email)
	}
	if p.Logo.Alt != "Tiffany Sparkles" {
		t.Errorf("expected fallback logo alt, got %q", p.Logo.Alt)
	}
	if len(p.Map.Markers) != 0 || !p.Map.NeedsKey {
		t.Errorf("expected empty map asking for a key, got %+v", p.Map)
	}
	// fallback contact number wins over the configured one
	if !strings.HasPrefix(p.Links.Order, "https://wa.me/919876543210?text=") {
		t.Errorf("unexpected order link %q", p.Links.Order)
	}
	if len(p.ProductCards) != 3 || !strings.Contains(p.ProductCards[0].OrderURL, "Premium%20Multi-Surface%20Cloth") {
		t.Errorf("unexpected product cards %+v", p.ProductCards)
	}
}

func TestRenderPages(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	p := downLoader().Load(context.Background())

	var buf bytes.Buffer
	if err := r.Render(&buf, "index.html", p); err != nil {
		t.Fatalf("render index: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Premium Microfiber Excellence", "Order Now", `id="map-data"`, "Priya Sharma"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected landing page to contain %q", want)
		}
	}

	buf.Reset()
	if err := r.Render(&buf, "privacy.html", PrivacyPage{Brand: "Tiffany Sparkles", Updated: "January 2025", Contact: p.Contact, Mailto: p.Links.Mailto}); err != nil {
		t.Fatalf("render privacy: %v", err)
	}
	buf.Reset()
	if err := r.Render(&buf, "login.html", LoginPage{Brand: "Tiffany Sparkles", Next: "/admin"}); err != nil {
		t.Fatalf("render login: %v", err)
	}
	buf.Reset()
	if err := r.Render(&buf, "admin.html", DashboardPage{Brand: "Tiffany Sparkles", Email: "a@b.c", Sections: model.Sections}); err != nil {
		t.Fatalf("render dashboard: %v", err)
	}
	if !strings.Contains(buf.String(), `<option value="marketing_section">`) {
		t.Error("expected a section option per editable section")
	}
}
