package main

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/unclebandit/sparkles-site/internal/config"
	"github.com/unclebandit/sparkles-site/internal/model"
)

type memContent struct {
	rows map[string]*model.ContentSection
}

func (m *memContent) GetBySection(ctx context.Context, name string) (*model.ContentSection, error) {
	return m.rows[name], nil
}
func (m *memContent) Insert(ctx context.Context, s *model.ContentSection) error {
	m.rows[s.SectionName] = s
	return nil
}
func (m *memContent) Update(ctx context.Context, s *model.ContentSection) error { return nil }
func (m *memContent) List(ctx context.Context) ([]*model.ContentSection, error) {
	return nil, nil
}

type memTestimonials struct{ rows []*model.Testimonial }

func (m *memTestimonials) ListActive(ctx context.Context) ([]*model.Testimonial, error) {
	return m.rows, nil
}
func (m *memTestimonials) ListAll(ctx context.Context) ([]*model.Testimonial, error) {
	return m.rows, nil
}
func (m *memTestimonials) Insert(ctx context.Context, t *model.Testimonial) error {
	m.rows = append(m.rows, t)
	return nil
}
func (m *memTestimonials) Update(ctx context.Context, t *model.Testimonial) error { return nil }
func (m *memTestimonials) Delete(ctx context.Context, id string) error            { return nil }

type memFAQs struct{ rows []*model.FAQ }

func (m *memFAQs) ListActive(ctx context.Context) ([]*model.FAQ, error) { return m.rows, nil }
func (m *memFAQs) ListAll(ctx context.Context) ([]*model.FAQ, error)    { return m.rows, nil }
func (m *memFAQs) Insert(ctx context.Context, f *model.FAQ) error {
	m.rows = append(m.rows, f)
	return nil
}
func (m *memFAQs) Update(ctx context.Context, f *model.FAQ) error  { return nil }
func (m *memFAQs) Delete(ctx context.Context, id string) error     { return nil }
func (m *memFAQs) Reorder(ctx context.Context, ids []string) error { return nil }

type memLocations struct{ rows []*model.StoreLocation }

func (m *memLocations) ListActive(ctx context.Context) ([]*model.StoreLocation, error) {
	return m.rows, nil
}
func (m *memLocations) ListAll(ctx context.Context) ([]*model.StoreLocation, error) {
	return m.rows, nil
}
func (m *memLocations) GetByID(ctx context.Context, id string) (*model.StoreLocation, error) {
	return nil, nil
}
func (m *memLocations) Insert(ctx context.Context, l *model.StoreLocation) error {
	m.rows = append(m.rows, l)
	return nil
}
func (m *memLocations) Update(ctx context.Context, l *model.StoreLocation) error { return nil }
func (m *memLocations) Delete(ctx context.Context, id string) error              { return nil }

type memContact struct {
	row     *model.ContactSettings
	inserts int
}

func (m *memContact) Get(ctx context.Context) (*model.ContactSettings, error) { return m.row, nil }
func (m *memContact) Insert(ctx context.Context, c *model.ContactSettings) error {
	m.inserts++
	m.row = c
	return nil
}
func (m *memContact) Update(ctx context.Context, c *model.ContactSettings) error { return nil }

type memUsers struct{ rows map[string]*model.AdminUser }

func (m *memUsers) GetByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	return m.rows[email], nil
}
func (m *memUsers) Create(ctx context.Context, u *model.AdminUser) error {
	m.rows[u.Email] = u
	return nil
}

func TestSeederIsIdempotent(t *testing.T) {
	s := &Seeder{
		Content:      &memContent{rows: map[string]*model.ContentSection{}},
		Testimonials: &memTestimonials{},
		FAQs:         &memFAQs{},
		Locations:    &memLocations{},
		Contact:      &memContact{},
		Users:        &memUsers{rows: map[string]*model.AdminUser{}},
	}
	admin := config.AdminConfig{Email: "owner@example.com", Password: "changeme"}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := s.Run(ctx, admin); err != nil {
			t.Fatalf("run %d: unexpected error: %v", i+1, err)
		}
	}

	if n := len(s.Content.(*memContent).rows); n != len(model.Sections) {
		t.Errorf("expected %d sections, got %d", len(model.Sections), n)
	}
	if n := len(s.Testimonials.(*memTestimonials).rows); n != len(model.DefaultTestimonials()) {
		t.Errorf("expected testimonials seeded once, got %d", n)
	}
	if n := len(s.FAQs.(*memFAQs).rows); n != len(model.DefaultFAQs()) {
		t.Errorf("expected faqs seeded once, got %d", n)
	}
	if n := len(s.Locations.(*memLocations).rows); n != len(model.DefaultLocations()) {
		t.Errorf("expected locations seeded once, got %d", n)
	}
	if n := s.Contact.(*memContact).inserts; n != 1 {
		t.Errorf("expected one contact row, got %d inserts", n)
	}

	user := s.Users.(*memUsers).rows["owner@example.com"]
	if user == nil || user.Role != model.RoleAdmin {
		t.Fatalf("expected admin user, got %+v", user)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("changeme")); err != nil {
		t.Errorf("expected bcrypt hash of the configured password: %v", err)
	}
}

func TestSeederSkipsAdminWithoutCredentials(t *testing.T) {
	users := &memUsers{rows: map[string]*model.AdminUser{}}
	s := &Seeder{Users: users}
	if err := s.admin(context.Background(), config.AdminConfig{Email: "owner@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users.rows) != 0 {
		t.Error("expected no user without a password")
	}
}
