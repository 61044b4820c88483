// cmd/seeder/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/unclebandit/sparkles-site/internal/auth"
	"github.com/unclebandit/sparkles-site/internal/config"
	"github.com/unclebandit/sparkles-site/internal/db"
	"github.com/unclebandit/sparkles-site/internal/model"
	"github.com/unclebandit/sparkles-site/internal/repository"
)

// Seeder fills empty tables with the site's default content. Rows that
// already exist are never touched, so it is safe to run on every deploy.
type Seeder struct {
	Content      repository.ContentRepositoryInterface
	Testimonials repository.TestimonialRepositoryInterface
	FAQs         repository.FAQRepositoryInterface
	Locations    repository.LocationRepositoryInterface
	Contact      repository.ContactSettingsRepositoryInterface
	Users        repository.AdminUserRepositoryInterface
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	conn, err := db.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()
	if err := db.Migrate(ctx, conn); err != nil {
		log.Fatal(err)
	}

	s := &Seeder{
		Content:      &repository.ContentRepository{DB: conn},
		Testimonials: &repository.TestimonialRepository{DB: conn},
		FAQs:         &repository.FAQRepository{DB: conn},
		Locations:    &repository.LocationRepository{DB: conn},
		Contact:      &repository.ContactSettingsRepository{DB: conn},
		Users:        &repository.AdminUserRepository{DB: conn},
	}
	if err := s.Run(ctx, cfg.Admin); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Database seeding completed successfully!")
}

func (s *Seeder) Run(ctx context.Context, admin config.AdminConfig) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"sections", s.sections},
		{"testimonials", s.testimonials},
		{"faqs", s.faqs},
		{"store locations", s.locations},
		{"contact settings", s.contact},
	}
	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
	}
	if err := s.admin(ctx, admin); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	return nil
}

func (s *Seeder) sections(ctx context.Context) error {
	defaults := map[string]any{
		model.SectionHero:       model.DefaultHero(),
		model.SectionAbout:      model.DefaultAbout(),
		model.SectionProducts:   model.DefaultProducts(),
		model.SectionHighlights: model.DefaultHighlights(),
		model.SectionMarketing:  model.DefaultMarketing(),
	}
	for _, name := range model.Sections {
		existing, err := s.Content.GetBySection(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		raw, err := json.Marshal(defaults[name])
		if err != nil {
			return err
		}
		if err := s.Content.Insert(ctx, &model.ContentSection{SectionName: name, Content: raw}); err != nil {
			return err
		}
		fmt.Printf("Seeded: section %s\n", name)
	}
	return nil
}

func (s *Seeder) testimonials(ctx context.Context) error {
	existing, err := s.Testimonials.ListAll(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}
	for _, t := range model.DefaultTestimonials() {
		if err := s.Testimonials.Insert(ctx, &t); err != nil {
			return err
		}
	}
	fmt.Println("Seeded: testimonials")
	return nil
}

func (s *Seeder) faqs(ctx context.Context) error {
	existing, err := s.FAQs.ListAll(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}
	for _, f := range model.DefaultFAQs() {
		if err := s.FAQs.Insert(ctx, &f); err != nil {
			return err
		}
	}
	fmt.Println("Seeded: faqs")
	return nil
}

func (s *Seeder) locations(ctx context.Context) error {
	existing, err := s.Locations.ListAll(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}
	for _, l := range model.DefaultLocations() {
		if err := s.Locations.Insert(ctx, &l); err != nil {
			return err
		}
	}
	fmt.Println("Seeded: store locations")
	return nil
}

func (s *Seeder) contact(ctx context.Context) error {
	existing, err := s.Contact.Get(ctx)
	if err != nil || existing != nil {
		return err
	}
	c := model.DefaultContactSettings()
	if err := s.Contact.Insert(ctx, &c); err != nil {
		return err
	}
	fmt.Println("Seeded: contact settings")
	return nil
}

// admin creates the configured admin account when it does not exist yet.
func (s *Seeder) admin(ctx context.Context, cfg config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		log.Println("⚠️ ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin user")
		return nil
	}
	existing, err := s.Users.GetByEmail(ctx, cfg.Email)
	if err != nil || existing != nil {
		return err
	}
	hash, err := auth.HashPassword(cfg.Password)
	if err != nil {
		return err
	}
	if err := s.Users.Create(ctx, &model.AdminUser{Email: cfg.Email, PasswordHash: hash, Role: model.RoleAdmin}); err != nil {
		return err
	}
	fmt.Printf("Seeded: admin user %s\n", cfg.Email)
	return nil
}
