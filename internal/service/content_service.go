package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"

	appErrors "github.com/unclebandit/sparkles-site/internal/errors"
	"github.com/unclebandit/sparkles-site/internal/model"
	"github.com/unclebandit/sparkles-site/internal/repository"
)

type ContentService struct {
	ContentRepo repository.ContentRepositoryInterface
}

// hasObject reports whether the row holds a JSON object. Rows of null,
// arrays or scalars count as empty.
func hasObject(s *model.ContentSection) bool {
	if s == nil {
		return false
	}
	raw := bytes.TrimSpace(s.Content)
	return len(raw) > 0 && raw[0] == '{' && json.Valid(raw)
}

// loadSection decodes the stored payload for name into T. Any store error,
// missing row or undecodable payload yields fallback.
func loadSection[T any](ctx context.Context, repo repository.ContentRepositoryInterface, name string, fallback T) T {
	s, err := repo.GetBySection(ctx, name)
	if err != nil {
		log.Printf("⚠️ failed to load section %s, using fallback: %v", name, err)
		return fallback
	}
	if !hasObject(s) {
		if s != nil {
			log.Printf("⚠️ section %s holds no object, using fallback", name)
		}
		return fallback
	}
	var out T
	if err := json.Unmarshal(s.Content, &out); err != nil {
		log.Printf("⚠️ section %s holds unreadable content, using fallback: %v", name, err)
		return fallback
	}
	return out
}

func (s *ContentService) Hero(ctx context.Context) model.HeroContent {
	return loadSection(ctx, s.ContentRepo, model.SectionHero, model.DefaultHero())
}

func (s *ContentService) About(ctx context.Context) model.AboutContent {
	return loadSection(ctx, s.ContentRepo, model.SectionAbout, model.DefaultAbout())
}

func (s *ContentService) Products(ctx context.Context) model.ProductsContent {
	return loadSection(ctx, s.ContentRepo, model.SectionProducts, model.DefaultProducts())
}

func (s *ContentService) Highlights(ctx context.Context) model.HighlightsContent {
	return loadSection(ctx, s.ContentRepo, model.SectionHighlights, model.DefaultHighlights())
}

func (s *ContentService) Marketing(ctx context.Context) model.MarketingContent {
	return loadSection(ctx, s.ContentRepo, model.SectionMarketing, model.DefaultMarketing())
}

func sectionFallback(name string) any {
	switch name {
	case model.SectionHero:
		return model.DefaultHero()
	case model.SectionAbout:
		return model.DefaultAbout()
	case model.SectionProducts:
		return model.DefaultProducts()
	case model.SectionHighlights:
		return model.DefaultHighlights()
	case model.SectionMarketing:
		return model.DefaultMarketing()
	}
	return nil
}

// Get returns the stored payload for the admin editor, or the fallback
// encoded as JSON when nothing has been saved yet.
func (s *ContentService) Get(ctx context.Context, section string) (json.RawMessage, error) {
	if !model.IsKnownSection(section) {
		return nil, appErrors.NewNotFound("section", section)
	}
	stored, err := s.ContentRepo.GetBySection(ctx, section)
	if err != nil {
		return nil, err
	}
	if hasObject(stored) {
		return stored.Content, nil
	}
	return json.Marshal(sectionFallback(section))
}

// Save updates the section row when one exists and inserts it otherwise.
func (s *ContentService) Save(ctx context.Context, section string, raw json.RawMessage) (*model.ContentSection, error) {
	if !model.IsKnownSection(section) {
		return nil, appErrors.NewValidation("section", fmt.Errorf("unknown section %q", section))
	}
	if err := validateSectionPayload(section, raw); err != nil {
		return nil, err
	}

	existing, err := s.ContentRepo.GetBySection(ctx, section)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Content = raw
		if err := s.ContentRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		log.Printf("✅ Section %s updated", section)
		return existing, nil
	}

	created := &model.ContentSection{SectionName: section, Content: raw}
	if err := s.ContentRepo.Insert(ctx, created); err != nil {
		return nil, err
	}
	log.Printf("✅ Section %s created", section)
	return created, nil
}

// Section returns the payload shown on the public site. Store problems
// yield the fallback; only an unknown section is an error.
func (s *ContentService) Section(ctx context.Context, section string) (json.RawMessage, error) {
	if !model.IsKnownSection(section) {
		return nil, appErrors.NewNotFound("section", section)
	}
	stored, err := s.ContentRepo.GetBySection(ctx, section)
	if err != nil {
		log.Printf("⚠️ failed to load section %s, using fallback: %v", section, err)
	} else if hasObject(stored) {
		return stored.Content, nil
	}
	return json.Marshal(sectionFallback(section))
}
