package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	appErrors "github.com/unclebandit/sparkles-site/internal/errors"
	"github.com/unclebandit/sparkles-site/internal/model"
	"github.com/unclebandit/sparkles-site/internal/repository"
)

// checkID rejects ids postgres would refuse to cast to uuid.
func checkID(entity, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return appErrors.NewNotFound(entity, id)
	}
	return nil
}

// checkItemID accepts an empty id (insert) or a well-formed one (update).
func checkItemID(entity, id string) error {
	if id == "" {
		return nil
	}
	return checkID(entity, id)
}

func itemError(i int, err error) error {
	if err == nil {
		return nil
	}
	return appErrors.NewValidation(fmt.Sprintf("items[%d]", i), err)
}

// ====================== Testimonials ======================

type TestimonialService struct {
	Repo repository.TestimonialRepositoryInterface
}

// Public returns active testimonials, or the fallback set when the store
// fails or has none.
func (s *TestimonialService) Public(ctx context.Context) []*model.Testimonial {
	items, err := s.Repo.ListActive(ctx)
	if err != nil {
		log.Println("⚠️ failed to load testimonials, using fallback:", err)
	}
	if err != nil || len(items) == 0 {
		return toPtrs(model.DefaultTestimonials())
	}
	return items
}

func (s *TestimonialService) Admin(ctx context.Context) ([]*model.Testimonial, error) {
	return s.Repo.ListAll(ctx)
}

func (s *TestimonialService) SaveAll(ctx context.Context, items []*model.Testimonial) ([]*model.Testimonial, error) {
	for i, t := range items {
		if t == nil {
			return nil, itemError(i, errors.New("empty item"))
		}
		if err := t.Validate(); err != nil {
			return nil, itemError(i, err)
		}
		if err := checkItemID("testimonial", t.ID); err != nil {
			return nil, err
		}
	}
	for _, t := range items {
		var err error
		if t.ID != "" {
			err = s.Repo.Update(ctx, t)
		} else {
			err = s.Repo.Insert(ctx, t)
		}
		if err != nil {
			return nil, err
		}
	}
	return s.Repo.ListAll(ctx)
}

func (s *TestimonialService) Delete(ctx context.Context, id string) error {
	if err := checkID("testimonial", id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

// ====================== FAQs ======================

type FAQService struct {
	Repo repository.FAQRepositoryInterface
}

func (s *FAQService) Public(ctx context.Context) []*model.FAQ {
	items, err := s.Repo.ListActive(ctx)
	if err != nil {
		log.Println("⚠️ failed to load faqs, using fallback:", err)
	}
	if err != nil || len(items) == 0 {
		return toPtrs(model.DefaultFAQs())
	}
	return items
}

func (s *FAQService) Admin(ctx context.Context) ([]*model.FAQ, error) {
	return s.Repo.ListAll(ctx)
}

// SaveAll appends new FAQs after the highest order index among the stored
// rows and the submitted ones. Rows left out of items are kept.
func (s *FAQService) SaveAll(ctx context.Context, items []*model.FAQ) ([]*model.FAQ, error) {
	maxOrder := 0
	for i, f := range items {
		if f == nil {
			return nil, itemError(i, errors.New("empty item"))
		}
		if err := f.Validate(); err != nil {
			return nil, itemError(i, err)
		}
		if err := checkItemID("faq", f.ID); err != nil {
			return nil, err
		}
		if f.OrderIndex > maxOrder {
			maxOrder = f.OrderIndex
		}
	}
	stored, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range stored {
		if f.OrderIndex > maxOrder {
			maxOrder = f.OrderIndex
		}
	}
	for _, f := range items {
		var err error
		if f.ID != "" {
			err = s.Repo.Update(ctx, f)
		} else {
			if f.OrderIndex == 0 {
				maxOrder++
				f.OrderIndex = maxOrder
			}
			err = s.Repo.Insert(ctx, f)
		}
		if err != nil {
			return nil, err
		}
	}
	return s.Repo.ListAll(ctx)
}

func (s *FAQService) Delete(ctx context.Context, id string) error {
	if err := checkID("faq", id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

// Reorder assigns order 1..n in the given id order.
func (s *FAQService) Reorder(ctx context.Context, ids []string) ([]*model.FAQ, error) {
	if len(ids) == 0 {
		return nil, appErrors.NewValidation("ids", errors.New("cannot be blank"))
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if err := checkID("faq", id); err != nil {
			return nil, err
		}
		if seen[id] {
			return nil, appErrors.NewValidation("ids", fmt.Errorf("duplicate id %s", id))
		}
		seen[id] = true
	}
	if err := s.Repo.Reorder(ctx, ids); err != nil {
		return nil, err
	}
	return s.Repo.ListAll(ctx)
}

// ====================== Store locations ======================

// Geocoder fills a location's coordinates from its address.
type Geocoder interface {
	ApplyToLocation(ctx context.Context, loc *model.StoreLocation, apiKey string) error
}

type LocationService struct {
	Repo     repository.LocationRepositoryInterface
	Geocoder Geocoder
	Settings *SettingsService
}

func (s *LocationService) Public(ctx context.Context) []*model.StoreLocation {
	items, err := s.Repo.ListActive(ctx)
	if err != nil {
		log.Println("⚠️ failed to load store locations, using fallback:", err)
	}
	if err != nil || len(items) == 0 {
		return toPtrs(model.DefaultLocations())
	}
	return items
}

func (s *LocationService) Admin(ctx context.Context) ([]*model.StoreLocation, error) {
	return s.Repo.ListAll(ctx)
}

func (s *LocationService) SaveAll(ctx context.Context, items []*model.StoreLocation) ([]*model.StoreLocation, error) {
	for i, l := range items {
		if l == nil {
			return nil, itemError(i, errors.New("empty item"))
		}
		if strings.TrimSpace(l.StoreType) == "" {
			l.StoreType = model.DefaultStoreType
		}
		if err := l.Validate(); err != nil {
			return nil, itemError(i, err)
		}
		if err := checkItemID("store location", l.ID); err != nil {
			return nil, err
		}
	}
	for _, l := range items {
		var err error
		if l.ID != "" {
			err = s.Repo.Update(ctx, l)
		} else {
			err = s.Repo.Insert(ctx, l)
		}
		if err != nil {
			return nil, err
		}
	}
	return s.Repo.ListAll(ctx)
}

func (s *LocationService) Delete(ctx context.Context, id string) error {
	if err := checkID("store location", id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

// Geocode resolves the stored location's address and saves the coordinates.
// On failure the row is left untouched.
func (s *LocationService) Geocode(ctx context.Context, id string) (*model.StoreLocation, error) {
	if err := checkID("store location", id); err != nil {
		return nil, err
	}
	loc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Geocoder.ApplyToLocation(ctx, loc, s.Settings.MapsAPIKey(ctx)); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, loc); err != nil {
		return nil, err
	}
	log.Printf("📍 Location %s geocoded to %.6f, %.6f", loc.ID, *loc.Latitude, *loc.Longitude)
	return loc, nil
}

// GeocodeAddress resolves an address for a row that is not saved yet.
func (s *LocationService) GeocodeAddress(ctx context.Context, address string) (*model.StoreLocation, error) {
	loc := &model.StoreLocation{Address: address}
	if err := s.Geocoder.ApplyToLocation(ctx, loc, s.Settings.MapsAPIKey(ctx)); err != nil {
		return nil, err
	}
	return loc, nil
}

func toPtrs[T any](in []T) []*T {
	out := make([]*T, len(in))
	for i := range in {
		out[i] = &in[i]
	}
	return out
}
