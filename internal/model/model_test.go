package model_test

import (
	"testing"

	"github.com/unclebandit/sparkles-site/internal/model"
)

func floatPtr(f float64) *float64 { return &f }

func TestHasCoordinates(t *testing.T) {
	cases := []struct {
		name string
		loc  model.StoreLocation
		want bool
	}{
		{"both", model.StoreLocation{Latitude: floatPtr(19.05), Longitude: floatPtr(72.82)}, true},
		{"lat only", model.StoreLocation{Latitude: floatPtr(19.05)}, false},
		{"lng only", model.StoreLocation{Longitude: floatPtr(72.82)}, false},
		{"neither", model.StoreLocation{}, false},
	}
	for _, tc := range cases {
		if got := tc.loc.HasCoordinates(); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestTestimonialValidate(t *testing.T) {
	ok := model.Testimonial{Name: "Asha", Message: "Great", Rating: 5}
	if err := ok.Validate(); err != nil {
		t.Fatalf("expected valid testimonial, got %v", err)
	}

	bad := model.Testimonial{Name: "", Message: "Great", Rating: 7}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected validation error for missing name and rating out of range")
	}
}

func TestStoreLocationValidateRejectsOutOfRangeLatitude(t *testing.T) {
	loc := model.StoreLocation{Name: "Shop", Address: "MG Road", Latitude: floatPtr(120)}
	if err := loc.Validate(); err == nil {
		t.Fatal("expected latitude range error")
	}
}

func TestContactSettingsValidateAllowsEmptyOptionalFields(t *testing.T) {
	cs := model.ContactSettings{}
	if err := cs.Validate(); err != nil {
		t.Fatalf("expected empty settings to be valid, got %v", err)
	}
	cs.Email = "not-an-email"
	if err := cs.Validate(); err == nil {
		t.Fatal("expected invalid email to be rejected")
	}
}

func TestDefaultsAreNonEmpty(t *testing.T) {
	if len(model.DefaultTestimonials()) == 0 || len(model.DefaultFAQs()) == 0 || len(model.DefaultLocations()) == 0 {
		t.Fatal("expected non-empty fallback lists")
	}
	for i, f := range model.DefaultFAQs() {
		if f.OrderIndex != i+1 {
			t.Errorf("expected FAQ %d to have order %d, got %d", i, i+1, f.OrderIndex)
		}
	}
	for _, l := range model.DefaultLocations() {
		if l.HasCoordinates() {
			t.Errorf("fallback location %q should not carry coordinates", l.Name)
		}
	}
}
