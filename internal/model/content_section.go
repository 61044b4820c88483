// internal/model/content_section.go
package model

import (
	"encoding/json"
	"time"
)

const (
	SectionHero       = "hero"
	SectionAbout      = "about_section"
	SectionProducts   = "featured_products"
	SectionHighlights = "product_highlights"
	SectionMarketing  = "marketing_section"
)

// Sections lists every editable page region in display order.
var Sections = []string{
	SectionHero,
	SectionProducts,
	SectionHighlights,
	SectionMarketing,
	SectionAbout,
}

func IsKnownSection(name string) bool {
	for _, s := range Sections {
		if s == name {
			return true
		}
	}
	return false
}

type ContentSection struct {
	ID          string          `db:"id" json:"id"`
	SectionName string          `db:"section_name" json:"section_name"`
	Content     json.RawMessage `db:"content" json:"content"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

type HeroContent struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type Stat struct {
	Number string `json:"number"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
}

type AboutContent struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Images      []string `json:"images,omitempty"`
	Stats       []Stat   `json:"stats"`
}

type Product struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Images      []string `json:"images,omitempty"`
	Rating      float64  `json:"rating"`
	Price       string   `json:"price"`
}

// PrimaryImage is the image shown before any carousel interaction.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

type ProductsContent struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Products    []Product `json:"products"`
}

type HighlightItem struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images,omitempty"`
	Type        string   `json:"type"`
}

type HighlightsContent struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Items       []HighlightItem `json:"items"`
}

const (
	MediaImage = "image"
	MediaVideo = "video"
)

type MarketingItem struct {
	Type     string `json:"type"`
	Src      string `json:"src"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Overlay  bool   `json:"overlay"`
}

func (m MarketingItem) IsVideo() bool {
	return m.Type == MediaVideo
}

type MarketingContent struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Items       []MarketingItem `json:"items"`
}
