package site

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/unclebandit/sparkles-site/internal/config"
	"github.com/unclebandit/sparkles-site/internal/links"
	"github.com/unclebandit/sparkles-site/internal/mapview"
	"github.com/unclebandit/sparkles-site/internal/model"
	"github.com/unclebandit/sparkles-site/internal/service"
)

type ProductCard struct {
	model.Product
	OrderURL string `json:"order_url"`
}

type Links struct {
	Order     string `json:"order"`
	Help      string `json:"help"`
	Inquiry   string `json:"inquiry"`
	Tel       string `json:"tel"`
	Mailto    string `json:"mailto"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	TikTok    string `json:"tiktok"`
}

// Page is everything the landing page shows.
type Page struct {
	Brand        string                  `json:"brand"`
	Logo         model.LogoSetting       `json:"logo"`
	Hero         model.HeroContent       `json:"hero"`
	About        model.AboutContent      `json:"about"`
	Products     model.ProductsContent   `json:"products"`
	ProductCards []ProductCard           `json:"product_cards"`
	Highlights   model.HighlightsContent `json:"highlights"`
	Marketing    model.MarketingContent  `json:"marketing"`
	Testimonials []*model.Testimonial    `json:"testimonials"`
	FAQs         []*model.FAQ            `json:"faqs"`
	Locations    []*model.StoreLocation  `json:"locations"`
	Contact      model.ContactSettings   `json:"contact"`
	Map          mapview.View            `json:"map"`
	Links        Links                   `json:"links"`
}

type Loader struct {
	Content      *service.ContentService
	Testimonials *service.TestimonialService
	FAQs         *service.FAQService
	Locations    *service.LocationService
	Contact      *service.ContactService
	Settings     *service.SettingsService
	Brand        config.BrandConfig
}

// Load fetches every page region concurrently. Each region falls back on
// its own, so one failing fetch never affects another.
func (l *Loader) Load(ctx context.Context) Page {
	p := Page{Brand: l.Brand.Name}
	var mapKey string

	var g errgroup.Group
	g.Go(func() error { p.Logo = l.Settings.Logo(ctx); return nil })
	g.Go(func() error { mapKey = l.Settings.MapsAPIKey(ctx); return nil })
	g.Go(func() error { p.Hero = l.Content.Hero(ctx); return nil })
	g.Go(func() error { p.About = l.Content.About(ctx); return nil })
	g.Go(func() error { p.Products = l.Content.Products(ctx); return nil })
	g.Go(func() error { p.Highlights = l.Content.Highlights(ctx); return nil })
	g.Go(func() error { p.Marketing = l.Content.Marketing(ctx); return nil })
	g.Go(func() error { p.Testimonials = l.Testimonials.Public(ctx); return nil })
	g.Go(func() error { p.FAQs = l.FAQs.Public(ctx); return nil })
	g.Go(func() error { p.Locations = l.Locations.Public(ctx); return nil })
	g.Go(func() error { p.Contact = l.Contact.Public(ctx); return nil })
	_ = g.Wait()

	number := l.WhatsAppNumber(p.Contact)
	p.Links = Links{
		Order:     links.WhatsApp(number, l.Brand.OrderMessage),
		Help:      links.WhatsApp(number, l.Brand.HelpMessage),
		Inquiry:   links.WhatsApp(number, l.Brand.InquiryMessage),
		Tel:       links.Tel(p.Contact.Phone),
		Mailto:    links.Mailto(p.Contact.Email),
		Instagram: p.Contact.InstagramURL,
		Facebook:  p.Contact.FacebookURL,
		TikTok:    p.Contact.TikTokURL,
	}
	p.ProductCards = make([]ProductCard, 0, len(p.Products.Products))
	for _, prod := range p.Products.Products {
		p.ProductCards = append(p.ProductCards, ProductCard{
			Product:  prod,
			OrderURL: links.WhatsApp(number, service.ProductMessage(l.Brand.ProductMessage, prod)),
		})
	}
	p.Map = mapview.Build(p.Locations, mapKey)
	return p
}

// WhatsAppNumber prefers the number from contact settings over the configured one.
func (l *Loader) WhatsAppNumber(c model.ContactSettings) string {
	if links.Digits(c.WhatsAppNumber) != "" {
		return c.WhatsAppNumber
	}
	return l.Brand.WhatsAppNumber
}

// Map builds the store locator view on its own, for the JSON API.
func (l *Loader) Map(ctx context.Context) mapview.View {
	return mapview.Build(l.Locations.Public(ctx), l.Settings.MapsAPIKey(ctx))
}
