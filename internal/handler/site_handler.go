// internal/handler/site_handler.go
package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/sparkles-site/internal/auth"
	"github.com/unclebandit/sparkles-site/internal/config"
	"github.com/unclebandit/sparkles-site/internal/controller"
	appErrors "github.com/unclebandit/sparkles-site/internal/errors"
	"github.com/unclebandit/sparkles-site/internal/links"
	"github.com/unclebandit/sparkles-site/internal/model"
	"github.com/unclebandit/sparkles-site/internal/service"
	"github.com/unclebandit/sparkles-site/internal/site"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// SiteHandler serves the public pages and the read-only JSON API.
type SiteHandler struct {
	Loader    *site.Loader
	Renderer  *site.Renderer
	Inquiries *service.InquiryService
	Auth      *auth.Service
	Brand     config.BrandConfig
	DB        Pinger
}

// Routes registers the public surface on r.
func (h *SiteHandler) Routes(r chi.Router) {
	r.Get("/", h.Index)
	r.Get("/privacy", h.Privacy)
	r.Get("/healthz", h.Healthz)
	r.Get(auth.LoginPath, h.LoginPage)
	r.With(h.Auth.Middleware).Get(auth.DashboardPath, h.Dashboard)

	r.Route("/api", func(r chi.Router) {
		r.Get("/site", h.SiteData)
		r.Get("/sections/{name}", h.Section)
		r.Get("/testimonials", h.Testimonials)
		r.Get("/faqs", h.FAQs)
		r.Get("/locations", h.Locations)
		r.Get("/contact", h.Contact)
		r.Get("/map", h.Map)
		r.Get("/links/whatsapp", h.WhatsAppLink)
		r.Post("/contact-messages", h.SubmitContact)
		r.Post("/subscribers", h.Subscribe)
	})
}

func (h *SiteHandler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Renderer.Render(w, name, data); err != nil {
		log.Printf("❌ failed to render %s: %v", name, err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

func (h *SiteHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", h.Loader.Load(r.Context()))
}

func (h *SiteHandler) Privacy(w http.ResponseWriter, r *http.Request) {
	contact := h.Loader.Contact.Public(r.Context())
	h.render(w, "privacy.html", site.PrivacyPage{
		Brand:   h.Brand.Name,
		Updated: time.Now().Format("January 2, 2006"),
		Contact: contact,
		Mailto:  links.Mailto(contact.Email),
	})
}

// LoginPage shows the sign-in form, or skips it for a signed-in admin.
func (h *SiteHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	next := safeNext(r.URL.Query().Get("next"))
	if _, ok := h.Auth.CurrentEmail(r); ok {
		http.Redirect(w, r, next, http.StatusFound)
		return
	}
	h.render(w, "login.html", site.LoginPage{Brand: h.Brand.Name, Next: next})
}

// safeNext only allows same-site paths; anything else lands on the dashboard.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return auth.DashboardPath
	}
	return next
}

// Dashboard serves the admin editors. Middleware has already checked the
// session.
func (h *SiteHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	email, _ := h.Auth.CurrentEmail(r)
	h.render(w, "admin.html", site.DashboardPage{
		Brand:    h.Brand.Name,
		Email:    email,
		Sections: model.Sections,
	})
}

func (h *SiteHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	if h.DB != nil {
		if err := h.DB.PingContext(r.Context()); err != nil {
			log.Println("⚠️ health check failed:", err)
			controller.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
	}
	controller.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ====================== JSON reads ======================

func (h *SiteHandler) SiteData(w http.ResponseWriter, r *http.Request) {
	controller.RespondJSON(w, http.StatusOK, h.Loader.Load(r.Context()))
}

func (h *SiteHandler) Section(w http.ResponseWriter, r *http.Request) {
	raw, err := h.Loader.Content.Section(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		controller.RespondError(w, err)
		return
	}
	controller.RespondJSON(w, http.StatusOK, raw)
}

func (h *SiteHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	controller.RespondJSON(w, http.StatusOK, h.Loader.Testimonials.Public(r.Context()))
}

func (h *SiteHandler) FAQs(w http.ResponseWriter, r *http.Request) {
	controller.RespondJSON(w, http.StatusOK, h.Loader.FAQs.Public(r.Context()))
}

func (h *SiteHandler) Locations(w http.ResponseWriter, r *http.Request) {
	controller.RespondJSON(w, http.StatusOK, h.Loader.Locations.Public(r.Context()))
}

func (h *SiteHandler) Contact(w http.ResponseWriter, r *http.Request) {
	controller.RespondJSON(w, http.StatusOK, h.Loader.Contact.Public(r.Context()))
}

func (h *SiteHandler) Map(w http.ResponseWriter, r *http.Request) {
	controller.RespondJSON(w, http.StatusOK, h.Loader.Map(r.Context()))
}

// WhatsAppLink builds the chat link for ?text= against the site's number.
func (h *SiteHandler) WhatsAppLink(w http.ResponseWriter, r *http.Request) {
	number := h.Loader.WhatsAppNumber(h.Loader.Contact.Public(r.Context()))
	controller.RespondJSON(w, http.StatusOK, map[string]string{
		"url": links.WhatsApp(number, r.URL.Query().Get("text")),
	})
}

// ====================== Visitor submissions ======================

func (h *SiteHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	f, err := readFields(r, "name", "email", "message")
	if err != nil {
		controller.RespondError(w, err)
		return
	}
	msg, err := h.Inquiries.SubmitContact(r.Context(), f["name"], f["email"], f["message"])
	if err != nil {
		controller.RespondError(w, err)
		return
	}
	controller.RespondJSON(w, http.StatusAccepted, map[string]string{
		"id":     msg.ID,
		"status": msg.Status,
	})
}

func (h *SiteHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	f, err := readFields(r, "email")
	if err != nil {
		controller.RespondError(w, err)
		return
	}
	if _, err := h.Inquiries.Subscribe(r.Context(), f["email"]); err != nil {
		controller.RespondError(w, err)
		return
	}
	controller.RespondJSON(w, http.StatusCreated, map[string]string{"status": "subscribed"})
}

// readFields takes the named string fields from a JSON body, or from a
// plain form post when the browser runs without scripts.
func readFields(r *http.Request, names ...string) (map[string]string, error) {
	out := make(map[string]string, len(names))
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return nil, appErrors.NewValidation("body", err)
		}
		for _, n := range names {
			out[n] = r.PostForm.Get(n)
		}
		return out, nil
	}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, appErrors.NewValidation("body", err)
	}
	for _, n := range names {
		if v, ok := body[n].(string); ok {
			out[n] = v
		}
	}
	return out, nil
}
