// internal/controller/admin_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/sparkles-site/internal/auth"
	appErrors "github.com/unclebandit/sparkles-site/internal/errors"
	"github.com/unclebandit/sparkles-site/internal/media"
	"github.com/unclebandit/sparkles-site/internal/model"
	"github.com/unclebandit/sparkles-site/internal/service"
)

// multipart bodies beyond this are spooled to disk by net/http
const multipartMemory = 8 << 20

type AdminController struct {
	Auth         *auth.Service
	Content      *service.ContentService
	Testimonials *service.TestimonialService
	FAQs         *service.FAQService
	Locations    *service.LocationService
	Contact      *service.ContactService
	Settings     *service.SettingsService
	Inquiries    *service.InquiryService
	Uploader     *media.Uploader
}

// Routes returns the /admin/api router. Everything except login sits
// behind the session middleware.
func (c *AdminController) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/login", c.Login)

	r.Group(func(r chi.Router) {
		r.Use(c.Auth.Middleware)

		r.Post("/logout", c.Logout)
		r.Get("/me", c.Me)

		r.Get("/sections/{name}", c.GetSection)
		r.Put("/sections/{name}", c.SaveSection)

		r.Get("/testimonials", c.ListTestimonials)
		r.Put("/testimonials", c.SaveTestimonials)
		r.Delete("/testimonials/{id}", c.DeleteTestimonial)

		r.Get("/faqs", c.ListFAQs)
		r.Put("/faqs", c.SaveFAQs)
		r.Post("/faqs/reorder", c.ReorderFAQs)
		r.Delete("/faqs/{id}", c.DeleteFAQ)

		r.Get("/locations", c.ListLocations)
		r.Put("/locations", c.SaveLocations)
		r.Delete("/locations/{id}", c.DeleteLocation)
		r.Post("/locations/{id}/geocode", c.GeocodeLocation)
		r.Post("/geocode", c.GeocodeAddress)

		r.Get("/contact", c.GetContact)
		r.Put("/contact", c.SaveContact)

		r.Get("/settings/logo", c.GetLogo)
		r.Put("/settings/logo", c.SaveLogo)
		r.Delete("/settings/logo", c.DeleteLogo)
		r.Get("/settings/maps-key", c.GetMapsKey)
		r.Put("/settings/maps-key", c.SaveMapsKey)

		r.Post("/uploads/{bucket}", c.Upload)
		r.Delete("/uploads/{bucket}", c.DeleteUpload)

		r.Get("/contact-messages", c.ListMessages)
		r.Get("/subscribers", c.ListSubscribers)
	})
	return r
}

// ====================== Session ======================

func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &body); err != nil {
		RespondError(w, err)
		return
	}

	user, err := c.Auth.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		RespondError(w, err)
		return
	}
	if err := c.Auth.StartSession(w, r, user); err != nil {
		RespondError(w, err)
		return
	}
	log.Println("🔐 Admin signed in:", user.Email)
	RespondJSON(w, http.StatusOK, map[string]string{"email": user.Email})
}

func (c *AdminController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.Auth.EndSession(w, r); err != nil {
		RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *AdminController) Me(w http.ResponseWriter, r *http.Request) {
	email, _ := c.Auth.CurrentEmail(r)
	RespondJSON(w, http.StatusOK, map[string]string{"email": email})
}

// ====================== Sections ======================

func (c *AdminController) GetSection(w http.ResponseWriter, r *http.Request) {
	raw, err := c.Content.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, raw)
}

func (c *AdminController) SaveSection(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := decodeJSON(r, &raw); err != nil {
		RespondError(w, err)
		return
	}
	saved, err := c.Content.Save(r.Context(), chi.URLParam(r, "name"), raw)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, saved)
}

// ====================== Testimonials ======================

func (c *AdminController) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	items, err := c.Testimonials.Admin(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, items)
}

func (c *AdminController) SaveTestimonials(w http.ResponseWriter, r *http.Request) {
	var items []*model.Testimonial
	if err := decodeJSON(r, &items); err != nil {
		RespondError(w, err)
		return
	}
	out, err := c.Testimonials.SaveAll(r.Context(), items)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, out)
}

func (c *AdminController) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	if err := c.Testimonials.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ====================== FAQs ======================

func (c *AdminController) ListFAQs(w http.ResponseWriter, r *http.Request) {
	items, err := c.FAQs.Admin(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, items)
}

func (c *AdminController) SaveFAQs(w http.ResponseWriter, r *http.Request) {
	var items []*model.FAQ
	if err := decodeJSON(r, &items); err != nil {
		RespondError(w, err)
		return
	}
	out, err := c.FAQs.SaveAll(r.Context(), items)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, out)
}

func (c *AdminController) ReorderFAQs(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := decodeJSON(r, &body); err != nil {
		RespondError(w, err)
		return
	}
	out, err := c.FAQs.Reorder(r.Context(), body.IDs)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, out)
}

func (c *AdminController) DeleteFAQ(w http.ResponseWriter, r *http.Request) {
	if err := c.FAQs.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ====================== Locations ======================

func (c *AdminController) ListLocations(w http.ResponseWriter, r *http.Request) {
	items, err := c.Locations.Admin(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, items)
}

func (c *AdminController) SaveLocations(w http.ResponseWriter, r *http.Request) {
	var items []*model.StoreLocation
	if err := decodeJSON(r, &items); err != nil {
		RespondError(w, err)
		return
	}
	out, err := c.Locations.SaveAll(r.Context(), items)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, out)
}

func (c *AdminController) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := c.Locations.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *AdminController) GeocodeLocation(w http.ResponseWriter, r *http.Request) {
	loc, err := c.Locations.Geocode(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, loc)
}

func (c *AdminController) GeocodeAddress(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Address string `json:"address"`
	}
	if err := decodeJSON(r, &body); err != nil {
		RespondError(w, err)
		return
	}
	loc, err := c.Locations.GeocodeAddress(r.Context(), body.Address)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]*float64{
		"latitude":  loc.Latitude,
		"longitude": loc.Longitude,
	})
}

// ====================== Contact settings ======================

func (c *AdminController) GetContact(w http.ResponseWriter, r *http.Request) {
	out, err := c.Contact.Admin(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, out)
}

func (c *AdminController) SaveContact(w http.ResponseWriter, r *http.Request) {
	var body model.ContactSettings
	if err := decodeJSON(r, &body); err != nil {
		RespondError(w, err)
		return
	}
	out, err := c.Contact.Save(r.Context(), &body)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, out)
}

// ====================== Site settings ======================

func (c *AdminController) GetLogo(w http.ResponseWriter, r *http.Request) {
	logo, err := c.Settings.AdminLogo(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, logo)
}

// SaveLogo accepts either a multipart "file" upload or a JSON {url, alt}.
func (c *AdminController) SaveLogo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	current, err := c.Settings.AdminLogo(ctx)
	if err != nil {
		RespondError(w, err)
		return
	}

	var logo model.LogoSetting
	if isMultipart(r) {
		fh, err := c.formFile(w, r)
		if err != nil {
			RespondError(w, err)
			return
		}
		up, err := c.Uploader.UploadLogo(ctx, fh, current.URL)
		if err != nil {
			RespondError(w, err)
			return
		}
		logo = model.LogoSetting{URL: up.URL, Alt: r.FormValue("alt")}
	} else if err := decodeJSON(r, &logo); err != nil {
		RespondError(w, err)
		return
	}
	if strings.TrimSpace(logo.Alt) == "" {
		logo.Alt = current.Alt
	}

	saved, err := c.Settings.SaveLogo(ctx, logo)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, saved)
}

// DeleteLogo removes the logo file and clears the stored URL.
func (c *AdminController) DeleteLogo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	current, err := c.Settings.AdminLogo(ctx)
	if err != nil {
		RespondError(w, err)
		return
	}
	if current.URL != "" {
		if err := c.Uploader.DeleteByURL(ctx, media.BucketSiteAssets, current.URL); err != nil {
			log.Println("⚠️ failed to remove logo file:", err)
		}
	}
	saved, err := c.Settings.SaveLogo(ctx, model.LogoSetting{Alt: current.Alt})
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, saved)
}

func (c *AdminController) GetMapsKey(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]bool{
		"configured": c.Settings.MapsAPIKey(r.Context()) != "",
	})
}

func (c *AdminController) SaveMapsKey(w http.ResponseWriter, r *http.Request) {
	var body struct {
		APIKey string `json:"api_key"`
	}
	if err := decodeJSON(r, &body); err != nil {
		RespondError(w, err)
		return
	}
	if err := c.Settings.SaveMapsAPIKey(r.Context(), body.APIKey); err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]bool{"configured": true})
}

// ====================== Uploads ======================

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func (c *AdminController) formFile(w http.ResponseWriter, r *http.Request) (*multipart.FileHeader, error) {
	if c.Uploader.MaxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, c.Uploader.MaxBytes)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, appErrors.NewValidation("file", errors.New("file is too large"))
		}
		return nil, appErrors.NewValidation("file", err)
	}
	_, fh, err := r.FormFile("file")
	if err != nil {
		return nil, appErrors.NewValidation("file", err)
	}
	return fh, nil
}

func (c *AdminController) Upload(w http.ResponseWriter, r *http.Request) {
	fh, err := c.formFile(w, r)
	if err != nil {
		RespondError(w, err)
		return
	}
	up, err := c.Uploader.Upload(r.Context(), chi.URLParam(r, "bucket"), r.FormValue("prefix"), fh)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, up)
}

func (c *AdminController) DeleteUpload(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URL string `json:"url"`
	}
	if err := decodeJSON(r, &body); err != nil {
		RespondError(w, err)
		return
	}
	if err := c.Uploader.DeleteByURL(r.Context(), chi.URLParam(r, "bucket"), body.URL); err != nil {
		RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ====================== Inquiries ======================

func (c *AdminController) ListMessages(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	items, err := c.Inquiries.Messages(r.Context(), limit)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, items)
}

func (c *AdminController) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	items, err := c.Inquiries.Subscribers(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, items)
}
