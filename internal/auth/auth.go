package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"

	appErrors "github.com/unclebandit/sparkles-site/internal/errors"
	"github.com/unclebandit/sparkles-site/internal/model"
	"github.com/unclebandit/sparkles-site/internal/repository"
)

const (
	SessionName   = "sparkles_admin"
	LoginPath     = "/admin/login"
	DashboardPath = "/admin"

	keyUserID = "user_id"
	keyEmail  = "email"
)

// NewCookieStore returns the signed cookie store used for admin sessions.
func NewCookieStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 3600,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

type Service struct {
	Users repository.AdminUserRepositoryInterface
	Store sessions.Store
}

// Login checks credentials; only users with the admin role may sign in.
func (s *Service) Login(ctx context.Context, email, password string) (*model.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, appErrors.ErrUnauthorized
	}
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, appErrors.ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsAdmin() {
		log.Printf("⚠️ login refused for non-admin user %s", user.Email)
		return nil, appErrors.ErrUnauthorized
	}
	return user, nil
}

func (s *Service) StartSession(w http.ResponseWriter, r *http.Request, user *model.AdminUser) error {
	session, _ := s.Store.Get(r, SessionName)
	session.Values[keyUserID] = user.ID
	session.Values[keyEmail] = user.Email
	return session.Save(r, w)
}

func (s *Service) EndSession(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.Store.Get(r, SessionName)
	session.Values = map[any]any{}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// CurrentEmail returns the signed-in admin's email, if any.
func (s *Service) CurrentEmail(r *http.Request) (string, bool) {
	session, err := s.Store.Get(r, SessionName)
	if err != nil {
		return "", false
	}
	id, _ := session.Values[keyUserID].(string)
	email, _ := session.Values[keyEmail].(string)
	if id == "" {
		return "", false
	}
	return email, true
}

// Middleware answers 401 JSON on /admin/api/ and redirects pages to the
// login form, carrying the requested path as next, when no admin session
// is present.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.CurrentEmail(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		if strings.HasPrefix(r.URL.Path, "/admin/api/") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		http.Redirect(w, r, LoginPath+"?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusFound)
	})
}
