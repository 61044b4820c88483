package site

import "github.com/unclebandit/sparkles-site/internal/model"

type PrivacyPage struct {
	Brand   string
	Updated string
	Contact model.ContactSettings
	Mailto  string
}

type LoginPage struct {
	Brand string
	Error string
	Next  string
}

// DashboardPage drives the admin editors; all data is fetched from
// /admin/api by the page itself.
type DashboardPage struct {
	Brand    string
	Email    string
	Sections []string
}
