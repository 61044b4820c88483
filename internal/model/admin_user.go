// internal/model/admin_user.go
package model

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type AdminUser struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

func (u *AdminUser) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
