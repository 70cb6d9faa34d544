package models

import "time"

const (
	RoleUser   = "user"
	RoleAuthor = "author"
	RoleAdmin  = "admin"
)

// AllowedRoles — полный набор ролей (для смены роли админом).
var AllowedRoles = []string{RoleUser, RoleAuthor, RoleAdmin}

// PendingRoles — роли, которые можно запросить при саморегистрации.
// admin через заявку получить нельзя.
var PendingRoles = []string{RoleUser, RoleAuthor}

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserRef — краткая ссылка на автора в ответах API.
type UserRef struct {
	ID       int    `json:"id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type ChangeRoleRequest struct {
	Role string `json:"role"`
}
