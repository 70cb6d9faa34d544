package models

import "time"

// PendingUser — заявка на регистрацию, ждёт решения администратора.
// Пароль хранится как прислали: хешируется один раз, в момент одобрения.
type PendingUser struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterPendingRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type PendingUsersPage struct {
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Users []*PendingUser `json:"users"`
}
