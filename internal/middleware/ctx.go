package middleware

import (
	"context"

	"blogcms/internal/models"
)

type ctxKey string

const (
	ContextUserID    ctxKey = "user_id"
	ContextRole      ctxKey = "role"
	ContextUser      ctxKey = "user"
	ContextRequestID ctxKey = "request_id"
)

// CurrentUser достаёт авторизованного пользователя из контекста запроса.
func CurrentUser(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(ContextUser).(*models.User)
	return u, ok
}

// UserID возвращает id авторизованного пользователя (0, если его нет).
func UserID(ctx context.Context) int {
	id, _ := ctx.Value(ContextUserID).(int)
	return id
}

// Role возвращает роль авторизованного пользователя.
func Role(ctx context.Context) string {
	role, _ := ctx.Value(ContextRole).(string)
	return role
}
