package middleware

import (
	"context"
	"net/http"
	"strings"

	"blogcms/internal/logger"
	"blogcms/internal/models"
	"blogcms/internal/utils"
	"blogcms/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// UserProvider проверяет, что пользователь из токена всё ещё существует.
type UserProvider interface {
	GetUserByID(ctx context.Context, id int) (*models.User, error)
}

// JWTAuth достаёт токен из cookie (основной путь для браузера) либо из
// заголовка Authorization и кладёт пользователя в контекст запроса.
func JWTAuth(secret string, users UserProvider) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			tokenString := ""
			if cookie, err := r.Cookie("token"); err == nil {
				tokenString = cookie.Value
			}
			if tokenString == "" {
				authHeader := r.Header.Get("Authorization")
				if strings.HasPrefix(authHeader, "Bearer ") {
					tokenString = strings.TrimPrefix(authHeader, "Bearer ")
				}
			}
			if tokenString == "" {
				logger.WithCtx(r.Context()).Warn("JWTAuth: отсутствует токен")
				helpers.Error(w, http.StatusUnauthorized, "Требуется авторизация.")
				return
			}

			userID, role, err := utils.ParseToken(secret, tokenString)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("JWTAuth: неверный или просроченный токен", zap.Error(err))
				helpers.Error(w, http.StatusUnauthorized, "Неверный или просроченный токен.")
				return
			}

			// токен мог пережить удаление аккаунта
			user, err := users.GetUserByID(r.Context(), userID)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("JWTAuth: пользователь из токена не найден",
					zap.Int("user_id", userID))
				helpers.Error(w, http.StatusUnauthorized, "Неверный или просроченный токен.")
				return
			}

			ctx := context.WithValue(r.Context(), ContextUserID, user.ID)
			ctx = context.WithValue(ctx, ContextRole, role)
			ctx = context.WithValue(ctx, ContextUser, user)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
