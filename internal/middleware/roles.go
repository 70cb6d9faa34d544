package middleware

import (
	"net/http"

	"blogcms/internal/utils/helpers"
)

func OnlyRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			value := r.Context().Value(ContextRole)
			userRole, ok := value.(string)
			if !ok || userRole != role {
				helpers.Error(w, http.StatusForbidden, "Доступ запрещён.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func AnyRole(allowedRoles ...string) func(http.Handler) http.Handler {
	roleSet := make(map[string]struct{})
	for _, r := range allowedRoles {
		roleSet[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			value := r.Context().Value(ContextRole)
			userRole, ok := value.(string)
			if !ok {
				helpers.Error(w, http.StatusForbidden, "Не удалось определить роль.")
				return
			}
			if _, found := roleSet[userRole]; !found {
				helpers.Error(w, http.StatusForbidden, "Доступ запрещён.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
