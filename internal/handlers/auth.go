package handlers

import (
	"encoding/json"
	"net/http"

	"blogcms/internal/apperr"
	"blogcms/internal/config"
	"blogcms/internal/logger"
	"blogcms/internal/models"
	"blogcms/internal/services"
	"blogcms/internal/utils/helpers"

	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterPending godoc
// @Summary Заявка на регистрацию
// @Description Создаёт заявку, которую должен одобрить администратор
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.RegisterPendingRequest true "Данные регистрации"
// @Success 201 {object} helpers.ErrorResponse "Заявка отправлена"
// @Failure 400 {object} helpers.ErrorResponse "Ошибка валидации или email занят"
// @Router /api/auth/register-pending [post]
func (h *AuthHandler) RegisterPending(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterPendingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в RegisterPending", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	if err := h.authService.RegisterPending(r.Context(), req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка регистрации заявки", zap.Error(err))
		helpers.Error(w, apperr.Status(err), apperr.Message(err))
		return
	}

	helpers.Message(w, http.StatusCreated, "Заявка на регистрацию отправлена.")
}

// Login godoc
// @Summary Вход по email и паролю
// @Description Ставит httpOnly cookie с JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginRequest true "Данные для входа"
// @Success 200 {object} helpers.ErrorResponse "Вход выполнен"
// @Failure 401 {object} helpers.ErrorResponse "Неверный email или пароль"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в Login", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		helpers.Error(w, apperr.Status(err), apperr.Message(err))
		return
	}

	http.SetCookie(w, h.sessionCookie(token, int(h.authService.TokenTTL().Seconds())))

	logger.WithCtx(r.Context()).Info("Пользователь вошёл",
		zap.Int("user_id", user.ID), zap.String("role", user.Role))
	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Вход выполнен.",
		"user":    user,
	})
}

// Logout godoc
// @Summary Выход
// @Description Сбрасывает cookie сессии
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.ErrorResponse "Выход выполнен"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	helpers.Message(w, http.StatusOK, "Выход выполнен.")
}

// sessionCookie собирает cookie сессии. Атрибуты зависят от окружения:
// в прод-режиме фронт живёт на другом origin, поэтому SameSite=None и
// Secure обязательны; в dev достаточно Lax.
func (h *AuthHandler) sessionCookie(token string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if h.cfg.IsProd() {
		cookie.SameSite = http.SameSiteNoneMode
		cookie.Secure = true
	}
	return cookie
}
