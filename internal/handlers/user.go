package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"blogcms/internal/apperr"
	"blogcms/internal/logger"
	"blogcms/internal/middleware"
	"blogcms/internal/models"
	"blogcms/internal/services"
	"blogcms/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Profile godoc
// @Summary Профиль текущего пользователя
// @Tags users
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} helpers.ErrorResponse "Требуется авторизация"
// @Security ApiKeyAuth
// @Router /api/users/profile [get]
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	// JWTAuth уже загрузил пользователя
	if user, ok := middleware.CurrentUser(r.Context()); ok {
		helpers.JSON(w, http.StatusOK, user)
		return
	}

	user, err := h.userService.Profile(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		helpers.Error(w, apperr.Status(err), apperr.Message(err))
		return
	}
	helpers.JSON(w, http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Обновить профиль
// @Tags users
// @Accept json
// @Produce json
// @Param input body models.UpdateProfileRequest true "Новые данные профиля"
// @Success 200 {object} models.User
// @Failure 400 {object} helpers.ErrorResponse "Ошибка валидации"
// @Security ApiKeyAuth
// @Router /api/users/profile [put]
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в UpdateProfile", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), middleware.UserID(r.Context()), &req)
	if err != nil {
		helpers.Error(w, apperr.Status(err), apperr.Message(err))
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Профиль обновлён.",
		"user":    user,
	})
}

// ChangePassword godoc
// @Summary Сменить пароль
// @Tags users
// @Accept json
// @Produce json
// @Param input body models.ChangePasswordRequest true "Старый и новый пароль"
// @Success 200 {object} helpers.ErrorResponse "Пароль изменён"
// @Failure 400 {object} helpers.ErrorResponse "Старый пароль неверен"
// @Security ApiKeyAuth
// @Router /api/users/password [put]
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в ChangePassword", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	if err := h.userService.ChangePassword(r.Context(), middleware.UserID(r.Context()), &req); err != nil {
		helpers.Error(w, apperr.Status(err), apperr.Message(err))
		return
	}

	helpers.Message(w, http.StatusOK, "Пароль изменён.")
}

// ListUsers godoc
// @Summary Список пользователей
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 403 {object} helpers.ErrorResponse "Доступ запрещён"
// @Security ApiKeyAuth
// @Router /api/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка получения пользователей", zap.Error(err))
		helpers.Error(w, apperr.Status(err), apperr.Message(err))
		return
	}
	helpers.JSON(w, http.StatusOK, users)
}

// ChangeRole godoc
// @Summary Сменить роль пользователя
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "ID пользователя"
// @Param input body models.ChangeRoleRequest true "Новая роль"
// @Success 200 {object} models.User
// @Failure 400 {object} helpers.ErrorResponse "Недопустимая роль"
// @Failure 404 {object} helpers.ErrorResponse "Пользователь не найден"
// @Security ApiKeyAuth
// @Router /api/users/{id}/role [put]
func (h *UserHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID.")
		return
	}

	var req models.ChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в ChangeRole", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	user, err := h.userService.ChangeRole(r.Context(), id, req.Role)
	if err != nil {
		helpers.Error(w, apperr.Status(err), apperr.Message(err))
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Роль обновлена.",
		"user":    user,
	})
}

// DeleteUser godoc
// @Summary Удалить пользователя
// @Tags users
// @Param id path int true "ID пользователя"
// @Success 204 "Пользователь удалён"
// @Failure 404 {object} helpers.ErrorResponse "Пользователь не найден"
// @Security ApiKeyAuth
// @Router /api/users/{id} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID.")
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		helpers.Error(w, apperr.Status(err), apperr.Message(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
