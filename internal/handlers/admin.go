package handlers

import (
	"net/http"
	"strconv"

	"blogcms/internal/apperr"
	"blogcms/internal/logger"
	"blogcms/internal/services"
	"blogcms/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// AdminHandler — управление заявками на регистрацию.
type AdminHandler struct {
	authService *services.AuthService
}

func NewAdminHandler(authService *services.AuthService) *AdminHandler {
	return &AdminHandler{authService: authService}
}

// GetPendingUsers godoc
// @Summary Список заявок на регистрацию
// @Tags admin
// @Produce json
// @Param search query string false "Поиск по имени или email"
// @Param page query int false "Номер страницы"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} models.PendingUsersPage
// @Failure 403 {object} helpers.ErrorResponse "Доступ запрещён"
// @Security ApiKeyAuth
// @Router /api/admin/pending-users [get]
func (h *AdminHandler) GetPendingUsers(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.authService.ListPending(r.Context(), search, page, limit)
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка получения заявок", zap.Error(err))
		helpers.Error(w, apperr.Status(err), apperr.Message(err))
		return
	}

	helpers.JSON(w, http.StatusOK, result)
}

// ApproveUser godoc
// @Summary Одобрить заявку
// @Description Создаёт аккаунт из заявки и уведомляет пользователя по почте
// @Tags admin
// @Produce json
// @Param id path int true "ID заявки"
// @Success 200 {object} helpers.ErrorResponse "Заявка одобрена"
// @Failure 400 {object} helpers.ErrorResponse "Email уже занят"
// @Failure 404 {object} helpers.ErrorResponse "Заявка не существует"
// @Security ApiKeyAuth
// @Router /api/admin/approve/{id} [post]
func (h *AdminHandler) ApproveUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID.")
		return
	}

	user, err := h.authService.Approve(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка одобрения заявки",
			zap.Int("pending_id", id), zap.Error(err))
		helpers.Error(w, apperr.Status(err), apperr.Message(err))
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Заявка одобрена, аккаунт создан.",
		"userId":  user.ID,
	})
}

// RejectUser godoc
// @Summary Отклонить заявку
// @Tags admin
// @Produce json
// @Param id path int true "ID заявки"
// @Success 200 {object} helpers.ErrorResponse "Заявка отклонена"
// @Failure 404 {object} helpers.ErrorResponse "Заявка не существует"
// @Security ApiKeyAuth
// @Router /api/admin/reject/{id} [delete]
func (h *AdminHandler) RejectUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID.")
		return
	}

	if err := h.authService.Reject(r.Context(), id); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка отклонения заявки",
			zap.Int("pending_id", id), zap.Error(err))
		helpers.Error(w, apperr.Status(err), apperr.Message(err))
		return
	}

	helpers.Message(w, http.StatusOK, "Заявка отклонена.")
}
