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

type CommentHandler struct {
	commentService *services.CommentService
}

func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// List godoc
// @Summary Комментарии статьи
// @Description Для несуществующей или удалённой статьи возвращает пустой список
// @Tags comments
// @Produce json
// @Param id path int true "ID статьи"
// @Success 200 {array} models.CommentWithAuthor
// @Router /api/comments/{id} [get]
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	articleID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID.")
		return
	}

	comments, err := h.commentService.List(r.Context(), articleID)
	if err != nil {
		helpers.Error(w, apperr.Status(err), apperr.Message(err))
		return
	}

	helpers.JSON(w, http.StatusOK, comments)
}

// Add godoc
// @Summary Добавить комментарий
// @Description Текст очищается от небезопасного HTML; после очистки — минимум 6 символов
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "ID статьи"
// @Param input body models.CommentRequest true "Текст комментария"
// @Success 201 {object} models.Comment
// @Failure 400 {object} helpers.ErrorResponse "Ошибка валидации"
// @Failure 404 {object} helpers.ErrorResponse "Статья не найдена"
// @Security ApiKeyAuth
// @Router /api/comments/{id} [post]
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	articleID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID.")
		return
	}

	var req models.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в Add", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	comment, err := h.commentService.Add(r.Context(), articleID, middleware.UserID(r.Context()), req.Text)
	if err != nil {
		helpers.Error(w, apperr.Status(err), apperr.Message(err))
		return
	}

	helpers.JSON(w, http.StatusCreated, comment)
}

// Update godoc
// @Summary Изменить комментарий
// @Description Доступно автору комментария и администратору
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "ID комментария"
// @Param input body models.CommentRequest true "Новый текст"
// @Success 200 {object} models.Comment
// @Failure 403 {object} helpers.ErrorResponse "Доступ запрещён"
// @Failure 404 {object} helpers.ErrorResponse "Комментарий не найден"
// @Security ApiKeyAuth
// @Router /api/comments/{id} [put]
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID.")
		return
	}

	var req models.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в Update", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	comment, err := h.commentService.Update(r.Context(), id, req.Text)
	if err != nil {
		helpers.Error(w, apperr.Status(err), apperr.Message(err))
		return
	}

	helpers.JSON(w, http.StatusOK, comment)
}

// Delete godoc
// @Summary Удалить комментарий
// @Tags comments
// @Param id path int true "ID комментария"
// @Success 204 "Комментарий удалён"
// @Failure 403 {object} helpers.ErrorResponse "Доступ запрещён"
// @Failure 404 {object} helpers.ErrorResponse "Комментарий не найден"
// @Security ApiKeyAuth
// @Router /api/comments/{id} [delete]
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID.")
		return
	}

	if err := h.commentService.Delete(r.Context(), id); err != nil {
		helpers.Error(w, apperr.Status(err), apperr.Message(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
