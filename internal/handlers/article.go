package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"blogcms/internal/apperr"
	"blogcms/internal/logger"
	"blogcms/internal/middleware"
	"blogcms/internal/services"
	"blogcms/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ArticleHandler struct {
	articleService *services.ArticleService
	storage        *services.Storage
}

func NewArticleHandler(articleService *services.ArticleService, storage *services.Storage) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, storage: storage}
}

// GetAll godoc
// @Summary Лента статей
// @Tags articles
// @Produce json
// @Param q query string false "Поиск по заголовку и тексту"
// @Param sort query string false "newest | oldest | titleAZ | titleZA | mostLiked"
// @Param page query int false "Номер страницы"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} models.ArticlesPage
// @Router /api/articles [get]
func (h *ArticleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	result, err := h.articleService.List(r.Context(), query.Get("q"), query.Get("sort"), page, limit)
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка получения ленты статей", zap.Error(err))
		helpers.Error(w, apperr.Status(err), apperr.Message(err))
		return
	}

	helpers.JSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Статья по ID
// @Tags articles
// @Produce json
// @Param id path int true "ID статьи"
// @Success 200 {object} models.ArticleDetail
// @Failure 404 {object} helpers.ErrorResponse "Статья не найдена"
// @Router /api/articles/{id} [get]
func (h *ArticleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID.")
		return
	}

	article, err := h.articleService.GetByID(r.Context(), id)
	if err != nil {
		helpers.Error(w, apperr.Status(err), apperr.Message(err))
		return
	}

	helpers.JSON(w, http.StatusOK, article)
}

// Create godoc
// @Summary Создать статью
// @Description multipart/form-data: title, content и до 5 изображений в поле images
// @Tags articles
// @Accept mpfd
// @Produce json
// @Param title formData string true "Заголовок (от 5 символов)"
// @Param content formData string true "Текст (от 20 символов)"
// @Param images formData file false "Изображения"
// @Success 201 {object} models.Article
// @Failure 400 {object} helpers.ErrorResponse "Ошибка валидации"
// @Security ApiKeyAuth
// @Router /api/articles [post]
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка разбора multipart-формы", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Ошибка разбора формы.")
		return
	}

	var paths []string
	if r.MultipartForm != nil {
		saved, err := h.storage.SaveImages(r.MultipartForm.File["images"])
		if err != nil {
			helpers.Error(w, apperr.Status(err), apperr.Message(err))
			return
		}
		paths = saved
	}

	article, err := h.articleService.Create(r.Context(),
		middleware.UserID(r.Context()), r.FormValue("title"), r.FormValue("content"), paths)
	if err != nil {
		helpers.Error(w, apperr.Status(err), apperr.Message(err))
		return
	}

	helpers.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Статья создана.",
		"article": article,
	})
}

// Update godoc
// @Summary Обновить статью
// @Description Доступно автору и администратору. removeImages — пути удаляемых изображений.
// @Tags articles
// @Accept mpfd
// @Produce json
// @Param id path int true "ID статьи"
// @Param title formData string false "Новый заголовок"
// @Param content formData string false "Новый текст"
// @Param removeImages formData string false "Пути удаляемых изображений"
// @Param images formData file false "Новые изображения"
// @Success 200 {object} models.Article
// @Failure 403 {object} helpers.ErrorResponse "Доступ запрещён"
// @Failure 404 {object} helpers.ErrorResponse "Статья не найдена"
// @Security ApiKeyAuth
// @Router /api/articles/{id} [put]
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID.")
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка разбора multipart-формы", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Ошибка разбора формы.")
		return
	}

	var paths []string
	if r.MultipartForm != nil {
		saved, err := h.storage.SaveImages(r.MultipartForm.File["images"])
		if err != nil {
			helpers.Error(w, apperr.Status(err), apperr.Message(err))
			return
		}
		paths = saved
	}

	article, err := h.articleService.Update(r.Context(), id,
		r.FormValue("title"), r.FormValue("content"), r.Form["removeImages"], paths)
	if err != nil {
		helpers.Error(w, apperr.Status(err), apperr.Message(err))
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Статья обновлена.",
		"article": article,
	})
}

// Delete godoc
// @Summary Удалить статью
// @Description Удаляет статью вместе с комментариями и изображениями
// @Tags articles
// @Param id path int true "ID статьи"
// @Success 204 "Статья удалена"
// @Failure 403 {object} helpers.ErrorResponse "Доступ запрещён"
// @Failure 404 {object} helpers.ErrorResponse "Статья не найдена"
// @Security ApiKeyAuth
// @Router /api/articles/{id} [delete]
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID.")
		return
	}

	if err := h.articleService.Delete(r.Context(), id); err != nil {
		helpers.Error(w, apperr.Status(err), apperr.Message(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleLike godoc
// @Summary Поставить или снять лайк
// @Description Повторный вызов возвращает статью в исходное состояние
// @Tags articles
// @Produce json
// @Param id path int true "ID статьи"
// @Success 200 {object} models.LikeState
// @Failure 400 {object} helpers.ErrorResponse "Автор не может лайкнуть собственную статью"
// @Failure 404 {object} helpers.ErrorResponse "Статья не найдена"
// @Security ApiKeyAuth
// @Router /api/articles/{id}/like [post]
func (h *ArticleHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID.")
		return
	}

	state, err := h.articleService.ToggleLike(r.Context(), id, middleware.UserID(r.Context()))
	if err != nil {
		// самолайк — отказ с текущим состоянием, чтобы фронт не терял счётчик
		if errors.Is(err, services.ErrSelfLike) && state != nil {
			helpers.JSON(w, http.StatusBadRequest, map[string]interface{}{
				"message":    apperr.Message(err),
				"liked":      state.Liked,
				"totalLikes": state.TotalLikes,
			})
			return
		}
		helpers.Error(w, apperr.Status(err), apperr.Message(err))
		return
	}

	helpers.JSON(w, http.StatusOK, state)
}
