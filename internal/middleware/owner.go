package middleware

import (
	"context"
	"net/http"
	"strconv"

	"blogcms/internal/models"
	"blogcms/internal/utils/helpers"

	"github.com/gorilla/mux"
)

type ArticleFinder interface {
	GetByID(ctx context.Context, id int64) (*models.Article, error)
}

type CommentFinder interface {
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
}

// ArticleOwnerOrAdmin пускает к статье её автора и администратора.
// Несуществующая статья даёт 404 до каких-либо побочных эффектов.
func ArticleOwnerOrAdmin(articles ArticleFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
			if err != nil {
				helpers.Error(w, http.StatusBadRequest, "Невалидный ID.")
				return
			}

			article, err := articles.GetByID(r.Context(), id)
			if err != nil {
				helpers.Error(w, http.StatusNotFound, "Статья не найдена.")
				return
			}

			userID := UserID(r.Context())
			if article.AuthorID != userID && Role(r.Context()) != models.RoleAdmin {
				helpers.Error(w, http.StatusForbidden, "Доступ запрещён.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CommentOwnerOrAdmin — то же самое для комментариев.
func CommentOwnerOrAdmin(comments CommentFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
			if err != nil {
				helpers.Error(w, http.StatusBadRequest, "Невалидный ID.")
				return
			}

			comment, err := comments.GetByID(r.Context(), id)
			if err != nil {
				helpers.Error(w, http.StatusNotFound, "Комментарий не найден.")
				return
			}

			userID := UserID(r.Context())
			if comment.AuthorID != userID && Role(r.Context()) != models.RoleAdmin {
				helpers.Error(w, http.StatusForbidden, "Доступ запрещён.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
