package repository

import (
	"context"
	"errors"

	"blogcms/internal/apperr"
	"blogcms/internal/logger"
	"blogcms/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ArticleRepository struct {
	db *pgxpool.Pool
}

func NewArticleRepository(db *pgxpool.Pool) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Create(ctx context.Context, a *models.Article) error {
	logger.Log.Info("Создание статьи (repo)", zap.String("title", a.Title), zap.Int("author_id", a.AuthorID))
	query := `
	INSERT INTO articles (title, content, author_id, images)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query, a.Title, a.Content, a.AuthorID, a.Images).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *ArticleRepository) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	query := `SELECT id, title, content, author_id, images, created_at, updated_at
	FROM articles
	WHERE id = $1`

	var a models.Article
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Title, &a.Content, &a.AuthorID, &a.Images, &a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		logger.Log.Error("Ошибка получения статьи (repo)", zap.Int64("article_id", id), zap.Error(err))
		return nil, err
	}
	return &a, nil
}

// сортировки ленты; mostLiked считается по агрегату лайков,
// фильтр и пагинация те же, что у обычных веток
var sortClauses = map[string]string{
	models.SortNewest:    "a.created_at DESC",
	models.SortOldest:    "a.created_at ASC",
	models.SortTitleAZ:   "a.title ASC, a.created_at DESC",
	models.SortTitleZA:   "a.title DESC, a.created_at DESC",
	models.SortMostLiked: "likes_count DESC, a.created_at DESC",
}

// List возвращает страницу ленты со счётчиками лайков и комментариев.
// Пустой q — без фильтра; во всех режимах сортировки фильтр и пагинация общие.
func (r *ArticleRepository) List(ctx context.Context, q, sort string, limit, offset int) ([]*models.ArticleListItem, error) {
	orderBy, ok := sortClauses[sort]
	if !ok {
		orderBy = sortClauses[models.SortNewest]
	}

	pattern := "%" + escapeLike(q) + "%"
	query := `
	SELECT a.id, a.title, a.content, a.images, a.created_at,
	       u.id, u.username, u.email,
	       (SELECT COUNT(*) FROM article_likes l WHERE l.article_id = a.id) AS likes_count,
	       (SELECT COUNT(*) FROM comments c WHERE c.article_id = a.id) AS comment_count
	FROM articles a
	JOIN users u ON u.id = a.author_id
	WHERE ($1 = '' OR a.title ILIKE $2 OR a.content ILIKE $2)
	ORDER BY ` + orderBy + `
	LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, query, q, pattern, limit, offset)
	if err != nil {
		logger.Log.Error("Ошибка получения ленты (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []*models.ArticleListItem
	for rows.Next() {
		var (
			it     models.ArticleListItem
			images []string
		)
		if err := rows.Scan(
			&it.ID, &it.Title, &it.Content, &images, &it.CreatedAt,
			&it.Author.ID, &it.Author.Username, &it.Author.Email,
			&it.LikesCount, &it.CommentCount,
		); err != nil {
			return nil, err
		}
		if len(images) > 0 {
			first := images[0]
			it.Thumbnail = &first
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

func (r *ArticleRepository) Count(ctx context.Context, q string) (int, error) {
	pattern := "%" + escapeLike(q) + "%"
	var total int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM articles a WHERE ($1 = '' OR a.title ILIKE $2 OR a.content ILIKE $2)`,
		q, pattern,
	).Scan(&total)
	if err != nil {
		logger.Log.Error("Ошибка подсчёта статей (repo)", zap.Error(err))
	}
	return total, err
}

func (r *ArticleRepository) Update(ctx context.Context, a *models.Article) error {
	logger.Log.Info("Обновление статьи (repo)", zap.Int64("article_id", a.ID))
	query := `UPDATE articles SET title = $1, content = $2, images = $3, updated_at = now() WHERE id = $4`
	tag, err := r.db.Exec(ctx, query, a.Title, a.Content, a.Images, a.ID)
	if err != nil {
		logger.Log.Error("Ошибка обновления статьи (repo)", zap.Int64("article_id", a.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id int64) error {
	logger.Log.Info("Удаление статьи (repo)", zap.Int64("article_id", id))
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("Ошибка удаления статьи (repo)", zap.Int64("article_id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *ArticleRepository) GetLikes(ctx context.Context, articleID int64) ([]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id FROM article_likes WHERE article_id = $1 ORDER BY user_id`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	likes := []int{}
	for rows.Next() {
		var userID int
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		likes = append(likes, userID)
	}
	return likes, rows.Err()
}

func (r *ArticleRepository) HasLike(ctx context.Context, articleID int64, userID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM article_likes WHERE article_id = $1 AND user_id = $2)`,
		articleID, userID,
	).Scan(&exists)
	return exists, err
}

// AddLike идемпотентна: повторная вставка той же пары поглощается ON CONFLICT.
func (r *ArticleRepository) AddLike(ctx context.Context, articleID int64, userID int) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO article_likes (article_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		articleID, userID,
	)
	return err
}

func (r *ArticleRepository) RemoveLike(ctx context.Context, articleID int64, userID int) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM article_likes WHERE article_id = $1 AND user_id = $2`,
		articleID, userID,
	)
	return err
}

func (r *ArticleRepository) CountLikes(ctx context.Context, articleID int64) (int, error) {
	var total int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM article_likes WHERE article_id = $1`, articleID,
	).Scan(&total)
	return total, err
}
