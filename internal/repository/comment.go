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

type CommentRepository struct {
	db *pgxpool.Pool
}

func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *models.Comment) error {
	logger.Log.Info("Создание комментария (repo)", zap.Int64("article_id", c.ArticleID), zap.Int("author_id", c.AuthorID))
	query := `
	INSERT INTO comments (article_id, author_id, text)
	VALUES ($1, $2, $3)
	RETURNING id, created_at`
	return r.db.QueryRow(ctx, query, c.ArticleID, c.AuthorID, c.Text).
		Scan(&c.ID, &c.CreatedAt)
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	query := `SELECT id, article_id, author_id, text, created_at FROM comments WHERE id = $1`

	var c models.Comment
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.ArticleID, &c.AuthorID, &c.Text, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		logger.Log.Error("Ошибка получения комментария (repo)", zap.Int64("comment_id", id), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

// ListByArticle — комментарии статьи, новые первыми, с именем автора.
func (r *CommentRepository) ListByArticle(ctx context.Context, articleID int64) ([]*models.CommentWithAuthor, error) {
	query := `
	SELECT c.id, c.article_id, c.author_id, c.text, c.created_at, u.id, u.username
	FROM comments c
	JOIN users u ON u.id = c.author_id
	WHERE c.article_id = $1
	ORDER BY c.created_at DESC`

	rows, err := r.db.Query(ctx, query, articleID)
	if err != nil {
		logger.Log.Error("Ошибка получения комментариев (repo)", zap.Int64("article_id", articleID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := []*models.CommentWithAuthor{}
	for rows.Next() {
		var c models.CommentWithAuthor
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.AuthorID, &c.Text, &c.CreatedAt, &c.Author.ID, &c.Author.Username); err != nil {
			return nil, err
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CommentRepository) UpdateText(ctx context.Context, id int64, text string) error {
	tag, err := r.db.Exec(ctx, `UPDATE comments SET text = $1 WHERE id = $2`, text, id)
	if err != nil {
		logger.Log.Error("Ошибка обновления комментария (repo)", zap.Int64("comment_id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("Ошибка удаления комментария (repo)", zap.Int64("comment_id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// DeleteByArticle удаляет все комментарии статьи (каскад при удалении).
func (r *CommentRepository) DeleteByArticle(ctx context.Context, articleID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM comments WHERE article_id = $1`, articleID)
	if err != nil {
		logger.Log.Error("Ошибка каскадного удаления комментариев (repo)", zap.Int64("article_id", articleID), zap.Error(err))
	}
	return err
}
