package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"blogcms/internal/apperr"
	"blogcms/internal/logger"
	"blogcms/internal/models"

	"go.uber.org/zap"
)

type CommentRepo interface {
	Create(ctx context.Context, c *models.Comment) error
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	ListByArticle(ctx context.Context, articleID int64) ([]*models.CommentWithAuthor, error)
	UpdateText(ctx context.Context, id int64, text string) error
	Delete(ctx context.Context, id int64) error
}

// ArticleGetter — проверка существования статьи перед добавлением комментария.
type ArticleGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Article, error)
}

type CommentService struct {
	repo      CommentRepo
	articles  ArticleGetter
	sanitizer *Sanitizer
}

func NewCommentService(repo CommentRepo, articles ArticleGetter, sanitizer *Sanitizer) *CommentService {
	return &CommentService{repo: repo, articles: articles, sanitizer: sanitizer}
}

// cleanComment валидирует текст в два прохода: сырой ввод не пуст,
// и после санитизации от него осталось хоть что-то осмысленное.
// Возвращает санитизированный HTML, годный к сохранению.
func (s *CommentService) cleanComment(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", apperr.Validation("Комментарий не может быть пустым.")
	}

	text := s.sanitizer.Comment(raw)
	plain := strings.TrimSpace(s.sanitizer.PlainText(text))
	if plain == "" {
		return "", apperr.Validation("Комментарий пуст после фильтрации небезопасных элементов.")
	}
	if utf8.RuneCountInString(plain) < 6 {
		return "", apperr.Validation("Комментарий должен быть не короче 6 символов.")
	}
	return text, nil
}

func (s *CommentService) Add(ctx context.Context, articleID int64, authorID int, raw string) (*models.Comment, error) {
	log := logger.WithCtx(ctx)

	if _, err := s.articles.GetByID(ctx, articleID); err != nil {
		return nil, err
	}

	text, err := s.cleanComment(raw)
	if err != nil {
		return nil, err
	}

	c := &models.Comment{ArticleID: articleID, AuthorID: authorID, Text: text}
	if err := s.repo.Create(ctx, c); err != nil {
		log.Error("Ошибка создания комментария (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Комментарий добавлен", zap.Int64("comment_id", c.ID), zap.Int64("article_id", articleID))
	return c, nil
}

// List не проверяет существование статьи: после её удаления
// комментарии уже снесены каскадом, и ответ — просто пустой список.
func (s *CommentService) List(ctx context.Context, articleID int64) ([]*models.CommentWithAuthor, error) {
	return s.repo.ListByArticle(ctx, articleID)
}

func (s *CommentService) Update(ctx context.Context, id int64, raw string) (*models.Comment, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	text, err := s.cleanComment(raw)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateText(ctx, id, text); err != nil {
		return nil, err
	}
	c.Text = text
	return c, nil
}

func (s *CommentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
