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

// ErrSelfLike — автор пытается лайкнуть собственную статью.
// Хендлер при этой ошибке всё равно отдаёт текущее состояние лайков.
var ErrSelfLike = apperr.Validation("Автор не может лайкнуть собственную статью.")

type ArticleRepo interface {
	Create(ctx context.Context, a *models.Article) error
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	List(ctx context.Context, q, sort string, limit, offset int) ([]*models.ArticleListItem, error)
	Count(ctx context.Context, q string) (int, error)
	Update(ctx context.Context, a *models.Article) error
	Delete(ctx context.Context, id int64) error
	GetLikes(ctx context.Context, articleID int64) ([]int, error)
	HasLike(ctx context.Context, articleID int64, userID int) (bool, error)
	AddLike(ctx context.Context, articleID int64, userID int) error
	RemoveLike(ctx context.Context, articleID int64, userID int) error
	CountLikes(ctx context.Context, articleID int64) (int, error)
}

// CommentCascade — каскадное удаление комментариев статьи.
type CommentCascade interface {
	DeleteByArticle(ctx context.Context, articleID int64) error
}

// UserGetter — резолв автора для детального ответа.
type UserGetter interface {
	GetUserByID(ctx context.Context, id int) (*models.User, error)
}

type ArticleService struct {
	repo      ArticleRepo
	comments  CommentCascade
	users     UserGetter
	storage   *Storage
	sanitizer *Sanitizer
}

func NewArticleService(repo ArticleRepo, comments CommentCascade, users UserGetter, storage *Storage, sanitizer *Sanitizer) *ArticleService {
	return &ArticleService{
		repo:      repo,
		comments:  comments,
		users:     users,
		storage:   storage,
		sanitizer: sanitizer,
	}
}

func validateTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "Заголовок обязателен."
	}
	if utf8.RuneCountInString(title) < 5 {
		return "Заголовок должен быть не короче 5 символов."
	}
	return ""
}

func validateContent(content string) string {
	if strings.TrimSpace(content) == "" {
		return "Текст статьи обязателен."
	}
	if utf8.RuneCountInString(content) < 20 {
		return "Текст статьи должен быть не короче 20 символов."
	}
	return ""
}

// Create создаёт статью. Любой отказ после того, как файлы уже легли на
// диск, сопровождается их удалением до возврата ошибки — загрузки не
// должны осиротеть.
func (s *ArticleService) Create(ctx context.Context, authorID int, title, content string, imagePaths []string) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	// маршрут и так за JWTAuth, но жёсткую проверку оставляем
	if authorID == 0 {
		s.storage.RemoveMany(imagePaths)
		return nil, apperr.ErrUnauthorized
	}

	var errs []string
	if msg := validateTitle(title); msg != "" {
		errs = append(errs, msg)
	}
	if msg := validateContent(content); msg != "" {
		errs = append(errs, msg)
	}
	if len(errs) > 0 {
		log.Warn("Валидация статьи не пройдена", zap.Strings("errors", errs))
		s.storage.RemoveMany(imagePaths)
		return nil, apperr.Validation(strings.Join(errs, " "))
	}

	images := make([]string, 0, len(imagePaths))
	for _, p := range imagePaths {
		images = append(images, PublicPath(p))
	}

	a := &models.Article{
		Title:    s.sanitizer.Title(title),
		Content:  s.sanitizer.Body(content),
		AuthorID: authorID,
		Images:   images,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		log.Error("Ошибка создания статьи (repo)", zap.Error(err))
		s.storage.RemoveMany(imagePaths)
		return nil, err
	}

	log.Info("Статья создана", zap.Int64("article_id", a.ID), zap.Int("author_id", authorID))
	return a, nil
}

// List — лента с фильтром, сортировкой и пагинацией.
func (s *ArticleService) List(ctx context.Context, q, sort string, page, limit int) (*models.ArticlesPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 5
	}

	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) > 100 {
		q = string([]rune(q)[:100])
	}

	items, err := s.repo.List(ctx, q, sort, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, q)
	if err != nil {
		return nil, err
	}

	// миниатюры старых записей могли храниться в исторических форматах
	for _, it := range items {
		if it.Thumbnail != nil {
			norm := PublicPath(*it.Thumbnail)
			it.Thumbnail = &norm
		}
	}
	if items == nil {
		items = []*models.ArticleListItem{}
	}
	return &models.ArticlesPage{Articles: items, Total: total}, nil
}

// GetByID — статья с автором и лайками; пути изображений нормализуются
// на выходе независимо от исторического формата хранения.
func (s *ArticleService) GetByID(ctx context.Context, id int64) (*models.ArticleDetail, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	for i, img := range a.Images {
		a.Images[i] = PublicPath(img)
	}
	if a.Images == nil {
		a.Images = []string{}
	}

	likes, err := s.repo.GetLikes(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &models.ArticleDetail{Article: *a, Likes: likes}
	if author, err := s.users.GetUserByID(ctx, a.AuthorID); err == nil {
		detail.Author = models.UserRef{ID: author.ID, Username: author.Username, Email: author.Email}
	}
	return detail, nil
}

// Update редактирует статью. Валидация — до любых изменений; удаление
// файлов с диска — best-effort и не блокирует ответ.
func (s *ArticleService) Update(ctx context.Context, id int64, title, content string, removeImages, newImages []string) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.storage.RemoveMany(newImages)
		return nil, err
	}

	var errs []string
	if title != "" {
		if utf8.RuneCountInString(title) < 5 {
			errs = append(errs, "Заголовок должен быть не короче 5 символов.")
		}
	}
	if content != "" {
		if utf8.RuneCountInString(content) < 20 {
			errs = append(errs, "Текст статьи должен быть не короче 20 символов.")
		}
	}
	if len(errs) > 0 {
		log.Warn("Валидация обновления не пройдена", zap.Int64("article_id", id), zap.Strings("errors", errs))
		s.storage.RemoveMany(newImages)
		return nil, apperr.Validation(strings.Join(errs, " "))
	}

	if title != "" {
		a.Title = s.sanitizer.Title(title)
	}
	if content != "" {
		a.Content = s.sanitizer.Body(content)
	}

	if len(removeImages) > 0 {
		toRemove := make(map[string]struct{}, len(removeImages))
		for _, p := range removeImages {
			toRemove[UploadsRel(p)] = struct{}{}
		}

		kept := a.Images[:0]
		for _, img := range a.Images {
			if _, ok := toRemove[UploadsRel(img)]; !ok {
				kept = append(kept, img)
			}
		}
		a.Images = kept

		go s.storage.RemoveMany(removeImages)
	}

	for _, p := range newImages {
		a.Images = append(a.Images, PublicPath(p))
	}

	if err := s.repo.Update(ctx, a); err != nil {
		log.Error("Ошибка обновления статьи (repo)", zap.Int64("article_id", id), zap.Error(err))
		s.storage.RemoveMany(newImages)
		return nil, err
	}

	log.Info("Статья обновлена", zap.Int64("article_id", id))
	return a, nil
}

// Delete — явный двухшаговый каскад: файлы (best-effort), комментарии,
// затем сама статья.
func (s *ArticleService) Delete(ctx context.Context, id int64) error {
	log := logger.WithCtx(ctx)

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	go s.storage.RemoveMany(a.Images)

	if err := s.comments.DeleteByArticle(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info("Статья удалена", zap.Int64("article_id", id))
	return nil
}

// ToggleLike — чистое переключение: лайк ставится, если его не было,
// и снимается, если был. Автору своя статья недоступна; состояние
// при этом всё равно возвращается.
func (s *ArticleService) ToggleLike(ctx context.Context, id int64, userID int) (*models.LikeState, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if a.AuthorID == userID {
		total, err := s.repo.CountLikes(ctx, id)
		if err != nil {
			return nil, err
		}
		return &models.LikeState{Liked: false, TotalLikes: total}, ErrSelfLike
	}

	liked, err := s.repo.HasLike(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if liked {
		err = s.repo.RemoveLike(ctx, id, userID)
	} else {
		err = s.repo.AddLike(ctx, id, userID)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountLikes(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.LikeState{Liked: !liked, TotalLikes: total}, nil
}
