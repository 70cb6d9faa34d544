package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"blogcms/internal/apperr"
	"blogcms/internal/models"
)

type likeKey struct {
	articleID int64
	userID    int
}

// Мок-репозиторий статей
type mockArticleRepo struct {
	articles map[int64]*models.Article
	likes    map[likeKey]bool
	nextID   int64
}

func newMockArticleRepo() *mockArticleRepo {
	return &mockArticleRepo{
		articles: make(map[int64]*models.Article),
		likes:    make(map[likeKey]bool),
		nextID:   1,
	}
}

func (m *mockArticleRepo) Create(_ context.Context, a *models.Article) error {
	a.ID = m.nextID
	m.nextID++
	m.articles[a.ID] = a
	return nil
}

func (m *mockArticleRepo) GetByID(_ context.Context, id int64) (*models.Article, error) {
	a, ok := m.articles[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return a, nil
}

func (m *mockArticleRepo) List(_ context.Context, _, _ string, _, _ int) ([]*models.ArticleListItem, error) {
	return nil, nil
}

func (m *mockArticleRepo) Count(_ context.Context, _ string) (int, error) {
	return len(m.articles), nil
}

func (m *mockArticleRepo) Update(_ context.Context, a *models.Article) error {
	if _, ok := m.articles[a.ID]; !ok {
		return apperr.ErrNotFound
	}
	m.articles[a.ID] = a
	return nil
}

func (m *mockArticleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.articles[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(m.articles, id)
	return nil
}

func (m *mockArticleRepo) GetLikes(_ context.Context, articleID int64) ([]int, error) {
	out := []int{}
	for k, v := range m.likes {
		if v && k.articleID == articleID {
			out = append(out, k.userID)
		}
	}
	return out, nil
}

func (m *mockArticleRepo) HasLike(_ context.Context, articleID int64, userID int) (bool, error) {
	return m.likes[likeKey{articleID, userID}], nil
}

func (m *mockArticleRepo) AddLike(_ context.Context, articleID int64, userID int) error {
	m.likes[likeKey{articleID, userID}] = true
	return nil
}

func (m *mockArticleRepo) RemoveLike(_ context.Context, articleID int64, userID int) error {
	delete(m.likes, likeKey{articleID, userID})
	return nil
}

func (m *mockArticleRepo) CountLikes(_ context.Context, articleID int64) (int, error) {
	n := 0
	for k, v := range m.likes {
		if v && k.articleID == articleID {
			n++
		}
	}
	return n, nil
}

type mockCommentCascade struct {
	deletedFor []int64
}

func (m *mockCommentCascade) DeleteByArticle(_ context.Context, articleID int64) error {
	m.deletedFor = append(m.deletedFor, articleID)
	return nil
}

type mockUserGetter struct{}

func (m *mockUserGetter) GetUserByID(_ context.Context, id int) (*models.User, error) {
	return &models.User{ID: id, Username: "author", Email: "author@example.com"}, nil
}

func newArticleService(t *testing.T, repo *mockArticleRepo, cascade *mockCommentCascade) (*ArticleService, *Storage) {
	t.Helper()
	storage, err := NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	return NewArticleService(repo, cascade, &mockUserGetter{}, storage, NewSanitizer()), storage
}

// seedUpload кладёт файл прямо в каталог storage и возвращает публичный путь.
func seedUpload(t *testing.T, storage *Storage, name string) string {
	t.Helper()
	if err := os.WriteFile(filepath.Join(storage.root, name), []byte("data"), 0o644); err != nil {
		t.Fatalf("seed upload: %v", err)
	}
	return "uploads/" + name
}

func TestArticleCreate(t *testing.T) {
	repo := newMockArticleRepo()
	service, _ := newArticleService(t, repo, &mockCommentCascade{})

	a, err := service.Create(context.Background(), 7, "Заголовок статьи", "Достаточно длинный текст для публикации.", nil)
	if err != nil {
		t.Fatalf("ошибка создания: %v", err)
	}
	if a.AuthorID != 7 {
		t.Errorf("автор не сохранён: %d", a.AuthorID)
	}
	if len(repo.articles) != 1 {
		t.Error("статья не попала в репозиторий")
	}
}

func TestArticleCreate_ValidationRemovesUploads(t *testing.T) {
	repo := newMockArticleRepo()
	service, storage := newArticleService(t, repo, &mockCommentCascade{})

	p := seedUpload(t, storage, "orphan.jpg")

	_, err := service.Create(context.Background(), 7, "Кор", "мало", []string{p})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("ожидалась ошибка валидации: %v", err)
	}

	if _, statErr := os.Stat(filepath.Join(storage.root, "orphan.jpg")); !os.IsNotExist(statErr) {
		t.Error("файл отказанной статьи должен удаляться с диска")
	}
	if len(repo.articles) != 0 {
		t.Error("отказанная статья не должна сохраняться")
	}
}

func TestArticleCreate_SanitizesHTML(t *testing.T) {
	repo := newMockArticleRepo()
	service, _ := newArticleService(t, repo, &mockCommentCascade{})

	a, err := service.Create(context.Background(), 7,
		"Заголовок <script>alert(1)</script>",
		"Текст со <script>alert(1)</script> вставкой и достаточной длиной.", nil)
	if err != nil {
		t.Fatalf("ошибка создания: %v", err)
	}
	if strings.Contains(a.Title, "<script") || strings.Contains(a.Content, "<script") {
		t.Errorf("script пережил санитизацию: %q / %q", a.Title, a.Content)
	}
}

func TestToggleLike(t *testing.T) {
	repo := newMockArticleRepo()
	service, _ := newArticleService(t, repo, &mockCommentCascade{})

	_ = repo.Create(context.Background(), &models.Article{Title: "t", Content: "c", AuthorID: 1})

	state, err := service.ToggleLike(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("первый лайк: %v", err)
	}
	if !state.Liked || state.TotalLikes != 1 {
		t.Errorf("после первого вызова: liked=%v total=%d", state.Liked, state.TotalLikes)
	}

	state, err = service.ToggleLike(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("повторный лайк: %v", err)
	}
	if state.Liked || state.TotalLikes != 0 {
		t.Errorf("повторный вызов должен снимать лайк: liked=%v total=%d", state.Liked, state.TotalLikes)
	}
}

func TestToggleLike_SelfLike(t *testing.T) {
	repo := newMockArticleRepo()
	service, _ := newArticleService(t, repo, &mockCommentCascade{})

	_ = repo.Create(context.Background(), &models.Article{Title: "t", Content: "c", AuthorID: 1})
	_ = repo.AddLike(context.Background(), 1, 5)

	state, err := service.ToggleLike(context.Background(), 1, 1)
	if !errors.Is(err, ErrSelfLike) {
		t.Fatalf("ожидался отказ самолайка: %v", err)
	}
	if state == nil || state.Liked || state.TotalLikes != 1 {
		t.Errorf("состояние при отказе: %+v", state)
	}
	if n, _ := repo.CountLikes(context.Background(), 1); n != 1 {
		t.Errorf("счётчик не должен меняться: %d", n)
	}
}

func TestArticleUpdate_RemoveImages(t *testing.T) {
	repo := newMockArticleRepo()
	service, _ := newArticleService(t, repo, &mockCommentCascade{})

	_ = repo.Create(context.Background(), &models.Article{
		Title:    "t",
		Content:  "c",
		AuthorID: 1,
		Images:   []string{"uploads/a.jpg", "uploads/b.jpg"},
	})

	a, err := service.Update(context.Background(), 1, "", "", []string{"uploads/a.jpg"}, nil)
	if err != nil {
		t.Fatalf("ошибка обновления: %v", err)
	}
	if len(a.Images) != 1 || a.Images[0] != "uploads/b.jpg" {
		t.Errorf("список изображений после удаления: %v", a.Images)
	}
}

func TestArticleUpdate_ShortTitleRejected(t *testing.T) {
	repo := newMockArticleRepo()
	service, storage := newArticleService(t, repo, &mockCommentCascade{})

	_ = repo.Create(context.Background(), &models.Article{Title: "Старый заголовок", Content: "c", AuthorID: 1})
	p := seedUpload(t, storage, "new.jpg")

	_, err := service.Update(context.Background(), 1, "Кор", "", nil, []string{p})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("ожидалась ошибка валидации: %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(storage.root, "new.jpg")); !os.IsNotExist(statErr) {
		t.Error("новые файлы при отказе должны удаляться")
	}
	if repo.articles[1].Title != "Старый заголовок" {
		t.Error("статья не должна меняться при отказе")
	}
}

func TestArticleDelete_Cascade(t *testing.T) {
	repo := newMockArticleRepo()
	cascade := &mockCommentCascade{}
	service, _ := newArticleService(t, repo, cascade)

	_ = repo.Create(context.Background(), &models.Article{Title: "t", Content: "c", AuthorID: 1})

	if err := service.Delete(context.Background(), 1); err != nil {
		t.Fatalf("ошибка удаления: %v", err)
	}
	if len(repo.articles) != 0 {
		t.Error("статья не удалена")
	}
	if len(cascade.deletedFor) != 1 || cascade.deletedFor[0] != 1 {
		t.Errorf("комментарии не удалены каскадом: %v", cascade.deletedFor)
	}

	err := service.Delete(context.Background(), 1)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("повторное удаление должно давать not found: %v", err)
	}
}
