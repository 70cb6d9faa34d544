package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"blogcms/internal/apperr"
	"blogcms/internal/models"
)

// Мок-репозиторий комментариев
type mockCommentRepo struct {
	comments map[int64]*models.Comment
	nextID   int64
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[int64]*models.Comment), nextID: 1}
}

func (m *mockCommentRepo) Create(_ context.Context, c *models.Comment) error {
	c.ID = m.nextID
	m.nextID++
	m.comments[c.ID] = c
	return nil
}

func (m *mockCommentRepo) GetByID(_ context.Context, id int64) (*models.Comment, error) {
	c, ok := m.comments[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return c, nil
}

func (m *mockCommentRepo) ListByArticle(_ context.Context, articleID int64) ([]*models.CommentWithAuthor, error) {
	out := []*models.CommentWithAuthor{}
	for _, c := range m.comments {
		if c.ArticleID == articleID {
			out = append(out, &models.CommentWithAuthor{Comment: *c})
		}
	}
	return out, nil
}

func (m *mockCommentRepo) UpdateText(_ context.Context, id int64, text string) error {
	c, ok := m.comments[id]
	if !ok {
		return apperr.ErrNotFound
	}
	c.Text = text
	return nil
}

func (m *mockCommentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.comments[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(m.comments, id)
	return nil
}

type mockArticleGetter struct {
	exists map[int64]bool
}

func (m *mockArticleGetter) GetByID(_ context.Context, id int64) (*models.Article, error) {
	if !m.exists[id] {
		return nil, apperr.ErrNotFound
	}
	return &models.Article{ID: id, AuthorID: 1}, nil
}

func newCommentService(repo *mockCommentRepo) *CommentService {
	return NewCommentService(repo, &mockArticleGetter{exists: map[int64]bool{1: true}}, NewSanitizer())
}

func TestCommentAdd(t *testing.T) {
	repo := newMockCommentRepo()
	service := newCommentService(repo)

	c, err := service.Add(context.Background(), 1, 2, "Отличная статья, спасибо!")
	if err != nil {
		t.Fatalf("ошибка добавления: %v", err)
	}
	if c.ArticleID != 1 || c.AuthorID != 2 {
		t.Errorf("комментарий привязан неверно: %+v", c)
	}
}

func TestCommentAdd_ArticleNotFound(t *testing.T) {
	service := newCommentService(newMockCommentRepo())

	_, err := service.Add(context.Background(), 99, 2, "Отличная статья, спасибо!")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("ожидался not found: %v", err)
	}
}

func TestCommentAdd_Validation(t *testing.T) {
	service := newCommentService(newMockCommentRepo())

	cases := []struct {
		name string
		text string
	}{
		{"пустой", "   "},
		{"короткий", "ок"},
		{"только разметка", "<script>alert(1)</script>"},
		{"короткий внутри тегов", "<b>да</b>"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Add(context.Background(), 1, 2, tc.text)
			if !errors.Is(err, apperr.ErrValidation) {
				t.Fatalf("текст %q должен отклоняться: %v", tc.text, err)
			}
		})
	}
}

func TestCommentAdd_KeepsSafeMarkup(t *testing.T) {
	repo := newMockCommentRepo()
	service := newCommentService(repo)

	c, err := service.Add(context.Background(), 1, 2, "Полезно! <b>Рекомендую</b> <script>alert(1)</script>")
	if err != nil {
		t.Fatalf("ошибка добавления: %v", err)
	}
	if strings.Contains(c.Text, "<script") {
		t.Errorf("script пережил санитизацию: %q", c.Text)
	}
	if !strings.Contains(c.Text, "<b>") {
		t.Errorf("безопасная разметка потеряна: %q", c.Text)
	}
}

func TestCommentList_AfterArticleDelete(t *testing.T) {
	repo := newMockCommentRepo()
	// статьи 42 нет — она удалена вместе с комментариями
	service := NewCommentService(repo, &mockArticleGetter{exists: map[int64]bool{}}, NewSanitizer())

	list, err := service.List(context.Background(), 42)
	if err != nil {
		t.Fatalf("список для удалённой статьи не должен быть ошибкой: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("ожидался пустой список, получено: %v", list)
	}
}

func TestCommentUpdate(t *testing.T) {
	repo := newMockCommentRepo()
	service := newCommentService(repo)

	_ = repo.Create(context.Background(), &models.Comment{ArticleID: 1, AuthorID: 2, Text: "старый текст"})

	c, err := service.Update(context.Background(), 1, "обновлённый текст комментария")
	if err != nil {
		t.Fatalf("ошибка обновления: %v", err)
	}
	if c.Text != "обновлённый текст комментария" {
		t.Errorf("текст не обновлён: %q", c.Text)
	}

	_, err = service.Update(context.Background(), 1, "ок")
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("короткий текст должен отклоняться: %v", err)
	}
	if repo.comments[1].Text != "обновлённый текст комментария" {
		t.Error("отказ не должен менять сохранённый текст")
	}
}

func TestCommentDelete(t *testing.T) {
	repo := newMockCommentRepo()
	service := newCommentService(repo)

	_ = repo.Create(context.Background(), &models.Comment{ArticleID: 1, AuthorID: 2, Text: "текст"})

	if err := service.Delete(context.Background(), 1); err != nil {
		t.Fatalf("ошибка удаления: %v", err)
	}
	if err := service.Delete(context.Background(), 1); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("повторное удаление должно давать not found: %v", err)
	}
}
