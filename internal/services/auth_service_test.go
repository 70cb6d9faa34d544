package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"blogcms/internal/apperr"
	"blogcms/internal/models"
	"blogcms/internal/utils"
)

// Мок-репозиторий пользователей (заглушка)
type mockUserRepo struct {
	users    map[string]*models.User
	lastUser *models.User
	nextID   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User), nextID: 1}
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *models.User) error {
	user.ID = m.nextID
	m.nextID++
	m.users[user.Email] = user
	m.lastUser = user
	return nil
}

func (m *mockUserRepo) IsEmailTaken(_ context.Context, email string) (bool, error) {
	_, exists := m.users[email]
	return exists, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id int) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (m *mockUserRepo) GetAllUsers(_ context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepo) UpdateUsername(_ context.Context, id int, username string) error {
	for _, u := range m.users {
		if u.ID == id {
			u.Username = username
			return nil
		}
	}
	return apperr.ErrNotFound
}

func (m *mockUserRepo) UpdatePasswordHash(_ context.Context, id int, hash string) error {
	for _, u := range m.users {
		if u.ID == id {
			u.PasswordHash = hash
			return nil
		}
	}
	return apperr.ErrNotFound
}

func (m *mockUserRepo) UpdateRole(_ context.Context, id int, role string) error {
	for _, u := range m.users {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return apperr.ErrNotFound
}

func (m *mockUserRepo) DeleteUser(_ context.Context, id int) error {
	for email, u := range m.users {
		if u.ID == id {
			delete(m.users, email)
			return nil
		}
	}
	return apperr.ErrNotFound
}

// Мок-репозиторий заявок
type mockPendingRepo struct {
	pending map[int]*models.PendingUser
	nextID  int
}

func newMockPendingRepo() *mockPendingRepo {
	return &mockPendingRepo{pending: make(map[int]*models.PendingUser), nextID: 1}
}

func (m *mockPendingRepo) Create(_ context.Context, p *models.PendingUser) error {
	p.ID = m.nextID
	m.nextID++
	m.pending[p.ID] = p
	return nil
}

func (m *mockPendingRepo) IsEmailTaken(_ context.Context, email string) (bool, error) {
	for _, p := range m.pending {
		if p.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockPendingRepo) GetByID(_ context.Context, id int) (*models.PendingUser, error) {
	p, ok := m.pending[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return p, nil
}

func (m *mockPendingRepo) Search(_ context.Context, _ string, limit, offset int) ([]*models.PendingUser, int, error) {
	var out []*models.PendingUser
	for _, p := range m.pending {
		out = append(out, p)
	}
	return out, len(out), nil
}

func (m *mockPendingRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.pending[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(m.pending, id)
	return nil
}

func newAuthService(users *mockUserRepo, pending *mockPendingRepo) *AuthService {
	return NewAuthService(users, pending, NewSanitizer(), "test-secret", time.Hour)
}

func TestRegisterPending(t *testing.T) {
	users := newMockUserRepo()
	pending := newMockPendingRepo()
	service := newAuthService(users, pending)

	err := service.RegisterPending(context.Background(), models.RegisterPendingRequest{
		Username: "testuser",
		Email:    "Test@Example.com",
		Password: "secret123",
		Role:     models.RoleAuthor,
	})
	if err != nil {
		t.Fatalf("ошибка подачи заявки: %v", err)
	}

	if len(pending.pending) != 1 {
		t.Fatalf("заявка не сохранена: %d", len(pending.pending))
	}
	p := pending.pending[1]
	if p.Email != "test@example.com" {
		t.Errorf("email не нормализован: %q", p.Email)
	}
	if p.Password != "secret123" {
		t.Errorf("пароль заявки должен храниться как есть до одобрения")
	}
	if len(users.users) != 0 {
		t.Error("аккаунт не должен создаваться до одобрения")
	}
}

func TestRegisterPending_DuplicateEmail(t *testing.T) {
	users := newMockUserRepo()
	pending := newMockPendingRepo()
	service := newAuthService(users, pending)

	req := models.RegisterPendingRequest{
		Username: "testuser",
		Email:    "dup@example.com",
		Password: "secret123",
		Role:     models.RoleUser,
	}
	if err := service.RegisterPending(context.Background(), req); err != nil {
		t.Fatalf("первая заявка: %v", err)
	}

	err := service.RegisterPending(context.Background(), req)
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("ожидался конфликт по email, получили: %v", err)
	}
	if len(pending.pending) != 1 {
		t.Errorf("дубликат заявки не должен сохраняться: %d", len(pending.pending))
	}
}

func TestRegisterPending_AdminRoleRejected(t *testing.T) {
	service := newAuthService(newMockUserRepo(), newMockPendingRepo())

	err := service.RegisterPending(context.Background(), models.RegisterPendingRequest{
		Username: "hacker",
		Email:    "hacker@example.com",
		Password: "secret123",
		Role:     models.RoleAdmin,
	})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("роль admin через саморегистрацию должна отклоняться: %v", err)
	}
}

func TestApprove(t *testing.T) {
	users := newMockUserRepo()
	pending := newMockPendingRepo()
	service := newAuthService(users, pending)

	_ = pending.Create(context.Background(), &models.PendingUser{
		Username: "newauthor",
		Email:    "author@example.com",
		Password: "secret123",
		Role:     models.RoleAuthor,
	})

	user, err := service.Approve(context.Background(), 1)
	if err != nil {
		t.Fatalf("ошибка одобрения: %v", err)
	}

	if user.PasswordHash == "" || user.PasswordHash == "secret123" {
		t.Error("пароль должен быть захеширован при одобрении")
	}
	if !utils.CheckPasswordHash("secret123", user.PasswordHash) {
		t.Error("хеш не соответствует исходному паролю")
	}
	if user.Role != models.RoleAuthor {
		t.Errorf("роль из заявки потеряна: %q", user.Role)
	}
	if len(pending.pending) != 0 {
		t.Error("одобренная заявка должна удаляться")
	}
}

func TestApprove_EmailTakenMeanwhile(t *testing.T) {
	users := newMockUserRepo()
	pending := newMockPendingRepo()
	service := newAuthService(users, pending)

	// email заняли, пока заявка ждала решения
	_ = users.CreateUser(context.Background(), &models.User{
		Username: "existing", Email: "busy@example.com", Role: models.RoleUser,
	})
	_ = pending.Create(context.Background(), &models.PendingUser{
		Username: "late",
		Email:    "busy@example.com",
		Password: "secret123",
		Role:     models.RoleUser,
	})

	_, err := service.Approve(context.Background(), 1)
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("ожидался конфликт, получили: %v", err)
	}
	if len(pending.pending) != 0 {
		t.Error("заявка с занятым email должна удаляться")
	}
	if len(users.users) != 1 {
		t.Error("дубликат аккаунта не должен создаваться")
	}
}

func TestReject(t *testing.T) {
	pending := newMockPendingRepo()
	service := newAuthService(newMockUserRepo(), pending)

	_ = pending.Create(context.Background(), &models.PendingUser{
		Username: "declined", Email: "declined@example.com", Password: "x", Role: models.RoleUser,
	})

	if err := service.Reject(context.Background(), 1); err != nil {
		t.Fatalf("ошибка отклонения: %v", err)
	}
	if len(pending.pending) != 0 {
		t.Error("отклонённая заявка должна удаляться")
	}

	err := service.Reject(context.Background(), 1)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("повторное отклонение должно давать not found: %v", err)
	}
}

func TestLogin(t *testing.T) {
	users := newMockUserRepo()
	service := newAuthService(users, newMockPendingRepo())

	hash, _ := utils.HashPassword("secret123")
	_ = users.CreateUser(context.Background(), &models.User{
		Username: "testuser", Email: "test@example.com", PasswordHash: hash, Role: models.RoleUser,
	})

	user, token, err := service.Login(context.Background(), "Test@Example.com", "secret123")
	if err != nil {
		t.Fatalf("ошибка входа: %v", err)
	}
	if token == "" {
		t.Fatal("токен не выдан")
	}
	if user.Email != "test@example.com" {
		t.Errorf("вернулся не тот пользователь: %q", user.Email)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	users := newMockUserRepo()
	service := newAuthService(users, newMockPendingRepo())

	hash, _ := utils.HashPassword("secret123")
	_ = users.CreateUser(context.Background(), &models.User{
		Username: "testuser", Email: "test@example.com", PasswordHash: hash, Role: models.RoleUser,
	})

	_, _, errWrongPass := service.Login(context.Background(), "test@example.com", "wrong")
	_, _, errNoUser := service.Login(context.Background(), "ghost@example.com", "secret123")

	if errWrongPass == nil || errNoUser == nil {
		t.Fatal("вход с неверными данными должен отклоняться")
	}
	// одинаковый ответ — чтобы не раскрывать, существует ли аккаунт
	if errWrongPass.Error() != errNoUser.Error() {
		t.Errorf("ответы различаются: %q и %q", errWrongPass.Error(), errNoUser.Error())
	}
}

func TestListPending_Defaults(t *testing.T) {
	pending := newMockPendingRepo()
	service := newAuthService(newMockUserRepo(), pending)

	page, err := service.ListPending(context.Background(), "", 0, 0)
	if err != nil {
		t.Fatalf("ошибка списка заявок: %v", err)
	}
	if page.Page != 1 || page.Limit != 10 {
		t.Errorf("дефолты пагинации: page=%d limit=%d", page.Page, page.Limit)
	}
	if page.Users == nil {
		t.Error("пустой список должен сериализоваться как [], а не null")
	}
}
