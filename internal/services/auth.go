package services

import (
	"context"
	"slices"
	"strings"
	"time"

	"blogcms/internal/apperr"
	"blogcms/internal/logger"
	"blogcms/internal/models"
	"blogcms/internal/utils"
	"blogcms/internal/utils/helpers"

	"go.uber.org/zap"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	UpdateUsername(ctx context.Context, id int, username string) error
	UpdatePasswordHash(ctx context.Context, id int, hash string) error
	UpdateRole(ctx context.Context, id int, role string) error
	DeleteUser(ctx context.Context, id int) error
}

type PendingUserRepo interface {
	Create(ctx context.Context, p *models.PendingUser) error
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	GetByID(ctx context.Context, id int) (*models.PendingUser, error)
	Search(ctx context.Context, search string, limit, offset int) ([]*models.PendingUser, int, error)
	Delete(ctx context.Context, id int) error
}

type AuthService struct {
	users     UserRepo
	pending   PendingUserRepo
	sanitizer *Sanitizer
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users UserRepo, pending PendingUserRepo, sanitizer *Sanitizer, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		pending:   pending,
		sanitizer: sanitizer,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}

// RegisterPending принимает заявку на регистрацию. Заявка хранит пароль
// как прислали: хеширование произойдёт ровно один раз — при одобрении.
func (s *AuthService) RegisterPending(ctx context.Context, req models.RegisterPendingRequest) error {
	logger.Log.Info("Заявка на регистрацию (service)", zap.String("email", req.Email))

	errs := utils.ValidateFields([]utils.Field{
		{Value: req.Username, Message: "Имя пользователя обязательно."},
		{Value: req.Email, Message: "Email обязателен."},
		{Value: req.Password, Message: "Пароль обязателен."},
		{Value: req.Role, Message: "Роль обязательна."},
	})
	if len(errs) > 0 {
		return apperr.Validation(strings.Join(errs, " "))
	}

	// admin через саморегистрацию получить нельзя
	if !slices.Contains(models.PendingRoles, req.Role) {
		return apperr.Validation("Недопустимая роль.")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.IsValidEmail(email) {
		return apperr.Validation("Неправильный формат email.")
	}

	if taken, err := s.users.IsEmailTaken(ctx, email); err != nil {
		return err
	} else if taken {
		return apperr.Conflict("Email уже занят.")
	}
	if taken, err := s.pending.IsEmailTaken(ctx, email); err != nil {
		return err
	} else if taken {
		return apperr.Conflict("Email уже занят.")
	}

	p := &models.PendingUser{
		Username: strings.TrimSpace(req.Username),
		Email:    email,
		Password: req.Password,
		Role:     req.Role,
	}
	if err := s.pending.Create(ctx, p); err != nil {
		logger.Log.Error("Ошибка создания заявки (service)", zap.Error(err))
		return err
	}

	logger.Log.Info("Заявка принята (service)", zap.Int("pending_id", p.ID), zap.String("email", email))
	return nil
}

// Login проверяет учётные данные и выдаёт сессионный токен.
// Несуществующий email и неверный пароль дают одинаковый ответ.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	errs := utils.ValidateFields([]utils.Field{
		{Value: email, Message: "Email обязателен."},
		{Value: password, Message: "Пароль обязателен."},
	})
	if len(errs) > 0 {
		return nil, "", apperr.Validation(strings.Join(errs, " "))
	}

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		logger.Log.Warn("Вход: пользователь не найден (service)", zap.String("email", email))
		return nil, "", apperr.Validation("Неверный email или пароль.")
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Log.Warn("Вход: неверный пароль (service)", zap.Int("user_id", user.ID))
		return nil, "", apperr.Validation("Неверный email или пароль.")
	}

	token, err := utils.GenerateToken(s.jwtSecret, user.ID, user.Role, s.tokenTTL)
	if err != nil {
		logger.Log.Error("Ошибка генерации токена (service)", zap.Error(err))
		return nil, "", err
	}

	logger.Log.Info("Вход выполнен (service)", zap.Int("user_id", user.ID), zap.String("role", user.Role))
	return user, token, nil
}

// ListPending — заявки с поиском по username/email и пагинацией.
func (s *AuthService) ListPending(ctx context.Context, search string, page, limit int) (*models.PendingUsersPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	users, total, err := s.pending.Search(ctx, strings.TrimSpace(search), limit, offset)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*models.PendingUser{}
	}
	return &models.PendingUsersPage{
		Total: total,
		Page:  page,
		Limit: limit,
		Users: users,
	}, nil
}

// Approve превращает заявку в учётную запись: пароль хешируется здесь
// (единственная точка), заявка удаляется, письмо уходит best-effort.
func (s *AuthService) Approve(ctx context.Context, pendingID int) (*models.User, error) {
	p, err := s.pending.GetByID(ctx, pendingID)
	if err != nil {
		return nil, apperr.NotFound("Заявка не существует.")
	}

	// email могли занять, пока заявка ждала решения
	taken, err := s.users.IsEmailTaken(ctx, p.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		if err := s.pending.Delete(ctx, p.ID); err != nil {
			logger.Log.Error("Ошибка удаления заявки с занятым email (service)", zap.Error(err), zap.Int("pending_id", p.ID))
		}
		return nil, apperr.Conflict("Email уже занят в системе.")
	}

	hash, err := utils.HashPassword(p.Password)
	if err != nil {
		logger.Log.Error("Ошибка хеширования пароля (service)", zap.Error(err))
		return nil, err
	}

	user := &models.User{
		Username:     s.sanitizer.Title(p.Username),
		Email:        p.Email,
		PasswordHash: hash,
		Role:         p.Role,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		logger.Log.Error("Ошибка создания пользователя при одобрении (service)", zap.Error(err))
		return nil, err
	}

	if err := s.pending.Delete(ctx, p.ID); err != nil {
		logger.Log.Error("Ошибка удаления одобренной заявки (service)", zap.Error(err), zap.Int("pending_id", p.ID))
	}

	enqueueEmail(EmailJob{
		To:      []string{user.Email},
		Subject: "Регистрация одобрена",
		Body:    helpers.BuildApprovedHTML(user.Username),
		IsHTML:  true,
	})

	logger.Log.Info("Заявка одобрена (service)", zap.Int("pending_id", pendingID), zap.Int("user_id", user.ID))
	return user, nil
}

// Reject удаляет заявку. Письмо ставится в очередь до удаления,
// но его судьба на исход не влияет.
func (s *AuthService) Reject(ctx context.Context, pendingID int) error {
	p, err := s.pending.GetByID(ctx, pendingID)
	if err != nil {
		return apperr.NotFound("Заявка не существует.")
	}

	enqueueEmail(EmailJob{
		To:      []string{p.Email},
		Subject: "Заявка отклонена",
		Body:    helpers.BuildRejectedHTML(p.Username),
		IsHTML:  true,
	})

	if err := s.pending.Delete(ctx, p.ID); err != nil {
		logger.Log.Error("Ошибка удаления отклонённой заявки (service)", zap.Error(err), zap.Int("pending_id", p.ID))
		return err
	}

	logger.Log.Info("Заявка отклонена (service)", zap.Int("pending_id", pendingID))
	return nil
}
