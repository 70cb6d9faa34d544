package services

import (
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	"blogcms/internal/apperr"
	"blogcms/internal/logger"
	"blogcms/internal/models"
	"blogcms/internal/utils"

	"go.uber.org/zap"
)

type UserService struct {
	users     UserRepo
	sanitizer *Sanitizer
}

func NewUserService(users UserRepo, sanitizer *Sanitizer) *UserService {
	return &UserService{users: users, sanitizer: sanitizer}
}

func (s *UserService) Profile(ctx context.Context, userID int) (*models.User, error) {
	return s.users.GetUserByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int, req *models.UpdateProfileRequest) (*models.User, error) {
	log := logger.WithCtx(ctx)

	if req.Username == nil {
		return s.users.GetUserByID(ctx, userID)
	}

	username := strings.TrimSpace(*req.Username)
	if utf8.RuneCountInString(username) < 3 {
		return nil, apperr.Validation("Имя пользователя должно быть не короче 3 символов.")
	}
	username = s.sanitizer.Title(username)

	if err := s.users.UpdateUsername(ctx, userID, username); err != nil {
		log.Error("Ошибка обновления профиля", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}

	log.Info("Профиль обновлён", zap.Int("user_id", userID))
	return s.users.GetUserByID(ctx, userID)
}

func (s *UserService) ChangePassword(ctx context.Context, userID int, req *models.ChangePasswordRequest) error {
	log := logger.WithCtx(ctx)

	if strings.TrimSpace(req.OldPassword) == "" || strings.TrimSpace(req.NewPassword) == "" {
		return apperr.Validation("Старый и новый пароль обязательны.")
	}
	if utf8.RuneCountInString(req.NewPassword) < 6 {
		return apperr.Validation("Новый пароль должен быть не короче 6 символов.")
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return apperr.Validation("Старый пароль неверен.")
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		log.Error("Ошибка хеширования пароля", zap.Error(err))
		return err
	}
	if err := s.users.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return err
	}

	log.Info("Пароль изменён", zap.Int("user_id", userID))
	return nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}

func (s *UserService) ChangeRole(ctx context.Context, userID int, role string) (*models.User, error) {
	log := logger.WithCtx(ctx)

	if !slices.Contains(models.AllowedRoles, role) {
		return nil, apperr.Validation("Недопустимая роль.")
	}

	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.users.UpdateRole(ctx, userID, role); err != nil {
		return nil, err
	}

	log.Info("Роль пользователя изменена", zap.Int("user_id", userID), zap.String("role", role))
	return s.users.GetUserByID(ctx, userID)
}

func (s *UserService) Delete(ctx context.Context, userID int) error {
	log := logger.WithCtx(ctx)

	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return err
	}
	if err := s.users.DeleteUser(ctx, userID); err != nil {
		return err
	}

	log.Info("Пользователь удалён", zap.Int("user_id", userID))
	return nil
}
