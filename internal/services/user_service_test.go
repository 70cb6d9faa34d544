package services

import (
	"context"
	"errors"
	"testing"

	"blogcms/internal/apperr"
	"blogcms/internal/models"
	"blogcms/internal/utils"
)

func TestUpdateProfile(t *testing.T) {
	users := newMockUserRepo()
	service := NewUserService(users, NewSanitizer())

	_ = users.CreateUser(context.Background(), &models.User{
		Username: "old", Email: "u@example.com", Role: models.RoleUser,
	})

	name := "новое имя"
	user, err := service.UpdateProfile(context.Background(), 1, &models.UpdateProfileRequest{Username: &name})
	if err != nil {
		t.Fatalf("ошибка обновления: %v", err)
	}
	if user.Username != "новое имя" {
		t.Errorf("имя не обновлено: %q", user.Username)
	}

	short := "аб"
	_, err = service.UpdateProfile(context.Background(), 1, &models.UpdateProfileRequest{Username: &short})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("короткое имя должно отклоняться: %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	users := newMockUserRepo()
	service := NewUserService(users, NewSanitizer())

	hash, _ := utils.HashPassword("oldpass")
	_ = users.CreateUser(context.Background(), &models.User{
		Username: "u", Email: "u@example.com", PasswordHash: hash, Role: models.RoleUser,
	})

	err := service.ChangePassword(context.Background(), 1, &models.ChangePasswordRequest{
		OldPassword: "wrong", NewPassword: "newpass123",
	})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("неверный старый пароль должен отклоняться: %v", err)
	}

	err = service.ChangePassword(context.Background(), 1, &models.ChangePasswordRequest{
		OldPassword: "oldpass", NewPassword: "newpass123",
	})
	if err != nil {
		t.Fatalf("ошибка смены пароля: %v", err)
	}
	if !utils.CheckPasswordHash("newpass123", users.lastUser.PasswordHash) {
		t.Error("новый пароль не сохранён")
	}
}

func TestChangeRole(t *testing.T) {
	users := newMockUserRepo()
	service := NewUserService(users, NewSanitizer())

	_ = users.CreateUser(context.Background(), &models.User{
		Username: "u", Email: "u@example.com", Role: models.RoleUser,
	})

	user, err := service.ChangeRole(context.Background(), 1, models.RoleAuthor)
	if err != nil {
		t.Fatalf("ошибка смены роли: %v", err)
	}
	if user.Role != models.RoleAuthor {
		t.Errorf("роль не обновлена: %q", user.Role)
	}

	_, err = service.ChangeRole(context.Background(), 1, "superuser")
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("несуществующая роль должна отклоняться: %v", err)
	}
	if users.lastUser.Role != models.RoleAuthor {
		t.Error("отказ не должен менять роль")
	}

	_, err = service.ChangeRole(context.Background(), 99, models.RoleUser)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("несуществующий пользователь должен давать not found: %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	users := newMockUserRepo()
	service := NewUserService(users, NewSanitizer())

	_ = users.CreateUser(context.Background(), &models.User{
		Username: "u", Email: "u@example.com", Role: models.RoleUser,
	})

	if err := service.Delete(context.Background(), 1); err != nil {
		t.Fatalf("ошибка удаления: %v", err)
	}
	if err := service.Delete(context.Background(), 1); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("повторное удаление должно давать not found: %v", err)
	}
}
