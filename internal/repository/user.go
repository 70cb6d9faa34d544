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

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	logger.Log.Info("Создание пользователя (repo)", zap.String("username", user.Username), zap.String("email", user.Email))
	query := `
	INSERT INTO users (username, email, password_hash, role)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	logger.Log.Debug("Проверка email на уникальность (repo)", zap.String("email", email))
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, email).Scan(&exists)
	if err != nil {
		logger.Log.Error("Ошибка проверки email (repo)", zap.Error(err))
	}
	return exists, err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	logger.Log.Debug("Получение пользователя по email (repo)", zap.String("email", email))
	query := `SELECT id, username, email, password_hash, role, created_at, updated_at
	FROM users
	WHERE email = $1`

	var user models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		logger.Log.Error("Ошибка получения пользователя по email (repo)", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	logger.Log.Debug("Получение пользователя по ID (repo)", zap.Int("user_id", id))
	query := `SELECT id, username, email, password_hash, role, created_at, updated_at
	FROM users
	WHERE id = $1`

	var user models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		logger.Log.Error("Ошибка получения пользователя по ID (repo)", zap.Int("user_id", id), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	logger.Log.Debug("Получение всех пользователей (repo)")
	query := `SELECT id, username, email, role, created_at, updated_at
	FROM users
	ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Log.Error("Ошибка получения пользователей (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			logger.Log.Error("Ошибка сканирования пользователя (repo)", zap.Error(err))
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdateUsername(ctx context.Context, id int, username string) error {
	logger.Log.Info("Обновление username (repo)", zap.Int("user_id", id))
	query := `UPDATE users SET username = $1, updated_at = now() WHERE id = $2`
	tag, err := r.db.Exec(ctx, query, username, id)
	if err != nil {
		logger.Log.Error("Ошибка обновления username (repo)", zap.Error(err), zap.Int("user_id", id))
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id int, hash string) error {
	logger.Log.Info("Обновление пароля (repo)", zap.Int("user_id", id))
	query := `UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`
	tag, err := r.db.Exec(ctx, query, hash, id)
	if err != nil {
		logger.Log.Error("Ошибка обновления пароля (repo)", zap.Error(err), zap.Int("user_id", id))
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id int, role string) error {
	logger.Log.Info("Смена роли (repo)", zap.Int("user_id", id), zap.String("role", role))
	query := `UPDATE users SET role = $1, updated_at = now() WHERE id = $2`
	tag, err := r.db.Exec(ctx, query, role, id)
	if err != nil {
		logger.Log.Error("Ошибка смены роли (repo)", zap.Error(err), zap.Int("user_id", id))
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id int) error {
	logger.Log.Info("Удаление пользователя (repo)", zap.Int("user_id", id))
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("Ошибка удаления пользователя (repo)", zap.Error(err), zap.Int("user_id", id))
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
