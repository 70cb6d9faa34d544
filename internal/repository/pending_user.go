package repository

import (
	"context"
	"errors"
	"strings"

	"blogcms/internal/apperr"
	"blogcms/internal/logger"
	"blogcms/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type PendingUserRepository struct {
	db *pgxpool.Pool
}

func NewPendingUserRepository(db *pgxpool.Pool) *PendingUserRepository {
	return &PendingUserRepository{db: db}
}

func (r *PendingUserRepository) Create(ctx context.Context, p *models.PendingUser) error {
	logger.Log.Info("Создание заявки на регистрацию (repo)", zap.String("email", p.Email))
	query := `
	INSERT INTO pending_users (username, email, password, role)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at`
	return r.db.QueryRow(ctx, query, p.Username, p.Email, p.Password, p.Role).
		Scan(&p.ID, &p.CreatedAt)
}

func (r *PendingUserRepository) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM pending_users WHERE email = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, email).Scan(&exists)
	if err != nil {
		logger.Log.Error("Ошибка проверки email в заявках (repo)", zap.Error(err))
	}
	return exists, err
}

func (r *PendingUserRepository) GetByID(ctx context.Context, id int) (*models.PendingUser, error) {
	query := `SELECT id, username, email, password, role, created_at
	FROM pending_users
	WHERE id = $1`

	var p models.PendingUser
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Username, &p.Email, &p.Password, &p.Role, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		logger.Log.Error("Ошибка получения заявки (repo)", zap.Int("pending_id", id), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// escapeLike экранирует спецсимволы ILIKE в пользовательском поиске.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// Search — подстрочный регистронезависимый поиск по username/email
// с пагинацией, новые заявки первыми.
func (r *PendingUserRepository) Search(ctx context.Context, search string, limit, offset int) ([]*models.PendingUser, int, error) {
	pattern := "%" + escapeLike(search) + "%"

	var total int
	countQuery := `SELECT COUNT(*) FROM pending_users WHERE username ILIKE $1 OR email ILIKE $1`
	if err := r.db.QueryRow(ctx, countQuery, pattern).Scan(&total); err != nil {
		logger.Log.Error("Ошибка подсчёта заявок (repo)", zap.Error(err))
		return nil, 0, err
	}

	query := `SELECT id, username, email, password, role, created_at
	FROM pending_users
	WHERE username ILIKE $1 OR email ILIKE $1
	ORDER BY created_at DESC
	LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, pattern, limit, offset)
	if err != nil {
		logger.Log.Error("Ошибка поиска заявок (repo)", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var list []*models.PendingUser
	for rows.Next() {
		var p models.PendingUser
		if err := rows.Scan(&p.ID, &p.Username, &p.Email, &p.Password, &p.Role, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		list = append(list, &p)
	}
	return list, total, rows.Err()
}

func (r *PendingUserRepository) Delete(ctx context.Context, id int) error {
	logger.Log.Info("Удаление заявки (repo)", zap.Int("pending_id", id))
	tag, err := r.db.Exec(ctx, `DELETE FROM pending_users WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("Ошибка удаления заявки (repo)", zap.Error(err), zap.Int("pending_id", id))
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
