package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blogcms/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
)

func NewPostgresConnection(cfg *config.Config) (*pgxpool.Pool, error) {
	dsn := cfg.GetDSN()
	pool, err := pgxpool.New(context.Background(), dsn)

	if err != nil {
		return nil, err
	}

	err = pool.Ping(context.Background())
	if err != nil {
		return nil, err
	}

	return pool, nil
}

// RunMigrations накатывает SQL-миграции из каталога cfg.MigrationsDir.
// Отдельное database/sql-подключение живёт только на время миграции.
func RunMigrations(cfg *config.Config) error {
	conn, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return fmt.Errorf("открытие подключения для миграций: %w", err)
	}
	defer conn.Close()

	driver, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("драйвер миграций: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", cfg.MigrationsDir),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("инициализация migrate: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("применение миграций: %w", err)
	}
	return nil
}
