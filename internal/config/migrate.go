package config

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies every pending migration from env.MigrateDir.
func RunMigrations(env Env) error {
	m, err := migrate.New("file://"+env.MigrateDir, "mysql://"+env.DSN())
	if err != nil {
		return fmt.Errorf("gagal inisialisasi migrasi: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("gagal menjalankan migrasi: %w", err)
	}
	return nil
}
