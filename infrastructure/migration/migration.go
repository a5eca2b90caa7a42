package migration

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/metrifypremium/metrify-api/infrastructure/database/postgres"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

// Run aplica as migrações embutidas em ordem. Migrações já aplicadas são
// ignoradas; chamar de novo em um banco atualizado é um no-op.
func Run(conn *postgres.Connection) error {
	source, err := iofs.New(migrationFiles, "sql")
	if err != nil {
		return fmt.Errorf("erro ao carregar as migrações embutidas: %w", err)
	}

	driver, err := migratepg.WithInstance(conn.DB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("erro ao criar o driver de migração: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("erro ao criar a instância de migração: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao aplicar as migrações: %w", err)
	}

	return nil
}
