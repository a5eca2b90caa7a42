package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/metrifypremium/metrify-api/infrastructure/database/postgres"
	"github.com/metrifypremium/metrify-api/internal/domain"
)

const settingsTable = "configuracoes"

type SettingsRepository interface {
	Get() (*domain.Settings, error)
	Save(settings *domain.Settings) error
}

type settingsRepository struct {
	conn *postgres.Connection
}

func NewSettingsRepository(conn *postgres.Connection) SettingsRepository {
	return &settingsRepository{
		conn: conn,
	}
}

// Get lê a linha singleton. Sem linha, devolve a configuração padrão em
// vez de erro.
func (r *settingsRepository) Get() (*domain.Settings, error) {
	query, args, err := squirrel.
		Select("id, imposto_percent, despesas_percent, auto_sync").
		From(settingsTable).
		Where(squirrel.Eq{"id": 1}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	settings := &domain.Settings{}
	err = r.conn.QueryRow(query, args...).Scan(
		&settings.ID,
		&settings.TaxPercent,
		&settings.ExpensePercent,
		&settings.AutoSync,
	)
	if err == sql.ErrNoRows {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear configurações: %w", err)
	}

	return settings, nil
}

func (r *settingsRepository) Save(settings *domain.Settings) error {
	query, args, err := squirrel.
		Insert(settingsTable).
		Columns("id", "imposto_percent", "despesas_percent", "auto_sync").
		Values(1, settings.TaxPercent, settings.ExpensePercent, settings.AutoSync).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				imposto_percent = EXCLUDED.imposto_percent,
				despesas_percent = EXCLUDED.despesas_percent,
				auto_sync = EXCLUDED.auto_sync
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar configurações: %w", err)
	}

	return nil
}
