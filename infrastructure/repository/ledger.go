package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/metrifypremium/metrify-api/infrastructure/database/postgres"
	"github.com/metrifypremium/metrify-api/internal/domain"
	"github.com/metrifypremium/metrify-api/pkg/utils"
	"github.com/shopspring/decimal"
)

const ledgerTable = "finance_transactions"

type LedgerRepository interface {
	ListByPeriod(startDate, endDate string, limit uint64) ([]*domain.LedgerEntry, error)
	SumBefore(startDate string) (decimal.Decimal, error)
	SumByKind(startDate, endDate string) (map[domain.LedgerKind]decimal.Decimal, error)
	Insert(q postgres.Queryer, entry *domain.LedgerEntry) (int64, error)
	UpsertByExternalID(q postgres.Queryer, entry *domain.LedgerEntry) error
	ExistingExternalIDs(externalIDs []string) (map[string]struct{}, error)
	ReplaceOpeningBalance(entry *domain.LedgerEntry) error
	ListSettlementBatches() ([]*domain.LedgerBatch, error)
	DeleteSettlementBatch(batchID string) (int64, error)
}

type ledgerRepository struct {
	conn *postgres.Connection
}

func NewLedgerRepository(conn *postgres.Connection) LedgerRepository {
	return &ledgerRepository{
		conn: conn,
	}
}

const ledgerColumns = "id, data_lancamento, tipo, valor, origem, external_id_mp, descricao, criado_em, lote_importacao"

// ListByPeriod lista os lançamentos do período, mais recentes primeiro.
// Datas vazias não filtram; limit zero não limita.
func (r *ledgerRepository) ListByPeriod(startDate, endDate string, limit uint64) ([]*domain.LedgerEntry, error) {
	queryBuilder := squirrel.
		Select(ledgerColumns).
		From(ledgerTable).
		OrderBy("data_lancamento DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if startDate != "" {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"data_lancamento": startDate})
	}

	if endDate != "" {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"data_lancamento": utils.EndOfDay(endDate)})
	}

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(limit)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.LedgerEntry, 0)
	for rows.Next() {
		entry := &domain.LedgerEntry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.Date,
			&entry.Kind,
			&entry.Amount,
			&entry.Source,
			&entry.ExternalID,
			&entry.Description,
			&entry.CreatedAt,
			&entry.ImportBatchID,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

// SumBefore soma todos os lançamentos estritamente anteriores a startDate.
// É o saldo de abertura do período.
func (r *ledgerRepository) SumBefore(startDate string) (decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(valor), 0)").
		From(ledgerTable).
		Where(squirrel.Lt{"data_lancamento": startDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total decimal.Decimal
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("erro ao somar lançamentos: %w", err)
	}

	return total, nil
}

// SumByKind soma os lançamentos do período agrupados por tipo. Datas
// vazias não filtram.
func (r *ledgerRepository) SumByKind(startDate, endDate string) (map[domain.LedgerKind]decimal.Decimal, error) {
	queryBuilder := squirrel.
		Select("tipo", "COALESCE(SUM(valor), 0)").
		From(ledgerTable).
		GroupBy("tipo").
		PlaceholderFormat(squirrel.Dollar)

	if startDate != "" {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"data_lancamento": startDate})
	}

	if endDate != "" {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"data_lancamento": utils.EndOfDay(endDate)})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sums := make(map[domain.LedgerKind]decimal.Decimal)
	for rows.Next() {
		var kind domain.LedgerKind
		var total decimal.Decimal
		if err := rows.Scan(&kind, &total); err != nil {
			return nil, fmt.Errorf("erro ao escanear soma por tipo: %w", err)
		}
		sums[kind] = total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sums, nil
}

func (r *ledgerRepository) Insert(q postgres.Queryer, entry *domain.LedgerEntry) (int64, error) {
	query, args, err := squirrel.
		Insert(ledgerTable).
		Columns("data_lancamento", "tipo", "valor", "origem", "external_id_mp", "descricao", "criado_em", "lote_importacao").
		Values(entry.Date, entry.Kind, entry.Amount, entry.Source, entry.ExternalID, entry.Description, entry.CreatedAt, entry.ImportBatchID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id int64
	if err := q.QueryRow(query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("erro ao inserir lançamento: %w", err)
	}

	return id, nil
}

// UpsertByExternalID insere o lançamento do extrato ou, se o external_id_mp
// já existe, sobrescreve a linha anterior. A última ocorrência vence.
func (r *ledgerRepository) UpsertByExternalID(q postgres.Queryer, entry *domain.LedgerEntry) error {
	query, args, err := squirrel.
		Insert(ledgerTable).
		Columns("data_lancamento", "tipo", "valor", "origem", "external_id_mp", "descricao", "criado_em", "lote_importacao").
		Values(entry.Date, entry.Kind, entry.Amount, entry.Source, entry.ExternalID, entry.Description, entry.CreatedAt, entry.ImportBatchID).
		Suffix(`
			ON CONFLICT (external_id_mp) DO UPDATE SET
				data_lancamento = EXCLUDED.data_lancamento,
				tipo = EXCLUDED.tipo,
				valor = EXCLUDED.valor,
				descricao = EXCLUDED.descricao,
				lote_importacao = EXCLUDED.lote_importacao
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar lançamento: %w", err)
	}

	return nil
}

// ExistingExternalIDs devolve quais dos ids já estão no caixa, para o
// importador contar inseridos e atualizados antes do upsert.
func (r *ledgerRepository) ExistingExternalIDs(externalIDs []string) (map[string]struct{}, error) {
	existing := make(map[string]struct{})
	if len(externalIDs) == 0 {
		return existing, nil
	}

	query, args, err := squirrel.
		Select("external_id_mp").
		From(ledgerTable).
		Where(squirrel.Eq{"external_id_mp": externalIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var externalID string
		if err := rows.Scan(&externalID); err != nil {
			return nil, fmt.Errorf("erro ao escanear external_id_mp: %w", err)
		}
		existing[externalID] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return existing, nil
}

// ReplaceOpeningBalance remove o saldo anterior manual de mesma descrição
// e grava o novo. A descrição funciona como chave do período.
func (r *ledgerRepository) ReplaceOpeningBalance(entry *domain.LedgerEntry) error {
	deleteQuery, deleteArgs, err := squirrel.
		Delete(ledgerTable).
		Where(squirrel.Eq{"tipo": domain.LedgerOpeningBalance, "descricao": entry.Description}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("erro ao remover saldo anterior: %w", err)
	}

	if _, err := r.Insert(r.conn, entry); err != nil {
		return err
	}

	return nil
}

func (r *ledgerRepository) ListSettlementBatches() ([]*domain.LedgerBatch, error) {
	query, args, err := squirrel.
		Select("lote_importacao", "COUNT(*) AS qtd", "MIN(data_lancamento) AS data_min", "MAX(data_lancamento) AS data_max").
		From(ledgerTable).
		Where(squirrel.Eq{"origem": domain.LedgerSourceSettlement}).
		Where("lote_importacao IS NOT NULL").
		GroupBy("lote_importacao").
		OrderBy("MIN(data_lancamento) DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	batches := make([]*domain.LedgerBatch, 0)
	for rows.Next() {
		batch := &domain.LedgerBatch{}
		if err := rows.Scan(&batch.ImportBatchID, &batch.Count, &batch.MinDate, &batch.MaxDate); err != nil {
			return nil, fmt.Errorf("erro ao escanear lote: %w", err)
		}
		batches = append(batches, batch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return batches, nil
}

// DeleteSettlementBatch exclui um lote de extrato. Só alcança linhas com
// origem mercado_pago; lançamentos manuais nunca caem por aqui.
func (r *ledgerRepository) DeleteSettlementBatch(batchID string) (int64, error) {
	query, args, err := squirrel.
		Delete(ledgerTable).
		Where(squirrel.Eq{"lote_importacao": batchID, "origem": domain.LedgerSourceSettlement}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
