package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/metrifypremium/metrify-api/infrastructure/database/postgres"
	"github.com/metrifypremium/metrify-api/internal/domain"
)

const stockAdjustmentsTable = "ajustes_estoque"

type StockAdjustmentRepository interface {
	Insert(q postgres.Queryer, adjustment *domain.StockAdjustment) (int64, error)
	ListByProduct(productID int64) ([]*domain.StockAdjustment, error)
}

type stockAdjustmentRepository struct {
	conn *postgres.Connection
}

func NewStockAdjustmentRepository(conn *postgres.Connection) StockAdjustmentRepository {
	return &stockAdjustmentRepository{
		conn: conn,
	}
}

func (r *stockAdjustmentRepository) Insert(q postgres.Queryer, adjustment *domain.StockAdjustment) (int64, error) {
	query, args, err := squirrel.
		Insert(stockAdjustmentsTable).
		Columns("produto_id", "data_ajuste", "tipo", "quantidade", "custo_unitario", "observacao").
		Values(adjustment.ProductID, adjustment.Date, adjustment.Kind, adjustment.Quantity, adjustment.UnitCost, adjustment.Note).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id int64
	if err := q.QueryRow(query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("erro ao inserir ajuste de estoque: %w", err)
	}

	return id, nil
}

func (r *stockAdjustmentRepository) ListByProduct(productID int64) ([]*domain.StockAdjustment, error) {
	query, args, err := squirrel.
		Select("id, produto_id, data_ajuste, tipo, quantidade, custo_unitario, observacao").
		From(stockAdjustmentsTable).
		Where(squirrel.Eq{"produto_id": productID}).
		OrderBy("data_ajuste DESC", "id DESC").
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

	adjustments := make([]*domain.StockAdjustment, 0)
	for rows.Next() {
		adjustment := &domain.StockAdjustment{}
		var note *string
		if err := rows.Scan(
			&adjustment.ID,
			&adjustment.ProductID,
			&adjustment.Date,
			&adjustment.Kind,
			&adjustment.Quantity,
			&adjustment.UnitCost,
			&note,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear ajuste: %w", err)
		}

		if note != nil {
			adjustment.Note = *note
		}

		adjustments = append(adjustments, adjustment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return adjustments, nil
}
