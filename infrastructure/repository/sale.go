package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/metrifypremium/metrify-api/infrastructure/database/postgres"
	"github.com/metrifypremium/metrify-api/internal/domain"
	"github.com/metrifypremium/metrify-api/pkg/utils"
)

const salesTable = "vendas v"

type SaleRepository interface {
	ListByPeriod(startDate, endDate string) ([]*domain.Sale, error)
	ListBatches(startDate, endDate string) ([]*domain.SaleBatch, error)
	InsertBatch(q postgres.Queryer, sales []*domain.Sale) error
	DeleteByBatch(batchID string) (int64, error)
	QuantitySoldSince(startDate string) (map[int64]float64, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// ListByPeriod lista as vendas do período com o nome do produto, incluindo
// as canceladas; quem agrega decide o que pular. Datas vazias não filtram
// e o fim do período é estendido até 23:59:59.
func (r *saleRepository) ListByPeriod(startDate, endDate string) ([]*domain.Sale, error) {
	queryBuilder := squirrel.
		Select("v.id, v.produto_id, p.nome, p.sku, v.data_venda, v.quantidade, v.preco_venda_unitario, v.receita_total, v.comissao_ml, v.custo_total, v.margem_contribuicao, v.origem, v.numero_venda_ml, v.lote_importacao, v.estado").
		From(salesTable).
		Join("produtos p ON v.produto_id = p.id").
		OrderBy("v.data_venda ASC").
		PlaceholderFormat(squirrel.Dollar)

	if startDate != "" {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"v.data_venda": startDate})
	}

	if endDate != "" {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"v.data_venda": utils.EndOfDay(endDate)})
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

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale := &domain.Sale{}
		var origin, orderNumber *string

		if err := rows.Scan(
			&sale.ID,
			&sale.ProductID,
			&sale.ProductName,
			&sale.ProductSKU,
			&sale.SaleDate,
			&sale.Quantity,
			&sale.UnitPrice,
			&sale.GrossRevenue,
			&sale.Commission,
			&sale.TotalCost,
			&sale.Margin,
			&origin,
			&orderNumber,
			&sale.ImportBatchID,
			&sale.RegionCode,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}

		if origin != nil {
			sale.Origin = *origin
		}
		if orderNumber != nil {
			sale.OrderNumber = *orderNumber
		}

		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) ListBatches(startDate, endDate string) ([]*domain.SaleBatch, error) {
	queryBuilder := squirrel.
		Select("v.lote_importacao", "COUNT(*) AS qtd_vendas", "COALESCE(SUM(v.receita_total), 0) AS receita_lote").
		From(salesTable).
		Where("v.lote_importacao IS NOT NULL").
		GroupBy("v.lote_importacao").
		OrderBy("v.lote_importacao DESC").
		PlaceholderFormat(squirrel.Dollar)

	if startDate != "" {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"v.data_venda": startDate})
	}

	if endDate != "" {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"v.data_venda": utils.EndOfDay(endDate)})
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

	batches := make([]*domain.SaleBatch, 0)
	for rows.Next() {
		batch := &domain.SaleBatch{}
		if err := rows.Scan(&batch.ImportBatchID, &batch.SalesCount, &batch.BatchRevenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear lote: %w", err)
		}
		batches = append(batches, batch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return batches, nil
}

// InsertBatch insere um bloco de vendas em um único INSERT multi-linha.
// O chamador controla o tamanho do bloco e o commit.
func (r *saleRepository) InsertBatch(q postgres.Queryer, sales []*domain.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	queryBuilder := squirrel.
		Insert("vendas").
		Columns("produto_id", "data_venda", "quantidade", "preco_venda_unitario", "receita_total", "comissao_ml", "custo_total", "margem_contribuicao", "origem", "numero_venda_ml", "lote_importacao", "estado")

	for _, sale := range sales {
		queryBuilder = queryBuilder.Values(
			sale.ProductID,
			sale.SaleDate,
			sale.Quantity,
			sale.UnitPrice,
			sale.GrossRevenue,
			sale.Commission,
			sale.TotalCost,
			sale.Margin,
			sale.Origin,
			sale.OrderNumber,
			sale.ImportBatchID,
			sale.RegionCode,
		)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir vendas: %w", err)
	}

	return nil
}

func (r *saleRepository) DeleteByBatch(batchID string) (int64, error) {
	query, args, err := squirrel.
		Delete("vendas").
		Where(squirrel.Eq{"lote_importacao": batchID}).
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

// QuantitySoldSince soma as unidades vendidas por produto a partir de uma
// data, excluindo canceladas. Alimenta a média diária da visão de estoque.
func (r *saleRepository) QuantitySoldSince(startDate string) (map[int64]float64, error) {
	queryBuilder := squirrel.
		Select("v.produto_id", "COALESCE(SUM(v.quantidade), 0)").
		From(salesTable).
		Where(squirrel.Gt{"v.receita_total": 0}).
		GroupBy("v.produto_id").
		PlaceholderFormat(squirrel.Dollar)

	if startDate != "" {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"v.data_venda": startDate})
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

	sold := make(map[int64]float64)
	for rows.Next() {
		var productID int64
		var quantity float64
		if err := rows.Scan(&productID, &quantity); err != nil {
			return nil, fmt.Errorf("erro ao escanear quantidade vendida: %w", err)
		}
		sold[productID] = quantity
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sold, nil
}
