package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/metrifypremium/metrify-api/infrastructure/database/postgres"
	"github.com/metrifypremium/metrify-api/internal/domain"
	"github.com/metrifypremium/metrify-api/pkg/utils"
)

const productsTable = "produtos"

type ProductRepository interface {
	List() ([]*domain.Product, error)
	GetByID(id int64) (*domain.Product, error)
	GetBySKU(sku string) (*domain.Product, error)
	Create(req *domain.NewProductRequest) (*domain.Product, error)
	Update(req *domain.UpdateProductRequest) error
	Delete(id int64, cascadeSales bool) error
	IncrementStock(q postgres.Queryer, productID int64, delta int) error
	SetCostAndStock(q postgres.Queryer, productID int64, unitCost float64, stock int) error
	UpsertBySKU(q postgres.Queryer, sku, name string, unitCost float64, stock int) error
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

const productColumns = "id, nome, sku, custo_unitario, preco_venda_sugerido, estoque_inicial, estoque_atual, verba_ads_mensal, curva"

func (r *productRepository) List() ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns).
		From(productsTable).
		OrderBy("nome ASC").
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

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func (r *productRepository) GetByID(id int64) (*domain.Product, error) {
	return r.getBy(squirrel.Eq{"id": id})
}

func (r *productRepository) GetBySKU(sku string) (*domain.Product, error) {
	return r.getBy(squirrel.Eq{"sku": sku})
}

func (r *productRepository) getBy(whereClause map[string]interface{}) (*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns).
		From(productsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	product, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) Create(req *domain.NewProductRequest) (*domain.Product, error) {
	var sku *string
	if req.SKU != "" {
		sku = &req.SKU
	}

	product := &domain.Product{
		Name:           req.Name,
		SKU:            sku,
		UnitCost:       req.UnitCost,
		SuggestedPrice: req.SuggestedPrice,
		OpeningStock:   req.OpeningStock,
		CurrentStock:   req.OpeningStock,
		MonthlyAdSpend: req.MonthlyAdSpend,
	}

	query, args, err := squirrel.
		Insert(productsTable).
		Columns("nome", "sku", "custo_unitario", "preco_venda_sugerido", "estoque_inicial", "estoque_atual", "verba_ads_mensal").
		Values(product.Name, product.SKU, product.UnitCost, product.SuggestedPrice, product.OpeningStock, product.CurrentStock, product.MonthlyAdSpend).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&product.ID); err != nil {
		return nil, fmt.Errorf("erro ao inserir produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) Update(req *domain.UpdateProductRequest) error {
	queryBuilder := squirrel.
		Update(productsTable).
		Where(squirrel.Eq{"id": req.ID})

	if req.Name != nil {
		queryBuilder = queryBuilder.Set("nome", *req.Name)
	}

	if req.SKU != nil {
		if *req.SKU == "" {
			queryBuilder = queryBuilder.Set("sku", nil)
		} else {
			queryBuilder = queryBuilder.Set("sku", *req.SKU)
		}
	}

	if req.UnitCost != nil {
		queryBuilder = queryBuilder.Set("custo_unitario", *req.UnitCost)
	}

	if req.SuggestedPrice != nil {
		queryBuilder = queryBuilder.Set("preco_venda_sugerido", *req.SuggestedPrice)
	}

	if req.CurrentStock != nil {
		queryBuilder = queryBuilder.Set("estoque_atual", *req.CurrentStock)
	}

	if req.MonthlyAdSpend != nil {
		queryBuilder = queryBuilder.Set("verba_ads_mensal", *req.MonthlyAdSpend)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	return nil
}

// Delete remove o produto. Com cascadeSales, as vendas e os ajustes de
// estoque do produto caem junto, na mesma transação.
func (r *productRepository) Delete(id int64, cascadeSales bool) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if cascadeSales {
			if _, err := tx.Exec("DELETE FROM vendas WHERE produto_id = $1", id); err != nil {
				return fmt.Errorf("erro ao excluir vendas do produto: %w", err)
			}
			if _, err := tx.Exec("DELETE FROM ajustes_estoque WHERE produto_id = $1", id); err != nil {
				return fmt.Errorf("erro ao excluir ajustes do produto: %w", err)
			}
		}

		if _, err := tx.Exec("DELETE FROM produtos WHERE id = $1", id); err != nil {
			return fmt.Errorf("erro ao excluir produto: %w", err)
		}

		return nil
	})
}

func (r *productRepository) IncrementStock(q postgres.Queryer, productID int64, delta int) error {
	_, err := q.Exec("UPDATE produtos SET estoque_atual = estoque_atual + $1 WHERE id = $2", delta, productID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar estoque: %w", err)
	}

	return nil
}

func (r *productRepository) SetCostAndStock(q postgres.Queryer, productID int64, unitCost float64, stock int) error {
	_, err := q.Exec("UPDATE produtos SET custo_unitario = $1, estoque_atual = $2 WHERE id = $3", unitCost, stock, productID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar custo e estoque: %w", err)
	}

	return nil
}

// UpsertBySKU insere ou atualiza um produto vindo da planilha de catálogo.
// Produto novo ganha preço sugerido de 1,5x o custo; na atualização o
// estoque recebe o valor da planilha e o estoque inicial fica como estava.
func (r *productRepository) UpsertBySKU(q postgres.Queryer, sku, name string, unitCost float64, stock int) error {
	query, args, err := squirrel.
		Insert(productsTable).
		Columns("nome", "sku", "custo_unitario", "preco_venda_sugerido", "estoque_inicial", "estoque_atual", "verba_ads_mensal").
		Values(name, sku, unitCost, utils.RoundWithTwoDecimalPlace(unitCost*1.5), stock, stock, 0).
		Suffix(`
			ON CONFLICT (sku) DO UPDATE SET
				nome = EXCLUDED.nome,
				custo_unitario = EXCLUDED.custo_unitario,
				estoque_atual = EXCLUDED.estoque_atual
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar produto: %w", err)
	}

	return nil
}

type productScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row productScanner) (*domain.Product, error) {
	product := &domain.Product{}

	if err := row.Scan(
		&product.ID,
		&product.Name,
		&product.SKU,
		&product.UnitCost,
		&product.SuggestedPrice,
		&product.OpeningStock,
		&product.CurrentStock,
		&product.MonthlyAdSpend,
		&product.Curve,
	); err != nil {
		return nil, err
	}

	return product, nil
}
