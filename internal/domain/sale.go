package domain

import "time"

// Origem padrão das vendas importadas do marketplace.
const SaleOriginMercadoLivre = "Mercado Livre"

// Sale representa uma linha da tabela vendas. Datas são armazenadas como
// string ISO-8601 (ordenáveis lexicograficamente), igual ao banco legado;
// vendas com data não interpretável ficam com SaleDate nulo.
type Sale struct {
	ID            int64    `json:"id"`
	ProductID     int64    `json:"produto_id"`
	ProductName   string   `json:"produto,omitempty"`
	ProductSKU    *string  `json:"sku,omitempty"`
	SaleDate      *string  `json:"data_venda"`
	Quantity      int      `json:"quantidade"`
	UnitPrice     float64  `json:"preco_venda_unitario"`
	GrossRevenue  float64  `json:"receita_total"`
	Commission    float64  `json:"comissao_ml"`
	TotalCost     float64  `json:"custo_total"`
	Margin        float64  `json:"margem_contribuicao"`
	Origin        string   `json:"origem"`
	OrderNumber   string   `json:"numero_venda_ml"`
	ImportBatchID *string  `json:"lote_importacao"`
	RegionCode    *string  `json:"estado"`
}

// Cancelled informa se a venda foi cancelada. Receita <= 0 marca a venda
// como cancelada: ela não baixa estoque e fica fora de toda agregação de
// receita/margem, mas permanece persistida para auditoria.
func (s *Sale) Cancelled() bool {
	return s.GrossRevenue <= 0
}

// SaleBatch agrupa as vendas de um lote de importação.
type SaleBatch struct {
	ImportBatchID string  `json:"lote_importacao"`
	SalesCount    int     `json:"qtd_vendas"`
	BatchRevenue  float64 `json:"receita_lote"`
}

// SalesImportSummary é o resumo devolvido ao final de uma importação de
// vendas: contadores de linhas aproveitadas e degradadas, nunca erro por
// linha individual.
type SalesImportSummary struct {
	BatchID   string    `json:"lote_id"`
	Imported  int       `json:"vendas_importadas"`
	Cancelled int       `json:"vendas_canceladas"`
	NoSKU     int       `json:"vendas_sem_sku"`
	NoProduct int       `json:"vendas_sem_produto"`
	StartedAt time.Time `json:"-"`
}

// StockAdjustment é uma linha imutável de ajustes_estoque.
type StockAdjustment struct {
	ID        int64    `json:"id"`
	ProductID int64    `json:"produto_id"`
	Date      string   `json:"data_ajuste"`
	Kind      string   `json:"tipo"` // entrada | saida
	Quantity  int      `json:"quantidade"`
	UnitCost  *float64 `json:"custo_unitario"`
	Note      string   `json:"observacao"`
}

const (
	StockAdjustmentIn  = "entrada"
	StockAdjustmentOut = "saida"
)

// StockAdjustmentRequest é o payload de um ajuste manual de estoque.
// Custo unitário informado só é considerado em entradas.
type StockAdjustmentRequest struct {
	ProductID int64    `json:"produto_id"`
	Kind      string   `json:"tipo"`
	Quantity  int      `json:"quantidade"`
	UnitCost  *float64 `json:"custo_unitario"`
	Note      string   `json:"observacao"`
}
