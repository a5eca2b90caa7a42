package domain

// Product representa um produto do catálogo (tabela produtos).
// O SKU é único quando presente; produtos criados a partir de vendas
// sem correspondência podem não ter SKU.
type Product struct {
	ID             int64    `json:"id"`
	Name           string   `json:"nome"`
	SKU            *string  `json:"sku"`
	UnitCost       float64  `json:"custo_unitario"`
	SuggestedPrice float64  `json:"preco_venda_sugerido"`
	OpeningStock   int      `json:"estoque_inicial"`
	CurrentStock   int      `json:"estoque_atual"`
	MonthlyAdSpend float64  `json:"verba_ads_mensal"`
	Curve          *string  `json:"curva,omitempty"`
}

// NewProductRequest é o payload de criação/edição manual de produto.
type NewProductRequest struct {
	Name           string  `json:"nome"`
	SKU            string  `json:"sku"`
	UnitCost       float64 `json:"custo_unitario"`
	SuggestedPrice float64 `json:"preco_venda_sugerido"`
	OpeningStock   int     `json:"estoque_inicial"`
	MonthlyAdSpend float64 `json:"verba_ads_mensal"`
}

// ProductImportSummary é o resumo da importação de catálogo via planilha.
type ProductImportSummary struct {
	Imported int      `json:"produtos_importados"`
	Updated  int      `json:"produtos_atualizados"`
	Errors   []string `json:"erros"`
}

// UpdateProductRequest atualiza campos do produto; estoque atual pode ser
// corrigido manualmente por aqui (ajustes formais ficam em ajustes_estoque).
type UpdateProductRequest struct {
	ID             int64    `json:"id"`
	Name           *string  `json:"nome"`
	SKU            *string  `json:"sku"`
	UnitCost       *float64 `json:"custo_unitario"`
	SuggestedPrice *float64 `json:"preco_venda_sugerido"`
	CurrentStock   *int     `json:"estoque_atual"`
	MonthlyAdSpend *float64 `json:"verba_ads_mensal"`
}
