package domain

import "time"

// ReportFilters delimita o período dos relatórios. Datas inclusivas;
// o fim do período é estendido até 23:59:59 pelas consultas.
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// SalesTotals são as somas brutas de vendas não canceladas no período,
// direto do banco.
type SalesTotals struct {
	Quantity  int     `json:"qtd"`
	Revenue   float64 `json:"receita"`
	Cost      float64 `json:"custo"`
	Margin    float64 `json:"margem"`
	AvgTicket float64 `json:"ticket_medio"`
}

// CancelledTotals é o balde separado das vendas canceladas: contadas e
// somadas, mas nunca misturadas às agregações de lucratividade.
type CancelledTotals struct {
	Count int     `json:"qtd_canceladas"`
	Value float64 `json:"valor_cancelado"`
}

// ProductRanking é o resultado de um ranking limit-1 (mais vendido, maior
// lucro, pior margem). Empates são resolvidos pelo menor id de produto.
type ProductRanking struct {
	ProductID int64   `json:"produto_id"`
	Name      string  `json:"nome"`
	Value     float64 `json:"valor"`
}

// DashboardReport reúne os cartões do painel para um período.
type DashboardReport struct {
	StartDate        string           `json:"data_inicio"`
	EndDate          string           `json:"data_fim"`
	Revenue          float64          `json:"receita_total"`
	NetRevenue       float64          `json:"receita_liquida_total"`
	Cost             float64          `json:"custo_total"`
	Commission       float64          `json:"comissao_total"`
	Tax              float64          `json:"imposto_total"`
	Expenses         float64          `json:"despesas_total"`
	AdSpend          float64          `json:"verba_ads_total"`
	NetProfit        float64          `json:"lucro_liquido_total"`
	NetMarginPercent float64          `json:"margem_liquida_percent"`
	AvgTicket        float64          `json:"ticket_medio"`
	Cancelled        CancelledTotals  `json:"canceladas"`
	ProductCount     int              `json:"total_produtos"`
	StockUnits       int              `json:"estoque_total"`
	BestSeller       *ProductRanking  `json:"produto_mais_vendido"`
	MostProfitable   *ProductRanking  `json:"produto_maior_lucro"`
	LeastProfitable  *ProductRanking  `json:"produto_pior_margem"`
}

// ProfitReportLine é uma linha do relatório de lucro por produto.
type ProfitReportLine struct {
	ProductID  int64   `json:"produto_id"`
	Product    string  `json:"produto"`
	Quantity   float64 `json:"qtd"`
	Revenue    float64 `json:"receita"`
	Cost       float64 `json:"custo"`
	Commission float64 `json:"comissao"`
	Tax        float64 `json:"imposto"`
	Expenses   float64 `json:"despesas"`
	AdSpend    float64 `json:"verba_ads"`
	NetProfit  float64 `json:"margem_liquida"`
}

// ProfitReport é o relatório de lucro completo, ordenado do maior para o
// menor lucro líquido.
type ProfitReport struct {
	StartDate string              `json:"data_inicio"`
	EndDate   string              `json:"data_fim"`
	Lines     []*ProfitReportLine `json:"linhas"`
	Totals    ProfitReportLine    `json:"totais"`
}

// DailyPoint é um ponto das séries diárias (faturamento, quantidade,
// lucro líquido e receita líquida por dia).
type DailyPoint struct {
	Day        string  `json:"dia"`
	Revenue    float64 `json:"faturamento"`
	Quantity   float64 `json:"quantidade"`
	NetProfit  float64 `json:"lucro"`
	NetRevenue float64 `json:"receita_liquida"`
}

// MonthComparison compara o faturamento dia a dia do mês corrente com o
// mês anterior, alinhado pelo dia do mês.
type MonthComparison struct {
	Labels   []string  `json:"labels"`
	Current  []float64 `json:"mes_atual"`
	Previous []float64 `json:"mes_anterior"`
}

// InventoryLine é uma linha da visão de estoque: cobertura em dias e
// projeção de receita/lucro potencial do estoque parado.
type InventoryLine struct {
	ProductID         int64    `json:"produto_id"`
	Name              string   `json:"nome"`
	SKU               *string  `json:"sku"`
	CurrentStock      int      `json:"estoque_atual"`
	UnitCost          float64  `json:"custo_unitario"`
	StockCost         float64  `json:"custo_estoque"`
	DailyAvg          float64  `json:"media_diaria"`
	MonthlyAvg        float64  `json:"media_mensal"`
	DaysOfCover       *float64 `json:"dias_cobertura"`
	NeedsReorder      bool     `json:"precisa_repor"`
	PotentialRevenue  float64  `json:"receita_potencial"`
	PotentialProfit   float64  `json:"lucro_potencial"`
	ReturnPercent     float64  `json:"retorno_percent"`
}

// InventoryReport é a visão de estoque completa com totais globais.
type InventoryReport struct {
	WindowDays         int              `json:"janela_dias"`
	MinCoverDays       int              `json:"dias_minimos"`
	Lines              []*InventoryLine `json:"produtos"`
	TotalUnits         int              `json:"total_unidades_estoque"`
	TotalStockCost     float64          `json:"total_custo_estoque"`
	PotentialRevenue   float64          `json:"receita_potencial_total"`
	PotentialProfit    float64          `json:"lucro_estimado_total"`
	TotalReturnPercent float64          `json:"percentual_lucro_total"`
}
