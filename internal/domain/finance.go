package domain

import "github.com/shopspring/decimal"

// Tipos de lançamento do caixa (finance_transactions.tipo).
type LedgerKind string

const (
	LedgerOpeningBalance LedgerKind = "OPENING_BALANCE"
	LedgerMPNet          LedgerKind = "MP_NET"
	LedgerRefund         LedgerKind = "REFUND"
	LedgerWithdrawal     LedgerKind = "WITHDRAWAL"
	LedgerAdjustment     LedgerKind = "ADJUSTMENT"
	LedgerFeeML          LedgerKind = "FEE_ML"
)

// Origem dos lançamentos.
const (
	LedgerSourceManual     = "manual"
	LedgerSourceSettlement = "mercado_pago"
)

// LedgerEntry é uma linha de finance_transactions. Valores usam decimal
// para não acumular erro de ponto flutuante na conciliação; o sinal segue
// a convenção do extrato (estornos/retiradas/tarifas negativos).
type LedgerEntry struct {
	ID            int64           `json:"id"`
	Date          string          `json:"data_lancamento"`
	Kind          LedgerKind      `json:"tipo"`
	Amount        decimal.Decimal `json:"valor"`
	Source        string          `json:"origem"`
	ExternalID    *string         `json:"external_id_mp"`
	Description   *string         `json:"descricao"`
	CreatedAt     *string         `json:"criado_em"`
	ImportBatchID *string         `json:"lote_importacao"`
}

// LedgerSummary é o fechamento de caixa de um período.
type LedgerSummary struct {
	StartDate      string          `json:"data_inicio"`
	EndDate        string          `json:"data_fim"`
	OpeningBalance decimal.Decimal `json:"saldo_anterior"`
	MPNet          decimal.Decimal `json:"entradas_mp"`
	Refunds        decimal.Decimal `json:"devolucoes"`
	Withdrawals    decimal.Decimal `json:"retiradas"`
	Fees           decimal.Decimal `json:"tarifas_ml"`
	Adjustments    decimal.Decimal `json:"ajustes"`
	PeriodMovement decimal.Decimal `json:"saldo_periodo"`
	ClosingBalance decimal.Decimal `json:"saldo_atual"`
	Entries        []*LedgerEntry  `json:"transacoes"`
	Batches        []*LedgerBatch  `json:"lotes_mp"`
}

// LedgerBatch agrega um lote de importação de extrato.
type LedgerBatch struct {
	ImportBatchID string `json:"lote_importacao"`
	Count         int    `json:"qtd"`
	MinDate       string `json:"data_min"`
	MaxDate       string `json:"data_max"`
}

// Ações manuais do caixa.
const (
	LedgerActionOpeningBalance = "saldo_inicial"
	LedgerActionRefund         = "devolucao"
	LedgerActionWithdrawal     = "retirada"
	LedgerActionAdjustment     = "ajuste"
)

// ManualLedgerRequest é um lançamento manual vindo da tela de caixa.
type ManualLedgerRequest struct {
	Action      string          `json:"acao"`
	Date        string          `json:"data"`
	Amount      decimal.Decimal `json:"valor"`
	Description *string         `json:"descricao"`
}

// SettlementImportSummary é o resumo de uma importação de extrato.
type SettlementImportSummary struct {
	BatchID  string `json:"lote_id"`
	Inserted int    `json:"importadas"`
	Updated  int    `json:"atualizadas"`
	Skipped  int    `json:"ignoradas"`
}

// ReconciliationLine compara, para um dia, a receita líquida reconhecida
// pelo marketplace com a liquidada pelo processador. Diferença com sinal;
// nenhuma correção automática é aplicada.
type ReconciliationLine struct {
	Day        string  `json:"dia"`
	MarketNet  float64 `json:"ml"`
	SettledNet float64 `json:"mp"`
	Difference float64 `json:"diff"`
}

// ReconciliationReport é a visão de conciliação de um período.
type ReconciliationReport struct {
	StartDate       string                `json:"data_inicio"`
	EndDate         string                `json:"data_fim"`
	MarketNetTotal  float64               `json:"ml_liquida"`
	SettledNetTotal float64               `json:"mp_liquida"`
	Difference      float64               `json:"diferenca_total"`
	Lines           []*ReconciliationLine `json:"linhas"`
}
