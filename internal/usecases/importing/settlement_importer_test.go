package importing

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/metrifypremium/metrify-api/infrastructure/database/postgres"
	"github.com/metrifypremium/metrify-api/infrastructure/repository/mocks"
	"github.com/metrifypremium/metrify-api/infrastructure/spreadsheet"
	"github.com/metrifypremium/metrify-api/internal/config"
	"github.com/metrifypremium/metrify-api/internal/domain"
)

func TestClassifySettlement(t *testing.T) {
	tests := []struct {
		name           string
		kindRaw        string
		amount         float64
		expectedKind   domain.LedgerKind
		expectedAmount float64
	}{
		{
			name:           "Pagamento vira MP_NET positivo",
			kindRaw:        "Pagamento",
			amount:         -120.50,
			expectedKind:   domain.LedgerMPNet,
			expectedAmount: 120.50,
		},
		{
			name:           "Venda vira MP_NET positivo",
			kindRaw:        "Liquidação de venda",
			amount:         80,
			expectedKind:   domain.LedgerMPNet,
			expectedAmount: 80,
		},
		{
			name:           "Estorno força negativo",
			kindRaw:        "Estorno de pagamento",
			amount:         35,
			expectedKind:   domain.LedgerRefund,
			expectedAmount: -35,
		},
		{
			name:           "Chargeback é devolução",
			kindRaw:        "Chargeback",
			amount:         -35,
			expectedKind:   domain.LedgerRefund,
			expectedAmount: -35,
		},
		{
			name:           "Contestação é devolução",
			kindRaw:        "Contestação",
			amount:         12,
			expectedKind:   domain.LedgerRefund,
			expectedAmount: -12,
		},
		{
			name:           "Retirada força negativo",
			kindRaw:        "Retirada para conta bancária",
			amount:         500,
			expectedKind:   domain.LedgerWithdrawal,
			expectedAmount: -500,
		},
		{
			name:           "Payout é retirada",
			kindRaw:        "payout",
			amount:         500,
			expectedKind:   domain.LedgerWithdrawal,
			expectedAmount: -500,
		},
		{
			name:           "Tarifa força negativo",
			kindRaw:        "Tarifa de venda",
			amount:         7.90,
			expectedKind:   domain.LedgerFeeML,
			expectedAmount: -7.90,
		},
		{
			name:           "Tipo desconhecido fica MP_NET com o valor como veio",
			kindRaw:        "Transferência Pix recebida",
			amount:         -42,
			expectedKind:   domain.LedgerMPNet,
			expectedAmount: -42,
		},
		{
			name:           "Valor zero não ganha sinal",
			kindRaw:        "Estorno",
			amount:         0,
			expectedKind:   domain.LedgerRefund,
			expectedAmount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, amount := ClassifySettlement(tt.kindRaw, tt.amount)
			assert.Equal(t, tt.expectedKind, kind)
			assert.Equal(t, tt.expectedAmount, amount)
		})
	}
}

func TestExternalID(t *testing.T) {
	tests := []struct {
		name      string
		row       spreadsheet.Row
		newLayout bool
		expected  string
	}{
		{
			name:      "Célula numérica perde o sufixo decimal",
			row:       spreadsheet.Row{"Número do movimento": "123456789.0"},
			newLayout: true,
			expected:  "123456789",
		},
		{
			name:      "Id textual passa direto",
			row:       spreadsheet.Row{"Número do movimento": "mov-001"},
			newLayout: true,
			expected:  "mov-001",
		},
		{
			name:      "Layout antigo usa a coluna de transação",
			row:       spreadsheet.Row{"ID DA TRANSAÇÃO NO MERCADO PAGO": "987"},
			newLayout: false,
			expected:  "987",
		},
		{
			name:      "Ausente vira vazio",
			row:       spreadsheet.Row{},
			newLayout: true,
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, externalID(tt.row, tt.newLayout))
		})
	}
}

func TestSettlementDate(t *testing.T) {
	assert.Equal(t, "2025-02-01T08:30:00", settlementDate("2025-02-01T08:30:00"))

	// usa a primeira candidata interpretável
	assert.Equal(t, "2025-02-02T00:00:00", settlementDate("", "2025-02-02", "2025-01-01"))

	// sem candidata válida cai no momento atual, nunca vazio
	assert.NotEmpty(t, settlementDate("lixo"))
}

func TestHasColumns(t *testing.T) {
	row := spreadsheet.Row{
		"Data de pagamento":    "2025-01-01",
		"Tipo de operação":     "Pagamento",
		"Número do movimento":  "1",
		"Operação relacionada": "2",
		"Valor":                "10",
	}

	assert.True(t, hasColumns(row, newLayoutColumns))
	assert.False(t, hasColumns(row, oldLayoutColumns))
	assert.False(t, hasColumns(row, bankLayoutColumns))
}

func TestImportSettlements(t *testing.T) {
	movementRow := func(id, kind, value string) spreadsheet.Row {
		return spreadsheet.Row{
			"Data de pagamento":    "2025-03-01",
			"Tipo de operação":     kind,
			"Número do movimento":  id,
			"Operação relacionada": "op-1",
			"Valor":                value,
		}
	}

	run := func(t *testing.T, rows []spreadsheet.Row, setup func(ledgerRepo *mocks.MockLedgerRepository)) (*domain.SettlementImportSummary, error) {
		t.Helper()

		ctrl := gomock.NewController(t)
		ledgerRepo := mocks.NewMockLedgerRepository(ctrl)
		setup(ledgerRepo)

		importer := NewSettlementImporter(stubTxRunner{}, ledgerRepo, &stubReader{rows: rows}, config.Import{SettlementValueCeiling: 1e9})

		return importer.Import(context.Background(), strings.NewReader(""))
	}

	t.Run("Reimportar o mesmo arquivo atualiza em vez de inserir", func(t *testing.T) {
		rows := []spreadsheet.Row{
			movementRow("111", "Pagamento", "100"),
			movementRow("222", "Pagamento", "80"),
		}

		summary, err := run(t, rows, func(ledgerRepo *mocks.MockLedgerRepository) {
			ledgerRepo.EXPECT().ExistingExternalIDs([]string{"111", "222"}).Return(map[string]struct{}{
				"111": {},
				"222": {},
			}, nil)
			ledgerRepo.EXPECT().UpsertByExternalID(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		})

		require.NoError(t, err)
		assert.Equal(t, 0, summary.Inserted)
		assert.Equal(t, 2, summary.Updated)
		assert.Equal(t, 0, summary.Skipped)
	})

	t.Run("Id repetido no arquivo sobrescreve e conta como atualização", func(t *testing.T) {
		rows := []spreadsheet.Row{
			movementRow("333", "Pagamento", "100"),
			movementRow("333", "Pagamento", "150"),
		}

		var upserted []*domain.LedgerEntry
		summary, err := run(t, rows, func(ledgerRepo *mocks.MockLedgerRepository) {
			ledgerRepo.EXPECT().ExistingExternalIDs(gomock.Any()).Return(map[string]struct{}{}, nil)
			ledgerRepo.EXPECT().UpsertByExternalID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ postgres.Queryer, entry *domain.LedgerEntry) error {
				upserted = append(upserted, entry)
				return nil
			}).Times(2)
		})

		require.NoError(t, err)
		assert.Equal(t, 1, summary.Inserted)
		assert.Equal(t, 1, summary.Updated)

		// as duas ocorrências passam pelo upsert: a última vence no banco
		require.Len(t, upserted, 2)
		require.NotNil(t, upserted[1].ExternalID)
		assert.Equal(t, "333", *upserted[1].ExternalID)
		assert.True(t, upserted[1].Amount.Equal(decimal.NewFromFloat(150)))
	})

	t.Run("Linha sem id externo é ignorada", func(t *testing.T) {
		rows := []spreadsheet.Row{
			movementRow("444", "Pagamento", "60"),
			movementRow("", "Pagamento", "10"),
		}

		summary, err := run(t, rows, func(ledgerRepo *mocks.MockLedgerRepository) {
			ledgerRepo.EXPECT().ExistingExternalIDs([]string{"444"}).Return(map[string]struct{}{}, nil)
			ledgerRepo.EXPECT().UpsertByExternalID(gomock.Any(), gomock.Any()).Return(nil)
		})

		require.NoError(t, err)
		assert.Equal(t, 1, summary.Inserted)
		assert.Equal(t, 1, summary.Skipped)
	})

	t.Run("Layout desconhecido não persiste nada", func(t *testing.T) {
		rows := []spreadsheet.Row{{"Coluna estranha": "x"}}

		_, err := run(t, rows, func(_ *mocks.MockLedgerRepository) {})

		assert.ErrorIs(t, err, ErrUnexpectedFormat)
	})
}
