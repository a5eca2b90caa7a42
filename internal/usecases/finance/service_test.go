package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/metrifypremium/metrify-api/infrastructure/repository/mocks"
	"github.com/metrifypremium/metrify-api/internal/domain"
)

func TestBuildSummary(t *testing.T) {
	t.Run("Saldo atual é abertura mais movimento", func(t *testing.T) {
		sums := map[domain.LedgerKind]decimal.Decimal{
			domain.LedgerMPNet:      decimal.NewFromFloat(1000),
			domain.LedgerRefund:     decimal.NewFromFloat(-50),
			domain.LedgerWithdrawal: decimal.NewFromFloat(-300),
			domain.LedgerFeeML:      decimal.NewFromFloat(-20),
			domain.LedgerAdjustment: decimal.NewFromFloat(10),
		}

		summary := buildSummary("2025-03-01", "2025-03-31", decimal.NewFromFloat(500), sums)

		assert.True(t, summary.PeriodMovement.Equal(decimal.NewFromFloat(640)))
		assert.True(t, summary.ClosingBalance.Equal(decimal.NewFromFloat(1140)))
	})

	t.Run("Saldo inicial dentro do período não conta como movimento", func(t *testing.T) {
		sums := map[domain.LedgerKind]decimal.Decimal{
			domain.LedgerOpeningBalance: decimal.NewFromFloat(9999),
			domain.LedgerMPNet:          decimal.NewFromFloat(100),
		}

		summary := buildSummary("2025-03-01", "2025-03-31", decimal.Zero, sums)

		assert.True(t, summary.PeriodMovement.Equal(decimal.NewFromFloat(100)))
		assert.True(t, summary.ClosingBalance.Equal(decimal.NewFromFloat(100)))
	})

	t.Run("Período vazio fecha em zero", func(t *testing.T) {
		summary := buildSummary("2025-03-01", "2025-03-31", decimal.Zero, map[domain.LedgerKind]decimal.Decimal{})

		assert.True(t, summary.PeriodMovement.IsZero())
		assert.True(t, summary.ClosingBalance.IsZero())
	})
}

func TestManualEntry(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name           string
		request        *domain.ManualLedgerRequest
		expectedKind   domain.LedgerKind
		expectedAmount float64
		expectedErr    error
	}{
		{
			name:           "Devolução é forçada negativa",
			request:        &domain.ManualLedgerRequest{Action: "devolucao", Date: "2025-03-05", Amount: decimal.NewFromFloat(80)},
			expectedKind:   domain.LedgerRefund,
			expectedAmount: -80,
		},
		{
			name:           "Retirada já negativa não troca de sinal",
			request:        &domain.ManualLedgerRequest{Action: "retirada", Date: "2025-03-05", Amount: decimal.NewFromFloat(-200)},
			expectedKind:   domain.LedgerWithdrawal,
			expectedAmount: -200,
		},
		{
			name:           "Ajuste mantém o sinal informado",
			request:        &domain.ManualLedgerRequest{Action: "ajuste", Date: "2025-03-05", Amount: decimal.NewFromFloat(-15.5)},
			expectedKind:   domain.LedgerAdjustment,
			expectedAmount: -15.5,
		},
		{
			name:           "Saldo inicial mantém o sinal informado",
			request:        &domain.ManualLedgerRequest{Action: "saldo_inicial", Date: "2025-03-05", Amount: decimal.NewFromFloat(1200)},
			expectedKind:   domain.LedgerOpeningBalance,
			expectedAmount: 1200,
		},
		{
			name:        "Ação desconhecida é rejeitada",
			request:     &domain.ManualLedgerRequest{Action: "transferencia", Amount: decimal.NewFromFloat(10)},
			expectedErr: ErrUnknownAction,
		},
		{
			name:        "Data fora do formato é rejeitada",
			request:     &domain.ManualLedgerRequest{Action: "ajuste", Date: "05/03/2025", Amount: decimal.NewFromFloat(10)},
			expectedErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := manualEntry(tt.request, now)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedKind, entry.Kind)
			assert.True(t, entry.Amount.Equal(decimal.NewFromFloat(tt.expectedAmount)))
			assert.Equal(t, "2025-03-05T00:00:00", entry.Date)
			assert.Equal(t, domain.LedgerSourceManual, entry.Source)
		})
	}

	t.Run("Sem data usa o dia corrente", func(t *testing.T) {
		entry, err := manualEntry(&domain.ManualLedgerRequest{Action: "ajuste", Amount: decimal.NewFromFloat(10)}, now)

		require.NoError(t, err)
		assert.Equal(t, "2025-03-10T00:00:00", entry.Date)
	})
}

func TestReconcile(t *testing.T) {
	saleAt := func(date string, revenue, commission float64) *domain.Sale {
		return &domain.Sale{SaleDate: &date, GrossRevenue: revenue, Commission: commission}
	}
	entryAt := func(date string, kind domain.LedgerKind, amount float64) *domain.LedgerEntry {
		return &domain.LedgerEntry{Date: date, Kind: kind, Amount: decimal.NewFromFloat(amount)}
	}

	t.Run("Dias casam e a diferença é assinada", func(t *testing.T) {
		sales := []*domain.Sale{
			saleAt("2025-03-01T10:00:00", 100, 10),
			saleAt("2025-03-01T15:00:00", 50, 5),
			saleAt("2025-03-02T09:00:00", 200, 20),
		}
		entries := []*domain.LedgerEntry{
			entryAt("2025-03-01T12:00:00", domain.LedgerMPNet, 135),
			entryAt("2025-03-02T12:00:00", domain.LedgerMPNet, 150),
			// tarifas e retiradas não entram na série liquidada
			entryAt("2025-03-02T12:00:00", domain.LedgerFeeML, -30),
			entryAt("2025-03-02T13:00:00", domain.LedgerWithdrawal, -500),
		}

		report := reconcile("2025-03-01", "2025-03-31", sales, entries)

		require.Len(t, report.Lines, 2)
		assert.Equal(t, "2025-03-01", report.Lines[0].Day)
		assert.Equal(t, 135.0, report.Lines[0].MarketNet)
		assert.Equal(t, 135.0, report.Lines[0].SettledNet)
		assert.Equal(t, 0.0, report.Lines[0].Difference)

		assert.Equal(t, "2025-03-02", report.Lines[1].Day)
		assert.Equal(t, 180.0, report.Lines[1].MarketNet)
		assert.Equal(t, 150.0, report.Lines[1].SettledNet)
		assert.Equal(t, 30.0, report.Lines[1].Difference)

		assert.Equal(t, 315.0, report.MarketNetTotal)
		assert.Equal(t, 285.0, report.SettledNetTotal)
		assert.Equal(t, 30.0, report.Difference)
	})

	t.Run("Venda cancelada fica fora do lado do marketplace", func(t *testing.T) {
		sales := []*domain.Sale{
			saleAt("2025-03-01T10:00:00", 100, 10),
			saleAt("2025-03-01T11:00:00", 0, 8),
		}

		report := reconcile("2025-03-01", "2025-03-31", sales, nil)

		require.Len(t, report.Lines, 1)
		assert.Equal(t, 90.0, report.Lines[0].MarketNet)
	})

	t.Run("Dia só com extrato aparece com venda zerada", func(t *testing.T) {
		entries := []*domain.LedgerEntry{
			entryAt("2025-03-07T00:00:00", domain.LedgerMPNet, 42),
		}

		report := reconcile("2025-03-01", "2025-03-31", nil, entries)

		require.Len(t, report.Lines, 1)
		assert.Equal(t, "2025-03-07", report.Lines[0].Day)
		assert.Equal(t, 0.0, report.Lines[0].MarketNet)
		assert.Equal(t, -42.0, report.Lines[0].Difference)
	})

	t.Run("Venda sem data não derruba a conciliação", func(t *testing.T) {
		report := reconcile("2025-03-01", "2025-03-31", []*domain.Sale{{GrossRevenue: 100}}, nil)
		assert.Empty(t, report.Lines)
	})
}

func TestSetOpeningBalance(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	t.Run("Lançamento datado um dia antes e identificado pela descrição", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledgerRepo := mocks.NewMockLedgerRepository(ctrl)

		var replaced *domain.LedgerEntry
		ledgerRepo.EXPECT().ReplaceOpeningBalance(gomock.Any()).DoAndReturn(func(entry *domain.LedgerEntry) error {
			replaced = entry
			return nil
		})

		service := &Service{ledgerRepo: ledgerRepo, now: func() time.Time { return now }}

		require.NoError(t, service.SetOpeningBalance("2025-03-01", decimal.NewFromFloat(500)))

		require.NotNil(t, replaced)
		assert.Equal(t, "2025-02-28T00:00:00", replaced.Date)
		assert.Equal(t, domain.LedgerOpeningBalance, replaced.Kind)
		assert.Equal(t, domain.LedgerSourceManual, replaced.Source)
		assert.True(t, replaced.Amount.Equal(decimal.NewFromFloat(500)))

		// a descrição é a chave do período: mesma data de início substitui
		require.NotNil(t, replaced.Description)
		assert.Equal(t, "Saldo anterior manual para 2025-03-01", *replaced.Description)
	})

	t.Run("Data fora do formato é rejeitada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := &Service{ledgerRepo: mocks.NewMockLedgerRepository(ctrl), now: func() time.Time { return now }}

		err := service.SetOpeningBalance("01/03/2025", decimal.NewFromFloat(500))
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}
