package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/metrifypremium/metrify-api/internal/config"
	"github.com/metrifypremium/metrify-api/internal/domain"
	financemocks "github.com/metrifypremium/metrify-api/internal/usecases/finance/mocks"
)

func TestReconciliationSyncService_RunReconciliation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	today := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		report *domain.ReconciliationReport
	}{
		{
			name: "Dia conciliado não gera alerta",
			report: &domain.ReconciliationReport{
				Lines: []*domain.ReconciliationLine{
					{Day: "2025-03-09", MarketNet: 100, SettledNet: 100, Difference: 0},
				},
			},
		},
		{
			name: "Divergência acima do limiar é sinalizada",
			report: &domain.ReconciliationReport{
				Lines: []*domain.ReconciliationLine{
					{Day: "2025-03-09", MarketNet: 100, SettledNet: 60, Difference: 40},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockFinance := financemocks.NewMockFinanceService(ctrl)

			service := &ReconciliationSyncService{
				financeService: mockFinance,
				config:         config.ReconciliationSync{DiffThreshold: 1},
				now:            func() time.Time { return today },
			}

			mockFinance.EXPECT().
				Reconciliation(gomock.Any()).
				DoAndReturn(func(filters *domain.ReportFilters) (*domain.ReconciliationReport, error) {
					// a rodada agendada olha sempre para ontem
					assert.Equal(t, "2025-03-09", filters.StartDate.Format("2006-01-02"))
					assert.Equal(t, "2025-03-09", filters.EndDate.Format("2006-01-02"))
					return tt.report, nil
				})

			err := service.RunReconciliation()
			assert.NoError(t, err)
			assert.False(t, service.syncRunning)
			assert.Equal(t, today, service.lastSyncCompletedAt)
		})
	}
}

func TestReconciliationSyncService_flagDiscrepancies(t *testing.T) {
	service := &ReconciliationSyncService{
		config: config.ReconciliationSync{DiffThreshold: 1},
	}

	report := &domain.ReconciliationReport{
		Lines: []*domain.ReconciliationLine{
			{Day: "2025-03-01", Difference: 0},
			{Day: "2025-03-02", Difference: 0.5},   // dentro do limiar
			{Day: "2025-03-03", Difference: -12.3}, // negativa também conta
			{Day: "2025-03-04", Difference: 7},
		},
	}

	assert.Equal(t, 2, service.flagDiscrepancies(report))
}
