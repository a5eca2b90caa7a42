package reporting

import (
	"testing"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/metrifypremium/metrify-api/infrastructure/repository/mocks"
	"github.com/metrifypremium/metrify-api/internal/config"
	"github.com/metrifypremium/metrify-api/internal/domain"
)

type serviceMocks struct {
	productRepo  *mocks.MockProductRepository
	saleRepo     *mocks.MockSaleRepository
	settingsRepo *mocks.MockSettingsRepository
}

func newTestService(t *testing.T, now time.Time) (*Service, *serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		productRepo:  mocks.NewMockProductRepository(ctrl),
		saleRepo:     mocks.NewMockSaleRepository(ctrl),
		settingsRepo: mocks.NewMockSettingsRepository(ctrl),
	}

	service := &Service{
		productRepo:  m.productRepo,
		saleRepo:     m.saleRepo,
		settingsRepo: m.settingsRepo,
		cache:        gocache.New(time.Minute, 5*time.Minute),
		inventoryCfg: config.Inventory{WindowDays: 30, MinCoverDays: 15},
		now:          func() time.Time { return now },
	}

	return service, m
}

func TestProfitReport(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	saleDate := "2025-01-15T10:00:00"
	periodSale := &domain.Sale{
		ProductID:    1,
		ProductName:  "Produto A",
		SaleDate:     &saleDate,
		Quantity:     1,
		GrossRevenue: 100,
		TotalCost:    20,
		Margin:       70, // comissão derivada = 10
	}
	product := &domain.Product{ID: 1, Name: "Produto A", MonthlyAdSpend: 100}

	t.Run("Filtro só com data final aloca verba pelos meses com venda", func(t *testing.T) {
		service, m := newTestService(t, now)

		m.settingsRepo.EXPECT().Get().Return(&domain.Settings{}, nil)
		m.productRepo.EXPECT().List().Return([]*domain.Product{product}, nil)
		m.saleRepo.EXPECT().ListByPeriod("", "2025-03-31").Return([]*domain.Sale{periodSale}, nil)

		endDate := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
		report, err := service.ProfitReport(&domain.ReportFilters{EndDate: &endDate})

		require.NoError(t, err)
		require.Len(t, report.Lines, 1)

		// a janela começa na venda mais antiga: janeiro a março = 3 verbas
		assert.Equal(t, 300.0, report.Lines[0].AdSpend)
		assert.Equal(t, 100.0-20.0-10.0-300.0, report.Lines[0].NetProfit)
	})

	t.Run("Filtro completo aloca pela janela informada", func(t *testing.T) {
		service, m := newTestService(t, now)

		m.settingsRepo.EXPECT().Get().Return(&domain.Settings{}, nil)
		m.productRepo.EXPECT().List().Return([]*domain.Product{product}, nil)
		m.saleRepo.EXPECT().ListByPeriod("2025-01-01", "2025-03-31").Return([]*domain.Sale{periodSale}, nil)

		startDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		endDate := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
		report, err := service.ProfitReport(&domain.ReportFilters{StartDate: &startDate, EndDate: &endDate})

		require.NoError(t, err)
		require.Len(t, report.Lines, 1)
		assert.Equal(t, 300.0, report.Lines[0].AdSpend)
	})
}

func TestInventory(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	service, m := newTestService(t, now)

	m.settingsRepo.EXPECT().Get().Return(&domain.Settings{TaxPercent: 10, ExpensePercent: 5}, nil)
	m.productRepo.EXPECT().List().Return([]*domain.Product{
		{ID: 1, Name: "Produto A", CurrentStock: 60, UnitCost: 10},
	}, nil)

	windowSale := &domain.Sale{ProductID: 1, Quantity: 30, GrossRevenue: 3000, TotalCost: 300, Margin: 2400}
	m.saleRepo.EXPECT().ListByPeriod("2025-05-11", "").Return([]*domain.Sale{windowSale}, nil)

	report, err := service.Inventory()

	require.NoError(t, err)
	assert.Equal(t, 30, report.WindowDays)
	require.Len(t, report.Lines, 1)
	assert.Equal(t, 60, report.TotalUnits)
	assert.Equal(t, 600.0, report.TotalStockCost)

	require.NotNil(t, report.Lines[0].DaysOfCover)
	assert.Equal(t, 60.0, *report.Lines[0].DaysOfCover)
	assert.False(t, report.Lines[0].NeedsReorder)
}
