package reporting

import (
	"testing"
	"time"

	"github.com/metrifypremium/metrify-api/internal/config"
	"github.com/metrifypremium/metrify-api/internal/domain"
	"github.com/metrifypremium/metrify-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sale(productID int64, name string, quantity int, revenue, commission, cost, margin float64) *domain.Sale {
	return &domain.Sale{
		ProductID:    productID,
		ProductName:  name,
		Quantity:     quantity,
		GrossRevenue: revenue,
		Commission:   commission,
		TotalCost:    cost,
		Margin:       margin,
	}
}

func TestAggregateTotals(t *testing.T) {
	t.Run("Venda normal entra nos totais", func(t *testing.T) {
		// produto com custo 10, venda de 2 unidades por 100 com comissão 5
		s := sale(1, "Produto A", 2, 100, 5, 20, 75)
		s.UnitPrice = 50

		totals, cancelled := aggregateTotals([]*domain.Sale{s})

		assert.Equal(t, 2, totals.Quantity)
		assert.Equal(t, 100.0, totals.Revenue)
		assert.Equal(t, 20.0, totals.Cost)
		assert.Equal(t, 75.0, totals.Margin)
		assert.Equal(t, 50.0, totals.AvgTicket)
		assert.Equal(t, 0, cancelled.Count)

		// a comissão derivada dos agregados bate com a armazenada
		assert.Equal(t, 5.0, DerivedCommission(totals.Revenue, totals.Cost, totals.Margin))
	})

	t.Run("Venda cancelada fica fora dos totais e dentro do balde", func(t *testing.T) {
		valid := sale(1, "Produto A", 1, 100, 5, 10, 85)
		valid.UnitPrice = 100

		cancelledSale := sale(1, "Produto A", 3, 0, 0, 30, -30)
		cancelledSale.UnitPrice = 40

		totals, cancelled := aggregateTotals([]*domain.Sale{valid, cancelledSale})

		assert.Equal(t, 100.0, totals.Revenue)
		assert.Equal(t, 1, totals.Quantity)
		assert.Equal(t, 1, cancelled.Count)
		assert.Equal(t, 120.0, cancelled.Value) // 3 unidades x preço 40
	})

	t.Run("Sem vendas válidas o ticket médio é zero, não divisão por zero", func(t *testing.T) {
		totals, _ := aggregateTotals([]*domain.Sale{sale(1, "A", 1, 0, 0, 10, -10)})
		assert.Equal(t, 0.0, totals.AvgTicket)
		assert.Equal(t, 0.0, totals.Revenue)
	})
}

func TestDerivedCommission(t *testing.T) {
	assert.Equal(t, 5.0, DerivedCommission(100, 20, 75))
	assert.Equal(t, 0.0, DerivedCommission(100, 20, 90))   // margem maior que receita-custo
	assert.Equal(t, 0.0, DerivedCommission(0, 50, 10))     // receita zero
	assert.Equal(t, 0.0, DerivedCommission(-10, 20, -25))  // sinais invertidos
	assert.Equal(t, 130.0, DerivedCommission(100, -20, -10))
}

func TestAdAllocation(t *testing.T) {
	adSpend := map[int64]float64{1: 300, 2: 100, 3: 999}

	grouped := map[int64]*productTotals{
		1: {ProductID: 1},
		2: {ProductID: 2},
		// produto 3 não vendeu no período: não entra
	}

	t.Run("Um mês de calendário aloca uma verba", func(t *testing.T) {
		start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 400.0, adAllocation(grouped, adSpend, start, end))
	})

	t.Run("Período que toca dois meses aloca duas verbas", func(t *testing.T) {
		start := time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 800.0, adAllocation(grouped, adSpend, start, end))
	})
}

func TestRankings(t *testing.T) {
	t.Run("Destaques por quantidade e margem", func(t *testing.T) {
		grouped := map[int64]*productTotals{
			1: {ProductID: 1, Name: "A", Quantity: 10, Margin: 50},
			2: {ProductID: 2, Name: "B", Quantity: 30, Margin: 20},
			3: {ProductID: 3, Name: "C", Quantity: 5, Margin: -15},
		}

		best, most, least := rankings(grouped)

		require.NotNil(t, best)
		assert.Equal(t, "B", best.Name)
		assert.Equal(t, 30.0, best.Value)

		require.NotNil(t, most)
		assert.Equal(t, "A", most.Name)

		require.NotNil(t, least)
		assert.Equal(t, "C", least.Name)
	})

	t.Run("Empate vai para o menor id de produto", func(t *testing.T) {
		grouped := map[int64]*productTotals{
			9: {ProductID: 9, Name: "Maior id", Quantity: 10, Margin: 10},
			4: {ProductID: 4, Name: "Menor id", Quantity: 10, Margin: 10},
		}

		best, most, least := rankings(grouped)
		assert.Equal(t, int64(4), best.ProductID)
		assert.Equal(t, int64(4), most.ProductID)
		assert.Equal(t, int64(4), least.ProductID)
	})

	t.Run("Sem vendas não há destaques", func(t *testing.T) {
		best, most, least := rankings(map[int64]*productTotals{})
		assert.Nil(t, best)
		assert.Nil(t, most)
		assert.Nil(t, least)
	})
}

func TestDailySeries(t *testing.T) {
	d1 := "2025-03-01T10:00:00"
	d1b := "2025-03-01T15:00:00"
	d2 := "2025-03-02T09:00:00"

	s1 := sale(1, "A", 1, 100, 10, 20, 70)
	s1.SaleDate = &d1
	s2 := sale(1, "A", 2, 50, 5, 10, 35)
	s2.SaleDate = &d1b
	s3 := sale(2, "B", 1, 80, 8, 30, 42)
	s3.SaleDate = &d2
	cancelledSale := sale(2, "B", 1, 0, 0, 30, -30)
	cancelledSale.SaleDate = &d2
	noDate := sale(2, "B", 1, 60, 6, 30, 24)

	points := dailySeries([]*domain.Sale{s3, s1, s2, cancelledSale, noDate})

	require.Len(t, points, 2)
	assert.Equal(t, "2025-03-01", points[0].Day)
	assert.Equal(t, 150.0, points[0].Revenue)
	assert.Equal(t, 3.0, points[0].Quantity)
	assert.Equal(t, 105.0, points[0].NetProfit)
	assert.Equal(t, 135.0, points[0].NetRevenue)

	assert.Equal(t, "2025-03-02", points[1].Day)
	assert.Equal(t, 80.0, points[1].Revenue) // cancelada e sem data ficam fora
}

func TestMonthComparison(t *testing.T) {
	today := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	currentStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	previousStart := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	marchDate := "2025-03-05T10:00:00"
	febDate := "2025-02-05T10:00:00"
	febLate := "2025-02-28T10:00:00"

	s1 := sale(1, "A", 1, 100, 0, 0, 100)
	s1.SaleDate = &marchDate
	s2 := sale(1, "A", 1, 40, 0, 0, 40)
	s2.SaleDate = &febDate
	s3 := sale(1, "A", 1, 60, 0, 0, 60)
	s3.SaleDate = &febLate

	comparison := monthComparison([]*domain.Sale{s1, s2, s3}, today, currentStart, previousStart)

	// fevereiro de 2025 tem 28 dias, mais que os 10 dias corridos de março
	require.Len(t, comparison.Labels, 28)
	assert.Equal(t, "01", comparison.Labels[0])
	assert.Equal(t, "28", comparison.Labels[27])

	assert.Equal(t, 100.0, comparison.Current[4])  // dia 05 do mês atual
	assert.Equal(t, 40.0, comparison.Previous[4])  // dia 05 do mês anterior
	assert.Equal(t, 60.0, comparison.Previous[27]) // dia 28 do mês anterior
	assert.Equal(t, 0.0, comparison.Current[27])   // além de hoje fica zerado
}

func TestInventoryLine(t *testing.T) {
	settings := &domain.Settings{TaxPercent: 10, ExpensePercent: 5}
	cfg := config.Inventory{WindowDays: 30, MinCoverDays: 15}

	product := &domain.Product{
		ID:           1,
		Name:         "Produto A",
		CurrentStock: 60,
		UnitCost:     10,
	}

	t.Run("Produto com vendas na janela", func(t *testing.T) {
		// 30 unidades em 30 dias: 1/dia, cobertura = 60 dias
		windowTotals := &productTotals{
			ProductID: 1,
			Quantity:  30,
			Revenue:   3000, // 100/un
			Cost:      300,  // 10/un
			Margin:    2400, // comissão derivada = 300 (10/un)
		}

		line := inventoryLine(product, windowTotals, settings, cfg)

		assert.Equal(t, 1.0, line.DailyAvg)
		assert.Equal(t, 30.0, line.MonthlyAvg)
		require.NotNil(t, line.DaysOfCover)
		assert.Equal(t, 60.0, *line.DaysOfCover)
		assert.False(t, line.NeedsReorder)
		assert.Equal(t, 600.0, line.StockCost)

		// receita potencial = (100 - 10) * 60
		assert.InDelta(t, 5400.0, line.PotentialRevenue, 0.001)
		// lucro potencial = (100 - 10 - 10 - 10 - 5) * 60
		assert.InDelta(t, 3900.0, line.PotentialProfit, 0.001)
		assert.InDelta(t, 650.0, line.ReturnPercent, 0.001)
	})

	t.Run("Giro alto dispara reposição", func(t *testing.T) {
		windowTotals := &productTotals{ProductID: 1, Quantity: 300, Revenue: 3000, Cost: 300, Margin: 2400}

		line := inventoryLine(product, windowTotals, settings, cfg)

		require.NotNil(t, line.DaysOfCover)
		assert.Equal(t, 6.0, *line.DaysOfCover) // 60 / (300/30)
		assert.True(t, line.NeedsReorder)
	})

	t.Run("Produto sem vendas na janela contribui com zero", func(t *testing.T) {
		line := inventoryLine(product, nil, settings, cfg)

		assert.Equal(t, 0.0, line.DailyAvg)
		assert.Nil(t, line.DaysOfCover)
		assert.False(t, line.NeedsReorder)
		assert.Equal(t, 0.0, line.PotentialRevenue)
		assert.Equal(t, 0.0, line.PotentialProfit)
		assert.Equal(t, 600.0, line.StockCost)
	})
}

func TestSortProfitLines(t *testing.T) {
	lines := []*domain.ProfitReportLine{
		{ProductID: 3, NetProfit: 50},
		{ProductID: 1, NetProfit: 200},
		{ProductID: 5, NetProfit: 50},
	}

	sortProfitLines(lines)

	assert.Equal(t, int64(1), lines[0].ProductID)
	assert.Equal(t, int64(3), lines[1].ProductID) // empate resolvido pelo menor id
	assert.Equal(t, int64(5), lines[2].ProductID)
}

func TestAllocationWindow(t *testing.T) {
	defaultStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	defaultEnd := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	jan := "2025-01-15T10:00:00"
	mar := "2025-03-20T09:00:00"
	sales := []*domain.Sale{{SaleDate: &mar}, {SaleDate: &jan}}

	t.Run("Só data final: o início vem da venda mais antiga", func(t *testing.T) {
		filterEnd := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
		filters := &domain.ReportFilters{EndDate: &filterEnd}

		start, end := allocationWindow(sales, filters, defaultStart, filterEnd)

		assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, filterEnd, end)
		assert.Equal(t, 3, utils.MonthsSpanned(start, end))
	})

	t.Run("Só data inicial: o fim vem da venda mais recente", func(t *testing.T) {
		filterStart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		filters := &domain.ReportFilters{StartDate: &filterStart}

		start, end := allocationWindow(sales, filters, filterStart, defaultEnd)

		assert.Equal(t, filterStart, start)
		assert.Equal(t, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("Filtro completo não mexe na janela", func(t *testing.T) {
		filterStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		filterEnd := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
		filters := &domain.ReportFilters{StartDate: &filterStart, EndDate: &filterEnd}

		start, end := allocationWindow(sales, filters, filterStart, filterEnd)

		assert.Equal(t, filterStart, start)
		assert.Equal(t, filterEnd, end)
	})

	t.Run("Sem filtro não mexe na janela padrão", func(t *testing.T) {
		start, end := allocationWindow(sales, nil, defaultStart, defaultEnd)

		assert.Equal(t, defaultStart, start)
		assert.Equal(t, defaultEnd, end)
	})

	t.Run("Sem venda datada o lado aberto fica como estava", func(t *testing.T) {
		filterEnd := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
		filters := &domain.ReportFilters{EndDate: &filterEnd}

		start, end := allocationWindow([]*domain.Sale{{SaleDate: nil}}, filters, defaultStart, filterEnd)

		assert.Equal(t, defaultStart, start)
		assert.Equal(t, filterEnd, end)
	})
}
