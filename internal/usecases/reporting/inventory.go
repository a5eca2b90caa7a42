package reporting

import (
	"fmt"
	"sort"
	"time"

	"github.com/metrifypremium/metrify-api/internal/config"
	"github.com/metrifypremium/metrify-api/internal/domain"
	"github.com/metrifypremium/metrify-api/pkg/utils"
)

// inventoryLine projeta a linha de estoque de um produto. windowTotals
// pode ser nil: produto sem venda na janela contribui com zero, não com
// nulo.
func inventoryLine(product *domain.Product, windowTotals *productTotals, settings *domain.Settings, cfg config.Inventory) *domain.InventoryLine {
	line := &domain.InventoryLine{
		ProductID:    product.ID,
		Name:         product.Name,
		SKU:          product.SKU,
		CurrentStock: product.CurrentStock,
		UnitCost:     product.UnitCost,
		StockCost:    float64(product.CurrentStock) * product.UnitCost,
	}

	if windowTotals == nil {
		return line
	}

	line.DailyAvg = windowTotals.Quantity / float64(cfg.WindowDays)
	line.MonthlyAvg = line.DailyAvg * 30.0

	if line.DailyAvg > 0 {
		cover := float64(product.CurrentStock) / line.DailyAvg
		line.DaysOfCover = &cover
		line.NeedsReorder = cover < float64(cfg.MinCoverDays)
	}

	if windowTotals.Quantity > 0 {
		commission := DerivedCommission(windowTotals.Revenue, windowTotals.Cost, windowTotals.Margin)
		tax := windowTotals.Revenue * (settings.TaxPercent / 100.0)
		expenses := windowTotals.Revenue * (settings.ExpensePercent / 100.0)

		revenueUnit := windowTotals.Revenue / windowTotals.Quantity
		costUnit := windowTotals.Cost / windowTotals.Quantity
		commissionUnit := commission / windowTotals.Quantity
		taxUnit := tax / windowTotals.Quantity
		expensesUnit := expenses / windowTotals.Quantity

		stock := float64(product.CurrentStock)
		line.PotentialRevenue = (revenueUnit - commissionUnit) * stock
		line.PotentialProfit = (revenueUnit - costUnit - commissionUnit - taxUnit - expensesUnit) * stock
	}

	line.ReturnPercent = utils.SafeRatio(line.PotentialProfit, line.StockCost) * 100.0

	return line
}

// monthComparison distribui o faturamento por dia do mês, zerando os dias
// além de hoje (mês atual) ou além do fim do mês anterior.
func monthComparison(sales []*domain.Sale, today, currentStart, previousStart time.Time) *domain.MonthComparison {
	currentDays := today.Day()
	previousDays := daysInMonth(previousStart)

	maxDays := currentDays
	if previousDays > maxDays {
		maxDays = previousDays
	}

	comparison := &domain.MonthComparison{
		Labels:   make([]string, maxDays),
		Current:  make([]float64, maxDays),
		Previous: make([]float64, maxDays),
	}

	for day := 1; day <= maxDays; day++ {
		comparison.Labels[day-1] = fmt.Sprintf("%02d", day)
	}

	for _, sale := range sales {
		if sale.Cancelled() || sale.SaleDate == nil || len(*sale.SaleDate) < 10 {
			continue
		}

		saleTime, err := time.Parse("2006-01-02", (*sale.SaleDate)[:10])
		if err != nil {
			continue
		}

		day := saleTime.Day()

		if saleTime.Year() == currentStart.Year() && saleTime.Month() == currentStart.Month() && day <= currentDays {
			comparison.Current[day-1] += sale.GrossRevenue
		}

		if saleTime.Year() == previousStart.Year() && saleTime.Month() == previousStart.Month() && day <= previousDays {
			comparison.Previous[day-1] += sale.GrossRevenue
		}
	}

	return comparison
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, -1).Day()
}

func sortProfitLines(lines []*domain.ProfitReportLine) {
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].NetProfit == lines[j].NetProfit {
			return lines[i].ProductID < lines[j].ProductID
		}
		return lines[i].NetProfit > lines[j].NetProfit
	})
}
