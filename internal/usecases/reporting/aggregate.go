package reporting

import (
	"sort"
	"time"

	"github.com/metrifypremium/metrify-api/internal/domain"
	"github.com/metrifypremium/metrify-api/pkg/utils"
)

// productTotals acumula as somas de um produto dentro do período.
type productTotals struct {
	ProductID int64
	Name      string
	Quantity  float64
	Revenue   float64
	Cost      float64
	Margin    float64
}

// DerivedCommission estima a comissão do marketplace a partir dos
// agregados: o que falta entre (receita − custo) e a margem registrada.
// Nunca negativa, qualquer que seja a combinação de sinais.
func DerivedCommission(revenue, cost, margin float64) float64 {
	commission := (revenue - cost) - margin
	if commission < 0 {
		return 0
	}
	return commission
}

// aggregateTotals soma as vendas não canceladas e conta as canceladas em
// um balde separado. O ticket médio é a média do preço unitário das
// vendas válidas; o valor cancelado é o que a venda teria faturado.
func aggregateTotals(sales []*domain.Sale) (domain.SalesTotals, domain.CancelledTotals) {
	var totals domain.SalesTotals
	var cancelled domain.CancelledTotals

	var unitPriceSum float64
	var validCount int

	for _, sale := range sales {
		if sale.Cancelled() {
			cancelled.Count++
			cancelled.Value += sale.UnitPrice * float64(sale.Quantity)
			continue
		}

		totals.Quantity += sale.Quantity
		totals.Revenue += sale.GrossRevenue
		totals.Cost += sale.TotalCost
		totals.Margin += sale.Margin

		unitPriceSum += sale.UnitPrice
		validCount++
	}

	if validCount > 0 {
		totals.AvgTicket = unitPriceSum / float64(validCount)
	}

	return totals, cancelled
}

// groupByProduct agrega as vendas não canceladas por produto.
func groupByProduct(sales []*domain.Sale) map[int64]*productTotals {
	grouped := make(map[int64]*productTotals)

	for _, sale := range sales {
		if sale.Cancelled() {
			continue
		}

		totals, ok := grouped[sale.ProductID]
		if !ok {
			totals = &productTotals{ProductID: sale.ProductID, Name: sale.ProductName}
			grouped[sale.ProductID] = totals
		}

		totals.Quantity += float64(sale.Quantity)
		totals.Revenue += sale.GrossRevenue
		totals.Cost += sale.TotalCost
		totals.Margin += sale.Margin
	}

	return grouped
}

// adAllocation soma a verba mensal de anúncios dos produtos vendidos no
// período, multiplicada pelos meses de calendário tocados pelo filtro.
// Mês parcial conta inteiro; a verba não é rateada por dia.
func adAllocation(grouped map[int64]*productTotals, adSpendByProduct map[int64]float64, start, end time.Time) float64 {
	months := utils.MonthsSpanned(start, end)

	var total float64
	for productID := range grouped {
		total += adSpendByProduct[productID] * float64(months)
	}

	return total
}

// allocationWindow ajusta a janela de alocação de verba quando o filtro
// tem só um dos lados. O SQL fica aberto no lado ausente, então o limite
// correspondente vem da primeira/última venda devolvida; com os dois
// lados informados (ou nenhum) a janela volta como veio.
func allocationWindow(sales []*domain.Sale, filters *domain.ReportFilters, start, end time.Time) (time.Time, time.Time) {
	if filters == nil || (filters.StartDate == nil) == (filters.EndDate == nil) {
		return start, end
	}

	var minDay, maxDay string
	for _, sale := range sales {
		if sale.SaleDate == nil || len(*sale.SaleDate) < 10 {
			continue
		}
		day := (*sale.SaleDate)[:10]
		if minDay == "" || day < minDay {
			minDay = day
		}
		if day > maxDay {
			maxDay = day
		}
	}

	if filters.StartDate == nil && minDay != "" {
		if parsed, err := time.Parse("2006-01-02", minDay); err == nil {
			start = parsed
		}
	}
	if filters.EndDate == nil && maxDay != "" {
		if parsed, err := time.Parse("2006-01-02", maxDay); err == nil {
			end = parsed
		}
	}

	return start, end
}

// rankings devolve os destaques do período: mais vendido, maior lucro e
// pior margem. Empate é resolvido pelo menor id de produto, para o
// resultado não depender da ordem do banco.
func rankings(grouped map[int64]*productTotals) (bestSeller, mostProfitable, leastProfitable *domain.ProductRanking) {
	ordered := make([]*productTotals, 0, len(grouped))
	for _, totals := range grouped {
		ordered = append(ordered, totals)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].ProductID < ordered[j].ProductID
	})

	for _, totals := range ordered {
		if bestSeller == nil || totals.Quantity > bestSeller.Value {
			bestSeller = &domain.ProductRanking{ProductID: totals.ProductID, Name: totals.Name, Value: totals.Quantity}
		}
		if mostProfitable == nil || totals.Margin > mostProfitable.Value {
			mostProfitable = &domain.ProductRanking{ProductID: totals.ProductID, Name: totals.Name, Value: totals.Margin}
		}
		if leastProfitable == nil || totals.Margin < leastProfitable.Value {
			leastProfitable = &domain.ProductRanking{ProductID: totals.ProductID, Name: totals.Name, Value: totals.Margin}
		}
	}

	return bestSeller, mostProfitable, leastProfitable
}

// dailySeries agrega faturamento, quantidade, lucro e receita líquida por
// dia, ignorando canceladas e vendas sem data.
func dailySeries(sales []*domain.Sale) []*domain.DailyPoint {
	byDay := make(map[string]*domain.DailyPoint)

	for _, sale := range sales {
		if sale.Cancelled() || sale.SaleDate == nil || len(*sale.SaleDate) < 10 {
			continue
		}

		day := (*sale.SaleDate)[:10]
		point, ok := byDay[day]
		if !ok {
			point = &domain.DailyPoint{Day: day}
			byDay[day] = point
		}

		point.Revenue += sale.GrossRevenue
		point.Quantity += float64(sale.Quantity)
		point.NetProfit += sale.Margin
		point.NetRevenue += sale.GrossRevenue - sale.Commission
	}

	points := make([]*domain.DailyPoint, 0, len(byDay))
	for _, point := range byDay {
		points = append(points, point)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Day < points[j].Day
	})

	return points
}
