package reporting

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/metrifypremium/metrify-api/infrastructure/repository"
	"github.com/metrifypremium/metrify-api/internal/config"
	"github.com/metrifypremium/metrify-api/internal/domain"
	"github.com/metrifypremium/metrify-api/pkg/utils"
)

type ReportingService interface {
	Dashboard(filters *domain.ReportFilters) (*domain.DashboardReport, error)
	ProfitReport(filters *domain.ReportFilters) (*domain.ProfitReport, error)
	DailySeries(filters *domain.ReportFilters) ([]*domain.DailyPoint, error)
	MonthComparison() (*domain.MonthComparison, error)
	Inventory() (*domain.InventoryReport, error)
}

type Service struct {
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
	settingsRepo repository.SettingsRepository
	cache        *gocache.Cache
	inventoryCfg config.Inventory
	now          func() time.Time
}

func NewService(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	settingsRepo repository.SettingsRepository,
	inventoryCfg config.Inventory,
) *Service {
	return &Service{
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		settingsRepo: settingsRepo,
		cache:        gocache.New(time.Minute, 5*time.Minute),
		inventoryCfg: inventoryCfg,
		now:          time.Now,
	}
}

// period resolve o filtro para o par de datas ISO. Sem filtro, o padrão é
// o mês vigente: do dia 1 até hoje.
func (s *Service) period(filters *domain.ReportFilters) (startDate, endDate string, start, end time.Time) {
	today := s.now()

	if filters == nil || (filters.StartDate == nil && filters.EndDate == nil) {
		start = utils.FirstDayOfMonth(today)
		end = today
		return start.Format("2006-01-02"), end.Format("2006-01-02"), start, end
	}

	start = utils.FirstDayOfMonth(today)
	end = today
	if filters.StartDate != nil {
		start = *filters.StartDate
		startDate = start.Format("2006-01-02")
	}
	if filters.EndDate != nil {
		end = *filters.EndDate
		endDate = end.Format("2006-01-02")
	}

	return startDate, endDate, start, end
}

// Dashboard monta os cartões do painel para o período. O resultado fica
// em cache por um minuto: o painel é reconsultado a cada navegação e os
// números não mudam nessa janela.
func (s *Service) Dashboard(filters *domain.ReportFilters) (*domain.DashboardReport, error) {
	startDate, endDate, start, end := s.period(filters)

	cacheKey := fmt.Sprintf("dashboard:%s:%s", startDate, endDate)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.(*domain.DashboardReport), nil
	}

	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.List()
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.ListByPeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}

	totals, cancelled := aggregateTotals(sales)
	grouped := groupByProduct(sales)

	adSpendByProduct := make(map[int64]float64, len(products))
	stockUnits := 0
	for _, product := range products {
		adSpendByProduct[product.ID] = product.MonthlyAdSpend
		stockUnits += product.CurrentStock
	}

	commission := DerivedCommission(totals.Revenue, totals.Cost, totals.Margin)
	tax := totals.Revenue * (settings.TaxPercent / 100.0)
	expenses := totals.Revenue * (settings.ExpensePercent / 100.0)
	start, end = allocationWindow(sales, filters, start, end)
	adSpend := adAllocation(grouped, adSpendByProduct, start, end)

	netProfit := totals.Revenue - totals.Cost - commission - tax - expenses - adSpend
	bestSeller, mostProfitable, leastProfitable := rankings(grouped)

	report := &domain.DashboardReport{
		StartDate:        startDate,
		EndDate:          endDate,
		Revenue:          totals.Revenue,
		NetRevenue:       totals.Revenue - commission,
		Cost:             totals.Cost,
		Commission:       commission,
		Tax:              tax,
		Expenses:         expenses,
		AdSpend:          adSpend,
		NetProfit:        netProfit,
		NetMarginPercent: utils.SafeRatio(netProfit, totals.Revenue) * 100.0,
		AvgTicket:        totals.AvgTicket,
		Cancelled:        cancelled,
		ProductCount:     len(products),
		StockUnits:       stockUnits,
		BestSeller:       bestSeller,
		MostProfitable:   mostProfitable,
		LeastProfitable:  leastProfitable,
	}

	s.cache.Set(cacheKey, report, gocache.DefaultExpiration)

	return report, nil
}

// ProfitReport detalha o lucro por produto no período, do maior lucro
// líquido para o menor.
func (s *Service) ProfitReport(filters *domain.ReportFilters) (*domain.ProfitReport, error) {
	startDate, endDate, start, end := s.period(filters)

	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.List()
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.ListByPeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}

	adSpendByProduct := make(map[int64]float64, len(products))
	for _, product := range products {
		adSpendByProduct[product.ID] = product.MonthlyAdSpend
	}

	start, end = allocationWindow(sales, filters, start, end)
	months := float64(utils.MonthsSpanned(start, end))
	grouped := groupByProduct(sales)

	report := &domain.ProfitReport{
		StartDate: startDate,
		EndDate:   endDate,
		Lines:     make([]*domain.ProfitReportLine, 0, len(grouped)),
	}

	for _, totals := range grouped {
		commission := DerivedCommission(totals.Revenue, totals.Cost, totals.Margin)
		tax := totals.Revenue * (settings.TaxPercent / 100.0)
		expenses := totals.Revenue * (settings.ExpensePercent / 100.0)
		adSpend := adSpendByProduct[totals.ProductID] * months

		line := &domain.ProfitReportLine{
			ProductID:  totals.ProductID,
			Product:    totals.Name,
			Quantity:   totals.Quantity,
			Revenue:    totals.Revenue,
			Cost:       totals.Cost,
			Commission: commission,
			Tax:        tax,
			Expenses:   expenses,
			AdSpend:    adSpend,
			NetProfit:  totals.Revenue - totals.Cost - commission - tax - expenses - adSpend,
		}

		report.Lines = append(report.Lines, line)

		report.Totals.Quantity += line.Quantity
		report.Totals.Revenue += line.Revenue
		report.Totals.Cost += line.Cost
		report.Totals.Commission += line.Commission
		report.Totals.Tax += line.Tax
		report.Totals.Expenses += line.Expenses
		report.Totals.AdSpend += line.AdSpend
		report.Totals.NetProfit += line.NetProfit
	}

	sortProfitLines(report.Lines)

	return report, nil
}

// DailySeries devolve as séries diárias dos gráficos de vendas.
func (s *Service) DailySeries(filters *domain.ReportFilters) ([]*domain.DailyPoint, error) {
	startDate, endDate, _, _ := s.period(filters)

	sales, err := s.saleRepo.ListByPeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}

	return dailySeries(sales), nil
}

// MonthComparison compara o faturamento dia a dia do mês corrente (até
// hoje) com o mês anterior inteiro, alinhado pelo dia do mês.
func (s *Service) MonthComparison() (*domain.MonthComparison, error) {
	today := s.now()
	currentStart := utils.FirstDayOfMonth(today)
	previousStart := utils.PreviousMonthStart(today)

	sales, err := s.saleRepo.ListByPeriod(previousStart.Format("2006-01-02"), today.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	return monthComparison(sales, today, currentStart, previousStart), nil
}

// Inventory monta a visão de estoque: cobertura em dias pela média da
// janela configurada e projeção de receita/lucro do estoque com a
// economia unitária da mesma janela.
func (s *Service) Inventory() (*domain.InventoryReport, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.List()
	if err != nil {
		return nil, err
	}

	windowStart := s.now().AddDate(0, 0, -s.inventoryCfg.WindowDays).Format("2006-01-02")
	sales, err := s.saleRepo.ListByPeriod(windowStart, "")
	if err != nil {
		return nil, err
	}

	grouped := groupByProduct(sales)

	report := &domain.InventoryReport{
		WindowDays:   s.inventoryCfg.WindowDays,
		MinCoverDays: s.inventoryCfg.MinCoverDays,
		Lines:        make([]*domain.InventoryLine, 0, len(products)),
	}

	for _, product := range products {
		line := inventoryLine(product, grouped[product.ID], settings, s.inventoryCfg)

		report.Lines = append(report.Lines, line)
		report.TotalUnits += line.CurrentStock
		report.TotalStockCost += line.StockCost
		report.PotentialRevenue += line.PotentialRevenue
		report.PotentialProfit += line.PotentialProfit
	}

	report.TotalReturnPercent = utils.SafeRatio(report.PotentialProfit, report.TotalStockCost) * 100.0

	return report, nil
}
