package reporting

import (
	"github.com/metrifypremium/metrify-api/infrastructure/spreadsheet"
	"github.com/metrifypremium/metrify-api/internal/domain"
)

type ExportService interface {
	ProfitReportXLSX(filters *domain.ReportFilters) ([]byte, error)
	SalesXLSX(filters *domain.ReportFilters) ([]byte, error)
	TemplateXLSX() ([]byte, error)
}

type exportService struct {
	reports ReportingService
	sales   SalesLister
	writer  spreadsheet.Writer
}

// SalesLister é o recorte de listagem usado pelo export consolidado.
type SalesLister interface {
	ListByPeriod(startDate, endDate string) ([]*domain.Sale, error)
}

func NewExportService(reports ReportingService, sales SalesLister, writer spreadsheet.Writer) ExportService {
	return &exportService{
		reports: reports,
		sales:   sales,
		writer:  writer,
	}
}

var profitReportHeaders = []string{
	"Produto",
	"Quantidade",
	"Receita (R$)",
	"Custo (R$)",
	"Comissão ML (R$)",
	"Imposto (R$)",
	"Despesas (R$)",
	"Verba Ads (R$)",
	"Lucro líquido (R$)",
}

// ProfitReportXLSX gera a planilha do relatório de lucro, mesmas linhas e
// ordem da visão em tela.
func (s *exportService) ProfitReportXLSX(filters *domain.ReportFilters) ([]byte, error) {
	report, err := s.reports.ProfitReport(filters)
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(report.Lines))
	for _, line := range report.Lines {
		rows = append(rows, []interface{}{
			line.Product,
			line.Quantity,
			line.Revenue,
			line.Cost,
			line.Commission,
			line.Tax,
			line.Expenses,
			line.AdSpend,
			line.NetProfit,
		})
	}

	return s.writer.Write("RelatorioLucro", profitReportHeaders, rows)
}

var salesExportHeaders = []string{
	"ID Venda",
	"Data venda",
	"Produto",
	"SKU",
	"Quantidade",
	"Preço unitário",
	"Receita total",
	"Custo total",
	"Margem contribuição",
	"Origem",
	"Nº venda ML",
	"Lote importação",
	"Estado",
}

// SalesXLSX exporta a consolidação das vendas do período, incluindo as
// canceladas (o arquivo é para auditoria, não para agregação).
func (s *exportService) SalesXLSX(filters *domain.ReportFilters) ([]byte, error) {
	startDate, endDate := "", ""
	if filters != nil {
		if filters.StartDate != nil {
			startDate = filters.StartDate.Format("2006-01-02")
		}
		if filters.EndDate != nil {
			endDate = filters.EndDate.Format("2006-01-02")
		}
	}

	sales, err := s.sales.ListByPeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(sales))
	for _, sale := range sales {
		var saleDate, sku, batchID, region interface{}
		if sale.SaleDate != nil {
			saleDate = *sale.SaleDate
		}
		if sale.ProductSKU != nil {
			sku = *sale.ProductSKU
		}
		if sale.ImportBatchID != nil {
			batchID = *sale.ImportBatchID
		}
		if sale.RegionCode != nil {
			region = *sale.RegionCode
		}

		rows = append(rows, []interface{}{
			sale.ID,
			saleDate,
			sale.ProductName,
			sku,
			sale.Quantity,
			sale.UnitPrice,
			sale.GrossRevenue,
			sale.TotalCost,
			sale.Margin,
			sale.Origin,
			sale.OrderNumber,
			batchID,
			region,
		})
	}

	return s.writer.Write("Consolidado", salesExportHeaders, rows)
}

// TemplateXLSX gera o modelo vazio para preenchimento manual de vendas.
func (s *exportService) TemplateXLSX() ([]byte, error) {
	headers := []string{"SKU", "Título", "Quantidade", "Receita", "Comissao", "PrecoMedio"}
	return s.writer.Write("Template", headers, nil)
}
