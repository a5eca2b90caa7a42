package handler

import (
	"net/http"

	"github.com/metrifypremium/metrify-api/infrastructure/repository"
	"github.com/metrifypremium/metrify-api/internal/api/handler/router"
	"github.com/metrifypremium/metrify-api/internal/usecases/authenticating"
	"github.com/metrifypremium/metrify-api/internal/usecases/catalog"
	"github.com/metrifypremium/metrify-api/internal/usecases/finance"
	"github.com/metrifypremium/metrify-api/internal/usecases/importing"
	"github.com/metrifypremium/metrify-api/internal/usecases/reporting"
	"github.com/metrifypremium/metrify-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Products(service catalog.CatalogService, importer importing.ProductImporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products",
			Method:      http.MethodGet,
			Handler:     ProductList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/import",
			Method:      http.MethodPost,
			Handler:     ImportProducts(importer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Sales(saleRepo repository.SaleRepository, importer importing.SalesImporter, export reporting.ExportService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodGet,
			Handler:     SalesList(saleRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/import",
			Method:      http.MethodPost,
			Handler:     ImportSales(importer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/export",
			Method:      http.MethodGet,
			Handler:     ExportSales(export),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/template",
			Method:      http.MethodGet,
			Handler:     SalesTemplate(export),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/batches/:lote",
			Method:      http.MethodDelete,
			Handler:     DeleteSalesBatch(saleRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Stock(catalogService catalog.CatalogService, reportingService reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stock",
			Method:      http.MethodGet,
			Handler:     StockReport(reportingService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stock/adjustments",
			Method:      http.MethodGet,
			Handler:     ListStockAdjustments(catalogService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stock/adjustments",
			Method:      http.MethodPost,
			Handler:     CreateStockAdjustment(catalogService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.ReportingService, export reporting.ExportService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/dashboard",
			Method:      http.MethodGet,
			Handler:     Dashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/profit",
			Method:      http.MethodGet,
			Handler:     ProfitReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/profit/export",
			Method:      http.MethodGet,
			Handler:     ExportProfitReport(export),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/daily",
			Method:      http.MethodGet,
			Handler:     DailyReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/month-comparison",
			Method:      http.MethodGet,
			Handler:     MonthComparison(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Finance(service finance.FinanceService, importer importing.SettlementImporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/finance/ledger",
			Method:      http.MethodGet,
			Handler:     LedgerSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/finance/ledger",
			Method:      http.MethodPost,
			Handler:     CreateLedgerEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/finance/reconciliation",
			Method:      http.MethodGet,
			Handler:     Reconciliation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/finance/settlements/import",
			Method:      http.MethodPost,
			Handler:     ImportSettlements(importer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/finance/settlements/batches",
			Method:      http.MethodGet,
			Handler:     SettlementBatches(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/finance/settlements/batches/:lote",
			Method:      http.MethodDelete,
			Handler:     DeleteSettlementBatch(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Settings(settingsRepo repository.SettingsRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/settings",
			Method:      http.MethodGet,
			Handler:     GetSettings(settingsRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings",
			Method:      http.MethodPut,
			Handler:     UpdateSettings(settingsRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
