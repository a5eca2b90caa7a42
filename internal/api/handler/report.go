package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/metrifypremium/metrify-api/internal/usecases/reporting"
	"github.com/metrifypremium/metrify-api/pkg/apiErrors"
)

// Dashboard devolve os indicadores consolidados do período.
func Dashboard(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := periodFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas inválidas, use o formato AAAA-MM-DD", nil)
			return
		}

		report, err := service.Dashboard(filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar o dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	})
}

// ProfitReport devolve a rentabilidade por produto do período.
func ProfitReport(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := periodFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas inválidas, use o formato AAAA-MM-DD", nil)
			return
		}

		report, err := service.ProfitReport(filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar relatório de rentabilidade", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	})
}

// ExportProfitReport gera a planilha de rentabilidade do período.
func ExportProfitReport(export reporting.ExportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := periodFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas inválidas, use o formato AAAA-MM-DD", nil)
			return
		}

		data, err := export.ProfitReportXLSX(filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha de rentabilidade", nil)
			return
		}

		filename := "rentabilidade_" + time.Now().Format("20060102") + ".xlsx"
		writeXLSX(w, filename, data)
	})
}

// DailyReport devolve a série diária de receita e margem.
func DailyReport(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := periodFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas inválidas, use o formato AAAA-MM-DD", nil)
			return
		}

		series, err := service.DailySeries(filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar a série diária", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(series)
	})
}

// MonthComparison compara o mês corrente com o anterior.
func MonthComparison(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		comparison, err := service.MonthComparison()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar o comparativo mensal", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(comparison)
	})
}
