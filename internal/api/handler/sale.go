package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/metrifypremium/metrify-api/infrastructure/repository"
	"github.com/metrifypremium/metrify-api/internal/usecases/importing"
	"github.com/metrifypremium/metrify-api/internal/usecases/reporting"
	"github.com/metrifypremium/metrify-api/pkg/apiErrors"
)

// Tamanho da página da listagem de vendas.
const salesPageSize = 100

// SalesList devolve as vendas do período, paginadas, junto com os lotes
// de importação. Sem filtro, o período padrão são os últimos 30 dias.
func SalesList(saleRepo repository.SaleRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startDate, endDate, err := periodStrings(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas inválidas, use o formato AAAA-MM-DD", nil)
			return
		}

		today := time.Now()
		if startDate == "" {
			startDate = today.AddDate(0, 0, -29).Format("2006-01-02")
		}
		if endDate == "" {
			endDate = today.Format("2006-01-02")
		}

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			page = 1
		}

		sales, err := saleRepo.ListByPeriod(startDate, endDate)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vendas", nil)
			return
		}

		batches, err := saleRepo.ListBatches(startDate, endDate)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar lotes de importação", nil)
			return
		}

		total := len(sales)
		totalPages := (total + salesPageSize - 1) / salesPageSize
		if totalPages == 0 {
			totalPages = 1
		}

		start := (page - 1) * salesPageSize
		if start > total {
			start = total
		}
		end := start + salesPageSize
		if end > total {
			end = total
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"vendas":        sales[start:end],
			"lotes":         batches,
			"total_vendas":  total,
			"pagina":        page,
			"total_paginas": totalPages,
			"data_inicio":   startDate,
			"data_fim":      endDate,
		})
	})
}

// ImportSales recebe o relatório de vendas do Mercado Livre no campo
// multipart "arquivo".
func ImportSales(importer importing.SalesImporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, _, err := r.FormFile("arquivo")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo não enviado no campo 'arquivo'", nil)
			return
		}
		defer file.Close()

		summary, err := importer.Import(r.Context(), file)
		if err != nil {
			handleImportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	})
}

// DeleteSalesBatch apaga todas as vendas de um lote de importação.
func DeleteSalesBatch(saleRepo repository.SaleRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		batchID := httprouter.ParamsFromContext(r.Context()).ByName("lote")
		if batchID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Lote de importação não informado", nil)
			return
		}

		deleted, err := saleRepo.DeleteByBatch(batchID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir lote de vendas", nil)
			return
		}

		logrus.WithFields(logrus.Fields{
			"lote":     batchID,
			"excluida": deleted,
		}).Info("Lote de vendas excluído")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"lote":             batchID,
			"vendas_excluidas": deleted,
		})
	})
}

// ExportSales gera a planilha com as vendas do período.
func ExportSales(export reporting.ExportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := periodFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas inválidas, use o formato AAAA-MM-DD", nil)
			return
		}

		data, err := export.SalesXLSX(filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha de vendas", nil)
			return
		}

		filename := "vendas_" + time.Now().Format("20060102") + ".xlsx"
		writeXLSX(w, filename, data)
	})
}

// SalesTemplate devolve a planilha modelo para importação manual.
func SalesTemplate(export reporting.ExportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := export.TemplateXLSX()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha modelo", nil)
			return
		}

		writeXLSX(w, "modelo_importacao_vendas.xlsx", data)
	})
}
