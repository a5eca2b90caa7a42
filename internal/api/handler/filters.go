package handler

import (
	"net/http"
	"time"

	"github.com/metrifypremium/metrify-api/internal/domain"
)

// periodFilters lê data_inicio/data_fim (AAAA-MM-DD) da query string.
// Parâmetro ausente vira nil, sem filtro daquele lado.
func periodFilters(r *http.Request) (*domain.ReportFilters, error) {
	filters := &domain.ReportFilters{}

	if raw := r.URL.Query().Get("data_inicio"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, err
		}
		filters.StartDate = &parsed
	}

	if raw := r.URL.Query().Get("data_fim"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, err
		}
		filters.EndDate = &parsed
	}

	return filters, nil
}

// periodStrings valida os mesmos parâmetros e devolve as datas como
// string, no formato que os repositórios esperam.
func periodStrings(r *http.Request) (string, string, error) {
	filters, err := periodFilters(r)
	if err != nil {
		return "", "", err
	}

	var startDate, endDate string
	if filters.StartDate != nil {
		startDate = filters.StartDate.Format("2006-01-02")
	}
	if filters.EndDate != nil {
		endDate = filters.EndDate.Format("2006-01-02")
	}

	return startDate, endDate, nil
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// writeXLSX entrega uma planilha gerada como download.
func writeXLSX(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.Write(data)
}
