package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/metrifypremium/metrify-api/internal/domain"
	"github.com/metrifypremium/metrify-api/internal/usecases/finance"
	"github.com/metrifypremium/metrify-api/internal/usecases/importing"
	"github.com/metrifypremium/metrify-api/pkg/apiErrors"
)

// setOpeningBalanceAction substitui o saldo anterior do período em vez de
// registrar um lançamento avulso.
const setOpeningBalanceAction = "set_saldo_anterior"

type ledgerEntryRequest struct {
	Action      string          `json:"acao"`
	Date        string          `json:"data"`
	Amount      decimal.Decimal `json:"valor"`
	Description *string         `json:"descricao"`
	StartDate   string          `json:"data_inicio"`
}

// LedgerSummary devolve o extrato de caixa do período com os totais por tipo.
func LedgerSummary(service finance.FinanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := periodFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas inválidas, use o formato AAAA-MM-DD", nil)
			return
		}

		summary, err := service.LedgerSummary(filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o extrato de caixa", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	})
}

// CreateLedgerEntry registra um lançamento manual de caixa. A ação
// "set_saldo_anterior" é tratada à parte: substitui o saldo de abertura
// anterior a data_inicio.
func CreateLedgerEntry(service finance.FinanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ledgerEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Action == setOpeningBalanceAction {
			if req.StartDate == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo 'data_inicio' é obrigatório para definir o saldo anterior", nil)
				return
			}

			if err := service.SetOpeningBalance(req.StartDate, req.Amount); err != nil {
				handleFinanceError(w, err)
				return
			}

			w.WriteHeader(http.StatusCreated)
			return
		}

		entry := &domain.ManualLedgerRequest{
			Action:      req.Action,
			Date:        req.Date,
			Amount:      req.Amount,
			Description: req.Description,
		}

		if err := service.RegisterManualEntry(entry); err != nil {
			handleFinanceError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
	})
}

// Reconciliation cruza a margem líquida das vendas com os créditos
// liquidados pelo Mercado Pago, dia a dia.
func Reconciliation(service finance.FinanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := periodFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas inválidas, use o formato AAAA-MM-DD", nil)
			return
		}

		report, err := service.Reconciliation(filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar a conciliação", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	})
}

// ImportSettlements recebe o extrato do Mercado Pago no campo multipart
// "arquivo".
func ImportSettlements(importer importing.SettlementImporter) http.Handler {
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

// SettlementBatches lista os lotes de extrato importados.
func SettlementBatches(service finance.FinanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		batches, err := service.ListSettlementBatches()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar lotes de extrato", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(batches)
	})
}

// DeleteSettlementBatch apaga todos os lançamentos de um lote de extrato.
func DeleteSettlementBatch(service finance.FinanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		batchID := httprouter.ParamsFromContext(r.Context()).ByName("lote")
		if batchID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Lote de importação não informado", nil)
			return
		}

		deleted, err := service.DeleteSettlementBatch(batchID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir lote de extrato", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"lote":                  batchID,
			"lancamentos_excluidos": deleted,
		})
	})
}

func handleFinanceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, finance.ErrUnknownAction),
		errors.Is(err, finance.ErrInvalidDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar lançamento de caixa", nil)
	}
}
