package importing

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/metrifypremium/metrify-api/infrastructure/database/postgres"
	"github.com/metrifypremium/metrify-api/infrastructure/repository"
	"github.com/metrifypremium/metrify-api/infrastructure/spreadsheet"
	"github.com/metrifypremium/metrify-api/internal/config"
	"github.com/metrifypremium/metrify-api/internal/domain"
	"github.com/metrifypremium/metrify-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Layout novo do extrato (relatório de movimentos).
var newLayoutColumns = []string{
	"Data de pagamento",
	"Tipo de operação",
	"Número do movimento",
	"Operação relacionada",
	"Valor",
}

// Layout antigo (relatório por transação).
var oldLayoutColumns = []string{
	"ID DA TRANSAÇÃO NO MERCADO PAGO",
	"TIPO DE TRANSAÇÃO",
	"VALOR LÍQUIDO DA TRANSAÇÃO",
}

// Layout de resumo bancário (créditos/débitos por dia, sem id externo).
var bankLayoutColumns = []string{"Data", "CRÉDITOS", "DÉBITOS"}

type SettlementImporter interface {
	Import(ctx context.Context, file io.Reader) (*domain.SettlementImportSummary, error)
}

type settlementImporter struct {
	conn         postgres.TxRunner
	ledgerRepo   repository.LedgerRepository
	reader       spreadsheet.Reader
	valueCeiling float64
}

func NewSettlementImporter(
	conn postgres.TxRunner,
	ledgerRepo repository.LedgerRepository,
	reader spreadsheet.Reader,
	cfg config.Import,
) SettlementImporter {
	return &settlementImporter{
		conn:         conn,
		ledgerRepo:   ledgerRepo,
		reader:       reader,
		valueCeiling: cfg.SettlementValueCeiling,
	}
}

// Import processa um extrato do Mercado Pago em qualquer dos layouts
// conhecidos, detectados pelas colunas presentes. Reimportar o mesmo
// arquivo não duplica: o external_id_mp é a chave de deduplicação e linhas
// já existentes são sobrescritas.
func (s *settlementImporter) Import(ctx context.Context, file io.Reader) (*domain.SettlementImportSummary, error) {
	rows, err := s.reader.Read(file, "", 0)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, ErrUnexpectedFormat
	}

	summary := &domain.SettlementImportSummary{
		BatchID: utils.NewImportBatchID(time.Now()),
	}

	switch {
	case hasColumns(rows[0], newLayoutColumns):
		err = s.importTransactions(ctx, rows, summary, true)
	case hasColumns(rows[0], oldLayoutColumns):
		err = s.importTransactions(ctx, rows, summary, false)
	case hasColumns(rows[0], bankLayoutColumns):
		err = s.importBankSummary(ctx, rows, summary)
	default:
		return nil, ErrUnexpectedFormat
	}

	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"lote":        summary.BatchID,
		"importadas":  summary.Inserted,
		"atualizadas": summary.Updated,
		"ignoradas":   summary.Skipped,
	}).Info("Importação de extrato concluída")

	return summary, nil
}

// importTransactions cobre os dois layouts por transação. Linha sem id
// externo é ignorada; id repetido dentro do arquivo sobrescreve a linha
// anterior (a última ocorrência vence).
func (s *settlementImporter) importTransactions(ctx context.Context, rows []spreadsheet.Row, summary *domain.SettlementImportSummary, newLayout bool) error {
	externalIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		if id := externalID(row, newLayout); id != "" {
			externalIDs = append(externalIDs, id)
		}
	}

	existing, err := s.ledgerRepo.ExistingExternalIDs(externalIDs)
	if err != nil {
		return err
	}

	nowISO := time.Now().Format("2006-01-02T15:04:05")
	seen := make(map[string]struct{}, len(rows))

	return s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, row := range rows {
			id := externalID(row, newLayout)
			if id == "" {
				summary.Skipped++
				continue
			}

			var kindRaw, related, dateISO string
			var amount float64

			if newLayout {
				kindRaw = strings.TrimSpace(row["Tipo de operação"])
				related = strings.TrimSpace(row["Operação relacionada"])
				amount = ParseFloat(row["Valor"])
				dateISO = settlementDate(row["Data de pagamento"])
			} else {
				kindRaw = strings.TrimSpace(row["TIPO DE TRANSAÇÃO"])
				related = strings.TrimSpace(row["CANAL DE VENDA"])
				amount = ParseFloat(row["VALOR LÍQUIDO DA TRANSAÇÃO"])
				dateISO = settlementDate(
					row["DATA DE LIBERAÇÃO DO DINHEIRO"],
					row["DATA DE APROVAÇÃO"],
					row["DATA DE ORIGEM"],
				)
			}

			kind, amount := ClassifySettlement(kindRaw, amount)
			description := strings.Trim(fmt.Sprintf("%s - %s", kindRaw, related), " -")

			entry := &domain.LedgerEntry{
				Date:          dateISO,
				Kind:          kind,
				Amount:        decimal.NewFromFloat(amount),
				Source:        domain.LedgerSourceSettlement,
				ExternalID:    &id,
				Description:   &description,
				CreatedAt:     &nowISO,
				ImportBatchID: &summary.BatchID,
			}

			if err := s.ledgerRepo.UpsertByExternalID(tx, entry); err != nil {
				return err
			}

			_, inDB := existing[id]
			_, inFile := seen[id]
			if inDB || inFile {
				summary.Updated++
			} else {
				summary.Inserted++
				seen[id] = struct{}{}
			}
		}

		return nil
	})
}

// importBankSummary trata o resumo diário de créditos e débitos. As linhas
// não têm id externo, então viram lançamentos novos a cada importação; o
// teto de magnitude descarta valores absurdos de separador decimal mal
// interpretado.
func (s *settlementImporter) importBankSummary(ctx context.Context, rows []spreadsheet.Row, summary *domain.SettlementImportSummary) error {
	nowISO := time.Now().Format("2006-01-02T15:04:05")

	return s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, row := range rows {
			dateISO := settlementDate(row["Data"])
			credit := ParseFloat(row["CRÉDITOS"])
			debit := ParseFloat(row["DÉBITOS"])

			if math.Abs(credit) > s.valueCeiling || math.Abs(debit) > s.valueCeiling {
				logrus.WithField("data", dateISO).Warn("Valor acima do teto de sanidade, linha ignorada")
				summary.Skipped++
				continue
			}

			if credit == 0 && debit == 0 {
				summary.Skipped++
				continue
			}

			if credit != 0 {
				description := "Créditos do dia"
				entry := &domain.LedgerEntry{
					Date:          dateISO,
					Kind:          domain.LedgerMPNet,
					Amount:        decimal.NewFromFloat(math.Abs(credit)),
					Source:        domain.LedgerSourceSettlement,
					Description:   &description,
					CreatedAt:     &nowISO,
					ImportBatchID: &summary.BatchID,
				}
				if _, err := s.ledgerRepo.Insert(tx, entry); err != nil {
					return err
				}
				summary.Inserted++
			}

			if debit != 0 {
				description := "Débitos do dia"
				entry := &domain.LedgerEntry{
					Date:          dateISO,
					Kind:          domain.LedgerWithdrawal,
					Amount:        decimal.NewFromFloat(-math.Abs(debit)),
					Source:        domain.LedgerSourceSettlement,
					Description:   &description,
					CreatedAt:     &nowISO,
					ImportBatchID: &summary.BatchID,
				}
				if _, err := s.ledgerRepo.Insert(tx, entry); err != nil {
					return err
				}
				summary.Inserted++
			}
		}

		return nil
	})
}

// ClassifySettlement classifica o tipo livre do extrato por palavra-chave e
// força o sinal: estornos, retiradas e tarifas negativos, liquidação de
// venda positiva. Tipo desconhecido fica MP_NET com o valor como veio.
func ClassifySettlement(kindRaw string, amount float64) (domain.LedgerKind, float64) {
	lower := strings.ToLower(kindRaw)

	switch {
	case strings.Contains(lower, "estorno"),
		strings.Contains(lower, "chargeback"),
		strings.Contains(lower, "devolu"),
		strings.Contains(lower, "contesta"):
		return domain.LedgerRefund, forceNegative(amount)
	case strings.Contains(lower, "retirada"),
		strings.Contains(lower, "saque"),
		strings.Contains(lower, "payout"):
		return domain.LedgerWithdrawal, forceNegative(amount)
	case strings.Contains(lower, "tarifa"):
		return domain.LedgerFeeML, forceNegative(amount)
	case strings.Contains(lower, "pagamento"), strings.Contains(lower, "venda"):
		return domain.LedgerMPNet, math.Abs(amount)
	}

	return domain.LedgerMPNet, amount
}

func hasColumns(row spreadsheet.Row, columns []string) bool {
	for _, column := range columns {
		if _, ok := row[column]; !ok {
			return false
		}
	}
	return true
}

func forceNegative(amount float64) float64 {
	if amount == 0 {
		return 0
	}
	return -math.Abs(amount)
}

// externalID normaliza o id externo da linha. Células numéricas chegam como
// "123456789.0" e são reduzidas à forma inteira.
func externalID(row spreadsheet.Row, newLayout bool) string {
	column := "Número do movimento"
	if !newLayout {
		column = "ID DA TRANSAÇÃO NO MERCADO PAGO"
	}

	raw := strings.TrimSpace(row[column])
	if raw == "" {
		return ""
	}

	if value, err := strconv.ParseFloat(raw, 64); err == nil && value == math.Trunc(value) {
		return strconv.FormatInt(int64(value), 10)
	}

	return raw
}

// settlementDate devolve a primeira data interpretável entre as candidatas,
// em ISO; sem nenhuma, o momento da importação.
func settlementDate(candidates ...string) string {
	for _, candidate := range candidates {
		if parsed := ParseSaleDate(candidate); parsed != nil {
			return parsed.Format("2006-01-02T15:04:05")
		}
	}
	return time.Now().Format("2006-01-02T15:04:05")
}
