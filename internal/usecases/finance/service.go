package finance

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/metrifypremium/metrify-api/infrastructure/database/postgres"
	"github.com/metrifypremium/metrify-api/infrastructure/repository"
	"github.com/metrifypremium/metrify-api/internal/domain"
	"github.com/metrifypremium/metrify-api/pkg/utils"
)

// ledgerPageSize limita as transações devolvidas no fechamento; as somas
// vêm de agregações no banco e não dependem desse corte.
const ledgerPageSize = 500

type FinanceService interface {
	LedgerSummary(filters *domain.ReportFilters) (*domain.LedgerSummary, error)
	RegisterManualEntry(request *domain.ManualLedgerRequest) error
	SetOpeningBalance(startDate string, amount decimal.Decimal) error
	Reconciliation(filters *domain.ReportFilters) (*domain.ReconciliationReport, error)
	ListSettlementBatches() ([]*domain.LedgerBatch, error)
	DeleteSettlementBatch(batchID string) (int64, error)
}

type Service struct {
	conn       *postgres.Connection
	ledgerRepo repository.LedgerRepository
	saleRepo   repository.SaleRepository
	now        func() time.Time
}

func NewService(
	conn *postgres.Connection,
	ledgerRepo repository.LedgerRepository,
	saleRepo repository.SaleRepository,
) *Service {
	return &Service{
		conn:       conn,
		ledgerRepo: ledgerRepo,
		saleRepo:   saleRepo,
		now:        time.Now,
	}
}

// period resolve o filtro para o par de datas ISO. Sem filtro, o padrão é
// o mês vigente: do dia 1 até hoje.
func (s *Service) period(filters *domain.ReportFilters) (startDate, endDate string) {
	today := s.now()

	if filters == nil || (filters.StartDate == nil && filters.EndDate == nil) {
		return utils.FirstDayOfMonth(today).Format("2006-01-02"), today.Format("2006-01-02")
	}

	if filters.StartDate != nil {
		startDate = filters.StartDate.Format("2006-01-02")
	}
	if filters.EndDate != nil {
		endDate = filters.EndDate.Format("2006-01-02")
	}

	return startDate, endDate
}

// LedgerSummary monta o fechamento de caixa do período: saldo anterior
// (soma de tudo antes do início), movimento por tipo, saldo atual e a
// página mais recente de transações.
func (s *Service) LedgerSummary(filters *domain.ReportFilters) (*domain.LedgerSummary, error) {
	startDate, endDate := s.period(filters)

	opening := decimal.Zero
	if startDate != "" {
		var err error
		opening, err = s.ledgerRepo.SumBefore(startDate)
		if err != nil {
			return nil, err
		}
	}

	sums, err := s.ledgerRepo.SumByKind(startDate, endDate)
	if err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.ListByPeriod(startDate, endDate, ledgerPageSize)
	if err != nil {
		return nil, err
	}

	batches, err := s.ledgerRepo.ListSettlementBatches()
	if err != nil {
		return nil, err
	}

	summary := buildSummary(startDate, endDate, opening, sums)
	summary.Entries = entries
	summary.Batches = batches

	return summary, nil
}

// buildSummary fecha o caixa a partir do saldo de abertura e das somas por
// tipo. O movimento do período considera os cinco tipos operacionais;
// saldos iniciais lançados dentro do período não contam como movimento.
func buildSummary(startDate, endDate string, opening decimal.Decimal, sums map[domain.LedgerKind]decimal.Decimal) *domain.LedgerSummary {
	summary := &domain.LedgerSummary{
		StartDate:      startDate,
		EndDate:        endDate,
		OpeningBalance: opening,
		MPNet:          sums[domain.LedgerMPNet],
		Refunds:        sums[domain.LedgerRefund],
		Withdrawals:    sums[domain.LedgerWithdrawal],
		Fees:           sums[domain.LedgerFeeML],
		Adjustments:    sums[domain.LedgerAdjustment],
	}

	summary.PeriodMovement = summary.MPNet.
		Add(summary.Refunds).
		Add(summary.Withdrawals).
		Add(summary.Fees).
		Add(summary.Adjustments)
	summary.ClosingBalance = summary.OpeningBalance.Add(summary.PeriodMovement)

	return summary
}

// RegisterManualEntry insere um lançamento manual no caixa. Devoluções e
// retiradas são forçadas negativas; ajustes e saldos iniciais mantêm o
// sinal informado.
func (s *Service) RegisterManualEntry(request *domain.ManualLedgerRequest) error {
	entry, err := manualEntry(request, s.now())
	if err != nil {
		return err
	}

	if _, err := s.ledgerRepo.Insert(s.conn, entry); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"acao":  request.Action,
		"valor": entry.Amount.String(),
		"data":  entry.Date,
	}).Info("lançamento manual registrado")

	return nil
}

func manualEntry(request *domain.ManualLedgerRequest, now time.Time) (*domain.LedgerEntry, error) {
	var kind domain.LedgerKind
	amount := request.Amount

	switch request.Action {
	case domain.LedgerActionOpeningBalance:
		kind = domain.LedgerOpeningBalance
	case domain.LedgerActionRefund:
		kind = domain.LedgerRefund
		amount = amount.Abs().Neg()
	case domain.LedgerActionWithdrawal:
		kind = domain.LedgerWithdrawal
		amount = amount.Abs().Neg()
	case domain.LedgerActionAdjustment:
		kind = domain.LedgerAdjustment
	default:
		return nil, ErrUnknownAction
	}

	date := request.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}

	createdAt := now.Format("2006-01-02T15:04:05")

	return &domain.LedgerEntry{
		Date:        date + "T00:00:00",
		Kind:        kind,
		Amount:      amount,
		Source:      domain.LedgerSourceManual,
		Description: request.Description,
		CreatedAt:   &createdAt,
	}, nil
}

// SetOpeningBalance substitui o saldo anterior manual de um período. O
// lançamento é datado um dia antes do início, para entrar na soma "antes
// do período", e identificado pela descrição: um novo ajuste para o mesmo
// início remove o anterior.
func (s *Service) SetOpeningBalance(startDate string, amount decimal.Decimal) error {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return ErrInvalidDate
	}

	description := fmt.Sprintf("Saldo anterior manual para %s", startDate)
	createdAt := s.now().Format("2006-01-02T15:04:05")

	entry := &domain.LedgerEntry{
		Date:        start.AddDate(0, 0, -1).Format("2006-01-02") + "T00:00:00",
		Kind:        domain.LedgerOpeningBalance,
		Amount:      amount,
		Source:      domain.LedgerSourceManual,
		Description: &description,
		CreatedAt:   &createdAt,
	}

	return s.ledgerRepo.ReplaceOpeningBalance(entry)
}

// Reconciliation compara, dia a dia, a receita líquida reconhecida nas
// vendas com o valor liquidado no extrato. A diferença é apenas
// sinalizada; nenhum ajuste automático é lançado.
func (s *Service) Reconciliation(filters *domain.ReportFilters) (*domain.ReconciliationReport, error) {
	startDate, endDate := s.period(filters)

	sales, err := s.saleRepo.ListByPeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.ListByPeriod(startDate, endDate, 0)
	if err != nil {
		return nil, err
	}

	return reconcile(startDate, endDate, sales, entries), nil
}

// reconcile agrega vendas e extrato por dia de calendário. Do lado das
// vendas entram só as não canceladas (receita − comissão); do lado do
// extrato, só os lançamentos MP_NET.
func reconcile(startDate, endDate string, sales []*domain.Sale, entries []*domain.LedgerEntry) *domain.ReconciliationReport {
	market := make(map[string]float64)
	for _, sale := range sales {
		if sale.Cancelled() || sale.SaleDate == nil || len(*sale.SaleDate) < 10 {
			continue
		}
		market[(*sale.SaleDate)[:10]] += sale.GrossRevenue - sale.Commission
	}

	settled := make(map[string]float64)
	for _, entry := range entries {
		if entry.Kind != domain.LedgerMPNet || len(entry.Date) < 10 {
			continue
		}
		settled[entry.Date[:10]] += entry.Amount.InexactFloat64()
	}

	days := make([]string, 0, len(market)+len(settled))
	seen := make(map[string]struct{}, len(market)+len(settled))
	for day := range market {
		days = append(days, day)
		seen[day] = struct{}{}
	}
	for day := range settled {
		if _, ok := seen[day]; !ok {
			days = append(days, day)
		}
	}
	sort.Strings(days)

	report := &domain.ReconciliationReport{
		StartDate: startDate,
		EndDate:   endDate,
		Lines:     make([]*domain.ReconciliationLine, 0, len(days)),
	}

	for _, day := range days {
		line := &domain.ReconciliationLine{
			Day:        day,
			MarketNet:  market[day],
			SettledNet: settled[day],
		}
		line.Difference = line.MarketNet - line.SettledNet

		report.Lines = append(report.Lines, line)
		report.MarketNetTotal += line.MarketNet
		report.SettledNetTotal += line.SettledNet
	}

	report.Difference = report.MarketNetTotal - report.SettledNetTotal

	return report
}

// ListSettlementBatches lista os lotes de extrato importados.
func (s *Service) ListSettlementBatches() ([]*domain.LedgerBatch, error) {
	return s.ledgerRepo.ListSettlementBatches()
}

// DeleteSettlementBatch remove um lote de extrato inteiro. Só lançamentos
// de origem mercado_pago saem; lançamentos manuais com o mesmo lote são
// preservados.
func (s *Service) DeleteSettlementBatch(batchID string) (int64, error) {
	removed, err := s.ledgerRepo.DeleteSettlementBatch(batchID)
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"lote":       batchID,
		"lancamentos": removed,
	}).Info("lote de extrato removido")

	return removed, nil
}
