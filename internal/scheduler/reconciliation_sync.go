// Package scheduler contém os serviços de agendamento de rotinas de fundo
package scheduler

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/metrifypremium/metrify-api/internal/config"
	"github.com/metrifypremium/metrify-api/internal/domain"
)

// Reconciler é o recorte do serviço financeiro usado pela rotina.
type Reconciler interface {
	Reconciliation(filters *domain.ReportFilters) (*domain.ReconciliationReport, error)
}

type ReconciliationSyncService struct {
	scheduler           *gocron.Scheduler
	financeService      Reconciler
	config              config.ReconciliationSync
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewReconciliationSyncService(financeService Reconciler, cfg *config.Config) *ReconciliationSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.ReconciliationSync.CronSchedule,
	}).Info("Configuração do agendador de conciliação carregada")

	return &ReconciliationSyncService{
		scheduler:      scheduler,
		financeService: financeService,
		config:         cfg.ReconciliationSync,
		now:            time.Now,
	}
}

func (s *ReconciliationSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de conciliação desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de conciliação")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunReconciliation(); err != nil {
			logrus.WithError(err).Error("Erro na conciliação agendada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a conciliação: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de conciliação")
		s.scheduler.Stop()
	}()

	return nil
}

// RunReconciliation recalcula a conciliação de ontem e loga os dias com
// diferença acima do limiar configurado. Só detecta: nenhum lançamento
// corretivo é criado.
func (s *ReconciliationSyncService) RunReconciliation() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Conciliação agendada já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
	}()

	yesterday := s.now().AddDate(0, 0, -1)
	report, err := s.financeService.Reconciliation(&domain.ReportFilters{
		StartDate: &yesterday,
		EndDate:   &yesterday,
	})
	if err != nil {
		return err
	}

	flagged := s.flagDiscrepancies(report)

	logrus.WithFields(logrus.Fields{
		"dia":         yesterday.Format("2006-01-02"),
		"divergentes": flagged,
	}).Info("Conciliação agendada concluída")

	return nil
}

func (s *ReconciliationSyncService) flagDiscrepancies(report *domain.ReconciliationReport) int {
	flagged := 0
	for _, line := range report.Lines {
		if math.Abs(line.Difference) <= s.config.DiffThreshold {
			continue
		}

		flagged++
		logrus.WithFields(logrus.Fields{
			"dia":       line.Day,
			"ml":        line.MarketNet,
			"mp":        line.SettledNet,
			"diferenca": line.Difference,
		}).Warn("Divergência entre vendas e extrato")
	}

	return flagged
}

// TriggerManualSync inicia manualmente uma rodada de conciliação
func (s *ReconciliationSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Conciliação já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando conciliação manual")
	go func() {
		if err := s.RunReconciliation(); err != nil {
			logrus.WithError(err).Error("Erro na conciliação manual")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *ReconciliationSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"diff_threshold":         s.config.DiffThreshold,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
