package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/metrifypremium/metrify-api/infrastructure/repository"
	"github.com/metrifypremium/metrify-api/internal/api/handler"
	"github.com/metrifypremium/metrify-api/internal/api/handler/router"
	"github.com/metrifypremium/metrify-api/internal/config"
	"github.com/metrifypremium/metrify-api/internal/usecases/authenticating"
	"github.com/metrifypremium/metrify-api/internal/usecases/catalog"
	"github.com/metrifypremium/metrify-api/internal/usecases/finance"
	"github.com/metrifypremium/metrify-api/internal/usecases/importing"
	"github.com/metrifypremium/metrify-api/internal/usecases/reporting"
	"github.com/metrifypremium/metrify-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	catalogService catalog.CatalogService,
	reportingService reporting.ReportingService,
	exportService reporting.ExportService,
	financeService finance.FinanceService,
	authenticator authenticating.Authenticator,
	salesImporter importing.SalesImporter,
	settlementImporter importing.SettlementImporter,
	productImporter importing.ProductImporter,
	saleRepo repository.SaleRepository,
	settingsRepo repository.SettingsRepository,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Products(catalogService, productImporter)...),
		router.WithRoutes(handler.Sales(saleRepo, salesImporter, exportService)...),
		router.WithRoutes(handler.Stock(catalogService, reportingService)...),
		router.WithRoutes(handler.Reports(reportingService, exportService)...),
		router.WithRoutes(handler.Finance(financeService, settlementImporter)...),
		router.WithRoutes(handler.Settings(settingsRepo)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
