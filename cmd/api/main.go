package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/metrifypremium/metrify-api/infrastructure/database/postgres"
	"github.com/metrifypremium/metrify-api/infrastructure/migration"
	"github.com/metrifypremium/metrify-api/infrastructure/repository"
	"github.com/metrifypremium/metrify-api/infrastructure/spreadsheet"
	"github.com/metrifypremium/metrify-api/internal/api"
	"github.com/metrifypremium/metrify-api/internal/config"
	"github.com/metrifypremium/metrify-api/internal/scheduler"
	"github.com/metrifypremium/metrify-api/internal/usecases/authenticating"
	"github.com/metrifypremium/metrify-api/internal/usecases/catalog"
	"github.com/metrifypremium/metrify-api/internal/usecases/finance"
	"github.com/metrifypremium/metrify-api/internal/usecases/importing"
	"github.com/metrifypremium/metrify-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	// Aplica as migrações pendentes antes de subir o servidor
	if err := migration.Run(pgConn); err != nil {
		logrus.WithError(err).Fatal("Erro ao executar as migrações do banco")
	}

	productRepo := repository.NewProductRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	adjustmentRepo := repository.NewStockAdjustmentRepository(pgConn)
	settingsRepo := repository.NewSettingsRepository(pgConn)
	ledgerRepo := repository.NewLedgerRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg.Auth)
	if err := authenticator.EnsureDefaultUser(); err != nil {
		logrus.WithError(err).Fatal("Erro ao garantir o usuário padrão")
	}

	sheets := spreadsheet.New()

	catalogService := catalog.NewService(pgConn, productRepo, adjustmentRepo)
	reportingService := reporting.NewService(productRepo, saleRepo, settingsRepo, cfg.Inventory)
	exportService := reporting.NewExportService(reportingService, saleRepo, sheets)
	financeService := finance.NewService(pgConn, ledgerRepo, saleRepo)

	salesImporter := importing.NewSalesImporter(pgConn, productRepo, saleRepo, sheets, cfg.Import)
	settlementImporter := importing.NewSettlementImporter(pgConn, ledgerRepo, sheets, cfg.Import)
	productImporter := importing.NewProductImporter(pgConn, productRepo, sheets, cfg.Import)

	// Inicializa a verificação diária de conciliação em background
	reconciliationSync := scheduler.NewReconciliationSyncService(financeService, cfg)
	if err := reconciliationSync.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de conciliação")
	} else {
		logrus.Info("Agendador de conciliação iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		catalogService,
		reportingService,
		exportService,
		financeService,
		authenticator,
		salesImporter,
		settlementImporter,
		productImporter,
		saleRepo,
		settingsRepo,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
