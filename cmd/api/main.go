package main

import (
	"context"
	"time"

	"github.com/MuzammilFarook/dress-showroom-management/infrastructure/database/postgres"
	"github.com/MuzammilFarook/dress-showroom-management/infrastructure/repository"
	"github.com/MuzammilFarook/dress-showroom-management/internal/api"
	"github.com/MuzammilFarook/dress-showroom-management/internal/config"
	"github.com/MuzammilFarook/dress-showroom-management/internal/scheduler"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/authenticating"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/expensing"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/filtering"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/payroll"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/reporting"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/selling"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	salesRepo := repository.NewSalesEntryRepository(pgConn)
	expenseRepo := repository.NewExpenseEntryRepository(pgConn)

	normalizer := filtering.NewNormalizer(userRepo)

	authenticator := authenticating.NewService(userRepo, cfg)
	salesService := selling.NewService(salesRepo, userRepo, normalizer)
	expenseService := expensing.NewService(expenseRepo, userRepo, normalizer)
	dashboardService := reporting.NewService(salesRepo, expenseRepo, userRepo, normalizer)
	salaryService := payroll.NewService(userRepo, salesRepo, expenseRepo, normalizer)

	dailySummary := scheduler.NewDailySummaryService(dashboardService, cfg)
	if err := dailySummary.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting daily summary scheduler")
	}

	server, err := api.New(
		cfg,
		authenticator,
		salesService,
		expenseService,
		dashboardService,
		salaryService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("error connecting to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
