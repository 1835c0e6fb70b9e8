package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MuzammilFarook/dress-showroom-management/internal/api/handler"
	"github.com/MuzammilFarook/dress-showroom-management/internal/api/handler/router"
	"github.com/MuzammilFarook/dress-showroom-management/internal/config"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/authenticating"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/expensing"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/payroll"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/reporting"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/selling"
	"github.com/MuzammilFarook/dress-showroom-management/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	salesService selling.SalesService,
	expenseService expensing.ExpenseService,
	dashboardService reporting.DashboardService,
	salaryService payroll.SalaryService,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Users(authenticator)...),
		router.WithRoutes(handler.Sales(salesService, dashboardService)...),
		router.WithRoutes(handler.Expenses(expenseService)...),
		router.WithRoutes(handler.Salary(salaryService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("error while running server")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
