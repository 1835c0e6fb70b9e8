// Package scheduler runs the optional end-of-day summary job. It is an
// operational convenience on top of the synchronous reporting path.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MuzammilFarook/dress-showroom-management/internal/config"
	"github.com/MuzammilFarook/dress-showroom-management/internal/domain"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/reporting"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// DailySummaryService computes and logs the all-outlets profitability
// snapshot for the closing day, on the configured cron schedule.
type DailySummaryService struct {
	scheduler *gocron.Scheduler
	cfg       config.DailySummary
	reporter  *reporting.Service

	runMutex sync.Mutex
	running  bool
}

func NewDailySummaryService(reporter *reporting.Service, appConfig *config.Config) *DailySummaryService {
	return &DailySummaryService{
		scheduler: gocron.NewScheduler(time.Local),
		cfg:       appConfig.DailySummary,
		reporter:  reporter,
	}
}

// Start schedules the summary job and returns immediately. The job is a
// no-op registration when disabled by configuration.
func (s *DailySummaryService) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		logrus.Info("daily summary disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.cfg.CronSchedule).Info("starting daily summary scheduler")

	_, err := s.scheduler.Cron(s.cfg.CronSchedule).Do(func() {
		s.runSummary()
	})
	if err != nil {
		return fmt.Errorf("error scheduling daily summary: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping daily summary scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DailySummaryService) runSummary() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("daily summary already running, skipping")
		return
	}
	s.running = true
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.runMutex.Unlock()
	}()

	// The job fires near midnight; summarize the day it fires on.
	day := time.Now()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())

	stats, err := s.reporter.ScopedStats(domain.ScopeAll(), domain.DateRange{From: start, To: end})
	if err != nil {
		logrus.WithError(err).Error("error computing daily summary")
		return
	}

	logrus.WithFields(logrus.Fields{
		"date":               day.Format(time.DateOnly),
		"total_sales":        stats.TotalSales,
		"total_expenses":     stats.TotalExpenses,
		"net_profit":         stats.NetProfit,
		"total_transactions": stats.TotalTransactions,
	}).Info("daily summary")
}
