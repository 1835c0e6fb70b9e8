// Package reporting aggregates sales and expense totals into the dashboard
// snapshot, switching between the outlet-scoped and the personal view by
// caller role.
package reporting

import (
	"errors"
	"time"

	"github.com/MuzammilFarook/dress-showroom-management/infrastructure/repository"
	"github.com/MuzammilFarook/dress-showroom-management/internal/domain"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/filtering"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/scoping"
	"github.com/shopspring/decimal"
)

// ErrSalesRepNotFound is returned by the personal dashboard when the caller
// identity does not resolve to a user. Unlike optional filters, identity is
// mandatory here.
var ErrSalesRepNotFound = errors.New("sales representative not found")

type DashboardService interface {
	Stats(caller *domain.Claims, outlet string, from, to *time.Time) (*domain.DashboardStats, error)
}

type Service struct {
	salesRepo   repository.SalesEntryRepository
	expenseRepo repository.ExpenseEntryRepository
	userRepo    repository.UserRepository
	normalizer  *filtering.Normalizer
	variants    map[domain.Role]statsVariant
}

func NewService(
	salesRepo repository.SalesEntryRepository,
	expenseRepo repository.ExpenseEntryRepository,
	userRepo repository.UserRepository,
	normalizer *filtering.Normalizer,
) *Service {
	s := &Service{
		salesRepo:   salesRepo,
		expenseRepo: expenseRepo,
		userRepo:    userRepo,
		normalizer:  normalizer,
	}
	s.variants = map[domain.Role]statsVariant{
		domain.RoleOwner:   scopedVariant{},
		domain.RoleManager: scopedVariant{},
		domain.RoleSales:   personalVariant{},
	}
	return s
}

// Stats builds the dashboard snapshot for the caller. Zero totals over an
// empty period are a valid result, never an error.
func (s *Service) Stats(caller *domain.Claims, outlet string, from, to *time.Time) (*domain.DashboardStats, error) {
	dateRange := s.normalizer.DateRange(from, to)

	variant, ok := s.variants[caller.UserRole]
	if !ok {
		// Fail closed: unknown roles get the personal view of nothing.
		variant = personalVariant{}
	}

	return variant.stats(s, caller, outlet, dateRange)
}

// ScopedStats is the outlet-level aggregate, also used directly by the
// daily summary scheduler. Expense totals use the full timestamp range so
// they align with the sales range exactly.
func (s *Service) ScopedStats(scope domain.Scope, dateRange domain.DateRange) (*domain.DashboardStats, error) {
	totalSales, err := s.salesRepo.SumAmount(scope, dateRange)
	if err != nil {
		return nil, err
	}

	totalExpenses, err := s.expenseRepo.SumAmount(scope, dateRange)
	if err != nil {
		return nil, err
	}

	totalTransactions, err := s.salesRepo.CountEntries(scope, dateRange)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		TotalSales:        totalSales,
		TotalExpenses:     totalExpenses,
		NetProfit:         totalSales.Sub(totalExpenses),
		TotalTransactions: totalTransactions,
	}, nil
}

type statsVariant interface {
	stats(s *Service, caller *domain.Claims, outlet string, dateRange domain.DateRange) (*domain.DashboardStats, error)
}

// scopedVariant serves OWNER and MANAGER: true profitability over the
// effective outlet scope.
type scopedVariant struct{}

func (scopedVariant) stats(s *Service, caller *domain.Claims, outlet string, dateRange domain.DateRange) (*domain.DashboardStats, error) {
	scope := scoping.ForRole(caller.UserRole).EffectiveScope(caller.UserOutlet, outlet)
	return s.ScopedStats(scope, dateRange)
}

// personalVariant serves SALES: the scope is the individual, not the
// outlet. Expenses are forced to zero and "net profit" reports the gross
// personal sales contribution; the naming split is intentional.
type personalVariant struct{}

func (personalVariant) stats(s *Service, caller *domain.Claims, _ string, dateRange domain.DateRange) (*domain.DashboardStats, error) {
	salesRep, err := s.userRepo.GetUserByUsername(caller.UserName)
	if err != nil {
		return nil, err
	}
	if salesRep == nil {
		return nil, ErrSalesRepNotFound
	}

	totalSales, err := s.salesRepo.SumAmountBySalesRep(salesRep.ID, dateRange)
	if err != nil {
		return nil, err
	}

	totalTransactions, err := s.salesRepo.CountEntriesBySalesRep(salesRep.ID, dateRange)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		TotalSales:        totalSales,
		TotalExpenses:     decimal.Zero,
		NetProfit:         totalSales,
		TotalTransactions: totalTransactions,
	}, nil
}
