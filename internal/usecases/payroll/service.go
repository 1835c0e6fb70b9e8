// Package payroll computes per-employee salary statements from three
// independent read paths: authored sales, cash advances, and the supplied
// base pay.
package payroll

import (
	"errors"
	"time"

	"github.com/MuzammilFarook/dress-showroom-management/infrastructure/repository"
	"github.com/MuzammilFarook/dress-showroom-management/internal/domain"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/filtering"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var ErrEmployeeNotFound = errors.New("employee not found")

var oneHundred = decimal.NewFromInt(100)

// StatementInput echoes the original payroll request: dates are calendar
// days, percentages and amounts are fixed 2-decimal figures.
type StatementInput struct {
	EmployeeUsername    string
	IncentivePercentage decimal.Decimal
	FromDate            time.Time
	ToDate              time.Time
	BaseSalary          decimal.Decimal
}

type SalaryService interface {
	Statement(input StatementInput) (*domain.SalaryStatement, error)
}

type Service struct {
	userRepo    repository.UserRepository
	salesRepo   repository.SalesEntryRepository
	expenseRepo repository.ExpenseEntryRepository
	normalizer  *filtering.Normalizer
}

func NewService(
	userRepo repository.UserRepository,
	salesRepo repository.SalesEntryRepository,
	expenseRepo repository.ExpenseEntryRepository,
	normalizer *filtering.Normalizer,
) SalaryService {
	return &Service{
		userRepo:    userRepo,
		salesRepo:   salesRepo,
		expenseRepo: expenseRepo,
		normalizer:  normalizer,
	}
}

// Statement is a pure read-and-compute operation: identical inputs against
// unchanged data yield identical statements.
//
// net = base + round2(totalSales * pct / 100, half-up) - totalAdvances
//
// Half-up rounding at the second decimal is the fixed payroll policy. The
// net salary is not floored at zero; advances can push it negative and the
// figure is surfaced as-is.
func (s *Service) Statement(input StatementInput) (*domain.SalaryStatement, error) {
	employee, err := s.userRepo.GetUserByUsername(input.EmployeeUsername)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	// The salary reflects only transactions the employee personally
	// authored, even when colleagues share their outlet.
	span := s.normalizer.FullDayRange(input.FromDate, input.ToDate)

	salesEntries, err := s.salesRepo.ListBySalesRep(employee.Username, span)
	if err != nil {
		return nil, err
	}

	totalSales := decimal.Zero
	for _, entry := range salesEntries {
		totalSales = totalSales.Add(entry.Amount)
	}

	// decimal.Round rounds half away from zero, which is half-up for the
	// positive totals involved here.
	incentiveAmount := totalSales.
		Mul(input.IncentivePercentage).
		Div(oneHundred).
		Round(2)

	advances, err := s.expenseRepo.ListAdvancesByRecipient(employee.Username, span)
	if err != nil {
		return nil, err
	}

	totalAdvances := decimal.Zero
	for _, advance := range advances {
		totalAdvances = totalAdvances.Add(advance.Amount)
	}

	netSalary := input.BaseSalary.Add(incentiveAmount).Sub(totalAdvances)

	logrus.WithFields(logrus.Fields{
		"employee":   employee.Username,
		"net_salary": netSalary,
	}).Debug("salary statement computed")

	return &domain.SalaryStatement{
		EmployeeName:        employee.FullName,
		EmployeeUsername:    employee.Username,
		Outlet:              employee.Outlet,
		FromDate:            input.FromDate,
		ToDate:              input.ToDate,
		BaseSalary:          input.BaseSalary,
		TotalSales:          totalSales,
		TransactionCount:    int64(len(salesEntries)),
		IncentivePercentage: input.IncentivePercentage,
		IncentiveAmount:     incentiveAmount,
		TotalAdvances:       totalAdvances,
		NetSalary:           netSalary,
		Advances:            advances,
	}, nil
}
