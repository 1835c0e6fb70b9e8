package payroll

import (
	"testing"
	"time"

	"github.com/MuzammilFarook/dress-showroom-management/infrastructure/repository/mocks"
	"github.com/MuzammilFarook/dress-showroom-management/internal/domain"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/filtering"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (SalaryService, *mocks.MockUserRepository, *mocks.MockSalesEntryRepository, *mocks.MockExpenseEntryRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mocks.NewMockUserRepository(ctrl)
	salesRepo := mocks.NewMockSalesEntryRepository(ctrl)
	expenseRepo := mocks.NewMockExpenseEntryRepository(ctrl)

	service := NewService(userRepo, salesRepo, expenseRepo, filtering.NewNormalizer(userRepo))
	return service, userRepo, salesRepo, expenseRepo
}

func saleOf(amount string) *domain.SalesEntry {
	return &domain.SalesEntry{Amount: decimal.RequireFromString(amount)}
}

func advanceOf(amount string) *domain.ExpenseEntry {
	return &domain.ExpenseEntry{
		Type:   domain.ExpenseAdvance,
		Amount: decimal.RequireFromString(amount),
	}
}

func statementInput() StatementInput {
	return StatementInput{
		EmployeeUsername:    "sales1",
		IncentivePercentage: decimal.RequireFromString("5"),
		FromDate:            time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		ToDate:              time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
		BaseSalary:          decimal.RequireFromString("15000"),
	}
}

func expectEmployee(userRepo *mocks.MockUserRepository) {
	userRepo.EXPECT().GetUserByUsername("sales1").Return(&domain.User{
		ID:       7,
		Username: "sales1",
		FullName: "Sales Rep One",
		Outlet:   "Outlet 1",
	}, nil)
}

func TestStatement(t *testing.T) {
	t.Run("computes net from base, incentive and advances", func(t *testing.T) {
		service, userRepo, salesRepo, expenseRepo := newTestService(t)

		expectEmployee(userRepo)
		salesRepo.EXPECT().
			ListBySalesRep("sales1", gomock.Any()).
			Return([]*domain.SalesEntry{saleOf("6000"), saleOf("4000")}, nil)
		expenseRepo.EXPECT().
			ListAdvancesByRecipient("sales1", gomock.Any()).
			Return([]*domain.ExpenseEntry{advanceOf("2000")}, nil)

		statement, err := service.Statement(statementInput())

		assert.NoError(t, err)
		// 10000 * 5% = 500; 15000 + 500 - 2000 = 13500
		assert.True(t, statement.TotalSales.Equal(decimal.RequireFromString("10000")))
		assert.True(t, statement.IncentiveAmount.Equal(decimal.RequireFromString("500")))
		assert.True(t, statement.TotalAdvances.Equal(decimal.RequireFromString("2000")))
		assert.True(t, statement.NetSalary.Equal(decimal.RequireFromString("13500")))
		assert.Equal(t, int64(2), statement.TransactionCount)
	})

	t.Run("incentive is rounded half-up at two decimals", func(t *testing.T) {
		service, userRepo, salesRepo, expenseRepo := newTestService(t)

		expectEmployee(userRepo)
		salesRepo.EXPECT().
			ListBySalesRep("sales1", gomock.Any()).
			Return([]*domain.SalesEntry{saleOf("333.335")}, nil)
		expenseRepo.EXPECT().
			ListAdvancesByRecipient("sales1", gomock.Any()).
			Return(nil, nil)

		statement, err := service.Statement(statementInput())

		assert.NoError(t, err)
		// 333.335 * 5% = 16.66675, rounds to 16.67
		assert.True(t, statement.IncentiveAmount.Equal(decimal.RequireFromString("16.67")),
			"got %s", statement.IncentiveAmount)
	})

	t.Run("advances can push the net salary negative", func(t *testing.T) {
		service, userRepo, salesRepo, expenseRepo := newTestService(t)

		expectEmployee(userRepo)
		salesRepo.EXPECT().
			ListBySalesRep("sales1", gomock.Any()).
			Return([]*domain.SalesEntry{saleOf("10000")}, nil)
		expenseRepo.EXPECT().
			ListAdvancesByRecipient("sales1", gomock.Any()).
			Return([]*domain.ExpenseEntry{advanceOf("20000")}, nil)

		statement, err := service.Statement(statementInput())

		assert.NoError(t, err)
		// 15000 + 500 - 20000 = -4500; surfaced, never clamped
		assert.True(t, statement.NetSalary.Equal(decimal.RequireFromString("-4500")))
	})

	t.Run("echoes the advances that were deducted", func(t *testing.T) {
		service, userRepo, salesRepo, expenseRepo := newTestService(t)

		expectEmployee(userRepo)
		salesRepo.EXPECT().
			ListBySalesRep("sales1", gomock.Any()).
			Return(nil, nil)

		advances := []*domain.ExpenseEntry{advanceOf("500"), advanceOf("700")}
		expenseRepo.EXPECT().
			ListAdvancesByRecipient("sales1", gomock.Any()).
			Return(advances, nil)

		statement, err := service.Statement(statementInput())

		assert.NoError(t, err)
		assert.Equal(t, advances, statement.Advances)
		assert.True(t, statement.TotalAdvances.Equal(decimal.RequireFromString("1200")))
	})

	t.Run("queries span the full days of the period", func(t *testing.T) {
		service, userRepo, salesRepo, expenseRepo := newTestService(t)

		expectEmployee(userRepo)
		salesRepo.EXPECT().
			ListBySalesRep("sales1", gomock.Any()).
			DoAndReturn(func(_ string, span domain.DateRange) ([]*domain.SalesEntry, error) {
				assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), span.From)
				assert.Equal(t, time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC), span.To)
				return nil, nil
			})
		expenseRepo.EXPECT().
			ListAdvancesByRecipient("sales1", gomock.Any()).
			Return(nil, nil)

		_, err := service.Statement(statementInput())

		assert.NoError(t, err)
	})

	t.Run("unknown employee is an error", func(t *testing.T) {
		service, userRepo, _, _ := newTestService(t)

		userRepo.EXPECT().GetUserByUsername("sales1").Return(nil, nil)

		statement, err := service.Statement(statementInput())

		assert.ErrorIs(t, err, ErrEmployeeNotFound)
		assert.Nil(t, statement)
	})

	t.Run("identical inputs yield identical statements", func(t *testing.T) {
		service, userRepo, salesRepo, expenseRepo := newTestService(t)

		for i := 0; i < 2; i++ {
			expectEmployee(userRepo)
			salesRepo.EXPECT().
				ListBySalesRep("sales1", gomock.Any()).
				Return([]*domain.SalesEntry{saleOf("6000")}, nil)
			expenseRepo.EXPECT().
				ListAdvancesByRecipient("sales1", gomock.Any()).
				Return(nil, nil)
		}

		first, err := service.Statement(statementInput())
		assert.NoError(t, err)

		second, err := service.Statement(statementInput())
		assert.NoError(t, err)

		assert.True(t, first.NetSalary.Equal(second.NetSalary))
		assert.True(t, first.IncentiveAmount.Equal(second.IncentiveAmount))
	})
}
