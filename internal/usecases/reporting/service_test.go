package reporting

import (
	"testing"

	"github.com/MuzammilFarook/dress-showroom-management/infrastructure/repository/mocks"
	"github.com/MuzammilFarook/dress-showroom-management/internal/domain"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/filtering"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockSalesEntryRepository, *mocks.MockExpenseEntryRepository, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	salesRepo := mocks.NewMockSalesEntryRepository(ctrl)
	expenseRepo := mocks.NewMockExpenseEntryRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)

	service := NewService(salesRepo, expenseRepo, userRepo, filtering.NewNormalizer(userRepo))
	return service, salesRepo, expenseRepo, userRepo
}

func TestStats_Scoped(t *testing.T) {
	t.Run("owner sees true profitability over the requested scope", func(t *testing.T) {
		service, salesRepo, expenseRepo, _ := newTestService(t)

		caller := &domain.Claims{
			UserName:   "admin",
			UserRole:   domain.RoleOwner,
			UserOutlet: "All Outlets",
		}

		salesRepo.EXPECT().
			SumAmount(gomock.Any(), gomock.Any()).
			Return(decimal.RequireFromString("10000.00"), nil)
		expenseRepo.EXPECT().
			SumAmount(gomock.Any(), gomock.Any()).
			Return(decimal.RequireFromString("3500.00"), nil)
		salesRepo.EXPECT().
			CountEntries(gomock.Any(), gomock.Any()).
			Return(int64(12), nil)

		stats, err := service.Stats(caller, "", nil, nil)

		assert.NoError(t, err)
		assert.True(t, stats.TotalSales.Equal(decimal.RequireFromString("10000.00")))
		assert.True(t, stats.TotalExpenses.Equal(decimal.RequireFromString("3500.00")))
		assert.True(t, stats.NetProfit.Equal(decimal.RequireFromString("6500.00")))
		assert.Equal(t, int64(12), stats.TotalTransactions)
	})

	t.Run("manager is pinned to their home outlet", func(t *testing.T) {
		service, salesRepo, expenseRepo, _ := newTestService(t)

		caller := &domain.Claims{
			UserName:   "manager2",
			UserRole:   domain.RoleManager,
			UserOutlet: "Outlet 2",
		}

		salesRepo.EXPECT().
			SumAmount(gomock.Any(), gomock.Any()).
			DoAndReturn(func(scope domain.Scope, _ domain.DateRange) (decimal.Decimal, error) {
				assert.Equal(t, "Outlet 2", scope.Outlet())
				return decimal.Zero, nil
			})
		expenseRepo.EXPECT().
			SumAmount(gomock.Any(), gomock.Any()).
			Return(decimal.Zero, nil)
		salesRepo.EXPECT().
			CountEntries(gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		stats, err := service.Stats(caller, "All Outlets", nil, nil)

		assert.NoError(t, err)
		// Zero totals over an empty period are a valid result, not an error.
		assert.True(t, stats.TotalSales.IsZero())
		assert.True(t, stats.NetProfit.IsZero())
	})
}

func TestStats_Personal(t *testing.T) {
	t.Run("sales rep gets their personal contribution", func(t *testing.T) {
		service, salesRepo, _, userRepo := newTestService(t)

		caller := &domain.Claims{
			UserName:   "sales1",
			UserRole:   domain.RoleSales,
			UserOutlet: "Outlet 1",
		}

		userRepo.EXPECT().
			GetUserByUsername("sales1").
			Return(&domain.User{ID: 7, Username: "sales1"}, nil)
		salesRepo.EXPECT().
			SumAmountBySalesRep(int64(7), gomock.Any()).
			Return(decimal.RequireFromString("4200.00"), nil)
		salesRepo.EXPECT().
			CountEntriesBySalesRep(int64(7), gomock.Any()).
			Return(int64(3), nil)

		stats, err := service.Stats(caller, "", nil, nil)

		assert.NoError(t, err)
		assert.True(t, stats.TotalExpenses.IsZero())
		// The personal view reports gross sales in the net profit field.
		assert.True(t, stats.NetProfit.Equal(stats.TotalSales))
		assert.Equal(t, int64(3), stats.TotalTransactions)
	})

	t.Run("empty period yields all-zero stats, not an error", func(t *testing.T) {
		service, salesRepo, _, userRepo := newTestService(t)

		caller := &domain.Claims{
			UserName:   "sales1",
			UserRole:   domain.RoleSales,
			UserOutlet: "Outlet 1",
		}

		userRepo.EXPECT().
			GetUserByUsername("sales1").
			Return(&domain.User{ID: 7, Username: "sales1"}, nil)
		salesRepo.EXPECT().
			SumAmountBySalesRep(int64(7), gomock.Any()).
			Return(decimal.Zero, nil)
		salesRepo.EXPECT().
			CountEntriesBySalesRep(int64(7), gomock.Any()).
			Return(int64(0), nil)

		stats, err := service.Stats(caller, "", nil, nil)

		assert.NoError(t, err)
		assert.True(t, stats.TotalSales.IsZero())
		assert.True(t, stats.TotalExpenses.IsZero())
		assert.True(t, stats.NetProfit.IsZero())
		assert.Equal(t, int64(0), stats.TotalTransactions)
	})

	t.Run("caller identity must resolve", func(t *testing.T) {
		service, _, _, userRepo := newTestService(t)

		caller := &domain.Claims{
			UserName: "ghost",
			UserRole: domain.RoleSales,
		}

		userRepo.EXPECT().GetUserByUsername("ghost").Return(nil, nil)

		stats, err := service.Stats(caller, "", nil, nil)

		assert.ErrorIs(t, err, ErrSalesRepNotFound)
		assert.Nil(t, stats)
	})

	t.Run("unknown role fails closed to the personal view", func(t *testing.T) {
		service, _, _, userRepo := newTestService(t)

		caller := &domain.Claims{
			UserName: "intern1",
			UserRole: domain.Role("INTERN"),
		}

		userRepo.EXPECT().GetUserByUsername("intern1").Return(nil, nil)

		stats, err := service.Stats(caller, "", nil, nil)

		assert.ErrorIs(t, err, ErrSalesRepNotFound)
		assert.Nil(t, stats)
	})
}
