package selling

import (
	"testing"
	"time"

	"github.com/MuzammilFarook/dress-showroom-management/infrastructure/repository"
	"github.com/MuzammilFarook/dress-showroom-management/infrastructure/repository/mocks"
	"github.com/MuzammilFarook/dress-showroom-management/internal/domain"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/filtering"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockSalesEntryRepository, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	salesRepo := mocks.NewMockSalesEntryRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)

	service := NewService(salesRepo, userRepo, filtering.NewNormalizer(userRepo)).(*Service)
	return service, salesRepo, userRepo
}

func validInput() *domain.NewSalesEntry {
	return &domain.NewSalesEntry{
		SalesRepUsername: "sales1",
		DateTime:         time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC),
		BillNumber:       "BILL-1001",
		Amount:           decimal.RequireFromString("2350.00"),
		PaymentType:      domain.PaymentCash,
	}
}

func TestCreateEntry(t *testing.T) {
	t.Run("creates the entry with the rep's outlet", func(t *testing.T) {
		service, salesRepo, userRepo := newTestService(t)

		salesRepo.EXPECT().ExistsByBillNumber("BILL-1001").Return(false, nil)
		userRepo.EXPECT().GetUserByUsername("sales1").Return(&domain.User{
			ID:       7,
			Username: "sales1",
			FullName: "Sales Rep One",
			Outlet:   "Outlet 1",
		}, nil)
		salesRepo.EXPECT().
			CreateSalesEntry(gomock.Any()).
			DoAndReturn(func(entry *domain.SalesEntry) (*domain.SalesEntry, error) {
				assert.Equal(t, int64(7), entry.SalesRepID)
				assert.Equal(t, "Outlet 1", entry.Outlet)
				assert.Equal(t, "manager1", entry.CreatedBy)
				entry.ID = 100
				return entry, nil
			})

		entry, err := service.CreateEntry(validInput(), "manager1")

		assert.NoError(t, err)
		assert.Equal(t, int64(100), entry.ID)
	})

	t.Run("rejects a duplicate bill number", func(t *testing.T) {
		service, salesRepo, _ := newTestService(t)

		salesRepo.EXPECT().ExistsByBillNumber("BILL-1001").Return(true, nil)

		entry, err := service.CreateEntry(validInput(), "manager1")

		assert.ErrorIs(t, err, repository.ErrDuplicateBillNumber)
		assert.Nil(t, entry)
	})

	t.Run("rejects an unknown sales rep", func(t *testing.T) {
		service, salesRepo, userRepo := newTestService(t)

		salesRepo.EXPECT().ExistsByBillNumber("BILL-1001").Return(false, nil)
		userRepo.EXPECT().GetUserByUsername("sales1").Return(nil, nil)

		entry, err := service.CreateEntry(validInput(), "manager1")

		assert.ErrorIs(t, err, ErrSalesRepNotFound)
		assert.Nil(t, entry)
	})

	t.Run("validates the input before any lookup", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(input *domain.NewSalesEntry)
			wantErr error
		}{
			{
				name:    "zero amount",
				mutate:  func(input *domain.NewSalesEntry) { input.Amount = decimal.Zero },
				wantErr: ErrInvalidAmount,
			},
			{
				name:    "negative amount",
				mutate:  func(input *domain.NewSalesEntry) { input.Amount = decimal.RequireFromString("-10") },
				wantErr: ErrInvalidAmount,
			},
			{
				name:    "missing bill number",
				mutate:  func(input *domain.NewSalesEntry) { input.BillNumber = "" },
				wantErr: ErrMissingBillNumber,
			},
			{
				name:    "unknown payment type",
				mutate:  func(input *domain.NewSalesEntry) { input.PaymentType = "CHEQUE" },
				wantErr: ErrInvalidPaymentType,
			},
			{
				name:    "missing timestamp",
				mutate:  func(input *domain.NewSalesEntry) { input.DateTime = time.Time{} },
				wantErr: ErrMissingDateTime,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				service, _, _ := newTestService(t)

				input := validInput()
				tt.mutate(input)

				entry, err := service.CreateEntry(input, "manager1")

				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, entry)
			})
		}
	})
}

func TestListForCaller(t *testing.T) {
	t.Run("sales rep only sees their own entries whatever they filter", func(t *testing.T) {
		service, salesRepo, _ := newTestService(t)

		caller := &domain.Claims{
			UserName:   "sales2",
			UserRole:   domain.RoleSales,
			UserOutlet: "Outlet 2",
		}

		salesRepo.EXPECT().
			ListBySalesRep("sales2", gomock.Any()).
			Return([]*domain.SalesEntry{{ID: 1, SalesRepUsername: "sales2"}}, nil)

		entries, err := service.ListForCaller(caller, ListQuery{
			Outlet:           "All Outlets",
			SalesRepUsername: "sales1",
		})

		assert.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("manager queries are pinned to their outlet", func(t *testing.T) {
		service, salesRepo, _ := newTestService(t)

		caller := &domain.Claims{
			UserName:   "manager1",
			UserRole:   domain.RoleManager,
			UserOutlet: "Outlet 1",
		}

		salesRepo.EXPECT().
			ListFiltered(gomock.Any()).
			DoAndReturn(func(filter domain.SalesFilter) ([]*domain.SalesEntry, error) {
				assert.False(t, filter.Scope.All())
				assert.Equal(t, "Outlet 1", filter.Scope.Outlet())
				return nil, nil
			})

		_, err := service.ListForCaller(caller, ListQuery{Outlet: "All Outlets"})

		assert.NoError(t, err)
	})

	t.Run("unresolved rep filter yields no constraint", func(t *testing.T) {
		service, salesRepo, userRepo := newTestService(t)

		caller := &domain.Claims{
			UserName:   "admin",
			UserRole:   domain.RoleOwner,
			UserOutlet: "All Outlets",
		}

		userRepo.EXPECT().GetUserByUsername("ghost").Return(nil, nil)
		salesRepo.EXPECT().
			ListFiltered(gomock.Any()).
			DoAndReturn(func(filter domain.SalesFilter) ([]*domain.SalesEntry, error) {
				assert.Nil(t, filter.SalesRepID)
				assert.True(t, filter.Scope.All())
				return nil, nil
			})

		_, err := service.ListForCaller(caller, ListQuery{SalesRepUsername: "ghost"})

		assert.NoError(t, err)
	})

	t.Run("invalid payment type filter is rejected", func(t *testing.T) {
		service, _, _ := newTestService(t)

		caller := &domain.Claims{
			UserName:   "admin",
			UserRole:   domain.RoleOwner,
			UserOutlet: "All Outlets",
		}

		entries, err := service.ListForCaller(caller, ListQuery{PaymentType: "CHEQUE"})

		assert.ErrorIs(t, err, ErrInvalidPaymentType)
		assert.Nil(t, entries)
	})
}
