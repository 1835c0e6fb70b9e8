package selling

import (
	"time"

	"github.com/MuzammilFarook/dress-showroom-management/infrastructure/repository"
	"github.com/MuzammilFarook/dress-showroom-management/internal/domain"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/filtering"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/scoping"
	"github.com/sirupsen/logrus"
)

// ListQuery carries the raw, optional filter values from the request. The
// service normalizes them before touching the store.
type ListQuery struct {
	Outlet           string
	From             *time.Time
	To               *time.Time
	SalesRepUsername string
	PaymentType      string
}

type SalesService interface {
	CreateEntry(input *domain.NewSalesEntry, createdBy string) (*domain.SalesEntry, error)
	ListForCaller(caller *domain.Claims, query ListQuery) ([]*domain.SalesEntry, error)
}

type Service struct {
	salesRepo  repository.SalesEntryRepository
	userRepo   repository.UserRepository
	normalizer *filtering.Normalizer
}

func NewService(
	salesRepo repository.SalesEntryRepository,
	userRepo repository.UserRepository,
	normalizer *filtering.Normalizer,
) SalesService {
	return &Service{
		salesRepo:  salesRepo,
		userRepo:   userRepo,
		normalizer: normalizer,
	}
}

// CreateEntry records a sale. The bill number is a natural idempotency key,
// unique across all outlets; the outlet is copied from the rep at creation
// time.
func (s *Service) CreateEntry(input *domain.NewSalesEntry, createdBy string) (*domain.SalesEntry, error) {
	if !input.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if input.BillNumber == "" {
		return nil, ErrMissingBillNumber
	}
	if !input.PaymentType.Valid() {
		return nil, ErrInvalidPaymentType
	}
	if input.DateTime.IsZero() {
		return nil, ErrMissingDateTime
	}

	exists, err := s.salesRepo.ExistsByBillNumber(input.BillNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrDuplicateBillNumber
	}

	salesRep, err := s.userRepo.GetUserByUsername(input.SalesRepUsername)
	if err != nil {
		return nil, err
	}
	if salesRep == nil {
		return nil, ErrSalesRepNotFound
	}

	entry := &domain.SalesEntry{
		SalesRepID:       salesRep.ID,
		SalesRepUsername: salesRep.Username,
		SalesRepName:     salesRep.FullName,
		Outlet:           salesRep.Outlet,
		DateTime:         input.DateTime,
		BillNumber:       input.BillNumber,
		Amount:           input.Amount,
		PaymentType:      input.PaymentType,
		CreatedBy:        createdBy,
	}

	// ExistsByBillNumber leaves a race window; the unique index closes it.
	entry, err = s.salesRepo.CreateSalesEntry(entry)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"bill_number": entry.BillNumber,
		"outlet":      entry.Outlet,
	}).Info("sales entry created")

	return entry, nil
}

// ListForCaller applies the role scope before any caller-supplied filter. A
// SALES caller only ever sees their own authored entries, whatever filters
// they send.
func (s *Service) ListForCaller(caller *domain.Claims, query ListQuery) ([]*domain.SalesEntry, error) {
	dateRange := s.normalizer.DateRange(query.From, query.To)

	if caller.UserRole == domain.RoleSales {
		return s.salesRepo.ListBySalesRep(caller.UserName, dateRange)
	}

	scope := scoping.ForRole(caller.UserRole).EffectiveScope(caller.UserOutlet, query.Outlet)

	salesRepID, err := s.normalizer.UserID(query.SalesRepUsername)
	if err != nil {
		return nil, err
	}

	filter := domain.SalesFilter{
		Scope:      scope,
		Range:      dateRange,
		SalesRepID: salesRepID,
	}
	if query.PaymentType != "" {
		paymentType := domain.PaymentType(query.PaymentType)
		if !paymentType.Valid() {
			return nil, ErrInvalidPaymentType
		}
		filter.PaymentType = &paymentType
	}

	return s.salesRepo.ListFiltered(filter)
}
