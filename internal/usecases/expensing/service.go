package expensing

import (
	"time"

	"github.com/MuzammilFarook/dress-showroom-management/infrastructure/repository"
	"github.com/MuzammilFarook/dress-showroom-management/internal/domain"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/filtering"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/scoping"
	"github.com/sirupsen/logrus"
)

// fallbackOutlet receives expenses entered by wildcard-scope callers, who
// have no concrete home outlet to charge.
const fallbackOutlet = "Outlet 1"

type ListQuery struct {
	Outlet            string
	From              *time.Time
	To                *time.Time
	Type              string
	AdvanceToUsername string
}

type ExpenseService interface {
	CreateEntry(input *domain.NewExpenseEntry, createdBy, callerOutlet string) (*domain.ExpenseEntry, error)
	ListForCaller(caller *domain.Claims, query ListQuery) ([]*domain.ExpenseEntry, error)
}

type Service struct {
	expenseRepo repository.ExpenseEntryRepository
	userRepo    repository.UserRepository
	normalizer  *filtering.Normalizer
}

func NewService(
	expenseRepo repository.ExpenseEntryRepository,
	userRepo repository.UserRepository,
	normalizer *filtering.Normalizer,
) ExpenseService {
	return &Service{
		expenseRepo: expenseRepo,
		userRepo:    userRepo,
		normalizer:  normalizer,
	}
}

// CreateEntry records an expense against the caller's outlet. When the
// entry is an advance with a named recipient, the recipient must resolve:
// this lookup is mandatory identity, not an optional filter.
func (s *Service) CreateEntry(input *domain.NewExpenseEntry, createdBy, callerOutlet string) (*domain.ExpenseEntry, error) {
	if !input.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if !input.Type.Valid() {
		return nil, ErrInvalidExpenseType
	}
	if input.Date.IsZero() {
		return nil, ErrMissingDate
	}

	outlet := callerOutlet
	if domain.ParseScope(callerOutlet).All() {
		outlet = fallbackOutlet
	}

	entry := &domain.ExpenseEntry{
		Outlet:      outlet,
		Date:        input.Date,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		CreatedBy:   createdBy,
	}

	if input.AdvanceToUsername != "" {
		recipient, err := s.userRepo.GetUserByUsername(input.AdvanceToUsername)
		if err != nil {
			return nil, err
		}
		if recipient == nil {
			return nil, ErrAdvanceRecipientNotFound
		}
		entry.AdvanceToID = &recipient.ID
		entry.AdvanceToUsername = &recipient.Username
	}

	entry, err := s.expenseRepo.CreateExpenseEntry(entry)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"type":   entry.Type,
		"outlet": entry.Outlet,
	}).Info("expense entry created")

	return entry, nil
}

// ListForCaller applies the role scope, then the optional type and
// advance-recipient filters. An unresolvable recipient name yields no
// constraint rather than an error.
func (s *Service) ListForCaller(caller *domain.Claims, query ListQuery) ([]*domain.ExpenseEntry, error) {
	scope := scoping.ForRole(caller.UserRole).EffectiveScope(caller.UserOutlet, query.Outlet)
	dateRange := s.normalizer.DateRange(query.From, query.To)

	advanceToID, err := s.normalizer.UserID(query.AdvanceToUsername)
	if err != nil {
		return nil, err
	}

	filter := domain.ExpenseFilter{
		Scope:       scope,
		Range:       dateRange,
		AdvanceToID: advanceToID,
	}
	if query.Type != "" {
		expenseType := domain.ExpenseType(query.Type)
		if !expenseType.Valid() {
			return nil, ErrInvalidExpenseType
		}
		filter.Type = &expenseType
	}

	return s.expenseRepo.ListFiltered(filter)
}
