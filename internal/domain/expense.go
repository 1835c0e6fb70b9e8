package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseType string

const (
	ExpenseTea       ExpenseType = "TEA"
	ExpenseMess      ExpenseType = "MESS"
	ExpenseDinner    ExpenseType = "DINNER"
	ExpenseBreakfast ExpenseType = "BREAKFAST"
	ExpenseLunch     ExpenseType = "LUNCH"
	ExpenseCharity   ExpenseType = "CHARITY"
	ExpenseChitFund  ExpenseType = "CHIT_FUND"
	ExpenseAdvance   ExpenseType = "ADVANCE"
)

func (t ExpenseType) Valid() bool {
	switch t {
	case ExpenseTea, ExpenseMess, ExpenseDinner, ExpenseBreakfast,
		ExpenseLunch, ExpenseCharity, ExpenseChitFund, ExpenseAdvance:
		return true
	}
	return false
}

// ExpenseEntry records an outgoing amount for an outlet on a given day.
// AdvanceTo is populated only for ADVANCE entries; an ADVANCE without a
// recipient is tolerated and aggregates as a general expense, but it will
// never show up in any employee's advance total.
type ExpenseEntry struct {
	ID                int64           `json:"id"`
	Outlet            string          `json:"outlet"`
	Date              time.Time       `json:"date"`
	Type              ExpenseType     `json:"type"`
	Amount            decimal.Decimal `json:"amount"`
	Description       *string         `json:"description,omitempty"`
	AdvanceToID       *int64          `json:"advance_to_id,omitempty"`
	AdvanceToUsername *string         `json:"advance_to_username,omitempty"`
	CreatedBy         string          `json:"created_by"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         *time.Time      `json:"updated_at,omitempty"`
}

type NewExpenseEntry struct {
	Date              time.Time       `json:"date"`
	Type              ExpenseType     `json:"type"`
	Amount            decimal.Decimal `json:"amount"`
	Description       *string         `json:"description,omitempty"`
	AdvanceToUsername string          `json:"advance_to_username,omitempty"`
}
