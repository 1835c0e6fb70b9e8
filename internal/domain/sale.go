package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentType string

const (
	PaymentCash    PaymentType = "CASH"
	PaymentAccount PaymentType = "ACCOUNT"
)

func (p PaymentType) Valid() bool {
	return p == PaymentCash || p == PaymentAccount
}

// SalesEntry is an immutable sale record. The outlet is copied from the
// sales rep at creation time and never re-derived, so later transfers of a
// rep do not rewrite history.
type SalesEntry struct {
	ID               int64           `json:"id"`
	SalesRepID       int64           `json:"sales_rep_id"`
	SalesRepUsername string          `json:"sales_rep_username"`
	SalesRepName     string          `json:"sales_rep_name"`
	Outlet           string          `json:"outlet"`
	DateTime         time.Time       `json:"date_time"`
	BillNumber       string          `json:"bill_number"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentType      PaymentType     `json:"payment_type"`
	CreatedBy        string          `json:"created_by"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        *time.Time      `json:"updated_at,omitempty"`
}

type NewSalesEntry struct {
	SalesRepUsername string          `json:"sales_rep_username"`
	DateTime         time.Time       `json:"date_time"`
	BillNumber       string          `json:"bill_number"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentType      PaymentType     `json:"payment_type"`
}
