package domain

import "time"

// DateRange is always a closed interval. Callers that want "unbounded" get
// the open-range sentinels filled in by the filter normalizer, so the query
// layer never branches on missing bounds.
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// SalesFilter is a fully-normalized sales query predicate. Optional
// constraints are nil pointers; the scope and range are always concrete.
type SalesFilter struct {
	Scope       Scope
	Range       DateRange
	SalesRepID  *int64
	PaymentType *PaymentType
}

// ExpenseFilter mirrors SalesFilter for the expense side.
type ExpenseFilter struct {
	Scope       Scope
	Range       DateRange
	Type        *ExpenseType
	AdvanceToID *int64
}
