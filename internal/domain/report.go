package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats is the profitability snapshot shown on the dashboard. For
// SALES callers NetProfit carries the gross personal sales contribution,
// not a true profit figure; the split is intentional and kept as-is for
// client compatibility.
type DashboardStats struct {
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalExpenses     decimal.Decimal `json:"total_expenses"`
	NetProfit         decimal.Decimal `json:"net_profit"`
	TotalTransactions int64           `json:"total_transactions"`
}

// SalaryStatement echoes its inputs next to the computed figures so a
// printed statement is self-contained. NetSalary may be negative when
// advances exceed base pay plus incentive; it is surfaced, never clamped.
type SalaryStatement struct {
	EmployeeName        string          `json:"employee_name"`
	EmployeeUsername    string          `json:"employee_username"`
	Outlet              string          `json:"outlet"`
	FromDate            time.Time       `json:"from_date"`
	ToDate              time.Time       `json:"to_date"`
	BaseSalary          decimal.Decimal `json:"base_salary"`
	TotalSales          decimal.Decimal `json:"total_sales"`
	TransactionCount    int64           `json:"transaction_count"`
	IncentivePercentage decimal.Decimal `json:"incentive_percentage"`
	IncentiveAmount     decimal.Decimal `json:"incentive_amount"`
	TotalAdvances       decimal.Decimal `json:"total_advances"`
	NetSalary           decimal.Decimal `json:"net_salary"`
	Advances            []*ExpenseEntry `json:"advances"`
}
