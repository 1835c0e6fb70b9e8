package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/MuzammilFarook/dress-showroom-management/infrastructure/database/postgres"
	"github.com/MuzammilFarook/dress-showroom-management/internal/domain"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	salesEntriesTable = "sales_entries"

	// Postgres unique_violation, raised when two entries race on the same
	// bill number.
	uniqueViolationCode = "23505"
)

// ErrDuplicateBillNumber reports a violation of the global bill number
// uniqueness invariant.
var ErrDuplicateBillNumber = errors.New("bill number already exists")

type SalesEntryRepository interface {
	CreateSalesEntry(entry *domain.SalesEntry) (*domain.SalesEntry, error)
	ExistsByBillNumber(billNumber string) (bool, error)
	ListFiltered(filter domain.SalesFilter) ([]*domain.SalesEntry, error)
	ListBySalesRep(username string, dateRange domain.DateRange) ([]*domain.SalesEntry, error)
	SumAmount(scope domain.Scope, dateRange domain.DateRange) (decimal.Decimal, error)
	CountEntries(scope domain.Scope, dateRange domain.DateRange) (int64, error)
	SumAmountBySalesRep(salesRepID int64, dateRange domain.DateRange) (decimal.Decimal, error)
	CountEntriesBySalesRep(salesRepID int64, dateRange domain.DateRange) (int64, error)
}

type salesEntryRepository struct {
	conn *postgres.Connection
}

func NewSalesEntryRepository(conn *postgres.Connection) SalesEntryRepository {
	return &salesEntryRepository{
		conn: conn,
	}
}

func (r *salesEntryRepository) CreateSalesEntry(entry *domain.SalesEntry) (*domain.SalesEntry, error) {
	query, args, err := squirrel.
		Insert(salesEntriesTable).
		Columns("sales_rep_id", "outlet", "date_time", "bill_number", "amount", "payment_type", "created_by").
		Values(
			entry.SalesRepID,
			entry.Outlet,
			entry.DateTime,
			entry.BillNumber,
			entry.Amount,
			entry.PaymentType,
			entry.CreatedBy,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building sales insert query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolationCode {
			return nil, ErrDuplicateBillNumber
		}
		return nil, errors.Wrap(err, "inserting sales entry")
	}

	return entry, nil
}

func (r *salesEntryRepository) ExistsByBillNumber(billNumber string) (bool, error) {
	var exists bool
	err := r.conn.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM sales_entries WHERE bill_number = $1)",
		billNumber,
	).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(err, "checking bill number")
	}
	return exists, nil
}

// ListFiltered returns matching entries ordered most recent first. The
// ordering is fixed, not caller-selectable.
func (r *salesEntryRepository) ListFiltered(filter domain.SalesFilter) ([]*domain.SalesEntry, error) {
	queryBuilder := squirrel.
		Select(
			"s.id", "s.sales_rep_id", "u.username", "u.full_name", "s.outlet",
			"s.date_time", "s.bill_number", "s.amount", "s.payment_type",
			"s.created_by", "s.created_at", "s.updated_at",
		).
		From(salesEntriesTable + " s").
		Join(usersTable + " u ON u.id = s.sales_rep_id").
		Where(squirrel.GtOrEq{"s.date_time": filter.Range.From}).
		Where(squirrel.LtOrEq{"s.date_time": filter.Range.To}).
		OrderBy("s.date_time DESC").
		PlaceholderFormat(squirrel.Dollar)

	if !filter.Scope.All() {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.outlet": filter.Scope.Outlet()})
	}
	if filter.SalesRepID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.sales_rep_id": *filter.SalesRepID})
	}
	if filter.PaymentType != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.payment_type": *filter.PaymentType})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building sales list query: %w", err)
	}

	return r.listEntries(query, args)
}

func (r *salesEntryRepository) ListBySalesRep(username string, dateRange domain.DateRange) ([]*domain.SalesEntry, error) {
	query, args, err := squirrel.
		Select(
			"s.id", "s.sales_rep_id", "u.username", "u.full_name", "s.outlet",
			"s.date_time", "s.bill_number", "s.amount", "s.payment_type",
			"s.created_by", "s.created_at", "s.updated_at",
		).
		From(salesEntriesTable + " s").
		Join(usersTable + " u ON u.id = s.sales_rep_id").
		Where(squirrel.Eq{"u.username": username}).
		Where(squirrel.GtOrEq{"s.date_time": dateRange.From}).
		Where(squirrel.LtOrEq{"s.date_time": dateRange.To}).
		OrderBy("s.date_time DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building rep sales query: %w", err)
	}

	return r.listEntries(query, args)
}

// SumAmount reduces over the outlet+date predicate only. An empty match set
// sums to zero, never an error.
func (r *salesEntryRepository) SumAmount(scope domain.Scope, dateRange domain.DateRange) (decimal.Decimal, error) {
	queryBuilder := squirrel.
		Select("COALESCE(SUM(amount), 0)").
		From(salesEntriesTable).
		Where(squirrel.GtOrEq{"date_time": dateRange.From}).
		Where(squirrel.LtOrEq{"date_time": dateRange.To}).
		PlaceholderFormat(squirrel.Dollar)

	if !scope.All() {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"outlet": scope.Outlet()})
	}

	return r.sum(queryBuilder)
}

func (r *salesEntryRepository) CountEntries(scope domain.Scope, dateRange domain.DateRange) (int64, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(salesEntriesTable).
		Where(squirrel.GtOrEq{"date_time": dateRange.From}).
		Where(squirrel.LtOrEq{"date_time": dateRange.To}).
		PlaceholderFormat(squirrel.Dollar)

	if !scope.All() {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"outlet": scope.Outlet()})
	}

	return r.count(queryBuilder)
}

func (r *salesEntryRepository) SumAmountBySalesRep(salesRepID int64, dateRange domain.DateRange) (decimal.Decimal, error) {
	queryBuilder := squirrel.
		Select("COALESCE(SUM(amount), 0)").
		From(salesEntriesTable).
		Where(squirrel.Eq{"sales_rep_id": salesRepID}).
		Where(squirrel.GtOrEq{"date_time": dateRange.From}).
		Where(squirrel.LtOrEq{"date_time": dateRange.To}).
		PlaceholderFormat(squirrel.Dollar)

	return r.sum(queryBuilder)
}

func (r *salesEntryRepository) CountEntriesBySalesRep(salesRepID int64, dateRange domain.DateRange) (int64, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(salesEntriesTable).
		Where(squirrel.Eq{"sales_rep_id": salesRepID}).
		Where(squirrel.GtOrEq{"date_time": dateRange.From}).
		Where(squirrel.LtOrEq{"date_time": dateRange.To}).
		PlaceholderFormat(squirrel.Dollar)

	return r.count(queryBuilder)
}

func (r *salesEntryRepository) sum(queryBuilder squirrel.SelectBuilder) (decimal.Decimal, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("building sales sum query: %w", err)
	}

	var total decimal.Decimal
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return decimal.Zero, errors.Wrap(err, "summing sales entries")
	}
	return total, nil
}

func (r *salesEntryRepository) count(queryBuilder squirrel.SelectBuilder) (int64, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("building sales count query: %w", err)
	}

	var total int64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, errors.Wrap(err, "counting sales entries")
	}
	return total, nil
}

func (r *salesEntryRepository) listEntries(query string, args []interface{}) ([]*domain.SalesEntry, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying sales entries")
	}
	defer rows.Close()

	entries := make([]*domain.SalesEntry, 0)
	for rows.Next() {
		entry, err := scanSalesEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func scanSalesEntry(rows *sql.Rows) (*domain.SalesEntry, error) {
	var entry domain.SalesEntry
	err := rows.Scan(
		&entry.ID,
		&entry.SalesRepID,
		&entry.SalesRepUsername,
		&entry.SalesRepName,
		&entry.Outlet,
		&entry.DateTime,
		&entry.BillNumber,
		&entry.Amount,
		&entry.PaymentType,
		&entry.CreatedBy,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, errors.Wrap(err, "scanning sales entry")
	}
	return &entry, nil
}
