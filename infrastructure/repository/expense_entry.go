package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/MuzammilFarook/dress-showroom-management/infrastructure/database/postgres"
	"github.com/MuzammilFarook/dress-showroom-management/internal/domain"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const expenseEntriesTable = "expense_entries"

type ExpenseEntryRepository interface {
	CreateExpenseEntry(entry *domain.ExpenseEntry) (*domain.ExpenseEntry, error)
	ListFiltered(filter domain.ExpenseFilter) ([]*domain.ExpenseEntry, error)
	SumAmount(scope domain.Scope, dateRange domain.DateRange) (decimal.Decimal, error)
	ListAdvancesByRecipient(username string, dateRange domain.DateRange) ([]*domain.ExpenseEntry, error)
}

type expenseEntryRepository struct {
	conn *postgres.Connection
}

func NewExpenseEntryRepository(conn *postgres.Connection) ExpenseEntryRepository {
	return &expenseEntryRepository{
		conn: conn,
	}
}

func (r *expenseEntryRepository) CreateExpenseEntry(entry *domain.ExpenseEntry) (*domain.ExpenseEntry, error) {
	query, args, err := squirrel.
		Insert(expenseEntriesTable).
		Columns("outlet", "date", "type", "amount", "description", "advance_to_id", "created_by").
		Values(
			entry.Outlet,
			entry.Date.Format(time.DateOnly),
			entry.Type,
			entry.Amount,
			entry.Description,
			entry.AdvanceToID,
			entry.CreatedBy,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building expense insert query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "inserting expense entry")
	}

	return entry, nil
}

// ListFiltered returns matching entries, most recent day first.
func (r *expenseEntryRepository) ListFiltered(filter domain.ExpenseFilter) ([]*domain.ExpenseEntry, error) {
	queryBuilder := squirrel.
		Select(
			"e.id", "e.outlet", "e.date", "e.type", "e.amount", "e.description",
			"e.advance_to_id", "u.username", "e.created_by", "e.created_at", "e.updated_at",
		).
		From(expenseEntriesTable + " e").
		LeftJoin(usersTable + " u ON u.id = e.advance_to_id").
		Where(squirrel.GtOrEq{"e.date": filter.Range.From.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"e.date": filter.Range.To.Format(time.DateOnly)}).
		OrderBy("e.date DESC").
		PlaceholderFormat(squirrel.Dollar)

	if !filter.Scope.All() {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"e.outlet": filter.Scope.Outlet()})
	}
	if filter.Type != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"e.type": *filter.Type})
	}
	if filter.AdvanceToID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"e.advance_to_id": *filter.AdvanceToID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building expense list query: %w", err)
	}

	return r.listEntries(query, args)
}

// SumAmount compares the date column against the full timestamp range so
// expense totals line up exactly with the sales range on the dashboard.
func (r *expenseEntryRepository) SumAmount(scope domain.Scope, dateRange domain.DateRange) (decimal.Decimal, error) {
	queryBuilder := squirrel.
		Select("COALESCE(SUM(amount), 0)").
		From(expenseEntriesTable).
		Where(squirrel.GtOrEq{"date": dateRange.From}).
		Where(squirrel.LtOrEq{"date": dateRange.To}).
		PlaceholderFormat(squirrel.Dollar)

	if !scope.All() {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"outlet": scope.Outlet()})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("building expense sum query: %w", err)
	}

	var total decimal.Decimal
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return decimal.Zero, errors.Wrap(err, "summing expense entries")
	}
	return total, nil
}

// ListAdvancesByRecipient returns the ADVANCE entries earmarked for one
// employee. ADVANCE entries with no recipient never match any employee.
func (r *expenseEntryRepository) ListAdvancesByRecipient(username string, dateRange domain.DateRange) ([]*domain.ExpenseEntry, error) {
	query, args, err := squirrel.
		Select(
			"e.id", "e.outlet", "e.date", "e.type", "e.amount", "e.description",
			"e.advance_to_id", "u.username", "e.created_by", "e.created_at", "e.updated_at",
		).
		From(expenseEntriesTable + " e").
		Join(usersTable + " u ON u.id = e.advance_to_id").
		Where(squirrel.Eq{"e.type": domain.ExpenseAdvance, "u.username": username}).
		Where(squirrel.GtOrEq{"e.date": dateRange.From.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"e.date": dateRange.To.Format(time.DateOnly)}).
		OrderBy("e.date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building advances query: %w", err)
	}

	return r.listEntries(query, args)
}

func (r *expenseEntryRepository) listEntries(query string, args []interface{}) ([]*domain.ExpenseEntry, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying expense entries")
	}
	defer rows.Close()

	entries := make([]*domain.ExpenseEntry, 0)
	for rows.Next() {
		entry, err := scanExpenseEntry(rows)
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

func scanExpenseEntry(rows *sql.Rows) (*domain.ExpenseEntry, error) {
	var entry domain.ExpenseEntry
	err := rows.Scan(
		&entry.ID,
		&entry.Outlet,
		&entry.Date,
		&entry.Type,
		&entry.Amount,
		&entry.Description,
		&entry.AdvanceToID,
		&entry.AdvanceToUsername,
		&entry.CreatedBy,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, errors.Wrap(err, "scanning expense entry")
	}
	return &entry, nil
}
