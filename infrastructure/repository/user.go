package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/MuzammilFarook/dress-showroom-management/infrastructure/database/postgres"
	"github.com/MuzammilFarook/dress-showroom-management/internal/domain"
	_ "github.com/lib/pq"
)

const usersTable = "users"

var userColumns = []string{
	"id", "username", "password_hash", "full_name", "role", "outlet",
	"is_active", "created_at", "updated_at",
}

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	GetUserByUsername(username string) (*domain.User, error)
	GetUserByID(userID int64) (*domain.User, error)
	ListActiveUsers() ([]*domain.User, error)
	ListUsersByOutlet(outlet string) ([]*domain.User, error)
	ListSalesReps(scope domain.Scope) ([]*domain.User, error)
	DeactivateUser(userID int64) error
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	queryBuilder := squirrel.
		Insert(usersTable).
		Columns("username", "password_hash", "full_name", "role", "outlet", "is_active").
		Values(user.Username, user.PasswordHash, user.FullName, user.Role, user.Outlet, user.Active).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(usersSQL, usersArgs...).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByUsername returns (nil, nil) when no user matches; callers decide
// whether that is an error or just an unresolved optional filter.
func (r *userRepository) GetUserByUsername(username string) (*domain.User, error) {
	return r.getOne(squirrel.Eq{"username": username})
}

func (r *userRepository) GetUserByID(userID int64) (*domain.User, error) {
	return r.getOne(squirrel.Eq{"id": userID})
}

func (r *userRepository) getOne(where squirrel.Sqlizer) (*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building user query: %w", err)
	}

	user, err := scanUser(r.conn.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) ListActiveUsers() ([]*domain.User, error) {
	return r.list(squirrel.Eq{"is_active": true})
}

func (r *userRepository) ListUsersByOutlet(outlet string) ([]*domain.User, error) {
	return r.list(squirrel.Eq{"is_active": true, "outlet": outlet})
}

func (r *userRepository) ListSalesReps(scope domain.Scope) ([]*domain.User, error) {
	where := squirrel.Eq{"is_active": true, "role": domain.RoleSales}
	if !scope.All() {
		where["outlet"] = scope.Outlet()
	}
	return r.list(where)
}

func (r *userRepository) list(where squirrel.Sqlizer) ([]*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		OrderBy("full_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building user list query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUserRows(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// DeactivateUser is the only delete path; the record stays for referential
// integrity of historical transactions.
func (r *userRepository) DeactivateUser(userID int64) error {
	query, args, err := squirrel.
		Update(usersTable).
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building user deactivation query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.FullName,
		&user.Role,
		&user.Outlet,
		&user.Active,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func scanUserRows(rows *sql.Rows) (*domain.User, error) {
	var user domain.User
	err := rows.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.FullName,
		&user.Role,
		&user.Outlet,
		&user.Active,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
