package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the closed set of access levels. The role decides the maximum
// visibility of a caller: OWNER sees every outlet, MANAGER and SALES are
// pinned to their home outlet.
type Role string

const (
	RoleOwner   Role = "OWNER"
	RoleManager Role = "MANAGER"
	RoleSales   Role = "SALES"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleManager, RoleSales:
		return true
	}
	return false
}

type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"full_name"`
	Role         Role       `json:"role"`
	Outlet       string     `json:"outlet"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// CreateUserRequest is the payload accepted by the user creation endpoint.
// The password is generated server side from the role default.
type CreateUserRequest struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
	Outlet   string `json:"outlet"`
}

type Claims struct {
	UserID       int64  `json:"user_id"`
	UserName     string `json:"username"`
	UserFullName string `json:"full_name"`
	UserRole     Role   `json:"role"`
	UserOutlet   string `json:"outlet"`
	jwt.RegisteredClaims
}
