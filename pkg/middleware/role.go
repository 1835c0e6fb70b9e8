package middleware

import (
	"net/http"

	"github.com/MuzammilFarook/dress-showroom-management/internal/domain"
	"github.com/MuzammilFarook/dress-showroom-management/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// RoleMiddleware restricts a route to the given roles. The caller's claims
// must already be in the context, put there by AuthMiddleware.
func RoleMiddleware(allowedRoles []domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)

			if !ok {
				logrus.Warning("access attempt without authentication")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "user not authenticated", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.UserRole == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("access denied for user ID=%d, role=%s", userClaims.UserID, userClaims.UserRole)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "you do not have permission to access this resource", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// OwnerOnly permits only OWNER callers.
func OwnerOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.Role{domain.RoleOwner})
}

// Managerial permits OWNER and MANAGER callers.
func Managerial() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.Role{domain.RoleOwner, domain.RoleManager})
}

// AllRoles permits any authenticated caller with a known role.
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.Role{domain.RoleOwner, domain.RoleManager, domain.RoleSales})
}
