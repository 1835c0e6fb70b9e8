package handler

import (
	"net/http"
	"strconv"

	"github.com/MuzammilFarook/dress-showroom-management/internal/domain"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/authenticating"
	"github.com/MuzammilFarook/dress-showroom-management/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// ListUsers returns the user directory visible to the caller. The service
// narrows the listing by the caller's role.
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(r)
		if !ok {
			writeUnauthenticated(w)
			return
		}

		users, err := service.ListUsersForCaller(claims)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error listing users", nil)
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		user, err := service.CreateUser(&req)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

// ListSalesReps returns the sales representatives within the caller's
// effective scope, optionally narrowed by the outlet query parameter.
func ListSalesReps(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(r)
		if !ok {
			writeUnauthenticated(w)
			return
		}

		reps, err := service.ListSalesReps(claims, r.URL.Query().Get("outlet"))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error listing sales representatives", nil)
			return
		}

		writeJSON(w, http.StatusOK, reps)
	}
}

// DeactivateUser soft-deletes a user. Historical sales and advances keep
// referencing the deactivated row.
func DeactivateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		userID, err := strconv.ParseInt(params.ByName("id"), 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid user id", nil)
			return
		}

		if err := service.DeactivateUser(userID); err != nil {
			handleAuthError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
