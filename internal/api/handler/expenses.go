package handler

import (
	"net/http"

	"github.com/MuzammilFarook/dress-showroom-management/internal/domain"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/expensing"
	"github.com/MuzammilFarook/dress-showroom-management/pkg/apiErrors"
	"github.com/MuzammilFarook/dress-showroom-management/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func CreateExpenseEntry(service expensing.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(r)
		if !ok {
			writeUnauthenticated(w)
			return
		}

		var req domain.NewExpenseEntry
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		entry, err := service.CreateEntry(&req, claims.UserName, claims.UserOutlet)
		if err != nil {
			handleExpenseError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, entry)
	}
}

// ListExpenses returns expense entries filtered by the query parameters,
// within the caller's effective scope.
func ListExpenses(service expensing.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(r)
		if !ok {
			writeUnauthenticated(w)
			return
		}

		queryParams := r.URL.Query()

		from, err := utils.ParseDateTime(queryParams.Get("from"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid 'from' timestamp", nil)
			return
		}

		to, err := utils.ParseDateTime(queryParams.Get("to"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid 'to' timestamp", nil)
			return
		}

		entries, err := service.ListForCaller(claims, expensing.ListQuery{
			Outlet:            queryParams.Get("outlet"),
			From:              from,
			To:                to,
			Type:              queryParams.Get("type"),
			AdvanceToUsername: queryParams.Get("advance_to"),
		})
		if err != nil {
			handleExpenseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

func handleExpenseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, expensing.ErrAdvanceRecipientNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "advance recipient not found", nil)

	case errors.Is(err, expensing.ErrInvalidAmount),
		errors.Is(err, expensing.ErrInvalidExpenseType),
		errors.Is(err, expensing.ErrMissingDate):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error processing expense entry", nil)
	}
}
