package handler

import (
	"net/http"

	"github.com/MuzammilFarook/dress-showroom-management/infrastructure/repository"
	"github.com/MuzammilFarook/dress-showroom-management/internal/domain"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/reporting"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/selling"
	"github.com/MuzammilFarook/dress-showroom-management/pkg/apiErrors"
	"github.com/MuzammilFarook/dress-showroom-management/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func CreateSalesEntry(service selling.SalesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(r)
		if !ok {
			writeUnauthenticated(w)
			return
		}

		var req domain.NewSalesEntry
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		entry, err := service.CreateEntry(&req, claims.UserName)
		if err != nil {
			handleSalesError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, entry)
	}
}

// ListSales returns sales entries filtered by the query parameters, within
// the caller's effective scope.
func ListSales(service selling.SalesService) http.HandlerFunc {
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

		entries, err := service.ListForCaller(claims, selling.ListQuery{
			Outlet:           queryParams.Get("outlet"),
			From:             from,
			To:               to,
			SalesRepUsername: queryParams.Get("sales_rep"),
			PaymentType:      queryParams.Get("payment_type"),
		})
		if err != nil {
			handleSalesError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

// GetDashboardStats returns the profitability snapshot for the caller's
// effective scope and period.
func GetDashboardStats(service reporting.DashboardService) http.HandlerFunc {
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

		stats, err := service.Stats(claims, queryParams.Get("outlet"), from, to)
		if err != nil {
			if errors.Is(err, reporting.ErrSalesRepNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "sales representative not found", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error computing dashboard statistics", nil)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

func handleSalesError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrDuplicateBillNumber):
		apiErrors.WriteError(w, apiErrors.ErrResourceConflict, "bill number already exists", nil)

	case errors.Is(err, selling.ErrSalesRepNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "sales representative not found", nil)

	case errors.Is(err, selling.ErrInvalidAmount),
		errors.Is(err, selling.ErrMissingBillNumber),
		errors.Is(err, selling.ErrInvalidPaymentType),
		errors.Is(err, selling.ErrMissingDateTime):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error processing sales entry", nil)
	}
}
