package handler

import (
	"net/http"

	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/payroll"
	"github.com/MuzammilFarook/dress-showroom-management/pkg/apiErrors"
	"github.com/MuzammilFarook/dress-showroom-management/pkg/utils"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// SalaryStatementRequest carries the payroll parameters. Dates are calendar
// days; both bounds are mandatory for a statement.
type SalaryStatementRequest struct {
	EmployeeUsername    string          `json:"employee_username"`
	IncentivePercentage decimal.Decimal `json:"incentive_percentage"`
	FromDate            string          `json:"from_date"`
	ToDate              string          `json:"to_date"`
	BaseSalary          decimal.Decimal `json:"base_salary"`
}

func GenerateSalaryStatement(service payroll.SalaryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SalaryStatementRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if req.EmployeeUsername == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "employee username is required", nil)
			return
		}

		fromDate, err := utils.ParseDate(req.FromDate)
		if err != nil || fromDate == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid 'from_date'", nil)
			return
		}

		toDate, err := utils.ParseDate(req.ToDate)
		if err != nil || toDate == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid 'to_date'", nil)
			return
		}

		statement, err := service.Statement(payroll.StatementInput{
			EmployeeUsername:    req.EmployeeUsername,
			IncentivePercentage: req.IncentivePercentage,
			FromDate:            *fromDate,
			ToDate:              *toDate,
			BaseSalary:          req.BaseSalary,
		})
		if err != nil {
			if errors.Is(err, payroll.ErrEmployeeNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "employee not found", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error generating salary statement", nil)
			return
		}

		writeJSON(w, http.StatusOK, statement)
	}
}
