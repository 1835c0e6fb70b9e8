package handler

import (
	"net/http"

	"github.com/MuzammilFarook/dress-showroom-management/internal/api/handler/router"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/authenticating"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/expensing"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/payroll"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/reporting"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/selling"
	"github.com/MuzammilFarook/dress-showroom-management/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Users(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
		{
			Path:        "/v1/users/sales-reps",
			Method:      http.MethodGet,
			Handler:     ListSalesReps(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodDelete,
			Handler:     DeactivateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
	}
}

func Sales(salesService selling.SalesService, dashboardService reporting.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodPost,
			Handler:     CreateSalesEntry(salesService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales",
			Method:      http.MethodGet,
			Handler:     ListSales(salesService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/dashboard-stats",
			Method:      http.MethodGet,
			Handler:     GetDashboardStats(dashboardService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Expenses(service expensing.ExpenseService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/expenses",
			Method:      http.MethodPost,
			Handler:     CreateExpenseEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Managerial()},
		},
		{
			Path:        "/v1/expenses",
			Method:      http.MethodGet,
			Handler:     ListExpenses(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Managerial()},
		},
	}
}

func Salary(service payroll.SalaryService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/salary/statement",
			Method:      http.MethodPost,
			Handler:     GenerateSalaryStatement(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Managerial()},
		},
	}
}
