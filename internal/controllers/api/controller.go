// Package api contains the HTTP handlers of the budget tracker.
//
// All ledger endpoints require a bearer token and only ever read or
// write the resources of the authenticated account.
package api

import (
	"time"

	"github.com/budget-tracker/backend/internal/auth"
	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are rendered as JSON numbers, e.g. 12.5 instead of "12.5"
	decimal.MarshalJSONWithoutQuotes = true
}

// Controller holds the dependencies of the handlers.
type Controller struct {
	Credentials *auth.Service
	Now         func() time.Time // Defaults to time.Now
}

func (co Controller) now() time.Time {
	if co.Now == nil {
		return time.Now()
	}
	return co.Now()
}

// RegisterRoutes registers all API routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	// Public endpoints
	{
		r.OPTIONS("/register", httputil.OptionsPost)
		r.POST("/register", co.Register)
		r.OPTIONS("/login", httputil.OptionsPost)
		r.POST("/login", co.Login)
	}

	// OPTIONS requests are answered without authentication
	{
		r.OPTIONS("/me", httputil.OptionsGet)
		r.OPTIONS("/expenses", httputil.OptionsGetPost)
		r.OPTIONS("/expenses/:id", httputil.OptionsGet)
		r.OPTIONS("/expenses-by-category", httputil.OptionsGet)
		r.OPTIONS("/total-expenses", httputil.OptionsGet)
		r.OPTIONS("/budget", httputil.OptionsPost)
		r.OPTIONS("/budget-status/:month", httputil.OptionsGet)
		r.OPTIONS("/incomes", httputil.OptionsGetPost)
		r.OPTIONS("/net-balance", httputil.OptionsGet)
	}

	authenticated := r.Group("", co.Credentials.Middleware())
	{
		authenticated.GET("/me", co.GetMe)

		authenticated.GET("/expenses", co.GetExpenses)
		authenticated.POST("/expenses", co.CreateExpense)
		authenticated.GET("/expenses/:id", co.GetExpense)
		authenticated.GET("/expenses-by-category", co.GetExpensesByCategory)
		authenticated.GET("/total-expenses", co.GetTotalExpenses)

		authenticated.POST("/budget", co.SetBudget)
		authenticated.GET("/budget-status/:month", co.GetBudgetStatus)

		authenticated.GET("/incomes", co.GetIncomes)
		authenticated.POST("/incomes", co.CreateIncome)

		authenticated.GET("/net-balance", co.GetNetBalance)
	}
}
