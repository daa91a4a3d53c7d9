package api

import (
	"net/http"

	"github.com/budget-tracker/backend/internal/auth"
	"github.com/budget-tracker/backend/internal/ledger"
	"github.com/budget-tracker/backend/internal/models"
	"github.com/budget-tracker/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// @Summary		Net balance
// @Description	Returns the budget of the month, the expenses in it, the budget utilisation and how many days the budget lasts at the average daily spending. The month defaults to the current month.
// @Tags			Reports
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	NetBalance
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			month	query		string	false	"The month in YYYY-MM format"
// @Router			/net-balance [get]
func (co Controller) GetNetBalance(c *gin.Context) {
	month, err := queryMonth(c)
	if err != nil {
		respondError(c, err)
		return
	}

	now := co.now()
	if month.IsZero() {
		month = types.MonthOf(now.UTC())
	}

	accountID := auth.AccountID(c)
	budget, _, err := models.BudgetFor(c.Request.Context(), accountID, month)
	if err != nil {
		respondError(c, err)
		return
	}

	expenses, err := models.Expenses(c.Request.Context(), accountID, models.ExpenseFilter{Month: month})
	if err != nil {
		respondError(c, err)
		return
	}

	report := ledger.NewReport(budget, models.LedgerExpenses(expenses), ledger.ElapsedDays(month, now))

	c.JSON(http.StatusOK, NetBalance{
		Month:             month,
		TotalIncome:       report.Budget,
		TotalExpenses:     report.Spent,
		NetBalance:        report.Net,
		Utilisation:       report.Utilization,
		AverageDailySpend: report.AverageDailySpend,
		ForecastDays:      report.ForecastDays,
	})
}
