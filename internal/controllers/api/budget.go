package api

import (
	"net/http"

	"github.com/budget-tracker/backend/internal/auth"
	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/budget-tracker/backend/internal/ledger"
	"github.com/budget-tracker/backend/internal/models"
	"github.com/budget-tracker/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// @Summary		Set budget
// @Description	Sets the budget for a month. An existing budget for the month is overwritten. The month defaults to the current month.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		422		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			budget	body		BudgetCreate	true	"Budget"
// @Router			/budget [post]
func (co Controller) SetBudget(c *gin.Context) {
	var data BudgetCreate
	if err := httputil.BindData(c, &data); err != nil {
		respondError(c, err)
		return
	}

	month := data.Month
	if month.IsZero() {
		month = types.MonthOf(co.now().UTC())
	}

	budget, err := models.UpsertBudget(c.Request.Context(), models.Budget{
		UserID: auth.AccountID(c),
		Month:  month,
		Amount: *data.Amount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{
		Status: "budget saved",
		Data: Budget{
			ID:     budget.ID,
			Month:  budget.Month,
			Amount: ledger.Money(budget.Amount),
		},
	})
}

// @Summary		Get budget status
// @Description	Compares the budget of the month with the expenses in it. Without a budget, the budget is 0.
// @Tags			Budgets
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	BudgetStatus
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/budget-status/{month} [get]
func (co Controller) GetBudgetStatus(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, errMonthInvalid)
		return
	}

	accountID := auth.AccountID(c)
	amount, _, err := models.BudgetFor(c.Request.Context(), accountID, uri.Month)
	if err != nil {
		respondError(c, err)
		return
	}

	expenses, err := models.Expenses(c.Request.Context(), accountID, models.ExpenseFilter{Month: uri.Month})
	if err != nil {
		respondError(c, err)
		return
	}

	report := ledger.NewReport(amount, models.LedgerExpenses(expenses), ledger.ElapsedDays(uri.Month, co.now()))

	c.JSON(http.StatusOK, BudgetStatus{
		Month:       uri.Month,
		Budget:      report.Budget,
		Spent:       report.Spent,
		Remaining:   report.Net,
		Utilisation: report.Utilization,
	})
}
