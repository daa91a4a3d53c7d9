package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/budget-tracker/backend/internal/auth"
	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/budget-tracker/backend/internal/ledger"
	"github.com/budget-tracker/backend/internal/models"
	"github.com/budget-tracker/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

func newExpense(e models.Expense) Expense {
	return Expense{
		ID:          e.ID,
		Description: e.Description,
		Category:    e.Category,
		Amount:      ledger.Money(e.Amount),
		Date:        e.Date.UTC().Format(time.DateOnly),
		CreatedAt:   e.CreatedAt,
	}
}

// parseDate parses an optional date from a request body.
// The empty string yields the zero time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	t, err := types.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in the YYYY-MM-DD format", httputil.ErrValidation)
	}

	return t, nil
}

// queryMonth binds the optional month query parameter.
func queryMonth(c *gin.Context) (types.Month, error) {
	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil {
		return types.Month{}, errMonthInvalid
	}

	return query.Month, nil
}

// @Summary		Create expense
// @Description	Records an expense. The date defaults to today.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201		{object}	ExpenseCreateResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		422		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			expense	body		ExpenseCreate	true	"Expense"
// @Router			/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var data ExpenseCreate
	if err := httputil.BindData(c, &data); err != nil {
		respondError(c, err)
		return
	}

	date, err := parseDate(data.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	expense := models.Expense{
		UserID:      auth.AccountID(c),
		Description: data.Description,
		Category:    data.Category,
		Amount:      *data.Amount,
		Date:        date,
	}

	err = models.DB.WithContext(c.Request.Context()).Create(&expense).Error
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ExpenseCreateResponse{Status: "expense saved", ID: expense.ID})
}

// @Summary		List expenses
// @Description	Returns the expenses of the account, ordered by date
// @Tags			Expenses
// @Produce		json
// @Security		BearerAuth
// @Success		200			{object}	ExpenseListResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		401			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			month		query		string	false	"Only expenses in this month, YYYY-MM"
// @Param			category	query		string	false	"Filter by category"
// @Param			match		query		string	false	"Glob pattern for the description, e.g. *grocer*"
// @Router			/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var query ExpenseQueryFilter
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, httputil.ErrInvalidQueryString)
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, query)

	filter := models.ExpenseFilter{
		Match: query.Match,
	}

	if slices.Contains(setFields, "Category") {
		filter.Category = query.Category
	}

	if query.Month != "" {
		month, err := types.ParseMonth(query.Month)
		if err != nil {
			respondError(c, errMonthInvalid)
			return
		}
		filter.Month = month
	}

	expenses, err := models.Expenses(c.Request.Context(), auth.AccountID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		data = append(data, newExpense(e))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: data})
}

// @Summary		Get expense
// @Tags			Expenses
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, err)
		return
	}

	expense, err := models.ExpenseByID(c.Request.Context(), auth.AccountID(c), uri.ID.UUID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: newExpense(expense)})
}

// @Summary		Expenses by category
// @Description	Returns the sum of the expenses per category, ordered by category. Without a month, all expenses are summed.
// @Tags			Reports
// @Produce		json
// @Security		BearerAuth
// @Success		200		{array}		ledger.CategoryTotal
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			month	query		string	false	"Only expenses in this month, YYYY-MM"
// @Router			/expenses-by-category [get]
func (co Controller) GetExpensesByCategory(c *gin.Context) {
	month, err := queryMonth(c)
	if err != nil {
		respondError(c, err)
		return
	}

	expenses, err := models.Expenses(c.Request.Context(), auth.AccountID(c), models.ExpenseFilter{Month: month})
	if err != nil {
		respondError(c, err)
		return
	}

	totals := ledger.SortedTotals(ledger.TotalsByCategory(models.LedgerExpenses(expenses)))
	c.JSON(http.StatusOK, ledger.RoundTotals(totals))
}

// @Summary		Total expenses
// @Description	Returns the sum of all expenses. Without a month, all expenses are summed.
// @Tags			Reports
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	TotalExpensesResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			month	query		string	false	"Only expenses in this month, YYYY-MM"
// @Router			/total-expenses [get]
func (co Controller) GetTotalExpenses(c *gin.Context) {
	month, err := queryMonth(c)
	if err != nil {
		respondError(c, err)
		return
	}

	expenses, err := models.Expenses(c.Request.Context(), auth.AccountID(c), models.ExpenseFilter{Month: month})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TotalExpensesResponse{
		TotalExpenses: ledger.Money(ledger.Sum(models.LedgerExpenses(expenses))),
	})
}
