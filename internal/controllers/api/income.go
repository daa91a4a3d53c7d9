package api

import (
	"net/http"
	"time"

	"github.com/budget-tracker/backend/internal/auth"
	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/budget-tracker/backend/internal/ledger"
	"github.com/budget-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func newIncome(i models.Income) Income {
	return Income{
		ID:     i.ID,
		Source: i.Source,
		Amount: ledger.Money(i.Amount),
		Date:   i.Date.UTC().Format(time.DateOnly),
	}
}

// @Summary		Create income
// @Description	Records an income. The date defaults to today.
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201		{object}	IncomeResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		422		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			income	body		IncomeCreate	true	"Income"
// @Router			/incomes [post]
func (co Controller) CreateIncome(c *gin.Context) {
	var data IncomeCreate
	if err := httputil.BindData(c, &data); err != nil {
		respondError(c, err)
		return
	}

	date, err := parseDate(data.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	income := models.Income{
		UserID: auth.AccountID(c),
		Source: data.Source,
		Amount: *data.Amount,
		Date:   date,
	}

	err = models.DB.WithContext(c.Request.Context()).Create(&income).Error
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, IncomeResponse{Status: "income saved", Data: newIncome(income)})
}

// @Summary		List incomes
// @Description	Returns the incomes of the account, ordered by date
// @Tags			Incomes
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	IncomeListResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			month	query		string	false	"Only incomes in this month, YYYY-MM"
// @Router			/incomes [get]
func (co Controller) GetIncomes(c *gin.Context) {
	month, err := queryMonth(c)
	if err != nil {
		respondError(c, err)
		return
	}

	incomes, err := models.Incomes(c.Request.Context(), auth.AccountID(c), month)
	if err != nil {
		respondError(c, err)
		return
	}

	data := make([]Income, 0, len(incomes))
	for _, i := range incomes {
		data = append(data, newIncome(i))
	}

	c.JSON(http.StatusOK, IncomeListResponse{Data: data})
}
