package root

import (
	"net/http"

	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Docs               string `json:"docs" example:"https://example.com/api/docs/index.html"`                     // Swagger API documentation
	Healthz            string `json:"healthz" example:"https://example.com/api/healthz"`                          // Healthz endpoint
	Version            string `json:"version" example:"https://example.com/api/version"`                          // Endpoint returning the version of the backend
	Metrics            string `json:"metrics" example:"https://example.com/api/metrics"`                          // Endpoint returning Prometheus metrics
	Register           string `json:"register" example:"https://example.com/api/register"`                        // Account registration
	Login              string `json:"login" example:"https://example.com/api/login"`                              // Login, returns an access token
	Me                 string `json:"me" example:"https://example.com/api/me"`                                    // The authenticated account
	Expenses           string `json:"expenses" example:"https://example.com/api/expenses"`                        // Expense collection endpoint
	ExpensesByCategory string `json:"expensesByCategory" example:"https://example.com/api/expenses-by-category"` // Expense totals per category
	TotalExpenses      string `json:"totalExpenses" example:"https://example.com/api/total-expenses"`            // Sum of all expenses
	Budget             string `json:"budget" example:"https://example.com/api/budget"`                            // Monthly budget
	Incomes            string `json:"incomes" example:"https://example.com/api/incomes"`                          // Income collection endpoint
	NetBalance         string `json:"netBalance" example:"https://example.com/api/net-balance"`                   // Net balance and forecast
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	url := c.GetString(string(httputil.ContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:               url + "/docs/index.html",
			Healthz:            url + "/healthz",
			Version:            url + "/version",
			Metrics:            url + "/metrics",
			Register:           url + "/register",
			Login:              url + "/login",
			Me:                 url + "/me",
			Expenses:           url + "/expenses",
			ExpensesByCategory: url + "/expenses-by-category",
			TotalExpenses:      url + "/total-expenses",
			Budget:             url + "/budget",
			Incomes:            url + "/incomes",
			NetBalance:         url + "/net-balance",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
