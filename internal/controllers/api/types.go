package api

import (
	"time"

	"github.com/budget-tracker/backend/internal/types"
	bt_uuid "github.com/budget-tracker/backend/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type URIID struct {
	ID bt_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIMonth struct {
	Month types.Month `uri:"month" swaggertype:"string" example:"2024-05"` // Year and month in YYYY-MM format
}

type QueryMonth struct {
	Month types.Month `form:"month" swaggertype:"string" example:"2024-05"` // Year and month in YYYY-MM format
}

// Status is returned by endpoints that only confirm an action.
type Status struct {
	Status string `json:"status" example:"expense saved"`
}

type Account struct {
	ID    uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the account
	Email string    `json:"email" example:"jane@example.com"`                  // Email address of the account
}

type AccountResponse struct {
	Status string  `json:"status,omitempty" example:"account registered"` // Confirmation message
	Data   Account `json:"data"`                                          // The account
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"` // Email address, used to log in
	Password string `json:"password" binding:"required" example:"correct horse battery staple"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse battery staple"`
}

type TokenResponse struct {
	AccessToken string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // Signed access token
	TokenType   string    `json:"token_type" example:"bearer"`                                    // Always "bearer"
	ExpiresAt   time.Time `json:"expires_at" example:"2024-05-03T13:37:00Z"`                      // Time after which the token is rejected
}

type ExpenseCreate struct {
	Description string           `json:"description" example:"Groceries for the week"`
	Category    string           `json:"category" binding:"required" example:"food"`
	Amount      *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"42.5"`
	Date        string           `json:"date" example:"2024-05-03"` // Date of the expense, YYYY-MM-DD or RFC3339. Defaults to today.
}

type Expense struct {
	ID          uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Description string          `json:"description" example:"Groceries for the week"`
	Category    string          `json:"category" example:"food"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" example:"42.5"`
	Date        string          `json:"date" example:"2024-05-03"`
	CreatedAt   time.Time       `json:"createdAt" example:"2024-05-03T19:28:44.491514Z"`
}

type ExpenseCreateResponse struct {
	Status string    `json:"status" example:"expense saved"`
	ID     uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the new expense
}

type ExpenseResponse struct {
	Data Expense `json:"data"`
}

type ExpenseListResponse struct {
	Data []Expense `json:"data"`
}

type ExpenseQueryFilter struct {
	Month    string `form:"month" filterField:"false" example:"2024-05"`   // Only expenses in this month
	Category string `form:"category" example:"food"`                     // Only expenses with this category
	Match    string `form:"match" filterField:"false" example:"*grocer*"` // Glob pattern for the description
}

type TotalExpensesResponse struct {
	TotalExpenses decimal.Decimal `json:"total_expenses" swaggertype:"number" example:"1234.56"`
}

type BudgetCreate struct {
	Month  types.Month      `json:"month" swaggertype:"string" example:"2024-05"` // Defaults to the current month
	Amount *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"1200"`
}

type BudgetResponse struct {
	Status string `json:"status" example:"budget saved"`
	Data   Budget `json:"data"`
}

type Budget struct {
	ID     uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Month  types.Month     `json:"month" swaggertype:"string" example:"2024-05"`
	Amount decimal.Decimal `json:"amount" swaggertype:"number" example:"1200"`
}

type BudgetStatus struct {
	Month       types.Month     `json:"month" swaggertype:"string" example:"2024-05"`
	Budget      decimal.Decimal `json:"budget" swaggertype:"number" example:"1200"`
	Spent       decimal.Decimal `json:"spent" swaggertype:"number" example:"300"`
	Remaining   decimal.Decimal `json:"remaining" swaggertype:"number" example:"900"`
	Utilisation decimal.Decimal `json:"budget_utilisation" swaggertype:"number" example:"25"` // Spent share of the budget in percent
}

type IncomeCreate struct {
	Source string           `json:"source" binding:"required" example:"Salary"`
	Amount *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"2500"`
	Date   string           `json:"date" example:"2024-05-01"` // Date of the income, YYYY-MM-DD or RFC3339. Defaults to today.
}

type Income struct {
	ID     uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Source string          `json:"source" example:"Salary"`
	Amount decimal.Decimal `json:"amount" swaggertype:"number" example:"2500"`
	Date   string          `json:"date" example:"2024-05-01"`
}

type IncomeResponse struct {
	Status string `json:"status" example:"income saved"`
	Data   Income `json:"data"`
}

type IncomeListResponse struct {
	Data []Income `json:"data"`
}

type NetBalance struct {
	Month             types.Month     `json:"month" swaggertype:"string" example:"2024-05"`
	TotalIncome       decimal.Decimal `json:"total_income" swaggertype:"number" example:"1200"` // The budget of the month
	TotalExpenses     decimal.Decimal `json:"total_expenses" swaggertype:"number" example:"300"`
	NetBalance        decimal.Decimal `json:"net_balance" swaggertype:"number" example:"900"`
	Utilisation       decimal.Decimal `json:"budget_utilisation" swaggertype:"number" example:"25"`
	AverageDailySpend decimal.Decimal `json:"average_daily_spend" swaggertype:"number" example:"20"`
	ForecastDays      *int64          `json:"forecast_days" example:"60"` // Days the budget lasts at the average daily spend. null without expenses.
}
