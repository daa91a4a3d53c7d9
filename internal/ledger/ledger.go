// Package ledger aggregates expense records into the figures shown on
// the reports: totals per category, net balance against a budget,
// budget utilization and the number of days until the budget runs out.
//
// All functions are pure. Sums are accumulated unrounded, rounding only
// happens in NewReport.
package ledger

import (
	"strings"
	"time"

	"github.com/budget-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var hundred = decimal.NewFromInt(100)

// Expense is the part of an expense record the aggregations need.
type Expense struct {
	Category string
	Amount   decimal.Decimal
	Date     time.Time
}

// CategoryTotal is the sum of all expenses with the same category label.
type CategoryTotal struct {
	Category string          `json:"category" example:"food"` // Category label
	Total    decimal.Decimal `json:"total" example:"15.5"`    // Sum of the amounts of all expenses in the category
}

// Balance is the result of comparing a budget with the expenses booked against it.
type Balance struct {
	Budget      decimal.Decimal
	Spent       decimal.Decimal
	Net         decimal.Decimal
	Utilization decimal.Decimal // Percentage of the budget that has been spent
}

// Forecast estimates how long a budget lasts at the current spending rate.
type Forecast struct {
	AverageDailySpend decimal.Decimal
	Days              *int64 // nil if nothing has been spent yet
}

// Sum returns the sum of all expense amounts.
func Sum(expenses []Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(e.Amount)
	}

	return sum
}

// TotalsByCategory groups the expenses by category and sums the amounts
// within each group. An empty input yields an empty map.
func TotalsByCategory(expenses []Expense) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}

	return totals
}

// SortedTotals converts the totals map into a slice ordered by category label.
func SortedTotals(totals map[string]decimal.Decimal) []CategoryTotal {
	result := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		result = append(result, CategoryTotal{Category: category, Total: total})
	}

	slices.SortFunc(result, func(a, b CategoryTotal) int {
		return strings.Compare(a.Category, b.Category)
	})

	return result
}

// NetBalance subtracts the expenses from the budget.
//
// Utilization is the spent share of the budget in percent. It is zero
// for budgets that are zero or negative.
func NetBalance(budget decimal.Decimal, expenses []Expense) Balance {
	spent := Sum(expenses)

	utilization := decimal.Zero
	if budget.IsPositive() {
		utilization = spent.Div(budget).Mul(hundred)
	}

	return Balance{
		Budget:      budget,
		Spent:       spent,
		Net:         budget.Sub(spent),
		Utilization: utilization,
	}
}

// ForecastDays calculates the average daily spending over the elapsed
// days of the period and how many days the budget covers at that rate.
//
// elapsedDays is clamped to at least 1. Without any spending there is
// no forecast and Days is nil.
func ForecastDays(budget decimal.Decimal, expenses []Expense, elapsedDays int) Forecast {
	if elapsedDays < 1 {
		elapsedDays = 1
	}

	spent := Sum(expenses)
	days := decimal.NewFromInt(int64(elapsedDays))
	average := spent.Div(days)

	if !average.IsPositive() {
		return Forecast{AverageDailySpend: decimal.Zero}
	}

	// budget / (spent / days) is evaluated as budget * days / spent to
	// avoid dividing by an already truncated average
	forecast := budget.Mul(days).Div(spent).Floor().IntPart()

	return Forecast{
		AverageDailySpend: average,
		Days:              &forecast,
	}
}

// ElapsedDays returns how many days of the month have passed at now.
//
// For the current month this is the day of the month, for past months
// the length of the month. Future months count as one day.
func ElapsedDays(month types.Month, now time.Time) int {
	now = now.In(time.UTC)

	if month.Contains(now) {
		return now.Day()
	}

	if month.End().After(now) {
		return 1
	}

	return month.Days()
}
