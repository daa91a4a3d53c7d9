package ledger

import (
	"github.com/shopspring/decimal"
)

// Places to which values are rounded in reports.
const (
	MoneyPlaces       int32 = 2
	UtilizationPlaces int32 = 1
)

// Report is the rounded projection of a Balance and a Forecast
// for one period.
type Report struct {
	Budget            decimal.Decimal
	Spent             decimal.Decimal
	Net               decimal.Decimal
	Utilization       decimal.Decimal
	AverageDailySpend decimal.Decimal
	ForecastDays      *int64
}

// NewReport computes balance and forecast for the period and rounds them.
func NewReport(budget decimal.Decimal, expenses []Expense, elapsedDays int) Report {
	balance := NetBalance(budget, expenses)
	forecast := ForecastDays(budget, expenses, elapsedDays)

	return Report{
		Budget:            Money(balance.Budget),
		Spent:             Money(balance.Spent),
		Net:               Money(balance.Net),
		Utilization:       balance.Utilization.Round(UtilizationPlaces),
		AverageDailySpend: Money(forecast.AverageDailySpend),
		ForecastDays:      forecast.Days,
	}
}

// Money rounds a monetary value for output.
func Money(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// RoundTotals rounds the totals of the categories for output.
func RoundTotals(totals []CategoryTotal) []CategoryTotal {
	rounded := make([]CategoryTotal, 0, len(totals))
	for _, t := range totals {
		rounded = append(rounded, CategoryTotal{Category: t.Category, Total: Money(t.Total)})
	}

	return rounded
}
