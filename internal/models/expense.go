package models

import (
	"context"
	"strings"
	"time"

	"github.com/budget-tracker/backend/internal/ledger"
	"github.com/budget-tracker/backend/internal/types"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is money spent by a user.
type Expense struct {
	DefaultModel
	UserID      uuid.UUID       `json:"-" gorm:"type:uuid;index;not null"`
	User        User            `json:"-"`
	Description string          `json:"description" example:"Groceries for the week"`
	Category    string          `json:"category" gorm:"index;not null" example:"food"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"42.5"`
	Date        time.Time       `json:"date" gorm:"index" example:"2024-05-03T00:00:00Z"`
}

// BeforeSave normalizes the text fields and the date and rejects
// invalid expenses.
func (e *Expense) BeforeSave(tx *gorm.DB) (err error) {
	e.Description = cleanText(e.Description)
	e.Category = cleanText(e.Category)

	if e.Category == "" {
		return ErrCategoryRequired
	}

	if e.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	e.Date = day(e.Date, tx.NowFunc())
	return nil
}

// Ledger returns the fields of the expense the aggregations need.
func (e Expense) Ledger() ledger.Expense {
	return ledger.Expense{
		Category: e.Category,
		Amount:   e.Amount,
		Date:     e.Date,
	}
}

// ExpenseFilter restricts the expenses returned by Expenses.
// Zero values do not filter.
type ExpenseFilter struct {
	Month    types.Month // Only expenses in this month
	Category string      // Only expenses with exactly this category
	Match    string      // Glob pattern the description must match, case insensitive
}

// Expenses returns the expenses of the user matching the filter,
// sorted by date.
func Expenses(ctx context.Context, userID uuid.UUID, filter ExpenseFilter) ([]Expense, error) {
	q := DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC, created_at ASC")

	if !filter.Month.IsZero() {
		q = q.Where("date >= ? AND date < ?", filter.Month.Start(), filter.Month.End())
	}

	if filter.Category != "" {
		q = q.Where("category = ?", cleanText(filter.Category))
	}

	var expenses []Expense
	err := q.Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	if filter.Match == "" {
		return expenses, nil
	}

	pattern := strings.ToLower(cleanText(filter.Match))
	matching := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if glob.Glob(pattern, strings.ToLower(e.Description)) {
			matching = append(matching, e)
		}
	}

	return matching, nil
}

// ExpenseByID returns a single expense of the user.
func ExpenseByID(ctx context.Context, userID, id uuid.UUID) (Expense, error) {
	var expense Expense
	err := DB.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&expense).Error

	return expense, err
}

// LedgerExpenses converts expenses for the ledger aggregations.
func LedgerExpenses(expenses []Expense) []ledger.Expense {
	result := make([]ledger.Expense, 0, len(expenses))
	for _, e := range expenses {
		result = append(result, e.Ledger())
	}
	return result
}

// day returns midnight UTC of the day t falls on. For zero t, the day of now is used.
func day(t, now time.Time) time.Time {
	if t.IsZero() {
		t = now
	}

	year, month, d := t.UTC().Date()
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
