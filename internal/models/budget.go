package models

import (
	"context"
	"errors"

	"github.com/budget-tracker/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Budget is the amount a user plans to spend in a month.
//
// There is at most one Budget per user and month.
type Budget struct {
	DefaultModel
	UserID uuid.UUID       `json:"-" gorm:"type:uuid;not null;uniqueIndex:idx_budget_user_month"`
	User   User            `json:"-"`
	Month  types.Month     `json:"month" gorm:"not null;uniqueIndex:idx_budget_user_month" example:"2024-05"`
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"1200"`
}

// BeforeSave rejects invalid budgets.
func (b *Budget) BeforeSave(_ *gorm.DB) (err error) {
	if b.Month.IsZero() {
		return ErrMonthRequired
	}

	if b.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	b.Month = types.MonthOf(b.Month.Start())
	return nil
}

// UpsertBudget sets the budget of the user for the month. An existing
// budget for the same month is overwritten in the same statement.
func UpsertBudget(ctx context.Context, budget Budget) (Budget, error) {
	err := DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(&budget).Error
	if err != nil {
		return Budget{}, err
	}

	// The ID of the budget is only correct if it was newly created
	var stored Budget
	err = DB.WithContext(ctx).
		Where("user_id = ? AND month = ?", budget.UserID, budget.Month).
		First(&stored).Error

	return stored, err
}

// BudgetFor returns the budget amount of the user for the month.
// ok is false if no budget has been set.
func BudgetFor(ctx context.Context, userID uuid.UUID, month types.Month) (amount decimal.Decimal, ok bool, err error) {
	var budget Budget
	err = DB.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		First(&budget).Error

	if errors.Is(err, ErrResourceNotFound) {
		return decimal.Zero, false, nil
	} else if err != nil {
		return decimal.Zero, false, err
	}

	return budget.Amount, true, nil
}
