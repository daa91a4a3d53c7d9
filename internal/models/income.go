package models

import (
	"context"
	"time"

	"github.com/budget-tracker/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is money received by a user.
type Income struct {
	DefaultModel
	UserID uuid.UUID       `json:"-" gorm:"type:uuid;index;not null"`
	User   User            `json:"-"`
	Source string          `json:"source" gorm:"not null" example:"Salary"`
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"2500"`
	Date   time.Time       `json:"date" gorm:"index" example:"2024-05-01T00:00:00Z"`
}

// BeforeSave normalizes the source and the date and rejects invalid incomes.
func (i *Income) BeforeSave(tx *gorm.DB) (err error) {
	i.Source = cleanText(i.Source)

	if i.Source == "" {
		return ErrSourceRequired
	}

	if i.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	i.Date = day(i.Date, tx.NowFunc())
	return nil
}

// Incomes returns the incomes of the user, sorted by date. If month is
// not the zero Month, only incomes in that month are returned.
func Incomes(ctx context.Context, userID uuid.UUID, month types.Month) ([]Income, error) {
	q := DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC, created_at ASC")

	if !month.IsZero() {
		q = q.Where("date >= ? AND date < ?", month.Start(), month.End())
	}

	var incomes []Income
	err := q.Find(&incomes).Error
	return incomes, err
}
