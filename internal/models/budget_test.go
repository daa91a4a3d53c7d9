package models_test

import (
	"context"
	"sync"
	"time"

	"github.com/budget-tracker/backend/internal/models"
	"github.com/budget-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestUpsertBudget() {
	user := suite.createTestUser("")
	month := types.NewMonth(2024, time.May)

	created, err := models.UpsertBudget(context.Background(), models.Budget{UserID: user.ID, Month: month, Amount: decimal.NewFromInt(1000)})
	suite.Require().Nil(err)

	updated, err := models.UpsertBudget(context.Background(), models.Budget{UserID: user.ID, Month: month, Amount: decimal.NewFromInt(1200)})
	suite.Require().Nil(err)

	suite.Assert().Equal(created.ID, updated.ID, "The existing budget must be updated")
	suite.Assert().True(decimal.NewFromInt(1200).Equal(updated.Amount))

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Budget{}).Where("user_id = ?", user.ID).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestUpsertBudgetNormalizesMonth() {
	user := suite.createTestUser("")

	_, err := models.UpsertBudget(context.Background(), models.Budget{UserID: user.ID, Month: types.MonthOf(time.Date(2024, time.May, 17, 13, 0, 0, 0, time.UTC)), Amount: decimal.NewFromInt(1)})
	suite.Require().Nil(err)

	amount, ok, err := models.BudgetFor(context.Background(), user.ID, types.NewMonth(2024, time.May))
	suite.Require().Nil(err)
	suite.Assert().True(ok)
	suite.Assert().True(decimal.NewFromInt(1).Equal(amount))
}

func (suite *TestSuiteStandard) TestUpsertBudgetConcurrent() {
	user := suite.createTestUser("")
	month := types.NewMonth(2024, time.May)

	var wg sync.WaitGroup
	for i := 1; i <= 10; i++ {
		wg.Add(1)
		go func(amount int64) {
			defer wg.Done()
			_, err := models.UpsertBudget(context.Background(), models.Budget{UserID: user.ID, Month: month, Amount: decimal.NewFromInt(amount)})
			suite.Assert().Nil(err)
		}(int64(i))
	}
	wg.Wait()

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Budget{}).Where("user_id = ?", user.ID).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestUpsertBudgetInvalid() {
	user := suite.createTestUser("")

	_, err := models.UpsertBudget(context.Background(), models.Budget{UserID: user.ID, Month: types.NewMonth(2024, time.May), Amount: decimal.NewFromInt(-1)})
	suite.Assert().ErrorIs(err, models.ErrNegativeAmount)

	_, err = models.UpsertBudget(context.Background(), models.Budget{UserID: user.ID, Amount: decimal.NewFromInt(1)})
	suite.Assert().ErrorIs(err, models.ErrMonthRequired)
}

func (suite *TestSuiteStandard) TestBudgetForPerUser() {
	jane := suite.createTestUser("")
	john := suite.createTestUser("")
	month := types.NewMonth(2024, time.May)

	_, err := models.UpsertBudget(context.Background(), models.Budget{UserID: jane.ID, Month: month, Amount: decimal.NewFromInt(800)})
	suite.Require().Nil(err)

	amount, ok, err := models.BudgetFor(context.Background(), john.ID, month)
	suite.Require().Nil(err)
	suite.Assert().False(ok)
	suite.Assert().True(amount.IsZero())

	_, ok, err = models.BudgetFor(context.Background(), jane.ID, month.AddDate(0, 1))
	suite.Require().Nil(err)
	suite.Assert().False(ok)
}
