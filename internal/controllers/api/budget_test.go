package api_test

import (
	"net/http"
	"testing"

	"github.com/budget-tracker/backend/internal/controllers/api"
	"github.com/budget-tracker/backend/internal/models"
	"github.com/budget-tracker/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) setBudget(headers map[string]string, budget map[string]any) api.Budget {
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/budget", budget, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response api.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Equal("budget saved", response.Status)

	return response.Data
}

func (suite *TestSuiteStandard) TestBudgetUpsert() {
	jane := suite.login("jane@example.com")

	first := suite.setBudget(jane, map[string]any{"month": "2024-05", "amount": 1000})
	suite.Assert().Equal("2024-05", first.Month.String())
	suite.Assert().True(decimal.NewFromInt(1000).Equal(first.Amount))

	second := suite.setBudget(jane, map[string]any{"month": "2024-05", "amount": 1200.5})
	suite.Assert().Equal(first.ID, second.ID, "Setting the budget again must update the existing one")
	suite.Assert().True(decimal.NewFromFloat(1200.5).Equal(second.Amount))

	var count int64
	models.DB.Model(&models.Budget{}).Count(&count)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestBudgetDefaultMonth() {
	jane := suite.login("jane@example.com")

	budget := suite.setBudget(jane, map[string]any{"amount": 500})
	suite.Assert().Equal("2024-05", budget.Month.String())

	// A full date is reduced to its month
	budget = suite.setBudget(jane, map[string]any{"month": "2024-06-17", "amount": 500})
	suite.Assert().Equal("2024-06", budget.Month.String())
}

func (suite *TestSuiteStandard) TestBudgetPerAccount() {
	jane := suite.login("jane@example.com")
	john := suite.login("john@example.com")

	suite.setBudget(jane, map[string]any{"month": "2024-05", "amount": 1000})
	suite.setBudget(john, map[string]any{"month": "2024-05", "amount": 10})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/budget-status/2024-05", "", jane)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var status api.BudgetStatus
	test.DecodeResponse(suite.T(), &r, &status)
	suite.Assert().True(decimal.NewFromInt(1000).Equal(status.Budget), "Budget is %s", status.Budget)
}

func (suite *TestSuiteStandard) TestBudgetInvalid() {
	jane := suite.login("jane@example.com")

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty body", "", http.StatusBadRequest},
		{"No amount", map[string]any{"month": "2024-05"}, http.StatusUnprocessableEntity},
		{"Negative amount", map[string]any{"month": "2024-05", "amount": -1}, http.StatusUnprocessableEntity},
		{"Invalid month", map[string]any{"month": "May 2024", "amount": 1}, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPost, "http://example.com/budget", tt.body, jane)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetStatus() {
	jane := suite.login("jane@example.com")

	suite.setBudget(jane, map[string]any{"month": "2024-05", "amount": 1200})
	suite.createTestExpense(jane, map[string]any{"category": "food", "amount": 100, "date": "2024-05-02"})
	suite.createTestExpense(jane, map[string]any{"category": "fuel", "amount": 200, "date": "2024-05-10"})
	suite.createTestExpense(jane, map[string]any{"category": "fuel", "amount": 999, "date": "2024-06-01"})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/budget-status/2024-05", "", jane)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{
		"month": "2024-05",
		"budget": 1200,
		"spent": 300,
		"remaining": 900,
		"budget_utilisation": 25
	}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestBudgetStatusWithoutBudget() {
	jane := suite.login("jane@example.com")
	suite.createTestExpense(jane, map[string]any{"category": "food", "amount": 50, "date": "2024-03-02"})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/budget-status/2024-03", "", jane)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{
		"month": "2024-03",
		"budget": 0,
		"spent": 50,
		"remaining": -50,
		"budget_utilisation": 0
	}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestBudgetStatusInvalidMonth() {
	jane := suite.login("jane@example.com")

	for _, month := range []string{"2024-13", "May", "2024"} {
		suite.T().Run(month, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, "http://example.com/budget-status/"+month, "", jane)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			suite.Assert().Equal("the month must be in the YYYY-MM format", test.DecodeError(t, r.Body.Bytes()))
		})
	}
}
