package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/budget-tracker/backend/internal/controllers/api"
	"github.com/budget-tracker/backend/internal/ledger"
	"github.com/budget-tracker/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestExpense(headers map[string]string, expense map[string]any) uuid.UUID {
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/expenses", expense, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response api.ExpenseCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Equal("expense saved", response.Status)

	return response.ID
}

func (suite *TestSuiteStandard) TestExpenseCreateGet() {
	headers := suite.login("jane@example.com")

	id := suite.createTestExpense(headers, map[string]any{
		"description": " Groceries for the week ",
		"category":    "food",
		"amount":      12.5,
		"date":        "2024-05-03",
	})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/expenses/%s", id), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response api.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(id, response.Data.ID)
	suite.Assert().Equal("Groceries for the week", response.Data.Description)
	suite.Assert().Equal("food", response.Data.Category)
	suite.Assert().Equal("2024-05-03", response.Data.Date)
	suite.Assert().True(decimal.NewFromFloat(12.5).Equal(response.Data.Amount), "Amount is %s", response.Data.Amount)

	// Amounts are JSON numbers
	suite.Assert().Contains(r.Body.String(), `"amount":12.5`)
}

func (suite *TestSuiteStandard) TestExpenseDefaultDate() {
	headers := suite.login("jane@example.com")
	id := suite.createTestExpense(headers, map[string]any{"category": "food", "amount": 1})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/expenses/%s", id), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response api.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data.Date, len("2006-01-02"))
	suite.Assert().Equal("", response.Data.Description)
}

func (suite *TestSuiteStandard) TestExpenseCreateInvalid() {
	headers := suite.login("jane@example.com")

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty body", "", http.StatusBadRequest},
		{"Broken JSON", `{"category": "food"`, http.StatusBadRequest},
		{"No category", map[string]any{"amount": 10}, http.StatusUnprocessableEntity},
		{"Blank category", map[string]any{"category": "   ", "amount": 10}, http.StatusUnprocessableEntity},
		{"No amount", map[string]any{"category": "food"}, http.StatusUnprocessableEntity},
		{"Negative amount", map[string]any{"category": "food", "amount": -5}, http.StatusUnprocessableEntity},
		{"Amount not a number", map[string]any{"category": "food", "amount": "ten"}, http.StatusUnprocessableEntity},
		{"Invalid date", map[string]any{"category": "food", "amount": 10, "date": "03.05.2024"}, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPost, "http://example.com/expenses", tt.body, headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseGetErrors() {
	jane := suite.login("jane@example.com")
	john := suite.login("john@example.com")

	id := suite.createTestExpense(jane, map[string]any{"category": "food", "amount": 10})

	tests := []struct {
		name    string
		path    string
		headers map[string]string
		status  int
	}{
		{"Expense of other account", id.String(), john, http.StatusNotFound},
		{"Unknown ID", uuid.NewString(), jane, http.StatusNotFound},
		{"Invalid ID", "not-a-uuid", jane, http.StatusBadRequest},
		{"Nil ID", uuid.Nil.String(), jane, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, "http://example.com/expenses/"+tt.path, "", tt.headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/expenses/"+uuid.NewString(), "", jane)
	suite.Assert().Equal("there is no expense matching your query", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestExpensesList() {
	jane := suite.login("jane@example.com")
	john := suite.login("john@example.com")

	suite.createTestExpense(jane, map[string]any{"description": "Weekly groceries", "category": "food", "amount": 30, "date": "2024-05-03"})
	suite.createTestExpense(jane, map[string]any{"description": "Petrol", "category": "fuel", "amount": 50, "date": "2024-05-01"})
	suite.createTestExpense(jane, map[string]any{"description": "Groceries", "category": "food", "amount": 20, "date": "2024-04-28"})
	suite.createTestExpense(john, map[string]any{"description": "Groceries", "category": "food", "amount": 99, "date": "2024-05-02"})

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"All", "", []string{"Groceries", "Petrol", "Weekly groceries"}},
		{"Month", "month=2024-05", []string{"Petrol", "Weekly groceries"}},
		{"Category", "category=food", []string{"Groceries", "Weekly groceries"}},
		{"Month and category", "month=2024-05&category=food", []string{"Weekly groceries"}},
		{"Match", "match=*grocer*", []string{"Groceries", "Weekly groceries"}},
		{"Match prefix", "match=groc*", []string{"Groceries"}},
		{"No match", "match=rent", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, "http://example.com/expenses?"+tt.query, "", jane)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response api.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)

			descriptions := make([]string, 0, len(response.Data))
			for _, e := range response.Data {
				descriptions = append(descriptions, e.Description)
			}
			suite.Assert().Equal(tt.expected, descriptions)
		})
	}

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/expenses?month=May", "", jane)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpensesByCategory() {
	jane := suite.login("jane@example.com")
	john := suite.login("john@example.com")

	suite.createTestExpense(jane, map[string]any{"category": "food", "amount": 10, "date": "2024-05-03"})
	suite.createTestExpense(jane, map[string]any{"category": "fuel", "amount": 7, "date": "2024-05-04"})
	suite.createTestExpense(jane, map[string]any{"category": "food", "amount": 5.555, "date": "2024-05-05"})
	suite.createTestExpense(jane, map[string]any{"category": "rent", "amount": 800, "date": "2024-04-01"})
	suite.createTestExpense(john, map[string]any{"category": "food", "amount": 1000, "date": "2024-05-03"})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/expenses-by-category?month=2024-05", "", jane)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var totals []ledger.CategoryTotal
	test.DecodeResponse(suite.T(), &r, &totals)

	suite.Require().Len(totals, 2)
	suite.Assert().Equal("food", totals[0].Category)
	suite.Assert().True(decimal.RequireFromString("15.56").Equal(totals[0].Total), "Total is %s", totals[0].Total)
	suite.Assert().Equal("fuel", totals[1].Category)
	suite.Assert().True(decimal.NewFromInt(7).Equal(totals[1].Total))

	// Without month, all expenses are included
	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/expenses-by-category", "", jane)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &totals)
	suite.Assert().Len(totals, 3)
}

func (suite *TestSuiteStandard) TestExpensesByCategoryEmpty() {
	jane := suite.login("jane@example.com")

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/expenses-by-category", "", jane)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`[]`, r.Body.String())
}

func (suite *TestSuiteStandard) TestTotalExpenses() {
	jane := suite.login("jane@example.com")

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/total-expenses", "", jane)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"total_expenses": 0}`, r.Body.String())

	suite.createTestExpense(jane, map[string]any{"category": "food", "amount": 10.1, "date": "2024-05-03"})
	suite.createTestExpense(jane, map[string]any{"category": "fuel", "amount": 20.2, "date": "2024-04-03"})

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/total-expenses", "", jane)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"total_expenses": 30.3}`, r.Body.String())

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/total-expenses?month=2024-04", "", jane)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"total_expenses": 20.2}`, r.Body.String())
}
