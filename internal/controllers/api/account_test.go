package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/budget-tracker/backend/internal/controllers/api"
	"github.com/budget-tracker/backend/test"
)

func (suite *TestSuiteStandard) TestRegister() {
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/register", map[string]string{
		"email":    "Jane@Example.com",
		"password": "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response api.AccountResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("account registered", response.Status)
	suite.Assert().Equal("jane@example.com", response.Data.Email)
	suite.Assert().NotEmpty(response.Data.ID)
	suite.Assert().NotContains(r.Body.String(), "correct horse", "Password must never be returned")
}

func (suite *TestSuiteStandard) TestRegisterDuplicate() {
	credentials := map[string]string{"email": "jane@example.com", "password": "correct horse battery staple"}

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/register", credentials)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	credentials["email"] = "JANE@example.com"
	r = test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/register", credentials)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("an account with this email address already exists", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestRegisterInvalid() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty body", "", http.StatusBadRequest},
		{"Broken JSON", `{"email": "jane@example.com",`, http.StatusBadRequest},
		{"No email", map[string]string{"password": "correct horse battery staple"}, http.StatusUnprocessableEntity},
		{"Invalid email", map[string]string{"email": "jane", "password": "correct horse battery staple"}, http.StatusUnprocessableEntity},
		{"No password", map[string]string{"email": "jane@example.com"}, http.StatusUnprocessableEntity},
		{"Short password", map[string]string{"email": "jane@example.com", "password": "short"}, http.StatusUnprocessableEntity},
		{"Wrong type", `{"email": 42, "password": "correct horse battery staple"}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPost, "http://example.com/register", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
			suite.Assert().NotEmpty(test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestLogin() {
	credentials := map[string]string{"email": "jane@example.com", "password": "correct horse battery staple"}

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/register", credentials)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/login", credentials)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var token api.TokenResponse
	test.DecodeResponse(suite.T(), &r, &token)

	suite.Assert().NotEmpty(token.AccessToken)
	suite.Assert().Equal("bearer", token.TokenType)
	suite.Assert().WithinDuration(time.Now().Add(time.Hour), token.ExpiresAt, time.Minute)
}

func (suite *TestSuiteStandard) TestLoginInvalidCredentials() {
	credentials := map[string]string{"email": "jane@example.com", "password": "correct horse battery staple"}

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/register", credentials)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	tests := []struct {
		name        string
		credentials map[string]string
	}{
		{"Wrong password", map[string]string{"email": "jane@example.com", "password": "incorrect horse battery staple"}},
		{"Unknown account", map[string]string{"email": "john@example.com", "password": "correct horse battery staple"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPost, "http://example.com/login", tt.credentials)
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
			suite.Assert().Equal("the email address or password is incorrect", test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestMe() {
	headers := suite.login("jane@example.com")

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/me", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response api.AccountResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("jane@example.com", response.Data.Email)
}

func (suite *TestSuiteStandard) TestUnauthorized() {
	for _, path := range []string{"/me", "/expenses", "/expenses-by-category", "/total-expenses", "/budget-status/2024-05", "/incomes", "/net-balance"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, "http://example.com"+path, "")
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
			suite.Assert().Equal(`Bearer realm="budget-tracker"`, r.Header().Get("WWW-Authenticate"))
		})
	}

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/expenses", map[string]any{"category": "food", "amount": 1}, map[string]string{"Authorization": "Bearer not-a-token"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	headers := suite.login("jane@example.com")
	suite.CloseDB()

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/expenses", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Equal("an error occurred on the server during your request", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/login", map[string]string{"email": "jane@example.com", "password": "correct horse battery staple"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Equal("an error occurred on the server during your request", test.DecodeError(suite.T(), r.Body.Bytes()))
}
