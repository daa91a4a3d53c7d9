package api_test

import (
	"net/http"
	"testing"

	"github.com/budget-tracker/backend/test"
)

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/register", "OPTIONS, POST"},
		{"/login", "OPTIONS, POST"},
		{"/me", "OPTIONS, GET"},
		{"/expenses", "OPTIONS, GET, POST"},
		{"/expenses/65392deb-5e92-4268-b114-297faad6cdce", "OPTIONS, GET"},
		{"/expenses-by-category", "OPTIONS, GET"},
		{"/total-expenses", "OPTIONS, GET"},
		{"/budget", "OPTIONS, POST"},
		{"/budget-status/2024-05", "OPTIONS, GET"},
		{"/incomes", "OPTIONS, GET, POST"},
		{"/net-balance", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			// No authorization needed
			r := test.Request(suite.controller, t, http.MethodOptions, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			suite.Assert().Equal(tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	r := test.Request(suite.controller, suite.T(), http.MethodDelete, "http://example.com/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)
}
