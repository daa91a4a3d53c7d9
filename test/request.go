package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/budget-tracker/backend/internal/auth"
	"github.com/budget-tracker/backend/internal/config"
	"github.com/budget-tracker/backend/internal/controllers/api"
	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/budget-tracker/backend/internal/models"
	"github.com/budget-tracker/backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Secret is the secret access tokens are signed with in tests.
const Secret = "this-is-a-test-secret-that-is-long-enough"

// Controller returns an API controller backed by the connected database.
func Controller(t *testing.T) api.Controller {
	credentials, err := auth.New(models.AccountStore{}, []byte(Secret), auth.WithCost(bcrypt.MinCost))
	require.Nil(t, err)

	return api.Controller{Credentials: credentials}
}

// Config returns the configuration used for the router in tests.
func Config(t *testing.T) *config.Config {
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		assert.FailNow(t, "environment variable API_URL must be set")
	}

	return &config.Config{
		APIURL:         apiURL,
		GinMode:        "test",
		RequestTimeout: 10 * time.Second,
		JWTSecret:      Secret,
		BcryptCost:     bcrypt.MinCost,
	}
}

// Request is a helper method to simplify making a HTTP request for tests.
func Request(co api.Controller, t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var byteBuffer *bytes.Buffer

	// If the body is a string, convert it to bytes
	switch reflect.TypeOf(body).Kind() {
	case reflect.String:
		byteBuffer = bytes.NewBufferString(body.(string))
	case reflect.Struct, reflect.Map, reflect.Slice:
		byteStr, err := json.Marshal(body)
		if err != nil {
			assert.Fail(t, "Request body could not be marshalled from struct input", err)
		}
		byteBuffer = bytes.NewBuffer(byteStr)
	default:
		byteBuffer = body.(*bytes.Buffer)
	}

	r, teardown, err := router.Config(Config(t))
	defer teardown()

	if err != nil {
		assert.FailNow(t, "Router could not be initialized", err)
	}
	router.AttachRoutes(co, r.Group("/"))

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, reqURL, byteBuffer)
	req.Header.Set("Content-Type", "application/json")

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// Authorization registers an account and logs in with it. It returns
// the headers to authenticate requests with.
func Authorization(co api.Controller, t *testing.T, email string) map[string]string {
	credentials := map[string]string{"email": email, "password": "correct horse battery staple"}

	r := Request(co, t, http.MethodPost, "http://example.com/register", credentials)
	AssertHTTPStatus(t, &r, http.StatusCreated)

	r = Request(co, t, http.MethodPost, "http://example.com/login", credentials)
	AssertHTTPStatus(t, &r, http.StatusOK)

	var token api.TokenResponse
	DecodeResponse(t, &r, &token)

	return map[string]string{"Authorization": fmt.Sprintf("Bearer %s", token.AccessToken)}
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// DecodeError returns the error message of an error response.
func DecodeError(t *testing.T, s []byte) string {
	var r httputil.HTTPError
	if err := json.Unmarshal(s, &r); err != nil {
		assert.FailNow(t, "Could not decode error response", err)
	}

	return r.Error
}

// AssertHTTPStatus verifies that the HTTP response status is correct
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
