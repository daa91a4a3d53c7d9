package httputil

import "errors"

var (
	ErrInvalidBody        = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty   = errors.New("the request body must not be empty")
	ErrInvalidQueryString = errors.New("the query string contains unparseable data. Please check the values")
	ErrValidation         = errors.New("the request failed validation")
)
