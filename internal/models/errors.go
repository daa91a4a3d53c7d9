package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrEmailNotUnique   = errors.New("the email address is already in use")
	ErrNegativeAmount   = errors.New("the amount must not be negative")
	ErrCategoryRequired = errors.New("the category must not be empty")
	ErrSourceRequired   = errors.New("the source must not be empty")
	ErrMonthRequired    = errors.New("the month must be set")
)
