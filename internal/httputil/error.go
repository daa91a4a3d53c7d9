package httputil

import (
	"github.com/gin-gonic/gin"
)

// NewError writes an HTTPError with the message of err.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, HTTPError{
		Error: err.Error(),
	})
}

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"the access token is missing, invalid or expired"`
}
