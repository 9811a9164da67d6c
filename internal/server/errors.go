package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is a structured error response.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, APIError{Status: status, Code: code, Message: message})
}

func errBadRequest(c *gin.Context, msg string) {
	newError(c, http.StatusBadRequest, "bad_request", msg)
}

func errNotFound(c *gin.Context, msg string) {
	newError(c, http.StatusNotFound, "not_found", msg)
}

func errTooLarge(c *gin.Context, msg string) {
	newError(c, http.StatusRequestEntityTooLarge, "too_many_stations", msg)
}

func errUnavailable(c *gin.Context, msg string) {
	newError(c, http.StatusServiceUnavailable, "unavailable", msg)
}

func errInternal(c *gin.Context, msg string) {
	newError(c, http.StatusInternalServerError, "internal_error", msg)
}
