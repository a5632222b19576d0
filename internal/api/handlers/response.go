package handlers

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Message string `json:"message" example:"Failed to fetch teams"`
	Error   string `json:"error,omitempty" example:"store unavailable"`
}

// abortWithError records err on the context for the request logger and
// writes the error payload
func abortWithError(c *gin.Context, status int, message string, err error) {
	resp := ErrorResponse{Message: message}
	if err != nil {
		_ = c.Error(err)
		resp.Error = err.Error()
	}
	c.AbortWithStatusJSON(status, resp)
}
