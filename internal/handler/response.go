package handler

import (
	"github.com/gin-gonic/gin"
)

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error writes the error envelope. Success bodies are flat JSON shaped for
// the conversational tool layer and are written by each handler directly.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, apiError{
		Code:    status,
		Message: message,
	})
}
