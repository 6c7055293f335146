package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONSuccess sends a success envelope with the given data payload
func JSONSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// JSONFailure sends a failure envelope with a single error message
func JSONFailure(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

// JSONInvalid sends a failure envelope with field-keyed validation messages
func JSONInvalid(c *gin.Context, status int, message string, errors map[string][]string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
		"errors":  errors,
	})
}
