package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// currentUserID reads the session user injected by the session middleware.
func currentUserID(c *gin.Context) (int, bool) {
	v, ok := c.Get("userId")
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

// utcTimestamp formats now as RFC3339 UTC with a 'Z' suffix, so review
// timestamps sort chronologically as strings.
func utcTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func respondValidationError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			field := strings.ToLower(fieldError.Field())
			switch fieldError.Tag() {
			case "required":
				details = append(details, fmt.Sprintf("%s is required", field))
			case "min":
				details = append(details, fmt.Sprintf("%s must be %s or more", field, fieldError.Param()))
			case "max":
				details = append(details, fmt.Sprintf("%s must be %s or less", field, fieldError.Param()))
			default:
				details = append(details, fmt.Sprintf("%s is invalid", field))
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"details": details,
		})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
}
