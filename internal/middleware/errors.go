package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the single sink for errors the handlers attach with
// c.Error: anything not already answered becomes a 500 with the error message
// in the body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": c.Errors.Last().Error()})
	}
}

// NotFound answers unmatched routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Route is Not Found"})
}

// ValidateIDParam rejects requests whose :id (or other named) path param is
// not a valid ObjectID before any handler work happens.
func ValidateIDParam(names ...string) gin.HandlerFunc {
	if len(names) == 0 {
		names = []string{"id"}
	}
	return func(c *gin.Context) {
		for _, name := range names {
			if !isHexObjectID(c.Param(name)) {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Not Valid Id"})
				return
			}
		}
		c.Next()
	}
}

func isHexObjectID(s string) bool {
	if len(s) != 24 {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') && (r < 'A' || r > 'F') {
			return false
		}
	}
	return true
}
