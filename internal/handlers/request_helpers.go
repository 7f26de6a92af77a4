package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// handlePanic keeps the page alive through unexpected errors: the
// failure is logged and the request answered, nothing crashes.
func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
