package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"upaya-be/store"
)

// GetStats returns counts by status and by category, recomputed per request.
func GetStats(s *store.IssueStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Stats())
	}
}
