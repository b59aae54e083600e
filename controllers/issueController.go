package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"upaya-be/store"
)

const (
	defaultRecentLimit = 5
	maxRecentLimit     = 50
)

// ListIssues handles the feed: ?status=all|pending|review|resolved,
// ?q=<text> matched against title and location, and ?category=<category>
// as used by the map legend.
func ListIssues(s *store.IssueStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.DefaultQuery("status", store.FilterAll)
		query := c.Query("q")
		category := c.DefaultQuery("category", store.FilterAll)

		issues, err := s.Filter(status, query)
		if err != nil {
			respondError(c, err, false)
			return
		}
		issues, err = store.FilterByCategory(issues, category)
		if err != nil {
			respondError(c, err, false)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"issues": issues,
			"count":  len(issues),
			"total":  s.Len(),
		})
	}
}

// GetIssue retrieves an issue by its ID
func GetIssue(s *store.IssueStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		issue, err := s.Get(c.Param("id"))
		if err != nil {
			respondError(c, err, true)
			return
		}
		c.JSON(http.StatusOK, issue)
	}
}

// RecentIssues returns the head of the feed, five issues unless ?limit says otherwise.
func RecentIssues(s *store.IssueStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultRecentLimit)))
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		if limit > maxRecentLimit {
			limit = maxRecentLimit
		}
		c.JSON(http.StatusOK, store.Recent(s.All(), limit))
	}
}
