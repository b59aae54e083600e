package routes

import (
	"upaya-be/controllers"
	"upaya-be/store"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the read-only issue routes
func IssueRoutes(api *gin.RouterGroup, s *store.IssueStore) {
	issue := api.Group("/issues")
	{
		issue.GET("", controllers.ListIssues(s))
		issue.GET("/recent", controllers.RecentIssues(s))
		issue.GET("/:id", controllers.GetIssue(s))
	}
	api.GET("/stats", controllers.GetStats(s))
}
