package routes

import (
	"upaya-be/controllers"

	"github.com/gin-gonic/gin"
)

// ReportRoutes sets up report submission; limiter may be nil.
func ReportRoutes(api *gin.RouterGroup, submitter controllers.ReportSubmitter, limiter gin.HandlerFunc) {
	handlers := []gin.HandlerFunc{}
	if limiter != nil {
		handlers = append(handlers, limiter)
	}
	handlers = append(handlers, controllers.SubmitReport(submitter))
	api.POST("/reports", handlers...)
}
