package routes

import (
	"upaya-be/controllers"
	"upaya-be/store"

	"github.com/gin-gonic/gin"
)

func MetadataRoutes(api *gin.RouterGroup, s *store.IssueStore) {
	api.GET("/categories", controllers.ListCategories)
	api.GET("/categories/:category", controllers.GetCategory(s))
	api.GET("/statuses", controllers.ListStatuses)
	api.GET("/statuses/:status", controllers.GetStatus(s))
}
