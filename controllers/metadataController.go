package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"upaya-be/models"
	"upaya-be/store"
)

func ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.AllCategoryMeta())
}

func ListStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, models.AllStatusMeta())
}

// GetCategory returns the display metadata of one category.
func GetCategory(s *store.IssueStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		meta, err := s.CategoryMeta(c.Param("category"))
		if err != nil {
			respondError(c, err, true)
			return
		}
		c.JSON(http.StatusOK, meta)
	}
}

// GetStatus returns the display metadata of one status.
func GetStatus(s *store.IssueStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		meta, err := s.StatusMeta(c.Param("status"))
		if err != nil {
			respondError(c, err, true)
			return
		}
		c.JSON(http.StatusOK, meta)
	}
}
