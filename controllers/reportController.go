package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"upaya-be/models"
)

// ReportSubmitter acknowledges citizen reports.
type ReportSubmitter interface {
	Submit(ctx context.Context, in models.ReportInput) (models.ReportAcknowledgement, error)
}

// SubmitReport validates a report body and returns its acknowledgement.
func SubmitReport(submitter ReportSubmitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.ReportInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ack, err := submitter.Submit(c.Request.Context(), input)
		if err != nil {
			respondError(c, err, false)
			return
		}
		c.JSON(http.StatusCreated, ack)
	}
}
