package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"upaya-be/logger"
	"upaya-be/models"
)

// statusFor maps domain errors to HTTP statuses. Lookups by path segment
// (lookup == true) report unknown enum values as 404.
func statusFor(err error, lookup bool) int {
	switch {
	case errors.Is(err, models.ErrIssueNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrUnknownCategory), errors.Is(err, models.ErrUnknownStatus):
		if lookup {
			return http.StatusNotFound
		}
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidIssue):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error, lookup bool) {
	code := statusFor(err, lookup)
	message := err.Error()
	if code == http.StatusInternalServerError {
		logger.Get().WithFields(logrus.Fields{
			"error":  err.Error(),
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}).Error("request error")
		message = "Something went wrong"
	}
	_ = c.Error(err)
	c.JSON(code, gin.H{"error": message})
}
