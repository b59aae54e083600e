package reports

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"upaya-be/logger"
	"upaya-be/models"
	"upaya-be/utils"
)

// DefaultDelay matches the pause the site shows while a report is "sent".
const DefaultDelay = 1500 * time.Millisecond

const acknowledgementMessage = "Thank you for contributing to a better Nepal. Your report has been submitted."

// Service accepts citizen reports and acknowledges them after a delay.
// Reports are not persisted and never reach the issue store.
type Service struct {
	delay time.Duration
	newID func() string
	now   func() time.Time
}

// Option customises a Service.
type Option func(*Service)

// WithIDGenerator replaces the report reference generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// WithClock replaces the time source.
func WithClock(fn func() time.Time) Option {
	return func(s *Service) { s.now = fn }
}

// NewService creates a Service. A negative delay is treated as zero.
func NewService(delay time.Duration, opts ...Option) *Service {
	if delay < 0 {
		delay = 0
	}
	s := &Service{
		delay: delay,
		newID: utils.NewReportID,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates the category, waits for the configured delay and returns
// an acknowledgement. It returns ctx.Err() if ctx ends first.
func (s *Service) Submit(ctx context.Context, in models.ReportInput) (models.ReportAcknowledgement, error) {
	category, err := models.ParseCategory(in.Category)
	if err != nil {
		return models.ReportAcknowledgement{}, err
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return models.ReportAcknowledgement{}, ctx.Err()
		case <-timer.C:
		}
	}

	ack := models.ReportAcknowledgement{
		ReportID:    s.newID(),
		Category:    category,
		Status:      models.Pending,
		Message:     acknowledgementMessage,
		SubmittedAt: s.now().UTC(),
	}

	logger.Get().WithFields(logrus.Fields{
		"report_id": ack.ReportID,
		"category":  ack.Category,
		"location":  in.Location,
	}).Info("report acknowledged")

	return ack, nil
}
