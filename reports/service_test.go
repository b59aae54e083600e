package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upaya-be/models"
)

var input = models.ReportInput{
	Title:       "Broken water main",
	Category:    "water",
	Description: "Water has been gushing onto the road since morning.",
	Location:    "Kupondole, Lalitpur",
}

func TestSubmit_Acknowledges(t *testing.T) {
	fixed := time.Date(2024, 1, 14, 9, 30, 0, 0, time.UTC)
	svc := NewService(0,
		WithIDGenerator(func() string { return "UPY-TEST0001" }),
		WithClock(func() time.Time { return fixed }),
	)

	ack, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "UPY-TEST0001", ack.ReportID)
	assert.Equal(t, models.Water, ack.Category)
	assert.Equal(t, models.Pending, ack.Status)
	assert.Equal(t, fixed, ack.SubmittedAt)
	assert.NotEmpty(t, ack.Message)
}

func TestSubmit_WaitsForDelay(t *testing.T) {
	svc := NewService(20 * time.Millisecond)
	start := time.Now()
	ack, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Regexp(t, `^UPY-[0-9A-F]{8}$`, ack.ReportID)
}

func TestSubmit_CancelledContext(t *testing.T) {
	svc := NewService(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Submit(ctx, input)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSubmit_UnknownCategory(t *testing.T) {
	bad := input
	bad.Category = "noise"
	_, err := NewService(0).Submit(context.Background(), bad)
	assert.ErrorIs(t, err, models.ErrUnknownCategory)
}

func TestNewService_NegativeDelay(t *testing.T) {
	assert.Zero(t, NewService(-time.Second).delay)
}
