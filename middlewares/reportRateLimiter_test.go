package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockCounter struct {
	mock.Mock
}

func (m *mockCounter) Incr(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCounter) Expire(ctx context.Context, key string, ttl time.Duration) error {
	args := m.Called(ctx, key, ttl)
	return args.Error(0)
}

func (m *mockCounter) TTL(ctx context.Context, key string) (time.Duration, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(time.Duration), args.Error(1)
}

func limitedEngine(counter Counter) *gin.Engine {
	r := gin.New()
	r.POST("/reports", ReportRateLimiter(counter, "limit", 2, time.Hour), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func post(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/reports", nil)
	req.RemoteAddr = "10.0.0.7:4242"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReportRateLimiter_FirstHitSetsTTL(t *testing.T) {
	counter := new(mockCounter)
	counter.On("Incr", mock.Anything, "limit:10.0.0.7").Return(int64(1), nil)
	counter.On("Expire", mock.Anything, "limit:10.0.0.7", time.Hour).Return(nil)

	w := post(limitedEngine(counter))
	assert.Equal(t, http.StatusCreated, w.Code)
	counter.AssertExpectations(t)
}

func TestReportRateLimiter_WithinLimit(t *testing.T) {
	counter := new(mockCounter)
	counter.On("Incr", mock.Anything, "limit:10.0.0.7").Return(int64(2), nil)

	w := post(limitedEngine(counter))
	assert.Equal(t, http.StatusCreated, w.Code)
	counter.AssertNotCalled(t, "Expire", mock.Anything, mock.Anything, mock.Anything)
}

func TestReportRateLimiter_Exceeded(t *testing.T) {
	counter := new(mockCounter)
	counter.On("Incr", mock.Anything, "limit:10.0.0.7").Return(int64(3), nil)
	counter.On("TTL", mock.Anything, "limit:10.0.0.7").Return(30*time.Minute, nil)

	w := post(limitedEngine(counter))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"rate limit exceeded","retry_after":1800}`, w.Body.String())
}

func TestReportRateLimiter_RedisError(t *testing.T) {
	counter := new(mockCounter)
	counter.On("Incr", mock.Anything, "limit:10.0.0.7").Return(int64(0), errors.New("connection refused"))

	w := post(limitedEngine(counter))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
