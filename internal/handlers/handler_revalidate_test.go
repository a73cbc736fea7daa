package handlers_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	portssvc "github.com/SscSPs/notion_quote_viewer/internal/core/ports/services"
	"github.com/SscSPs/notion_quote_viewer/internal/handlers"
	"github.com/SscSPs/notion_quote_viewer/internal/middleware"
	"github.com/SscSPs/notion_quote_viewer/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRevalidateRouter(t *testing.T, invoices *MockInvoiceService, deps handlers.Dependencies, mw ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	cfg := &config.Config{IsProduction: true, RevalidateSecret: "s3cret"}
	container := &portssvc.ServiceContainer{
		Invoice:     invoices,
		Quote:       new(MockQuoteService),
		Maintenance: new(MockMaintenanceService),
	}
	require.NoError(t, handlers.RegisterRoutes(r, cfg, container, deps))
	return r
}

func TestRevalidate_WrongSecretSkipsInvalidation(t *testing.T) {
	invoices := new(MockInvoiceService)
	r := newRevalidateRouter(t, invoices, handlers.Dependencies{})

	req := httptest.NewRequest(http.MethodPost, "/api/revalidate", strings.NewReader(`{"tag":"invoices","secret":"guess"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "인증 실패")
	invoices.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestRevalidate_LogsThroughRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	r := newRevalidateRouter(t, new(MockInvoiceService), handlers.Dependencies{}, middleware.StructuredLoggingMiddleware(logger))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/revalidate?tag=invoices&secret=nope", nil))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	out := buf.String()
	assert.Contains(t, out, "Revalidate secret mismatch")
	assert.Contains(t, out, `"request_id":"`+w.Header().Get(middleware.RequestIDHeader)+`"`)
	assert.Contains(t, out, `"tag":"invoices"`)
}

func TestRevalidate_Throttled(t *testing.T) {
	lim, err := middleware.NewMemoryLimiter("1-M")
	require.NoError(t, err)

	invoices := new(MockInvoiceService)
	invoices.On("Invalidate", mock.Anything, "invoices").Return(nil).Once()
	r := newRevalidateRouter(t, invoices, handlers.Dependencies{MaintenanceLimiter: lim})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/revalidate?tag=invoices&secret=s3cret", nil))
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/revalidate?tag=invoices&secret=s3cret", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	invoices.AssertExpectations(t)
}
