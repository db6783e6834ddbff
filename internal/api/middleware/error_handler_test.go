package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "satfab.io/satfab/internal/pkg/errors"
	"satfab.io/satfab/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func newErrorRouter(fail func(c *gin.Context)) *gin.Engine {
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/boom", fail)
	return router
}

func TestErrorHandler_AppErrorEnvelope(t *testing.T) {
	router := newErrorRouter(func(c *gin.Context) {
		c.Error(apperrors.NotFound(apperrors.CodeSatelliteNotFound, "satellite not found"))
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`"errors"`, `"message":"satellite not found"`, `"code":"SATELLITE_NOT_FOUND"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body %s missing %s", body, want)
		}
	}
}

func TestErrorHandler_WrappedAppError(t *testing.T) {
	router := newErrorRouter(func(c *gin.Context) {
		inner := apperrors.ErrTechSpecRequired()
		c.Error(errors.Join(inner))
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"TECH_SPEC_REQUIRED"`) {
		t.Fatalf("body %s missing TECH_SPEC_REQUIRED", rec.Body.String())
	}
}

func TestErrorHandler_UnknownErrorBecomes500(t *testing.T) {
	router := newErrorRouter(func(c *gin.Context) {
		c.Error(errors.New("driver: bad connection"))
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "bad connection") {
		t.Fatalf("internal error detail leaked to client: %s", body)
	}
	if !strings.Contains(body, `"code":"INTERNAL_ERROR"`) {
		t.Fatalf("body %s missing INTERNAL_ERROR", body)
	}
}

func TestErrorHandler_NoErrorPassthrough(t *testing.T) {
	router := newErrorRouter(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"data":"ok"`) {
		t.Fatalf("body %s", rec.Body.String())
	}
}

func TestRequestID_GeneratedAndPropagated(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	header := rec.Header().Get(RequestIDHeader)
	if header == "" {
		t.Fatal("missing X-Request-ID header")
	}
	if rec.Body.String() != header {
		t.Fatalf("context id %s != header id %s", rec.Body.String(), header)
	}

	// Caller-supplied ids pass through untouched.
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "trace-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Header().Get(RequestIDHeader) != "trace-123" {
		t.Fatalf("header id = %s, want trace-123", rec.Header().Get(RequestIDHeader))
	}
}
