package httpx

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestProcessTime_HeaderBeforeBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ProcessTime())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	h := w.Header().Get("x-process-time")
	if h == "" {
		t.Fatalf("header not set")
	}
	secs, err := strconv.ParseFloat(h, 64)
	if err != nil {
		t.Fatalf("not a float: %q", h)
	}
	if secs < 0 {
		t.Fatalf("negative elapsed: %v", secs)
	}
	if w.Body.String() != "ok" {
		t.Fatalf("body=%q", w.Body.String())
	}
}

func TestRequestID_EchoedAndGenerated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	// caller-provided id is preserved
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("rid=%q", got)
	}

	// otherwise one is generated
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("rid not generated")
	}
}
