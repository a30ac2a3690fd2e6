package httpx

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("rid", rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rid, _ := c.Get("rid")
		log.Printf("[http] rid=%v %s %s status=%d dur=%s",
			rid, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// timedWriter injects the x-process-time header right before the first
// byte of the response is written; once the body starts, headers are
// already on the wire.
type timedWriter struct {
	gin.ResponseWriter
	start    time.Time
	injected bool
}

func (w *timedWriter) inject() {
	if w.injected {
		return
	}
	w.injected = true
	elapsed := time.Since(w.start).Seconds()
	w.Header().Set("x-process-time", strconv.FormatFloat(elapsed, 'f', -1, 64))
}

func (w *timedWriter) WriteHeader(code int) {
	w.inject()
	w.ResponseWriter.WriteHeader(code)
}

func (w *timedWriter) Write(b []byte) (int, error) {
	w.inject()
	return w.ResponseWriter.Write(b)
}

func (w *timedWriter) WriteString(s string) (int, error) {
	w.inject()
	return w.ResponseWriter.WriteString(s)
}

// ProcessTime reports handler wall-clock time in fractional seconds as
// the x-process-time response header. Body fields are untouched.
func ProcessTime() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer = &timedWriter{ResponseWriter: c.Writer, start: time.Now()}
		c.Next()
	}
}
