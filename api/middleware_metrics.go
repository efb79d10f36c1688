package api

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// MetricsMiddleware tracks request timing and outcome per route
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The metrics and health endpoints would only pollute their own numbers
		path := r.URL.Path
		if path == "/health" || path == "/api/v1/admin/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		startTime := time.Now()
		wrappedWriter := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrappedWriter, r)

		duration := time.Since(startTime)
		GetMetrics().Record(r.Method, path, wrappedWriter.statusCode, duration)

		if duration > 1*time.Second {
			zap.S().Warnw("slow request",
				"method", r.Method,
				"path", path,
				"duration", duration,
				"status", wrappedWriter.statusCode,
			)
		}
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code.
// It implements http.Hijacker to support WebSocket upgrades.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Hijack implements http.Hijacker to support WebSocket upgrades
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := rw.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, fmt.Errorf("underlying ResponseWriter does not implement http.Hijacker")
}
