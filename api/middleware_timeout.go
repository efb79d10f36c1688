package api

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// TimeoutMiddleware bounds how long a request may run. The handler keeps running
// in its goroutine, but the client gets a 408 once the deadline passes.
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			done := make(chan struct{})
			go func() {
				next.ServeHTTP(w, r.WithContext(ctx))
				close(done)
			}()

			select {
			case <-done:
			case <-ctx.Done():
				if ctx.Err() == context.DeadlineExceeded {
					zap.S().Warnw("request timed out",
						"path", r.URL.Path,
						"method", r.Method,
						"timeout", timeout)
					w.WriteHeader(http.StatusRequestTimeout)
					w.Write([]byte(`{"error": "request timeout"}`))
				}
			}
		})
	}
}
