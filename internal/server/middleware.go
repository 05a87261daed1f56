package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/storeline/backoffice/internal/httpx"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusRecorder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// RequestLogger logs every request with method, path, status and duration.
func RequestLogger(logger zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := &statusRecorder{ResponseWriter: w}
			start := time.Now()
			next.ServeHTTP(recorder, r)
			logger.Info().
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Int("status", recorder.Status()).
				Dur("elapsed", time.Since(start)).
				Msg("request completed")
		})
	}
}

// Recover converts panics into a generic 500 response.
func Recover(logger zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error().
						Interface("panic", rec).
						Str("method", r.Method).
						Str("url", r.URL.String()).
						Msg("panic recovered")
					httpx.Error(w, http.StatusInternalServerError, "An unexpected error occurred.")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
