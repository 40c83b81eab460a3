package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	zlog "github.com/rs/zerolog/log"
)

// AccessLog logs one line per completed request, levelled by status class.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		event := zlog.Info()
		if ww.Status() >= 500 {
			event = zlog.Error()
		} else if ww.Status() >= 400 {
			event = zlog.Warn()
		}

		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("latency", time.Since(start)).
			Str("request_id", GetRequestID(r.Context())).
			Str("remote_ip", r.RemoteAddr).
			Msg("http_request")
	})
}
