package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/noteshq/notesapi/internal/audit"
)

// RequestLog writes one audit entry per handled request, success or failure.
// It installs the username slot before authentication runs and reads back
// whatever identity resolved once the handler chain finishes.
type RequestLog struct {
	recorder *audit.Service
}

func NewRequestLog(recorder *audit.Service) *RequestLog {
	return &RequestLog{recorder: recorder}
}

func (l *RequestLog) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The router wraps its not-found and method-not-allowed handlers in
		// this middleware, and chi copies those into mounted subrouters whose
		// requests already run through the routing group. One entry per
		// request: the outermost instance owns it.
		if audit.HasHolder(r.Context()) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := audit.WithHolder(r.Context())
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		// The response is already on the wire; record even if the client
		// has gone away. The entry is stamped with the receipt time, not
		// this moment.
		l.recorder.Record(context.WithoutCancel(ctx), start, audit.Username(ctx), r.URL.Path, r.Method, status)

		slog.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
