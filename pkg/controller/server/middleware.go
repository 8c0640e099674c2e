package server

import (
	"net/http"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/gitfrost/pkg/domain/types"
	"github.com/m-mizutani/gitfrost/pkg/utils/logging"
)

// deniedMessage is the user-facing body of the 401 from the access gate.
const deniedMessage = "Acesso não autorizado"

func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logging.Default().With(slog.String("request_id", uuid.NewString()))

		ctx := logging.With(r.Context(), logger)

		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default to 200 if WriteHeader is not called
		}

		requestedAt := time.Now()
		next.ServeHTTP(lw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.Int64("content_length", r.ContentLength),
			slog.String("user_agent", r.UserAgent()),
			slog.String("referer", r.Referer()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

// accessProxy gates page access by the `access` query parameter. An
// unconfigured token means an open deployment: every request passes.
// Evaluated before any other handling of the route, no state.
func accessProxy(configured types.AccessToken) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if configured == "" {
				next.ServeHTTP(w, r)
				return
			}

			if types.AccessToken(r.URL.Query().Get("access")) != configured {
				logging.From(r.Context()).Warn("denied page access",
					slog.String("path", r.URL.Path),
					slog.String("remote_addr", r.RemoteAddr),
				)
				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				safeWrite(w, http.StatusUnauthorized, []byte(deniedMessage))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}
