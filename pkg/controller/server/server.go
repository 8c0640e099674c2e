package server

import (
	"embed"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/gitfrost/pkg/domain/interfaces"
	"github.com/m-mizutani/gitfrost/pkg/domain/types"
	"github.com/m-mizutani/gitfrost/pkg/utils/logging"
)

//go:embed static
var staticFS embed.FS

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	accessToken types.AccessToken
}

type Option func(*config)

// WithAccessToken enables the page-level access gate on the root route.
// Without it the deployment is open: every page request is allowed.
func WithAccessToken(token types.AccessToken) Option {
	return func(cfg *config) {
		cfg.accessToken = token
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	// The access gate covers only the home page. The API routes carry
	// their own guard (the client secret check on creation).
	r.Group(func(r chi.Router) {
		r.Use(accessProxy(cfg.accessToken))
		r.Get("/", handleIndex)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/issues", handleCreateIssue(uc))
		r.Get("/issues", handleListIssues(uc))
	})

	r.Handle("/static/*", http.FileServer(http.FS(staticFS)))

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		logging.From(r.Context()).Error("fail to read index page", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte("internal error"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	safeWrite(w, http.StatusOK, page)
}
