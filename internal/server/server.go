// Package server exposes the audit engine over HTTP for the UI collaborator.
package server

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/mathilda-val/shopaudit-lite/internal/audit"
	"github.com/mathilda-val/shopaudit-lite/internal/model"
)

// Auditor runs one audit; injected so handler tests avoid real fetches.
type Auditor func(ctx context.Context, url string) model.AuditReport

type auditRequest struct {
	URL string `json:"url"`
}

func (a *auditRequest) Bind(r *http.Request) error { return nil }

// NewRouter builds the HTTP surface: GET/POST /audit and a health endpoint.
func NewRouter(run Auditor) chi.Router {
	if run == nil {
		run = func(ctx context.Context, url string) model.AuditReport {
			return audit.Run(ctx, url, audit.Options{})
		}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, map[string]string{"status": "ok"})
	})

	r.Route("/audit", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			target := strings.TrimSpace(req.URL.Query().Get("url"))
			if target == "" {
				render.Status(req, http.StatusBadRequest)
				render.JSON(w, req, map[string]string{"error": "missing url parameter"})
				return
			}
			render.JSON(w, req, run(req.Context(), target))
		})
		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			payload := &auditRequest{}
			if err := render.Bind(req, payload); err != nil || strings.TrimSpace(payload.URL) == "" {
				render.Status(req, http.StatusBadRequest)
				render.JSON(w, req, map[string]string{"error": "invalid json body, expected {\"url\": ...}"})
				return
			}
			render.JSON(w, req, run(req.Context(), payload.URL))
		})
	})

	return r
}

// ListenAndServe runs the server until it fails. Write timeout leaves room
// for the full fetch budget of one audit.
func ListenAndServe(addr string, run Auditor) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      NewRouter(run),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	log.Printf("audit server listening on %s", addr)
	return srv.ListenAndServe()
}
