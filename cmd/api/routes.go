package main

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"bookmanager/internal/admin"
	"bookmanager/internal/auth"
	"bookmanager/internal/book"
	"bookmanager/internal/config"
	"bookmanager/internal/httpx"
	"bookmanager/internal/ingest"
	"bookmanager/internal/lookup"
	"bookmanager/internal/metabox"
	"bookmanager/internal/metrics"
)

type app struct {
	cfg         config.Config
	log         *zap.Logger
	books       *book.HTTPHandler
	metabox     *metabox.HTTPHandler
	admin       *admin.HTTPHandler
	lookup      *lookup.HTTPHandler
	ingest      *ingest.HTTPHandler
	rateLimiter *httpx.RateLimitMiddleware
	ready       func(ctx context.Context) error
}

func (a *app) routes() http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := a.ready(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", metrics.Handler())

	authed := httpx.AuthMiddleware(a.cfg.JWTSecret)
	editor := func(h http.HandlerFunc) http.Handler {
		return httpx.Chain(h, authed, httpx.RequireCapability(auth.CapEditPost))
	}
	administrator := func(h http.HandlerFunc) http.Handler {
		return httpx.Chain(h, authed, httpx.RequireCapability(auth.CapManageOptions))
	}

	router.HandleFunc("GET /isbn/{isbn}", a.lookup.Check)

	// anonymous readers see published books only
	viewer := httpx.OptionalAuthMiddleware(a.cfg.JWTSecret)
	router.Handle("GET /books", viewer(http.HandlerFunc(a.books.List)))
	router.Handle("GET /books/{id}", viewer(http.HandlerFunc(a.books.Get)))
	router.Handle("POST /books", editor(a.books.Create))
	router.Handle("POST /books/import", editor(a.ingest.Import))
	router.Handle("PUT /books/{id}", editor(a.books.Update))
	router.Handle("DELETE /books/{id}", editor(a.books.Delete))

	// capability is checked by the form handlers after the record lookup
	router.Handle("GET /books/{id}/isbn", authed(http.HandlerFunc(a.metabox.Form)))
	router.Handle("POST /books/{id}/isbn", authed(http.HandlerFunc(a.metabox.Submit)))

	router.Handle("GET /admin/books-info", administrator(a.admin.BooksInfo))

	return httpx.Chain(router,
		httpx.RecoveryMiddleware(a.log),
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(a.log),
		httpx.SecurityHeadersMiddleware(a.cfg.EnableHSTS),
		httpx.CORSMiddleware(a.cfg.AllowedOrigins),
		httpx.RequestSizeLimitMiddleware(a.cfg.MaxBodyBytes),
		a.rateLimiter.Middleware,
	)
}
