package web

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pcadley/satchel/internal/config"
	"github.com/pcadley/satchel/internal/logger"
)

// NewServer builds the local HTTP JSON API over the site collection.
func NewServer(database *sql.DB, cfg *config.Config, log logger.Logger) *http.Server {
	h := &Handlers{
		db:  database,
		cfg: cfg,
		log: log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))
	r.Use(accessLog(log))

	r.Route("/api", func(r chi.Router) {
		r.Get("/sites", h.HandleListSites)
		r.Post("/sites", h.HandleAddSite)
		r.Delete("/sites", h.HandleRemoveSite)
		r.Post("/sites/move", h.HandleMoveSite)
		r.Post("/sites/favicon", h.HandleSetFavicon)
		r.Get("/folders", h.HandleFolderTree)
		r.Get("/recents", h.HandleRecents)
		r.Post("/history/clear", h.HandleClearHistory)
	})

	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.WebBind, cfg.WebPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// accessLog logs one structured line per request.
func accessLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.Int("status", ww.Status()),
				logger.Duration("duration", time.Since(start)),
			)
		})
	}
}

// Run starts the HTTP server and shuts down gracefully on SIGINT/SIGTERM.
func Run(srv *http.Server, log logger.Logger) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.Infof("satchel API listening on http://%s", srv.Addr)

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-sigCh:
		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
