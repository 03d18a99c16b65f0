package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"restboard/internal/config"
	"restboard/internal/handler"
	"restboard/internal/service"
	"restboard/internal/session"
	"restboard/internal/worker"
)

func main() {
	cfg := config.New()

	sess := session.NewStore()
	if cfg.APIToken != "" {
		sess.SetToken(cfg.APIToken)
	}

	client := service.NewClient(cfg.BackendAddress, sess)
	ws := service.NewWorkingSet(client)
	baseline := service.NewBaseline()

	// Initial dataset. A failed first load leaves an empty, errored working
	// set that the dashboard can still render and reload from.
	initCtx, initCancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := ws.LoadAll(initCtx, nil); err != nil {
		slog.Error("initial restaurant load failed", "error", err)
	} else {
		baseline.Set(ws.Collection())
	}
	initCancel()

	refresher := worker.NewRefresher(client, baseline, cfg.RefreshInterval)

	// Router
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/api/session", handler.StartSessionHandler(sess))
	r.Delete("/api/session", handler.EndSessionHandler(sess))

	r.Get("/api/dashboard", handler.SnapshotHandler(ws))
	r.Post("/api/dashboard/reload", handler.ReloadHandler(ws))
	r.Post("/api/dashboard/top-revenue", handler.TopRevenueHandler(ws))
	r.Post("/api/dashboard/filters", handler.FiltersHandler(ws))
	r.Post("/api/dashboard/reset", handler.ResetHandler(ws, baseline))
	r.Post("/api/dashboard/sort", handler.SortHandler(ws))
	r.Get("/api/dashboard/export", handler.ExportHandler(ws))
	r.Get("/api/trends", handler.TrendsHandler(ws))

	r.Post("/api/restaurants/{id}/orders/more", handler.LoadMoreOrdersHandler(ws))
	r.Post("/api/restaurants/{id}/expand", handler.ToggleExpandHandler(ws))

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go refresher.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("starting dashboard", "addr", cfg.RunAddress, "backend", cfg.BackendAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-quit
	slog.Info("shutting down...")

	cancel() // stop worker
	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}
