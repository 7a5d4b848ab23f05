package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/01moynul/beachstore-admin/internal/api"
	"github.com/01moynul/beachstore-admin/internal/cache"
	"github.com/01moynul/beachstore-admin/internal/config"
	"github.com/01moynul/beachstore-admin/internal/handlers"
	"github.com/01moynul/beachstore-admin/internal/obs"
	"github.com/01moynul/beachstore-admin/internal/routes"
)

func main() {
	obs.InitLogger()

	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		obs.Logger.Warn("env_file_missing", "error", err.Error())
	}

	cfg := config.Load()
	obs.Logger.Info("console_starting", "api_base_url", cfg.APIBaseURL)

	// --- Application Setup ---
	// We inject the API client and the result cache into the Handlers struct.
	client := api.NewClient(cfg.APIBaseURL, cfg.CookieName)
	results := cache.New()
	app := handlers.New(cfg, client, results)

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// --- Start Server ---
	go func() {
		obs.Logger.Info("http_listen", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error("http_server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info("shutdown_signal", "signal", s.String())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
	}
	obs.Logger.Info("console_stopped")
}
