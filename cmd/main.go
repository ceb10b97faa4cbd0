package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"

	"github.com/Vovarama1992/review-reply/internal/ai"
	"github.com/Vovarama1992/review-reply/internal/config"
	"github.com/Vovarama1992/review-reply/internal/database"
	"github.com/Vovarama1992/review-reply/internal/logger"
	"github.com/Vovarama1992/review-reply/internal/reviews"
	"github.com/Vovarama1992/review-reply/internal/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

func run(ctx context.Context) int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", "error", err)
		return 1
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	// --- DB ---
	db, err := database.Open(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("database error", "error", err)
		return 1
	}
	defer db.Close()

	// --- AI ---
	aiClient, err := ai.New(ctx, cfg.LLM, log)
	if err != nil {
		log.Error("llm client error", "provider", cfg.LLM.Provider, "error", err)
		return 1
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.Middleware(log))
	r.Use(web.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// --- Reviews module wiring ---
	reviewsRepo := reviews.NewRepo(db)
	generator := reviews.NewGenerator(aiClient, log)
	reviewsService := reviews.NewService(reviewsRepo, generator, log)
	reviewsHandler := reviews.NewHandler(reviewsService, log)

	reviews.RegisterRoutes(r, reviewsHandler)

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.NotFound(web.NotFound(cfg.StaticDir))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		// Leaves room for a slow completion on top of the upstream timeout.
		WriteTimeout: cfg.LLM.Timeout + 30*time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("listening", "addr", srv.Addr, "provider", cfg.LLM.Provider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		return 1
	}

	log.Info("server stopped")
	return 0
}
