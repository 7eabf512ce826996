package http

import (
	"log/slog"
	"os"

	"github.com/burningpaper/workfromhome/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	webhookHandler WebhookHandler,
	reportHandler ReportHandler,
	userHandler UserHandler,
	dashboardHandler DashboardHandler,
	adminHandler AdminHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "wfh-beacon"),
		slog.String("env", cfg.App.Env),
	)

	level := slog.LevelInfo
	if cfg.App.LogLevel == "debug" {
		level = slog.LevelDebug
	}

	// Service-layer slog calls share the request logger's handler.
	slog.SetDefault(logger)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  level,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.Get("/", reportHandler.Today)
	r.Post("/webhook", webhookHandler.Receive)
	r.Get("/init-db", adminHandler.InitDB)

	r.Route("/api", func(r chi.Router) {
		r.Post("/import-users", userHandler.Import)
		r.Post("/clear-users", userHandler.Clear)
		r.Get("/dashboard", dashboardHandler.Stats)
	})

	return r
}
