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

	"github.com/despacho/backend/internal/config"
	"github.com/despacho/backend/internal/handler"
	"github.com/despacho/backend/internal/logging"
	"github.com/despacho/backend/internal/notify"
	"github.com/despacho/backend/internal/repository"
	"github.com/despacho/backend/internal/service"
	"github.com/despacho/backend/pkg/sendgrid"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	contactRepo := repository.NewPgContactRepository(pool)
	projectRepo := repository.NewPgProjectRepository(pool)
	teamRepo := repository.NewPgTeamRepository(pool)
	homeRepo := repository.NewPgHomeRepository(pool)

	notifier := notify.New(notify.Config{
		FromEmail: cfg.FromEmail,
		ToEmail:   cfg.ToEmail,
		Debug:     cfg.Debug,
	}, newMailer(cfg))

	contactService := service.NewContactService(contactRepo, notifier)
	projectService := service.NewProjectService(projectRepo, cfg.PublicBaseURL)
	teamService := service.NewTeamService(teamRepo)
	homeService := service.NewHomeService(homeRepo)

	h := handler.New(pool, cfg.FrontendURL)
	contactHandler := handler.NewContactHandler(contactService)
	projectHandler := handler.NewProjectHandler(projectService)
	teamHandler := handler.NewTeamHandler(teamService)
	homeHandler := handler.NewHomeHandler(homeService)

	r := chi.NewRouter()
	r.Use(handler.RequestLogger)
	r.Use(handler.SecurityHeaders)
	r.Use(h.CORS)

	r.Get("/api/health", h.Health)
	r.Get("/api/proyectos", projectHandler.List)
	r.Get("/api/proyectos/{id}", projectHandler.Get)
	r.Get("/api/equipo", teamHandler.About)
	r.Get("/api/inicio", homeHandler.Get)
	r.Post("/api/contact", contactHandler.Submit)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// newMailer picks the delivery backend from EMAIL_PROVIDER. A provider with
// no credentials yields a nil mailer, which the notifier treats as "save
// without email".
func newMailer(cfg config.Config) notify.Mailer {
	switch cfg.EmailProvider {
	case "smtp":
		if cfg.SMTPHost == "" {
			return nil
		}
		return notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	default:
		if cfg.SendGridAPIKey == "" {
			return nil
		}
		return sendgrid.NewClient(cfg.SendGridAPIKey)
	}
}
