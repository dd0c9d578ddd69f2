package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/healthcare-api/internal/config"
	appointmentHandler "github.com/jwalitptl/healthcare-api/internal/handler/appointment"
	healthHandler "github.com/jwalitptl/healthcare-api/internal/handler/health"
	patientHandler "github.com/jwalitptl/healthcare-api/internal/handler/patient"
	prometheusHandler "github.com/jwalitptl/healthcare-api/internal/handler/prometheus"
	recordHandler "github.com/jwalitptl/healthcare-api/internal/handler/record"
	"github.com/jwalitptl/healthcare-api/internal/repository/postgres"
	"github.com/jwalitptl/healthcare-api/internal/router"
	appointmentService "github.com/jwalitptl/healthcare-api/internal/service/appointment"
	medicalService "github.com/jwalitptl/healthcare-api/internal/service/medical"
	patientService "github.com/jwalitptl/healthcare-api/internal/service/patient"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogger(cfg)

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	patientRepo := postgres.NewPatientRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	recordRepo := postgres.NewMedicalRecordRepository(db)

	patientSvc := patientService.NewService(patientRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, patientRepo)
	medicalSvc := medicalService.NewService(recordRepo, patientRepo)

	r := router.NewRouter(
		router.Config{
			Debug:     cfg.Server.Debug,
			RateLimit: rate.Limit(cfg.RateLimit.RPS),
			RateBurst: cfg.RateLimit.Burst,
		},
		healthHandler.NewHandler(db),
		prometheusHandler.New(),
		patientHandler.NewHandler(patientSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		recordHandler.NewHandler(medicalSvc),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Server.Debug {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
