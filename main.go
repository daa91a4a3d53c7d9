package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/budget-tracker/backend/internal/auth"
	"github.com/budget-tracker/backend/internal/config"
	"github.com/budget-tracker/backend/internal/controllers/api"
	"github.com/budget-tracker/backend/internal/models"
	"github.com/budget-tracker/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// @title						Budget Tracker
// @description				The backend for Budget Tracker. Record expenses and incomes, set monthly budgets and see where your money goes.
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Access token from /login, prefixed with "Bearer "
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := connect(cfg); err != nil {
		log.Fatal().Msg(err.Error())
	}

	credentials, err := auth.New(models.AccountStore{}, []byte(cfg.JWTSecret), auth.WithCost(cfg.BcryptCost))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(api.Controller{Credentials: credentials}, r.Group("/"))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Msg("Server started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Msg(err.Error())
	}

	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.Close()
	}
	if err != nil {
		log.Error().Msgf("closing database: %s", err.Error())
	}

	log.Info().Msg("Server exited")
}

// connect connects to PostgreSQL if a database host is configured
// and to the SQLite database file otherwise.
func connect(cfg *config.Config) error {
	if cfg.Postgres() {
		log.Info().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("Database")
		return models.ConnectPostgres(cfg.PostgresDSN())
	}

	// Create data directory
	err := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm)
	if err != nil {
		return err
	}

	log.Info().Str("path", cfg.DBPath).Msg("Database")
	return models.Connect(cfg.DBPath)
}
