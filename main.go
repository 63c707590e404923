package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/agency-site-backend/api"
	"github.com/rpupo63/agency-site-backend/config"
	"github.com/rpupo63/agency-site-backend/database"
	"github.com/rpupo63/agency-site-backend/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	configureLogger(cfg)
	log.Info().Str("env", cfg.Env).Str("prefix", cfg.APIPrefix).Msg("Initializing app...")

	provider := database.NewPostgresProvider(cfg)

	// Developer modes connect eagerly, do their job and exit.
	if cfg.GenerateQueries || cfg.GenerateColumnReport {
		os.Exit(runDeveloperMode(cfg, provider))
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(cfg, provider)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

func configureLogger(cfg config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}

func runDeveloperMode(cfg config.Config, provider *database.Provider) int {
	defer provider.Close()

	db, err := provider.Get(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("Error connecting to database")
		return 1
	}

	if cfg.GenerateQueries {
		log.Info().Msg("Generating query helpers...")
		models.GenerateQueries(db.Conn(), "./generated")
	}

	if cfg.GenerateColumnReport {
		log.Info().Msg("Generating column mismatch report...")
		if _, err := models.WriteColumnReport(db.Conn(), os.Stdout); err != nil {
			log.Error().Err(err).Msg("Error generating column report")
			return 1
		}
	}
	return 0
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
