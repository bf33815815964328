package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/student-showcase/portfolio-backend/api"
	"github.com/student-showcase/portfolio-backend/database"
	"github.com/student-showcase/portfolio-backend/seed"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded")
	}

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "showcase"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	currentDB := database.New(db)

	if adminEmail := os.Getenv("ADMIN_EMAIL"); adminEmail != "" {
		err := seed.EnsureAdmin(currentDB, adminEmail, os.Getenv("ADMIN_PASSWORD"),
			getEnv("ADMIN_FIRST_NAME", "Admin"), getEnv("ADMIN_LAST_NAME", "User"))
		if err != nil {
			log.Fatal().Err(err).Msg("error bootstrapping admin account")
		}
	}

	if strings.EqualFold(os.Getenv("SEED_TEST_DATA"), "true") {
		if err := seed.TestData(currentDB); err != nil {
			log.Fatal().Err(err).Msg("error seeding test data")
		}
		log.Info().Msg("test data seeded")
		return
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Err(fatalErr).Msg("closing server")

	server.ShutdownGracefully(30 * time.Second)
}

func gormLogger() logger.Interface {
	return logger.New(
		&log.Logger,
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}

// getEnv returns the value of the environment variable key or a fallback value.
func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
