package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bilibuddies/bilibuddies/internal/api"
	"github.com/bilibuddies/bilibuddies/internal/cli"
	"github.com/bilibuddies/bilibuddies/internal/db"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	dbPath := getEnv("DB_PATH", filepath.Join("data", "bilibuddies.db"))
	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	port := getEnv("PORT", "8080")
	cookieSecure := getEnv("COOKIE_SECURE", "false") == "true"

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "seed":
			if err := cli.RunSeedCommand(dbPath, log); err != nil {
				log.Fatal().Err(err).Msg("seed failed")
			}
			return
		case "reset-password":
			if len(os.Args) < 3 {
				log.Fatal().Msg("usage: bilibuddies reset-password <email>")
			}
			if err := cli.RunResetPasswordCommand(dbPath, os.Args[2], log); err != nil {
				log.Fatal().Err(err).Msg("password reset failed")
			}
			return
		}
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	handler, err := api.NewHandler(database, secretKey, cookieSecure)
	if err != nil {
		log.Fatal().Err(err).Msg("handler init failed")
	}

	app := fiber.New(fiber.Config{
		AppName:               "Bilibuddies",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("port", port).Str("db", dbPath).Msg("bilibuddies listening")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
