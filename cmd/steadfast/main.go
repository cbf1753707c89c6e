package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/steadfast-app/steadfast/internal/api"
	"github.com/steadfast-app/steadfast/internal/cli"
	"github.com/steadfast-app/steadfast/internal/db"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	dbPath := getEnv("DB_PATH", filepath.Join("data", "steadfast.db"))

	if len(os.Args) > 1 && os.Args[1] == "issue-token" {
		if len(os.Args) < 3 {
			log.Fatal("usage: steadfast issue-token <email>")
		}
		if err := cli.RunIssueTokenCommand(dbPath, os.Args[2], getEnv("SECRET_KEY", "")); err != nil {
			log.Fatalf("issue-token failed: %v", err)
		}
		return
	}

	port := getEnv("PORT", "8080")
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, api.HandlerConfig{
		Secret:        getEnv("SECRET_KEY", "change_me_in_production"),
		CronSecret:    os.Getenv("CRON_SECRET"),
		WebhookSecret: os.Getenv("WEBHOOK_SECRET"),
		PhotoBucket:   getEnv("PHOTO_BUCKET", "steadfast-checkin-photos"),
		EmailFrom:     os.Getenv("EMAIL_FROM"),
	})

	app := fiber.New(fiber.Config{
		AppName:               "Steadfast",
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
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Steadfast listening on http://0.0.0.0:%s (db: %s)", port, dbPath)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
