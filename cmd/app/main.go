package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"marketplace/cmd"
	"marketplace/internal/adapters/out/postgres/accountrepo"
	"marketplace/internal/adapters/out/postgres/courierrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/telegram"
	"marketplace/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	configs := getConfigs()

	db := openDatabase(configs)
	migrate(db)

	// The Telegram channel is optional: without a token the marketplace
	// still runs, it just notifies nobody.
	var notifier ports.Notifier = silentNotifier{logger: logger}
	var botAPI *tgbotapi.BotAPI
	if configs.TelegramBotToken != "" {
		api, err := tgbotapi.NewBotAPI(configs.TelegramBotToken)
		if err != nil {
			log.Fatalf("Failed to connect to Telegram: %v", err)
		}
		botAPI = api
		notifier = telegram.NewNotifier(api, logger)
	} else {
		logger.Warn("TELEGRAM_BOT_TOKEN is not set, notifications disabled")
	}

	root := cmd.NewCompositionRoot(configs, db, notifier, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	botCtx, stopBot := context.WithCancel(context.Background())
	if botAPI != nil {
		go root.CreateBot(botAPI).Run(botCtx)
	}

	e := echo.New()
	server, guard := root.CreateHTTPServer()
	server.RegisterRoutes(e, guard)

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); startErr != nil &&
			startErr != http.ErrServerClosed {
			log.Fatalf("Failed to start web server: %v", startErr)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("Web server shutdown failed", "error", shutdownErr)
	}
	stopBot()
	jobManager.StopAll()
	root.Dispatcher().Wait()
}

// silentNotifier drops notifications when no Telegram token is configured.
type silentNotifier struct {
	logger *slog.Logger
}

func (n silentNotifier) Send(_ context.Context, msg ports.Message) error {
	n.logger.Debug("Dropping notification, no Telegram channel", "chat_id", msg.ChatID)
	return nil
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		TelegramBotToken:       goDotEnvVariable("TELEGRAM_BOT_TOKEN"),
		TelegramPollTimeoutSec: goDotEnvIntVariable("TELEGRAM_POLL_TIMEOUT_SEC"),
		ArchiveSchedule:        goDotEnvVariable("ARCHIVE_SCHEDULE"),
		ArchiveRetentionHours:  goDotEnvIntVariable("ARCHIVE_RETENTION_HOURS"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Config value %s must be an integer: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{},
		&courierrepo.CourierDTO{},
		&accountrepo.AccountDTO{}, &accountrepo.RestaurantGrant{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}
