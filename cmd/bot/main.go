package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lawlex/internal/catalog"
	"lawlex/internal/config"
	"lawlex/internal/handler"
	"lawlex/internal/repository"
	"lawlex/internal/repository/file"
	"lawlex/internal/repository/httpsource"
	"lawlex/internal/repository/memory"
	"lawlex/internal/repository/postgres"
	"lawlex/internal/search"
	"lawlex/internal/service"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	tele "gopkg.in/telebot.v3"
)

const migrationsURL = "file://migrations"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting LawLex Bot",
		zap.String("source", cfg.Dictionary.Source),
		zap.String("source_name", cfg.SourceName()),
	)

	// Select the dictionary source and the admin session store
	var (
		source   catalog.Source
		userRepo repository.UserRepository = memory.NewUserRepo()
	)
	switch cfg.Dictionary.Source {
	case config.SourceHTTP:
		source = httpsource.NewTermSource(cfg.Dictionary.URL, nil)
	case config.SourcePostgres:
		db, err := openDatabase(cfg, logger)
		if err != nil {
			logger.Fatal("Failed to prepare database", zap.Error(err))
		}
		defer db.Close()

		source = postgres.NewTermRepo(db)
		userRepo = postgres.NewAdminRepo(db)
	default:
		source = file.NewTermSource(cfg.Dictionary.Path)
	}

	// Initialize services
	store := catalog.NewStore(logger)
	glossary := service.NewGlossaryService(store, source, cfg.ExportFileName(), logger)
	authService := service.NewAuthService(userRepo, cfg.AdminPasswordHash)
	sessionService := service.NewSessionService(userRepo, cfg.SessionTTL, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("Handler failed", zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	debouncer := search.NewDebouncer(cfg.SearchDebounce)
	defer debouncer.Stop()

	// Initialize handler
	h := handler.NewHandler(bot, authService, glossary, debouncer, cfg.PageSize, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the dictionary in background; the bot reports the status meanwhile
	go func() {
		if err := glossary.Load(ctx); err != nil {
			logger.Error("Failed to load dictionary", zap.Error(err))
			return
		}
		logger.Info("Dictionary loaded", zap.Int("total", store.Len()))
	}()

	// Start session cleanup job in background
	if sessionService.Enabled() {
		go runCleanupJob(ctx, sessionService, logger)
	}

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

// newLogger builds a production logger at the configured level
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// openDatabase connects to PostgreSQL and applies migrations
func openDatabase(cfg *config.Config, logger *zap.Logger) (*sql.DB, error) {
	db, err := postgres.Connect(cfg.DSN(), 30, 2*time.Second, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Database connection established")

	if err := postgres.Migrate(db, migrationsURL, logger); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("Database migrations completed")
	return db, nil
}

// runCleanupJob periodically logs out admins whose session expired
func runCleanupJob(ctx context.Context, sessionService *service.SessionService, logger *zap.Logger) {
	// Run cleanup once at startup
	if err := sessionService.CleanupExpired(); err != nil {
		logger.Error("Failed to run initial cleanup", zap.Error(err))
	}

	// Then run every hour
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Cleanup job stopped")
			return
		case <-ticker.C:
			if err := sessionService.CleanupExpired(); err != nil {
				logger.Error("Failed to run scheduled cleanup", zap.Error(err))
			}
		}
	}
}
