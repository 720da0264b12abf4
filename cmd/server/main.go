package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/bidworks/docsync/internal/server/handlers"
	"github.com/bidworks/docsync/internal/server/middleware"
	"github.com/bidworks/docsync/internal/server/realtime"
	"github.com/bidworks/docsync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	shutdownTimeout = 10 * time.Second
	accessTokenTTL  = 24 * time.Hour

	rateLimitRequests = 100
	rateLimitWindow   = time.Minute
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "docsync.db", "Path to SQLite database")
	logFile := flag.String("log-file", "", "Log file path (empty for stdout)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	mintToken := flag.String("mint-token", "", "Mint an access token for the given user id and exit")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Секрет приходит только из окружения, не из флагов
	jwtSecret := os.Getenv("DOCSYNC_JWT_SECRET")
	if jwtSecret == "" {
		fmt.Fprintln(os.Stderr, "DOCSYNC_JWT_SECRET environment variable is required")
		os.Exit(1)
	}

	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(jwtSecret),
		AccessTokenTTL: accessTokenTTL,
	}

	// Выпуск токена - административная операция: аутентификация живет
	// на платформе, сервису достаточно уметь проверять подпись
	if *mintToken != "" {
		token, err := handlers.GenerateAccessToken(jwtConfig, *mintToken)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to mint token: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(token)
		os.Exit(0)
	}

	logger := newLogger(*logFile, *logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		logger.Error("Failed to open database", "path", *dbPath, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	hub := realtime.NewHub(logger)
	defer hub.Close()

	syncHandler := handlers.NewSyncHandler(logger, store, hub)
	healthHandler := handlers.NewHealthHandler(logger, Version)
	authMW := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.HandleFunc("GET /api/v1/realtime", hub.HandleWebSocket)
	mux.Handle("GET /api/v1/documents/{id}", authMW(http.HandlerFunc(syncHandler.HandleGetDocument)))
	mux.Handle("POST /api/v1/documents/{id}/sync", authMW(http.HandlerFunc(syncHandler.HandleSync)))

	handler := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(
			middleware.RateLimitMiddleware(rateLimitRequests, rateLimitWindow, logger)(mux)))

	server := &http.Server{
		Addr:              *addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "addr", *addr, "version", Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}

	logger.Info("Server stopped")
}

// newLogger настраивает slog; при заданном файле логи ротируются
func newLogger(logFile, level string) *slog.Logger {
	var out io.Writer = os.Stdout
	if logFile != "" {
		out = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func printVersion() {
	fmt.Printf("DocSync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
