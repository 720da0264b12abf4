package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bidworks/docsync/internal/client/api"
	"github.com/bidworks/docsync/internal/client/cli"
	"github.com/bidworks/docsync/internal/client/iocli"
	"github.com/bidworks/docsync/internal/client/storage/boltdb"
	syncsvc "github.com/bidworks/docsync/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "docsync-client.db", "Path to local database")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn, error")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(*logLevel),
	}))

	// Контекст отменяется по Ctrl+C (важно для команды watch)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент и сервисы
	apiClient := api.NewClient(*serverURL)
	syncService := syncsvc.NewService(
		boltStorage, boltStorage, boltStorage, boltStorage, nil, logger)

	c := cli.New(apiClient, syncService, boltStorage, boltStorage, iocli.NewStdio(), logger, *serverURL)
	c.Run(ctx, command, args[1:])
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func printVersion() {
	fmt.Printf("DocSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
