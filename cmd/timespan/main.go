package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/timespan/internal/domain/port/core"
	"github.com/amirhossein-jamali/timespan/internal/domain/usecase/timespan"
	"github.com/amirhossein-jamali/timespan/internal/infrastructure/adapter/cli"
	"github.com/amirhossein-jamali/timespan/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/timespan/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/timespan/internal/infrastructure/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := cli.ParseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		return cli.ExitCodeForParseError(err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return cli.ExitError
	}

	var appLogger core.Logger = logger.NewNoopLogger()
	if opts.Verbose {
		appLogger = logger.NewZapLogger(false)
		appLogger.SetLevel(core.LogLevelDebug)
		defer func() { _ = appLogger.Flush() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service := timespan.NewTimeSpanService(timeProvider.NewRealTimeProvider(), appLogger, cfg.TimeSpan.DefaultTimezone).
		WithMaxSpanYears(cfg.TimeSpan.MaxSpanYears)

	return cli.NewApp(service, os.Stdout, os.Stderr).Run(ctx, opts)
}
