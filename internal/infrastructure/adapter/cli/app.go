package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/amirhossein-jamali/timespan/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timespan/internal/infrastructure/adapter/api/dto"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// App runs one decomposition from the command line
type App struct {
	timeSpanUseCase usecase.TimeSpanUseCase
	stdout          io.Writer
	stderr          io.Writer
}

// NewApp creates a new command line application
func NewApp(timeSpanUseCase usecase.TimeSpanUseCase, stdout, stderr io.Writer) *App {
	return &App{
		timeSpanUseCase: timeSpanUseCase,
		stdout:          stdout,
		stderr:          stderr,
	}
}

// Run computes and prints the span described by opts and returns the exit code
func (a *App) Run(ctx context.Context, opts Options) int {
	req := usecase.TimeSpanRequest{
		From:     opts.From,
		To:       opts.To,
		Timezone: opts.Timezone,
		Period:   opts.PeriodString(),
	}

	result, err := a.timeSpanUseCase.Compute(ctx, req)
	if err != nil {
		fmt.Fprintln(a.stderr, NewRenderer(a.stderr, false).RenderError(err))
		return ExitError
	}

	if opts.JSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(dto.NewTimeSpanResponse(result)); err != nil {
			fmt.Fprintln(a.stderr, err)
			return ExitError
		}
		return ExitOK
	}

	fmt.Fprintln(a.stdout, NewRenderer(a.stdout, opts.ShowZero).Render(label(req.From), targetLabel(req), result))
	return ExitOK
}

// ExitCodeForParseError maps a flag parsing error to an exit code
func ExitCodeForParseError(err error) int {
	if errors.Is(err, pflag.ErrHelp) {
		return ExitOK
	}
	return ExitUsage
}

func label(value string) string {
	if value == "" {
		return "now"
	}
	return value
}

func targetLabel(req usecase.TimeSpanRequest) string {
	if req.Period != "" {
		return label(req.From) + " + " + req.Period
	}
	return label(req.To)
}
