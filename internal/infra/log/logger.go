package logs

import (
	"log/slog"
	"os"
	"strings"

	"booknow/config"
	"booknow/internal/infra/resilience"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config   *config.Config
	ErrorLog *resilience.ErrorLog
}

// New creates the process logger. Records go to stdout and are retained in the error log ring buffer.
func New(params Params) (*slog.Logger, error) {
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	var console slog.Handler
	if params.Config.Env.Log.Pretty {
		console = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		console = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	logger := slog.New(resilience.NewHandler(console, params.ErrorLog)).
		With(slog.String("service", params.Config.Env.ServiceName))
	slog.SetDefault(logger)

	return logger, nil
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
