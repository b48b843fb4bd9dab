// Package logging provides structured logging functionality.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"market-tycoon/internal/config"
)

// New creates a logger from the logging configuration.
func New(cfg config.LogConfig) zerolog.Logger {
	var writers []io.Writer

	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	if cfg.File {
		logDir := filepath.Dir(cfg.FilePath)
		if err := os.MkdirAll(logDir, 0o755); err == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.FilePath,
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAgeDays,
				Compress:   true,
			})
		}
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = os.Stderr
	case 1:
		writer = writers[0]
	default:
		writer = zerolog.MultiLevelWriter(writers...)
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	return zerolog.New(writer).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetDebugLevel sets the global log level to debug.
func SetDebugLevel() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

// WithGame adds a game identifier to the logger context.
func WithGame(logger zerolog.Logger, gameID string) zerolog.Logger {
	return logger.With().Str("game_id", gameID).Logger()
}

// LogDay logs a completed day transition.
func LogDay(logger zerolog.Logger, day int, netWorth, cash float64, headlines int) {
	logger.Info().
		Str("event", "day_advanced").
		Int("day", day).
		Float64("net_worth", netWorth).
		Float64("cash", cash).
		Int("headlines", headlines).
		Msg("Day advanced")
}

// LogTrade logs an executed player trade.
func LogTrade(logger zerolog.Logger, action, assetID string, qty int, price float64) {
	logger.Info().
		Str("event", "trade").
		Str("action", action).
		Str("asset", assetID).
		Int("quantity", qty).
		Float64("price", price).
		Msg("Trade executed")
}

// LogGameOver logs a terminal game state.
func LogGameOver(logger zerolog.Logger, day int, status, cause string, netWorth float64) {
	logger.Info().
		Str("event", "game_over").
		Int("day", day).
		Str("status", status).
		Str("cause", cause).
		Float64("net_worth", netWorth).
		Msg("Game over")
}
