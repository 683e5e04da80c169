package logger

import (
    "os"
    "strings"
    "time"

    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/config"
    "github.com/rs/zerolog"
    "github.com/rs/zerolog/log"
)

func New(cfg config.Config) zerolog.Logger {
    var logger zerolog.Logger
    if cfg.AppEnv == "dev" {
        output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
        logger = zerolog.New(output).With().Timestamp().Logger()
    } else {
        zerolog.TimeFieldFormat = time.RFC3339
        logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
    }
    logger = logger.Level(level(cfg))
    log.Logger = logger
    return logger
}

func level(cfg config.Config) zerolog.Level {
    switch strings.ToLower(cfg.LogLevel) {
    case "debug":
        return zerolog.DebugLevel
    case "info":
        return zerolog.InfoLevel
    case "warn", "warning":
        return zerolog.WarnLevel
    case "error":
        return zerolog.ErrorLevel
    case "disabled":
        return zerolog.Disabled
    }
    if cfg.AppEnv == "dev" { return zerolog.DebugLevel }
    return zerolog.InfoLevel
}
