/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package main

import (
    "context"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/adapters/sheets"
    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/config"
    apphttp "github.com/SecTionXx/SaleOrderForecast-sub004/internal/http"
    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/jobs"
    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/logger"
    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/services"
)

func main() {
    cfg := config.Load()
    log := logger.New(cfg)
    ctx, cancel := context.WithCancel(context.Background())
    defer cancel()

    // Adapters
    sc, err := sheets.NewClient(ctx, cfg, log)
    if err != nil {
        log.Fatal().Err(err).Msg("sheets client init failed")
    }

    // Services
    svc := services.New(cfg, log, sc)
    users := services.NewUserStore(cfg, log)

    // HTTP server (Gin)
    router := apphttp.NewRouter(cfg, log, svc, users)

    // Upstream connectivity probe
    probe := jobs.NewProbe(cfg, log, sc)
    probe.Start()
    defer probe.Stop()

    errCh := make(chan error, 1)
    go func() { errCh <- router.Run(cfg.HTTPAddr) }()
    log.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.AppEnv).Msg("server listening")

    sigCh := make(chan os.Signal, 1)
    signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

    select {
    case <-sigCh:
        log.Info().Msg("shutting down...")
    case err := <-errCh:
        if err != nil { log.Error().Err(err).Msg("http server error") }
    }

    time.Sleep(500 * time.Millisecond)
}
