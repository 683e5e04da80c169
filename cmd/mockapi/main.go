/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package main

import (
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/config"
    apphttp "github.com/SecTionXx/SaleOrderForecast-sub004/internal/http"
    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/logger"
)

// Local-development entry point: same routes and fallbacks as the real server
// but with canned auth and fixture data instead of Google Sheets.
func main() {
    cfg := config.Load()
    log := logger.New(cfg)

    router := apphttp.NewMockRouter(cfg, log)

    errCh := make(chan error, 1)
    go func() { errCh <- router.Run(cfg.HTTPAddr) }()
    log.Info().Str("addr", cfg.HTTPAddr).Msg("mock server listening")

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
