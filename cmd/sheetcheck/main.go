/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package main

import (
    "context"
    "os"
    "time"

    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/adapters/sheets"
    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/config"
    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/logger"
)

// Connectivity check: read the configured sheet once and report. Exits 1 when
// the read fails so it can gate deployments.
func main() {
    cfg := config.Load()
    log := logger.New(cfg)

    ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
    defer cancel()

    sc, err := sheets.NewClient(ctx, cfg, log)
    if err != nil {
        log.Error().Err(err).Msg("sheets client init failed")
        os.Exit(1)
    }

    start := time.Now()
    rows, err := sc.GetRows(ctx)
    if err != nil {
        log.Error().Err(err).Str("spreadsheet", cfg.SpreadsheetID).Msg("sheet read failed")
        os.Exit(1)
    }
    log.Info().Int("rows", len(rows)).Dur("took", time.Since(start)).Str("spreadsheet", cfg.SpreadsheetID).Msg("sheet reachable")
}
