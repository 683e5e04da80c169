/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package services

import (
    "context"

    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/config"
    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/domain"
    "github.com/rs/zerolog"
)

type sheetSource interface {
    GetRows(ctx context.Context) ([]domain.SheetRow, error)
}

// Service owns the deals pipeline: fetch rows from the spreadsheet and shape
// them for the two API representations.
type Service struct {
    cfg    config.Config
    log    zerolog.Logger
    sheets sheetSource
}

func New(cfg config.Config, log zerolog.Logger, sheets sheetSource) *Service {
    return &Service{cfg: cfg, log: log, sheets: sheets}
}

// Deals returns the raw sheet records, one per spreadsheet row.
func (s *Service) Deals(ctx context.Context) ([]domain.SheetRow, error) {
    rows, err := s.sheets.GetRows(ctx)
    if err != nil {
        s.log.Error().Err(err).Msg("deal fetch failed")
        return nil, err
    }
    return rows, nil
}

// Grid returns the deals in the legacy 13-position grid shape.
func (s *Service) Grid(ctx context.Context) ([]domain.GridRow, error) {
    rows, err := s.Deals(ctx)
    if err != nil { return nil, err }
    return TransformRows(rows), nil
}
