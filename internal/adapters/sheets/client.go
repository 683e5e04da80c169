/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package sheets

import (
    "context"
    "errors"
    "fmt"
    "strings"

    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/config"
    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/domain"
    "github.com/rs/zerolog"
    "google.golang.org/api/option"
    sheetsapi "google.golang.org/api/sheets/v4"
)

// UpstreamFetchError marks any failure to read the deals spreadsheet: network,
// auth, or a malformed response. It is never retried; callers surface the
// message to the HTTP client.
type UpstreamFetchError struct {
    Err error
}

func (e *UpstreamFetchError) Error() string { return "sheets: " + e.Err.Error() }
func (e *UpstreamFetchError) Unwrap() error { return e.Err }

// IsUpstream reports whether err originated in the spreadsheet fetch.
func IsUpstream(err error) bool {
    var ue *UpstreamFetchError
    return errors.As(err, &ue)
}

type Client struct {
    service       *sheetsapi.Service
    spreadsheetID string
    readRange     string
    log           zerolog.Logger
}

func NewClient(ctx context.Context, cfg config.Config, log zerolog.Logger) (*Client, error) {
    var opts []option.ClientOption
    if cfg.SheetsAPIKey != "" {
        opts = append(opts, option.WithAPIKey(cfg.SheetsAPIKey))
    } else if cfg.CredentialsFile != "" {
        opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
    }
    service, err := sheetsapi.NewService(ctx, opts...)
    if err != nil { return nil, fmt.Errorf("failed to create sheets service: %w", err) }
    return &Client{
        service:       service,
        spreadsheetID: cfg.SpreadsheetID,
        readRange:     cfg.SheetRange,
        log:           log,
    }, nil
}

// GetRows reads the configured range and zips the header row with every data
// row. Short rows are padded with empty strings so each record carries the
// full header set. One stateless read per call; no cache, no retry.
func (c *Client) GetRows(ctx context.Context) ([]domain.SheetRow, error) {
    if c.spreadsheetID == "" { return nil, &UpstreamFetchError{Err: errors.New("spreadsheet id not configured")} }
    resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, c.readRange).Context(ctx).Do()
    if err != nil { return nil, &UpstreamFetchError{Err: err} }
    if resp == nil { return nil, &UpstreamFetchError{Err: errors.New("empty response")} }

    rows := zipRows(resp.Values)
    c.log.Debug().Int("rows", len(rows)).Str("range", c.readRange).Msg("sheet fetched")
    return rows, nil
}

func zipRows(values [][]interface{}) []domain.SheetRow {
    if len(values) < 2 { return []domain.SheetRow{} }
    headers := make([]string, len(values[0]))
    for i, h := range values[0] {
        headers[i] = strings.TrimSpace(cellString(h))
    }
    out := make([]domain.SheetRow, 0, len(values)-1)
    for _, raw := range values[1:] {
        row := make(domain.SheetRow, len(headers))
        for i, h := range headers {
            if h == "" { continue }
            if i < len(raw) {
                row[h] = cellString(raw[i])
            } else {
                row[h] = ""
            }
        }
        out = append(out, row)
    }
    return out
}

func cellString(v interface{}) string {
    switch t := v.(type) {
    case string:
        return t
    case nil:
        return ""
    default:
        return fmt.Sprint(t)
    }
}
