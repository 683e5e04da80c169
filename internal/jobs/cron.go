package jobs

import (
    "context"
    "time"

    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/config"
    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/domain"
    "github.com/robfig/cron/v3"
    "github.com/rs/zerolog"
)

type sheetSource interface {
    GetRows(ctx context.Context) ([]domain.SheetRow, error)
}

// Probe periodically checks that the deals spreadsheet is reachable and logs
// the outcome. Purely observational; nothing is cached or retried.
type Probe struct {
    cfg    config.Config
    log    zerolog.Logger
    sheets sheetSource
    c      *cron.Cron
}

func NewProbe(cfg config.Config, log zerolog.Logger, sheets sheetSource) *Probe {
    c := cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)))
    p := &Probe{cfg: cfg, log: log, sheets: sheets, c: c}
    if cfg.ProbeCron != "" {
        if _, err := c.AddFunc(cfg.ProbeCron, p.run); err != nil {
            log.Error().Err(err).Str("spec", cfg.ProbeCron).Msg("probe: bad cron spec, probe disabled")
        }
    }
    return p
}

func (p *Probe) Start() { p.c.Start() }
func (p *Probe) Stop()  { p.c.Stop() }

func (p *Probe) run() {
    ctx, cancel := context.WithTimeout(context.Background(), p.cfg.HTTPTimeout)
    defer cancel()
    start := time.Now()
    rows, err := p.sheets.GetRows(ctx)
    if err != nil {
        p.log.Error().Err(err).Dur("took", time.Since(start)).Msg("probe: sheet unreachable")
        return
    }
    p.log.Info().Int("rows", len(rows)).Dur("took", time.Since(start)).Msg("probe: sheet ok")
}
