/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package services

import (
    "fmt"
    "strconv"
    "strings"
    "time"

    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/domain"
)

// TransformRows maps each sheet record onto the fixed 13-position grid the
// legacy frontend consumes. Missing fields take documented defaults; malformed
// numerics degrade to 0 rather than failing.
func TransformRows(rows []domain.SheetRow) []domain.GridRow {
    today := time.Now().Format("2006-01-02")
    out := make([]domain.GridRow, 0, len(rows))
    for i, row := range rows {
        out = append(out, transformRow(row, i, today))
    }
    return out
}

func transformRow(row domain.SheetRow, i int, today string) domain.GridRow {
    total := parseFloat(row[domain.FieldTotalValue])
    probability := parseInt(row[domain.FieldProbabilityPercent])
    weighted := parseFloat(row[domain.FieldWeightedValue])
    // The sheet's weighted column is often blank; derive it from value and
    // probability when both are usable.
    if weighted == 0 && total != 0 && probability != 0 {
        weighted = total * float64(probability) / 100
    }

    return domain.GridRow{
        0:  stringOr(row[domain.FieldDealID], fmt.Sprintf("DEAL-%d", i+1)),
        1:  row[domain.FieldDateCreated],
        2:  stringOr(row[domain.FieldCustomerName], "N/A"),
        3:  stringOr(row[domain.FieldProjectName], "N/A"),
        4:  total,
        5:  probability,
        6:  weighted,
        7:  stringOr(row[domain.FieldDealStage], "Unknown"),
        8:  row[domain.FieldExpectedCloseDate],
        9:  stringOr(row[domain.FieldSalesRep], "Unknown"),
        10: stringOr(row[domain.FieldLastUpdated], today),
        11: row[domain.FieldNotes],
        12: row[domain.FieldActualCloseDate],
    }
}

func stringOr(v, def string) string {
    if strings.TrimSpace(v) == "" { return def }
    return v
}

func parseFloat(v string) float64 {
    f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
    if err != nil { return 0 }
    return f
}

func parseInt(v string) int {
    v = strings.TrimSpace(v)
    n, err := strconv.Atoi(v)
    if err == nil { return n }
    // sheets sometimes hand back "50.0" for a percent column
    f, err := strconv.ParseFloat(v, 64)
    if err != nil { return 0 }
    return int(f)
}
