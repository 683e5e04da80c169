package sheets

import (
    "errors"
    "fmt"
    "testing"

    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/domain"
)

func TestZipRows(t *testing.T) {
    values := [][]interface{}{
        {"dealId", "customerName", "totalValue"},
        {"DEAL-1", "ACME", 1500.0},
        {"DEAL-2", "Globex"}, // short row pads with ""
    }
    rows := zipRows(values)
    if len(rows) != 2 { t.Fatalf("expected 2 rows, got %d", len(rows)) }
    if rows[0][domain.FieldDealID] != "DEAL-1" || rows[0][domain.FieldCustomerName] != "ACME" {
        t.Fatalf("row 0 = %#v", rows[0])
    }
    if rows[0][domain.FieldTotalValue] != "1500" { t.Fatalf("numeric cell = %q", rows[0][domain.FieldTotalValue]) }
    if rows[1][domain.FieldTotalValue] != "" { t.Fatalf("short row should pad, got %#v", rows[1]) }
}

func TestZipRowsHeaderOnlyOrEmpty(t *testing.T) {
    if rows := zipRows(nil); len(rows) != 0 { t.Fatalf("nil values: %#v", rows) }
    if rows := zipRows([][]interface{}{{"dealId"}}); len(rows) != 0 { t.Fatalf("header only: %#v", rows) }
}

func TestZipRowsSkipsBlankHeaders(t *testing.T) {
    values := [][]interface{}{
        {"dealId", "", "notes"},
        {"DEAL-1", "ignored", "hello"},
    }
    rows := zipRows(values)
    if len(rows[0]) != 2 { t.Fatalf("expected 2 fields, got %#v", rows[0]) }
    if rows[0][domain.FieldNotes] != "hello" { t.Fatalf("notes = %q", rows[0][domain.FieldNotes]) }
}

func TestUpstreamFetchErrorWrapping(t *testing.T) {
    cause := errors.New("rpc deadline")
    var err error = &UpstreamFetchError{Err: cause}
    if !IsUpstream(err) { t.Fatal("IsUpstream should match") }
    if !IsUpstream(fmt.Errorf("deals: %w", err)) { t.Fatal("IsUpstream should match through wrapping") }
    if !errors.Is(err, cause) { t.Fatal("cause should unwrap") }
    if IsUpstream(cause) { t.Fatal("bare cause is not an upstream error") }
}
