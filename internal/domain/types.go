/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package domain

import (
    "encoding/json"
    "fmt"
    "strconv"
    "time"
)

// SheetRow is one record read from the spreadsheet: the header row zipped with
// one data row. Fields the sheet does not carry are simply absent.
type SheetRow map[string]string

// Canonical column names as the deals sheet headers them.
const (
    FieldDealID             = "dealId"
    FieldDateCreated        = "dateCreated"
    FieldCustomerName       = "customerName"
    FieldProjectName        = "projectName"
    FieldTotalValue         = "totalValue"
    FieldProbabilityPercent = "probabilityPercent"
    FieldWeightedValue      = "weightedValue"
    FieldDealStage          = "dealStage"
    FieldExpectedCloseDate  = "expectedCloseDate"
    FieldSalesRep           = "salesRep"
    FieldLastUpdated        = "lastUpdated"
    FieldNotes              = "notes"
    FieldActualCloseDate    = "actualCloseDate"
)

// GridPositions is the width of the legacy spreadsheet-grid row.
const GridPositions = 13

// GridRow is the fixed 13-position representation of a SheetRow. The legacy
// frontend expects spreadsheet-style indices, so it marshals as a JSON object
// keyed "0".."12" rather than an array.
type GridRow [GridPositions]any

func (g GridRow) MarshalJSON() ([]byte, error) {
    m := make(map[string]any, GridPositions)
    for i, v := range g {
        m[strconv.Itoa(i)] = v
    }
    return json.Marshal(m)
}

func (g *GridRow) UnmarshalJSON(data []byte) error {
    var m map[string]any
    if err := json.Unmarshal(data, &m); err != nil { return err }
    for k, v := range m {
        i, err := strconv.Atoi(k)
        if err != nil || i < 0 || i >= GridPositions { return fmt.Errorf("grid row: bad position %q", k) }
        g[i] = v
    }
    return nil
}

type UserRole string

const (
    RoleAdmin  UserRole = "admin"
    RoleEditor UserRole = "editor"
    RoleViewer UserRole = "viewer"
)

type User struct {
    ID        int        `json:"id"`
    Email     string     `json:"email"`
    FullName  string     `json:"full_name"`
    Role      UserRole   `json:"role"`
    IsActive  bool       `json:"is_active"`
    CreatedAt time.Time  `json:"created_at"`
    UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type Token struct {
    AccessToken string    `json:"access_token"`
    TokenType   string    `json:"token_type"`
    ExpiresAt   time.Time `json:"expires_at"`
}

type ForecastType string

const (
    ForecastBasic      ForecastType = "basic"
    ForecastAdvanced   ForecastType = "advanced"
    ForecastPredictive ForecastType = "predictive"
)

type ForecastParameters struct {
    StartDate    time.Time    `json:"start_date"`
    EndDate      time.Time    `json:"end_date"`
    SalesRep     string       `json:"sales_rep,omitempty"`
    ForecastType ForecastType `json:"forecast_type"`
}

type ForecastDataPoint struct {
    Date            string   `json:"date"`
    Value           float64  `json:"value"`
    ConfidenceLower *float64 `json:"confidence_lower,omitempty"`
    ConfidenceUpper *float64 `json:"confidence_upper,omitempty"`
    IsActual        bool     `json:"is_actual"`
}

type Forecast struct {
    ID         string              `json:"id"`
    CreatedAt  time.Time           `json:"created_at"`
    Parameters ForecastParameters  `json:"parameters"`
    DataPoints []ForecastDataPoint `json:"data_points"`
    Metadata   map[string]any      `json:"metadata"`
}
