/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package config

import (
    "os"
    "strconv"
    "strings"
    "time"

    "github.com/joho/godotenv"
)

type Config struct {
    AppEnv   string
    HTTPAddr string
    LogLevel string

    SpreadsheetID   string
    SheetsAPIKey    string
    CredentialsFile string
    SheetRange      string

    StaticDir  string
    NodeModDir string

    SecretKey      string
    TokenExpiry    time.Duration
    CORSOrigins    []string

    MockFixtureFile string

    ProbeCron   string
    HTTPTimeout time.Duration
}

func getenv(key, def string) string {
    v := os.Getenv(key)
    if v == "" { return def }
    return v
}

func atoi(key string, def int) int {
    v := os.Getenv(key)
    if v == "" { return def }
    i, err := strconv.Atoi(v)
    if err != nil { return def }
    return i
}

func dur(key string, def time.Duration) time.Duration {
    v := os.Getenv(key)
    if v == "" { return def }
    d, err := time.ParseDuration(v)
    if err != nil { return def }
    return d
}

func parseStrings(csv string) []string {
    if csv == "" { return nil }
    parts := strings.Split(csv, ",")
    out := make([]string, 0, len(parts))
    for _, p := range parts {
        p = strings.TrimSpace(p)
        if p == "" { continue }
        out = append(out, p)
    }
    return out
}

func Load() Config {
    // .env is optional; real deployments set the environment directly.
    _ = godotenv.Load()

    addr := getenv("HTTP_ADDR", "")
    if addr == "" {
        addr = ":" + getenv("PORT", "3000")
    }

    cfg := Config{
        AppEnv:   getenv("APP_ENV", "dev"),
        HTTPAddr: addr,
        LogLevel: getenv("LOG_LEVEL", ""),

        SpreadsheetID:   getenv("GOOGLE_SHEETS_ID", ""),
        SheetsAPIKey:    getenv("GOOGLE_SHEETS_API_KEY", ""),
        CredentialsFile: getenv("GOOGLE_CREDENTIALS_FILE", ""),
        SheetRange:      getenv("SHEET_RANGE", "A:Z"),

        StaticDir:  getenv("STATIC_DIR", "public"),
        NodeModDir: getenv("NODE_MODULES_DIR", "node_modules"),

        SecretKey:   getenv("SECRET_KEY", "change-me"),
        TokenExpiry: time.Duration(atoi("ACCESS_TOKEN_EXPIRE_MINUTES", 60)) * time.Minute,
        CORSOrigins: parseStrings(getenv("CORS_ORIGINS", "*")),

        MockFixtureFile: getenv("MOCK_FIXTURE_FILE", "data/mock-sheet-data.json"),

        ProbeCron:   getenv("PROBE_CRON", ""),
        HTTPTimeout: dur("HTTP_TIMEOUT", 15*time.Second),
    }
    return cfg
}
