package http_test

import (
    "encoding/json"
    "net/http"
    "path/filepath"
    "testing"

    "github.com/gin-gonic/gin"
    "github.com/rs/zerolog"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/config"
    apphttp "github.com/SecTionXx/SaleOrderForecast-sub004/internal/http"
)

func newMockRouter(t *testing.T, fixture string) (*gin.Engine, config.Config) {
    t.Helper()
    cfg := testConfig(t)
    cfg.MockFixtureFile = filepath.Join(t.TempDir(), "mock-sheet-data.json")
    if fixture != "" {
        writeFile(t, filepath.Dir(cfg.MockFixtureFile), filepath.Base(cfg.MockFixtureFile), fixture)
    }
    return apphttp.NewMockRouter(cfg, zerolog.Nop()), cfg
}

func TestMockLogin(t *testing.T) {
    r, _ := newMockRouter(t, "")

    // password missing
    w := doReq(r, http.MethodPost, "/api/auth/login", "", `{"email":"a@b.com"}`)
    require.Equal(t, http.StatusUnauthorized, w.Code)
    var resp map[string]any
    require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
    assert.Equal(t, false, resp["success"])

    // any credentials pass
    w = doReq(r, http.MethodPost, "/api/auth/login", "", `{"email":"a@b.com","password":"anything"}`)
    require.Equal(t, http.StatusOK, w.Code)
    require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
    assert.Equal(t, true, resp["success"])
    assert.Equal(t, "mock-jwt-token", resp["token"])
    user := resp["user"].(map[string]any)
    assert.Equal(t, "a@b.com", user["email"])
    assert.Equal(t, "admin", user["role"])
}

func TestMockVerifyAlwaysValid(t *testing.T) {
    r, _ := newMockRouter(t, "")
    w := doReq(r, http.MethodPost, "/api/auth/verify", "", `{}`)
    require.Equal(t, http.StatusOK, w.Code)
    assert.JSONEq(t, `{"success":true,"valid":true}`, w.Body.String())
}

func TestMockSheetDataServesFixtureVerbatim(t *testing.T) {
    fixture := `{"values":[{"0":"DEAL-1","2":"ACME"}]}`
    r, _ := newMockRouter(t, fixture)

    w := doReq(r, http.MethodGet, "/api/getSheetData", "", "")
    require.Equal(t, http.StatusOK, w.Code)
    assert.Equal(t, fixture, w.Body.String())
    assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestMockSheetDataEmptyWithoutFixture(t *testing.T) {
    r, _ := newMockRouter(t, "")
    w := doReq(r, http.MethodGet, "/api/getSheetData", "", "")
    require.Equal(t, http.StatusOK, w.Code)
    assert.JSONEq(t, `{"values":[]}`, w.Body.String())
}

func TestMockModuleFallbackIncludesCharts(t *testing.T) {
    cfg := testConfig(t)
    writeFile(t, cfg.StaticDir, "js/charts/render.js", "export const render = 1;")
    r := apphttp.NewMockRouter(cfg, zerolog.Nop())

    w := doReq(r, http.MethodGet, "/js/render.js", "", "")
    require.Equal(t, http.StatusOK, w.Code)
    assert.Contains(t, w.Body.String(), "render")
}

func TestMockMissingScriptFallsThrough(t *testing.T) {
    r, _ := newMockRouter(t, "")

    // HTML clients get the SPA document instead of a synthetic script error
    w := doReq(r, http.MethodGet, "/js/missing.js", "text/html", "")
    require.Equal(t, http.StatusOK, w.Code)
    assert.Equal(t, indexDoc, w.Body.String())

    // everyone else gets the JSON 404
    w = doReq(r, http.MethodGet, "/js/missing.js", "application/json", "")
    require.Equal(t, http.StatusNotFound, w.Code)
    var resp map[string]any
    require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
    assert.Equal(t, "Not found", resp["error"])
    assert.Equal(t, "/js/missing.js", resp["path"])
}
