/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package http

import (
    "net/http"
    "os"

    "github.com/gin-contrib/cors"
    "github.com/gin-gonic/gin"
    "github.com/rs/zerolog"

    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/config"
)

// NewMockRouter builds the local-development server: no Google credentials, no
// real auth, canned data. Frontend work must not need a cloud project.
func NewMockRouter(cfg config.Config, log zerolog.Logger) *gin.Engine {
    r := gin.New()
    r.Use(gin.Recovery())
    r.Use(requestLog(log))
    r.Use(cors.New(corsConfig(cfg)))

    st := newStaticResolver(cfg.StaticDir, cfg.NodeModDir, mockModuleRewrites, false, log)

    r.GET("/health", func(c *gin.Context) {
        c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Mock service is healthy"})
    })

    r.POST("/api/auth/login", mockLogin)
    r.POST("/api/auth/verify", func(c *gin.Context) {
        c.JSON(http.StatusOK, gin.H{"success": true, "valid": true})
    })
    r.GET("/api/getSheetData", mockSheetData(cfg, log))

    r.GET("/", st.servePage("index.html"))
    r.GET("/login.html", st.servePage("login.html"))
    r.GET("/loading-demo.html", st.servePage("loading-demo.html"))

    r.NoRoute(st.fallback)
    return r
}

// mockLogin accepts any email/password pair and hands back a fixed token.
func mockLogin(c *gin.Context) {
    var req loginRequest
    if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
        c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Email and password are required"})
        return
    }
    c.JSON(http.StatusOK, gin.H{
        "success": true,
        "token":   "mock-jwt-token",
        "user": gin.H{
            "id":    1,
            "name":  "Mock User",
            "email": req.Email,
            "role":  "admin",
        },
    })
}

// mockSheetData serves the fixture file verbatim, or an empty grid when no
// fixture is checked out.
func mockSheetData(cfg config.Config, log zerolog.Logger) gin.HandlerFunc {
    return func(c *gin.Context) {
        data, err := os.ReadFile(cfg.MockFixtureFile)
        if err != nil {
            log.Debug().Str("file", cfg.MockFixtureFile).Msg("no fixture, serving empty values")
            c.JSON(http.StatusOK, gin.H{"values": []any{}})
            return
        }
        c.Data(http.StatusOK, "application/json", data)
    }
}
