/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package http

import (
    "github.com/gin-contrib/cors"
    "github.com/gin-gonic/gin"
    "github.com/rs/zerolog"

    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/config"
)

func NewRouter(cfg config.Config, log zerolog.Logger, svc dealService, users userService) *gin.Engine {
    if cfg.AppEnv != "dev" { gin.SetMode(gin.ReleaseMode) }
    r := gin.New()
    r.Use(gin.Recovery())
    r.Use(requestLog(log))
    r.Use(cors.New(corsConfig(cfg)))

    h := NewHandlers(cfg, log, svc, users)
    st := newStaticResolver(cfg.StaticDir, cfg.NodeModDir, moduleRewrites, true, log)

    r.GET("/health", h.Health)
    r.GET("/api/sheet-data", h.SheetData)
    r.GET("/api/getSheetData", h.GetSheetData)
    r.POST("/api/auth/login", h.Login)
    r.GET("/api/forecasts", h.RequireAuth(), h.Forecasts)

    r.GET("/", st.servePage("index.html"))
    r.GET("/login.html", st.servePage("login.html"))
    r.GET("/loading-demo.html", st.servePage("loading-demo.html"))

    r.NoRoute(st.fallback)
    return r
}

func requestLog(log zerolog.Logger) gin.HandlerFunc {
    return func(c *gin.Context) {
        c.Next()
        log.Info().Str("m", c.Request.Method).Str("p", c.Request.URL.Path).Int("s", c.Writer.Status()).Msg("http")
    }
}

func corsConfig(cfg config.Config) cors.Config {
    cc := cors.DefaultConfig()
    cc.AllowHeaders = append(cc.AllowHeaders, "Authorization")
    wildcard := false
    for _, o := range cfg.CORSOrigins {
        if o == "*" { wildcard = true }
    }
    if wildcard || len(cfg.CORSOrigins) == 0 {
        cc.AllowAllOrigins = true
    } else {
        cc.AllowOrigins = cfg.CORSOrigins
        cc.AllowCredentials = true
    }
    return cc
}
