/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package http

import (
    "context"
    "net/http"
    "strings"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/rs/zerolog"

    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/config"
    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/domain"
)

type dealService interface {
    Deals(ctx context.Context) ([]domain.SheetRow, error)
    Grid(ctx context.Context) ([]domain.GridRow, error)
    Forecast(ctx context.Context, params domain.ForecastParameters) (*domain.Forecast, error)
}

type userService interface {
    Authenticate(email, password string) (*domain.User, error)
    IssueToken(userID int) (domain.Token, error)
    VerifyToken(token string) (*domain.User, error)
}

type Handlers struct {
    cfg   config.Config
    log   zerolog.Logger
    svc   dealService
    users userService
}

func NewHandlers(cfg config.Config, log zerolog.Logger, svc dealService, users userService) *Handlers {
    return &Handlers{cfg: cfg, log: log, svc: svc, users: users}
}

func (h *Handlers) Health(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Service is healthy"})
}

// SheetData returns the raw sheet records with a fetch envelope.
func (h *Handlers) SheetData(c *gin.Context) {
    rows, err := h.svc.Deals(c.Request.Context())
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{
            "success":   false,
            "error":     err.Error(),
            "timestamp": time.Now().UTC().Format(time.RFC3339),
        })
        return
    }
    c.JSON(http.StatusOK, gin.H{
        "success":   true,
        "data":      rows,
        "count":     len(rows),
        "timestamp": time.Now().UTC().Format(time.RFC3339),
    })
}

// GetSheetData returns the deals in the legacy numeric-keyed grid shape the
// frontend's table code consumes.
func (h *Handlers) GetSheetData(c *gin.Context) {
    grid, err := h.svc.Grid(c.Request.Context())
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{
            "success": false,
            "error":   "Failed to fetch sheet data",
            "message": err.Error(),
        })
        return
    }
    c.JSON(http.StatusOK, gin.H{"values": grid})
}

type loginRequest struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}

func (h *Handlers) Login(c *gin.Context) {
    var req loginRequest
    if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
        c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Incorrect email or password"})
        return
    }
    user, err := h.users.Authenticate(req.Email, req.Password)
    if err != nil {
        c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Incorrect email or password"})
        return
    }
    token, err := h.users.IssueToken(user.ID)
    if err != nil {
        h.log.Error().Err(err).Int("user", user.ID).Msg("token issue failed")
        c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not create access token"})
        return
    }
    c.JSON(http.StatusOK, token)
}

// RequireAuth guards a route group with bearer-token verification.
func (h *Handlers) RequireAuth() gin.HandlerFunc {
    return func(c *gin.Context) {
        auth := c.GetHeader("Authorization")
        token, ok := strings.CutPrefix(auth, "Bearer ")
        if !ok || token == "" {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authenticated"})
            return
        }
        user, err := h.users.VerifyToken(token)
        if err != nil {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authenticated"})
            return
        }
        c.Set("user", user)
        c.Next()
    }
}

// Forecasts generates a forecast over the requested window from spreadsheet
// history. Dates are YYYY-MM-DD.
func (h *Handlers) Forecasts(c *gin.Context) {
    start, err := time.Parse("2006-01-02", c.Query("start_date"))
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "start_date must be YYYY-MM-DD"})
        return
    }
    end, err := time.Parse("2006-01-02", c.Query("end_date"))
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "end_date must be YYYY-MM-DD"})
        return
    }
    if end.Before(start) {
        c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "end_date before start_date"})
        return
    }
    params := domain.ForecastParameters{
        StartDate:    start,
        EndDate:      end,
        SalesRep:     c.Query("sales_rep"),
        ForecastType: domain.ForecastType(c.DefaultQuery("forecast_type", string(domain.ForecastBasic))),
    }
    forecast, err := h.svc.Forecast(c.Request.Context(), params)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate forecast", "message": err.Error()})
        return
    }
    c.JSON(http.StatusOK, []*domain.Forecast{forecast})
}
