/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package http

import (
    "github.com/gin-gonic/gin"
    "github.com/google/uuid"
    "github.com/HamedShams/jira-peek/internal/config"
    "github.com/rs/zerolog"
)

func NewRouter(cfg config.Config, log zerolog.Logger, svc any) *gin.Engine {
    if cfg.AppEnv != "dev" { gin.SetMode(gin.ReleaseMode) }
    r := gin.New()
    r.Use(gin.Recovery())
    r.Use(requestID())
    r.Use(func(c *gin.Context) {
        c.Next()
        log.Info().
            Str("m", c.Request.Method).
            Str("p", c.FullPath()).
            Int("s", c.Writer.Status()).
            Str("rid", c.GetString("request_id")).
            Msg("http")
    })

    h := NewHandlers(cfg, log, svc)

    r.GET("/", h.Index)
    r.GET("/healthz", h.Healthz)
    r.POST("/query", h.Query)
    r.POST("/feed", h.Feed)
    r.GET("/prefs", h.GetPrefs)
    r.PUT("/prefs", h.PutPrefs)

    return r
}

func requestID() gin.HandlerFunc {
    return func(c *gin.Context) {
        id := c.GetHeader("X-Request-ID")
        if id == "" { id = uuid.NewString() }
        c.Set("request_id", id)
        c.Header("X-Request-ID", id)
        c.Next()
    }
}
