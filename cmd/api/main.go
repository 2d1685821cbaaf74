/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package main

import (
    "context"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/HamedShams/jira-peek/internal/adapters/jira"
    "github.com/HamedShams/jira-peek/internal/config"
    httpx "github.com/HamedShams/jira-peek/internal/http"
    "github.com/HamedShams/jira-peek/internal/jobs"
    "github.com/HamedShams/jira-peek/internal/logger"
    "github.com/HamedShams/jira-peek/internal/repo"
    "github.com/HamedShams/jira-peek/internal/services"
)

func main() {
    cfg := config.Load()
    log := logger.New(cfg)
    ctx, cancel := context.WithCancel(context.Background())
    defer cancel()

    // DB
    db := repo.MustOpen(ctx, cfg, log)
    defer db.Close()
    repository := repo.NewRepository(db, log)
    if err := repository.EnsureSchema(ctx); err != nil {
        log.Fatal().Err(err).Msg("schema init failed")
    }

    // Adapters
    jc := jira.NewClient(cfg, log)

    // Services
    svc := services.NewService(cfg, log, repository, jc)

    // One existence probe at boot; a failure keeps the popup bare until the
    // cron recheck succeeds.
    {
        ctx2, cancel2 := context.WithTimeout(ctx, 20*time.Second); defer cancel2()
        svc.CheckProject(ctx2)
    }

    // HTTP server (Gin)
    router := httpx.NewRouter(cfg, log, svc)

    // Cron
    cr := jobs.NewCron(cfg, log, svc, repository)
    cr.Start()
    defer cr.Stop()

    // graceful shutdown
    errCh := make(chan error, 1)
    go func() { errCh <- router.Run(cfg.HTTPAddr) }()

    sigCh := make(chan os.Signal, 1)
    signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

    select {
    case <-sigCh:
        log.Info().Msg("shutting down...")
    case err := <-errCh:
        if err != nil { log.Error().Err(err).Msg("http server error") }
    }

    time.Sleep(500 * time.Millisecond)
}
