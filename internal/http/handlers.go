/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package http

import (
    "context"
    "fmt"
    "net/http"
    "strings"

    "github.com/gin-gonic/gin"
    "github.com/HamedShams/jira-peek/internal/config"
    "github.com/HamedShams/jira-peek/internal/domain"
    "github.com/HamedShams/jira-peek/internal/services"
    "github.com/rs/zerolog"
)

type service interface {
    HandleQuerySubmit(ctx context.Context, ports services.Ports, form domain.FormInput)
    HandleFeedSubmit(ctx context.Context, ports services.Ports, userID string)
    Defaults(ctx context.Context) (string, string)
    SetDefaults(ctx context.Context, project, user string) error
    Ready() bool
}

type Handlers struct {
    cfg config.Config
    log zerolog.Logger
    svc service
}

func NewHandlers(cfg config.Config, log zerolog.Logger, svc any) *Handlers {
    return &Handlers{cfg: cfg, log: log, svc: svc.(service)}
}

func (h *Handlers) Healthz(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Index serves the popup page. When the startup project check has not
// succeeded the page stays bare, same as the popup never wiring itself up.
func (h *Handlers) Index(c *gin.Context) {
    c.Header("Content-Type", "text/html; charset=utf-8")
    if !h.svc.Ready() {
        c.String(http.StatusOK, renderBarePage())
        return
    }
    project, user := h.svc.Defaults(c.Request.Context())
    c.String(http.StatusOK, renderPopupPage(project, user))
}

// Query runs one issue-search cycle and returns the status line plus the
// rendered table as an HTML fragment.
func (h *Handlers) Query(c *gin.Context) {
    form := domain.FormInput{
        Project:      c.PostForm("project"),
        StatusCode:   c.PostForm("status"),
        DaysInStatus: c.PostForm("days"),
    }
    sink := &sinkCapture{}
    status := &statusCapture{}
    h.svc.HandleQuerySubmit(c.Request.Context(), services.Ports{Sink: sink, Status: status}, form)
    c.Header("Content-Type", "text/html; charset=utf-8")
    c.String(http.StatusOK, renderFragment(status, sink))
}

// Feed runs one activity-feed cycle for a user.
func (h *Handlers) Feed(c *gin.Context) {
    sink := &sinkCapture{}
    status := &statusCapture{}
    h.svc.HandleFeedSubmit(c.Request.Context(), services.Ports{Sink: sink, Status: status}, c.PostForm("user"))
    c.Header("Content-Type", "text/html; charset=utf-8")
    c.String(http.StatusOK, renderFragment(status, sink))
}

func (h *Handlers) GetPrefs(c *gin.Context) {
    project, user := h.svc.Defaults(c.Request.Context())
    c.JSON(http.StatusOK, gin.H{"project": project, "user": user})
}

func (h *Handlers) PutPrefs(c *gin.Context) {
    var body struct {
        Project string `json:"project"`
        User    string `json:"user"`
    }
    if err := c.ShouldBindJSON(&body); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
        return
    }
    if strings.TrimSpace(body.Project) == "" || strings.TrimSpace(body.User) == "" {
        c.JSON(http.StatusBadRequest, gin.H{"error": "project and user are required"})
        return
    }
    if err := h.svc.SetDefaults(c.Request.Context(), body.Project, body.User); err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, gin.H{"ok": true})
}

// renderFragment serializes the captured ports: the status line always, the
// results container only when the cycle ended in Rendered.
func renderFragment(status *statusCapture, sink *sinkCapture) string {
    var sb strings.Builder
    class := "status"
    if status.isError { class = "status error" }
    fmt.Fprintf(&sb, `<div id="status" class="%s">%s</div>`, class, status.text)
    if sink.visible {
        fmt.Fprintf(&sb, `<div id="query-result">%s</div>`, sink.html)
    }
    return sb.String()
}
