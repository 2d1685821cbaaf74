package services

import (
    "context"
    "encoding/json"
    "net/http"
    "strings"
    "sync/atomic"

    "github.com/HamedShams/jira-peek/internal/config"
    "github.com/HamedShams/jira-peek/internal/domain"
    "github.com/rs/zerolog"
)

// ResultsSink is where rendered tables land. The HTTP layer decides what
// "shown" means; the service only drives the transitions.
type ResultsSink interface {
    SetHTML(markup string)
    Show()
    Hide()
}

// StatusLine mirrors the popup's one-line status element. SetError is
// expected to mark the text as an error on the way out.
type StatusLine interface {
    Set(text string)
    SetError(text string)
}

// Ports bundles the two UI surfaces one request writes to.
type Ports struct {
    Sink   ResultsSink
    Status StatusLine
}

type fetcher interface {
    Get(ctx context.Context, url string) (int, []byte, error)
}

type prefStore interface {
    GetPref(ctx context.Context, key, def string) (string, error)
    SetPref(ctx context.Context, key, value string) error
}

type Service struct {
    cfg   config.Config
    log   zerolog.Logger
    repo  prefStore
    jira  fetcher
    ready atomic.Bool
}

func NewService(cfg config.Config, logger zerolog.Logger, repo prefStore, jira fetcher) *Service {
    return &Service{cfg: cfg, log: logger, repo: repo, jira: jira}
}

// Ready reports whether the project existence probe has succeeded. The UI
// stays unset until it has.
func (s *Service) Ready() bool { return s.ready.Load() }

// Defaults returns the cached project and user, falling back to the
// configured defaults when nothing has been stored yet.
func (s *Service) Defaults(ctx context.Context) (string, string) {
    project, err := s.repo.GetPref(ctx, "project", s.cfg.DefaultProject)
    if err != nil { s.log.Warn().Err(err).Msg("pref read failed") }
    user, err := s.repo.GetPref(ctx, "user", s.cfg.DefaultUser)
    if err != nil { s.log.Warn().Err(err).Msg("pref read failed") }
    return project, user
}

func (s *Service) SetDefaults(ctx context.Context, project, user string) error {
    if err := s.repo.SetPref(ctx, "project", project); err != nil { return err }
    return s.repo.SetPref(ctx, "user", user)
}

// CheckProject probes the default project once. Failure is silent apart from
// a debug log; the popup simply stays disabled until a later probe succeeds.
func (s *Service) CheckProject(ctx context.Context) {
    project, _ := s.repo.GetPref(ctx, "project", s.cfg.DefaultProject)
    u := BuildProjectCheckURL(s.cfg.JiraBaseURL, project)
    status, body, err := s.jira.Get(ctx, u)
    if err != nil || status != http.StatusOK || !json.Valid(body) {
        s.ready.Store(false)
        s.log.Debug().Err(err).Int("status", status).Str("project", project).Msg("project check failed, popup disabled")
        return
    }
    s.ready.Store(true)
    s.log.Info().Str("project", project).Msg("project check ok")
}

// HandleQuerySubmit runs one query cycle: validate, build the search URL,
// fetch, map, render. Every failure is terminal for the cycle and lands on
// the status line; nothing is retried.
func (s *Service) HandleQuerySubmit(ctx context.Context, ports Ports, form domain.FormInput) {
    res := Validate(form.Project, form.StatusCode, form.DaysInStatus)
    if !res.Valid {
        ports.Sink.Hide()
        ports.Status.SetError(strings.Join(res.Errors, ". "))
        return
    }
    u := BuildQueryURL(s.cfg.JiraBaseURL, domain.QueryParams{
        Project:      form.Project,
        StatusCode:   form.StatusCode,
        DaysInStatus: form.DaysInStatus,
        MaxResults:   s.cfg.QueryMaxResults,
    })
    status, body, err := s.jira.Get(ctx, u)
    if err != nil {
        s.log.Error().Err(err).Str("url", u).Msg("query fetch failed")
        ports.Status.SetError(domain.NetworkError{Err: err}.Error())
        return
    }
    if status != http.StatusOK {
        ports.Status.SetError(upstreamError(status, body).Error())
        return
    }
    var sr domain.SearchResult
    if err := json.Unmarshal(body, &sr); err != nil {
        s.log.Error().Err(err).Str("url", u).Msg("query body decode failed")
        ports.Status.SetError(domain.APIError{Status: status, Messages: []string{"Unexpected response from JIRA"}}.Error())
        return
    }
    ports.Sink.SetHTML(RenderTable(domain.ResultsTable{
        Heading: form.Project,
        Kind:    domain.TableQuery,
        Rows:    MapIssues(sr.Issues),
    }))
    ports.Sink.Show()
    ports.Status.Set(u)
    if err := s.repo.SetPref(ctx, "project", form.Project); err != nil {
        s.log.Warn().Err(err).Msg("pref write failed")
    }
}

// HandleFeedSubmit runs one activity-feed cycle for a user.
func (s *Service) HandleFeedSubmit(ctx context.Context, ports Ports, userID string) {
    if strings.TrimSpace(userID) == "" {
        ports.Sink.Hide()
        ports.Status.SetError("User cannot be empty")
        return
    }
    u := BuildFeedURL(s.cfg.JiraBaseURL, userID)
    status, body, err := s.jira.Get(ctx, u)
    if err != nil {
        s.log.Error().Err(err).Str("url", u).Msg("feed fetch failed")
        ports.Status.SetError(domain.NetworkError{Err: err}.Error())
        return
    }
    if status != http.StatusOK {
        ports.Status.SetError(upstreamError(status, body).Error())
        return
    }
    feed, err := ParseFeed(body)
    if err != nil {
        s.log.Error().Err(err).Str("url", u).Msg("feed parse failed")
        ports.Status.SetError(err.Error())
        return
    }
    ports.Sink.SetHTML(RenderTable(domain.ResultsTable{
        Heading: userID,
        Kind:    domain.TableActivity,
        Rows:    MapActivity(feed),
    }))
    ports.Sink.Show()
    ports.Status.Set(u)
    if err := s.repo.SetPref(ctx, "user", userID); err != nil {
        s.log.Warn().Err(err).Msg("pref write failed")
    }
}

// upstreamError picks the user-facing error for a non-OK response: the fixed
// logged-in message on 401, otherwise whatever errorMessages the body holds.
func upstreamError(status int, body []byte) error {
    if status == http.StatusUnauthorized { return domain.AuthError{} }
    var eb struct {
        ErrorMessages []string `json:"errorMessages"`
    }
    _ = json.Unmarshal(body, &eb)
    return domain.APIError{Status: status, Messages: eb.ErrorMessages}
}
