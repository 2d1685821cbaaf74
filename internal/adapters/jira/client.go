/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package jira

import (
    "context"
    "io"
    "net/http"
    "net/http/cookiejar"

    "github.com/HamedShams/jira-peek/internal/config"
    "github.com/HamedShams/jira-peek/internal/domain"
    "github.com/rs/zerolog"
)

// Client performs authenticated GETs against a Jira instance. Session
// cookies ride along in the jar; a PAT or basic credentials are added when
// configured. URLs are built by the caller and fetched verbatim.
type Client struct {
    token string
    user  string
    pass  string
    http  *http.Client
    log   zerolog.Logger
}

func NewClient(cfg config.Config, log zerolog.Logger) *Client {
    jar, _ := cookiejar.New(nil)
    return &Client{
        token: cfg.JiraPAT,
        user:  cfg.JiraUsername,
        pass:  cfg.JiraPassword,
        http:  &http.Client{Timeout: cfg.HTTPTimeout, Jar: jar},
        log:   log,
    }
}

// Get issues exactly one request and returns the status code and raw body.
// Transport failures come back as domain.NetworkError; non-2xx statuses are
// not an error here, the caller branches on them.
func (c *Client) Get(ctx context.Context, u string) (int, []byte, error) {
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
    if err != nil { return 0, nil, domain.NetworkError{Err: err} }
    req.Header.Set("Accept", "application/json, application/xml")
    if c.token != "" {
        req.Header.Set("Authorization", "Bearer "+c.token)
    } else if c.user != "" && c.pass != "" {
        req.SetBasicAuth(c.user, c.pass)
    }
    resp, err := c.http.Do(req)
    if err != nil { return 0, nil, domain.NetworkError{Err: err} }
    defer resp.Body.Close()
    body, err := io.ReadAll(resp.Body)
    if err != nil { return 0, nil, domain.NetworkError{Err: err} }
    c.log.Debug().Str("url", u).Int("status", resp.StatusCode).Int("bytes", len(body)).Msg("jira get")
    return resp.StatusCode, body, nil
}
