package services

import (
    "context"
    "errors"
    "strings"
    "testing"

    "github.com/HamedShams/jira-peek/internal/config"
    "github.com/HamedShams/jira-peek/internal/domain"
    "github.com/rs/zerolog"
)

type fakeFetcher struct {
    status int
    body   []byte
    err    error
    gotURL string
    calls  int
}

func (f *fakeFetcher) Get(_ context.Context, u string) (int, []byte, error) {
    f.calls++
    f.gotURL = u
    if f.err != nil { return 0, nil, f.err }
    return f.status, f.body, nil
}

type fakePrefs struct{ m map[string]string }

func (f *fakePrefs) GetPref(_ context.Context, key, def string) (string, error) {
    if v, ok := f.m[key]; ok { return v, nil }
    return def, nil
}

func (f *fakePrefs) SetPref(_ context.Context, key, value string) error {
    if f.m == nil { f.m = map[string]string{} }
    f.m[key] = value
    return nil
}

type fakeSink struct {
    html   string
    shown  bool
    hidden bool
}

func (s *fakeSink) SetHTML(h string) { s.html = h }
func (s *fakeSink) Show()            { s.shown = true }
func (s *fakeSink) Hide()            { s.hidden = true }

type fakeStatus struct {
    text    string
    isError bool
}

func (s *fakeStatus) Set(t string)      { s.text = t; s.isError = false }
func (s *fakeStatus) SetError(t string) { s.text = t; s.isError = true }

func testService(f *fakeFetcher) (*Service, *fakePrefs) {
    cfg := config.Config{
        JiraBaseURL:     "https://jira.secondlife.com",
        DefaultProject:  "Sunshine",
        DefaultUser:     "nyx.linden",
        QueryMaxResults: 100,
    }
    prefs := &fakePrefs{}
    return NewService(cfg, zerolog.Nop(), prefs, f), prefs
}

func submit(svc *Service, form domain.FormInput) (*fakeSink, *fakeStatus) {
    sink := &fakeSink{}
    status := &fakeStatus{}
    svc.HandleQuerySubmit(context.Background(), Ports{Sink: sink, Status: status}, form)
    return sink, status
}

func TestHandleQuerySubmit_RejectedHidesSink(t *testing.T) {
    f := &fakeFetcher{}
    svc, _ := testService(f)
    sink, status := submit(svc, domain.FormInput{})
    if !sink.hidden { t.Fatal("sink should be hidden on validation failure") }
    if !status.isError { t.Fatal("status should carry an error") }
    if f.calls != 0 { t.Fatal("no request may be issued for an invalid form") }
    // all three messages, joined in check order
    for _, want := range []string{"Project cannot be empty", "Please select a status", "Days in status"} {
        if !strings.Contains(status.text, want) {
            t.Fatalf("status text missing %q: %q", want, status.text)
        }
    }
}

func TestHandleQuerySubmit_Rendered(t *testing.T) {
    f := &fakeFetcher{status: 200, body: []byte(`{"issues":[{"key":"SUN-1","fields":{"status":{"description":"d","iconUrl":"i","name":"Open"},"summary":"s"}}]}`)}
    svc, prefs := testService(f)
    sink, status := submit(svc, domain.FormInput{Project: "Sunshine", StatusCode: "1", DaysInStatus: "1"})
    if !sink.shown { t.Fatal("sink should be shown") }
    if !strings.Contains(sink.html, "<h5>Sunshine Results</h5>") || !strings.Contains(sink.html, "SUN-1") {
        t.Fatalf("unexpected sink html: %s", sink.html)
    }
    if status.isError || status.text != f.gotURL {
        t.Fatalf("status should echo the request URL, got %q (url %q)", status.text, f.gotURL)
    }
    if prefs.m["project"] != "Sunshine" {
        t.Fatal("submitted project should be cached")
    }
}

func TestHandleQuerySubmit_EmptyResultStillRenders(t *testing.T) {
    f := &fakeFetcher{status: 200, body: []byte(`{"issues":[]}`)}
    svc, _ := testService(f)
    sink, status := submit(svc, domain.FormInput{Project: "Sunshine", StatusCode: "1", DaysInStatus: "0"})
    if !sink.shown || status.isError {
        t.Fatalf("empty result is success, got sink=%+v status=%+v", sink, status)
    }
    if !strings.Contains(sink.html, "There are no Sunshine results") {
        t.Fatalf("missing empty-state row: %s", sink.html)
    }
}

func TestHandleQuerySubmit_AuthError(t *testing.T) {
    f := &fakeFetcher{status: 401, body: []byte(`{}`)}
    svc, _ := testService(f)
    _, status := submit(svc, domain.FormInput{Project: "Sunshine", StatusCode: "1", DaysInStatus: "1"})
    if !status.isError || status.text != "You must be logged in to JIRA to see this project." {
        t.Fatalf("unexpected 401 status: %+v", status)
    }
}

func TestHandleQuerySubmit_APIErrorJoinsMessages(t *testing.T) {
    f := &fakeFetcher{status: 400, body: []byte(`{"errorMessages":["bad jql","try again"]}`)}
    svc, _ := testService(f)
    _, status := submit(svc, domain.FormInput{Project: "Sunshine", StatusCode: "1", DaysInStatus: "1"})
    if !status.isError || status.text != "bad jql try again" {
        t.Fatalf("unexpected api error status: %+v", status)
    }
}

func TestHandleQuerySubmit_NetworkError(t *testing.T) {
    f := &fakeFetcher{err: domain.NetworkError{Err: errors.New("dial tcp: refused")}}
    svc, _ := testService(f)
    _, status := submit(svc, domain.FormInput{Project: "Sunshine", StatusCode: "1", DaysInStatus: "1"})
    if !status.isError || status.text != "Network Error" {
        t.Fatalf("unexpected network error status: %+v", status)
    }
    if f.calls != 1 { t.Fatalf("exactly one request expected, got %d", f.calls) }
}

func TestHandleFeedSubmit_Rendered(t *testing.T) {
    f := &fakeFetcher{status: 200, body: []byte(sampleFeed)}
    svc, prefs := testService(f)
    sink := &fakeSink{}
    status := &fakeStatus{}
    svc.HandleFeedSubmit(context.Background(), Ports{Sink: sink, Status: status}, "nyx.linden")
    if !sink.shown || status.isError {
        t.Fatalf("expected rendered feed, got sink=%+v status=%+v", sink, status)
    }
    if !strings.Contains(sink.html, "<th>Date</th><th>Activity</th>") {
        t.Fatalf("feed table missing activity headers: %s", sink.html)
    }
    if status.text != "https://jira.secondlife.com/activity?maxResults=50&streams=user+IS+nyx.linden&providers=issues" {
        t.Fatalf("status should echo the feed URL, got %q", status.text)
    }
    if prefs.m["user"] != "nyx.linden" { t.Fatal("submitted user should be cached") }
}

func TestHandleFeedSubmit_StructuralError(t *testing.T) {
    f := &fakeFetcher{status: 200, body: []byte("<html></html>")}
    svc, _ := testService(f)
    sink := &fakeSink{}
    status := &fakeStatus{}
    svc.HandleFeedSubmit(context.Background(), Ports{Sink: sink, Status: status}, "nyx.linden")
    if !status.isError { t.Fatal("malformed feed should surface an error") }
    if sink.shown { t.Fatal("sink must not be shown on a malformed feed") }
}

func TestCheckProject_TogglesReady(t *testing.T) {
    f := &fakeFetcher{status: 200, body: []byte(`{"total":1}`)}
    svc, _ := testService(f)
    if svc.Ready() { t.Fatal("service must start not ready") }
    svc.CheckProject(context.Background())
    if !svc.Ready() { t.Fatal("successful probe should mark ready") }
    if f.gotURL != "https://jira.secondlife.com/rest/api/2/search?jql=project=Sunshine&maxResults=1" {
        t.Fatalf("unexpected probe url: %s", f.gotURL)
    }

    f.status = 503
    svc.CheckProject(context.Background())
    if svc.Ready() { t.Fatal("failed probe should clear ready") }

    f.status = 200
    f.body = []byte("<html>not json</html>")
    svc.CheckProject(context.Background())
    if svc.Ready() { t.Fatal("non-JSON body should not mark ready") }
}
