package domain

import (
    "errors"
    "fmt"
    "strings"
)

// ErrStructural marks a feed document without a <feed> root.
var ErrStructural = errors.New("activity feed has no feed root element")

// AuthError is an upstream 401. The message shown to the user is fixed.
type AuthError struct{}

func (AuthError) Error() string { return "You must be logged in to JIRA to see this project." }

// APIError carries the joined errorMessages of a non-OK upstream response.
type APIError struct {
    Status   int
    Messages []string
}

func (e APIError) Error() string {
    if len(e.Messages) == 0 { return fmt.Sprintf("jira api status=%d", e.Status) }
    return strings.Join(e.Messages, " ")
}

// NetworkError wraps a transport failure; the user sees a generic message.
type NetworkError struct{ Err error }

func (e NetworkError) Error() string { return "Network Error" }
func (e NetworkError) Unwrap() error { return e.Err }
