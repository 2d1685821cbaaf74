package services

import (
    "strconv"
    "strings"

    "github.com/HamedShams/jira-peek/internal/domain"
)

// Validate checks the submitted form in fixed order: project, status,
// days-in-status. Status "0" is rejected the same as an empty selection;
// Jira status IDs start at 1 so nothing legitimate is lost.
// It never fails with an error and has no side effects.
func Validate(project, statusCode, daysInStatus string) domain.ValidationResult {
    var errs []string
    if strings.TrimSpace(project) == "" {
        errs = append(errs, "Project cannot be empty")
    }
    if statusCode == "" || statusCode == "0" {
        errs = append(errs, "Please select a status")
    }
    if !nonNegativeInt(daysInStatus) {
        errs = append(errs, "Days in status must be a non-negative number")
    }
    return domain.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func nonNegativeInt(s string) bool {
    if s == "" { return false }
    n, err := strconv.Atoi(s)
    if err != nil { return false }
    return n >= 0
}
