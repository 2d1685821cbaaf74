package services

import (
    "fmt"

    "github.com/HamedShams/jira-peek/internal/domain"
)

// The builders below are plain concatenation on purpose: the upstream
// endpoints are queried with literal '+' separators and raw JQL, and callers
// depend on byte-exact output. Values containing reserved URL characters are
// not escaped; project keys and usernames are operator-supplied.

// BuildQueryURL returns the issue-search URL for issues of a project that
// have sat in a status for at least the given number of days.
func BuildQueryURL(base string, q domain.QueryParams) string {
    return fmt.Sprintf(
        "%s/rest/api/2/search?jql=project=%s+and+status=%s+and+status+changed+to+%s+before+-%sd&fields=id,status,key,assignee,summary&maxresults=%d",
        base, q.Project, q.StatusCode, q.StatusCode, q.DaysInStatus, q.MaxResults)
}

// BuildFeedURL returns the activity-stream URL for one user, capped at 50
// entries and restricted to the issues provider.
func BuildFeedURL(base, userID string) string {
    return fmt.Sprintf("%s/activity?maxResults=50&streams=user+IS+%s&providers=issues", base, userID)
}

// BuildProjectCheckURL returns the cheapest search that proves a project
// exists and the caller can see it.
func BuildProjectCheckURL(base, project string) string {
    return fmt.Sprintf("%s/rest/api/2/search?jql=project=%s&maxResults=1", base, project)
}
