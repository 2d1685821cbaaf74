package domain

// FormInput is one submitted query form. Built fresh per submit, never stored.
type FormInput struct {
    Project      string
    StatusCode   string
    DaysInStatus string
}

// ValidationResult aggregates form check failures in fixed order:
// project, status, days-in-status.
type ValidationResult struct {
    Valid  bool
    Errors []string
}

// QueryParams feed the search URL builder exactly once.
type QueryParams struct {
    Project      string
    StatusCode   string
    DaysInStatus string
    MaxResults   int
}

// IssueStatus mirrors the fields.status object of the search response.
type IssueStatus struct {
    Description string `json:"description"`
    IconURL     string `json:"iconUrl"`
    Name        string `json:"name"`
}

type IssueFields struct {
    Status  IssueStatus `json:"status"`
    Summary string      `json:"summary"`
}

// IssueRecord is one element of the search response's issues array.
type IssueRecord struct {
    Key    string      `json:"key"`
    Fields IssueFields `json:"fields"`
}

// SearchResult is the JSON body of the issue-search endpoint.
type SearchResult struct {
    Issues []IssueRecord `json:"issues"`
}

// ActivityEntry is one entry of the Atom activity feed. Title may carry
// inline markup and is stripped before rendering.
type ActivityEntry struct {
    Updated string `xml:"updated"`
    Title   string `xml:"title"`
}

// ActivityFeed is the decoded feed document.
type ActivityFeed struct {
    Entries []ActivityEntry `xml:"entry"`
}

// TableKind selects the header row of a rendered table.
type TableKind string

const (
    TableQuery    TableKind = "query"
    TableActivity TableKind = "activity"
)

// ResultsTable is ephemeral: rendered once into the sink, discarded on the
// next query.
type ResultsTable struct {
    Heading string
    Kind    TableKind
    Rows    []string
}
