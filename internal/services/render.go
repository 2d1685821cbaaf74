package services

import (
    "fmt"
    "strings"

    "github.com/HamedShams/jira-peek/internal/domain"
)

// RenderTable wraps a results table's pre-rendered rows into one HTML
// fragment with a heading line. Identical inputs always yield byte-identical
// output.
func RenderTable(t domain.ResultsTable) string {
    cols := []string{"Date", "Activity"}
    if t.Kind == domain.TableQuery {
        cols = []string{"Issue", "Status", "Summary"}
    }
    var sb strings.Builder
    sb.WriteString("<h5>")
    sb.WriteString(t.Heading)
    sb.WriteString(" Results</h5>")
    sb.WriteString(`<table width="100%"><thead><tr>`)
    for _, c := range cols {
        sb.WriteString("<th>")
        sb.WriteString(c)
        sb.WriteString("</th>")
    }
    sb.WriteString("</tr></thead><tbody>")
    if len(t.Rows) == 0 {
        fmt.Fprintf(&sb, `<tr><td colspan="%d">There are no %s results</td></tr>`, len(cols), t.Heading)
    } else {
        for _, r := range t.Rows { sb.WriteString(r) }
    }
    sb.WriteString("</tbody></table>")
    return sb.String()
}
