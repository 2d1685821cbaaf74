package services

import (
    "bytes"
    "encoding/xml"
    "fmt"
    "strings"
    "time"

    "github.com/HamedShams/jira-peek/internal/domain"
    "golang.org/x/net/html"
    "golang.org/x/net/html/atom"
)

// MapIssues turns search results into table rows: key, status badge
// (icon + name, description as tooltip), summary. Input order is preserved
// and an empty slice maps to an empty slice.
func MapIssues(issues []domain.IssueRecord) []string {
    rows := make([]string, 0, len(issues))
    for _, is := range issues {
        st := is.Fields.Status
        rows = append(rows, fmt.Sprintf(
            `<tr><td>%s</td><td><span title="%s"><img src="%s"/><span>%s</span></span></td><td>%s</td></tr>`,
            is.Key, st.Description, st.IconURL, st.Name, is.Fields.Summary))
    }
    return rows
}

// ParseFeed decodes an activity stream document. The root element must be
// <feed>; anything else is a structural failure.
func ParseFeed(body []byte) (*domain.ActivityFeed, error) {
    dec := xml.NewDecoder(bytes.NewReader(body))
    for {
        tok, err := dec.Token()
        if err != nil { return nil, domain.ErrStructural }
        se, ok := tok.(xml.StartElement)
        if !ok { continue }
        if se.Name.Local != "feed" { return nil, domain.ErrStructural }
        var feed domain.ActivityFeed
        if err := dec.DecodeElement(&feed, &se); err != nil {
            return nil, fmt.Errorf("%w: %v", domain.ErrStructural, err)
        }
        return &feed, nil
    }
}

const activityTimeLayout = "Jan 2, 2006 3:04 PM"

// MapActivity turns feed entries into table rows: formatted update time and
// the entry title stripped to plain text. Document order is preserved.
func MapActivity(feed *domain.ActivityFeed) []string {
    rows := make([]string, 0, len(feed.Entries))
    for _, e := range feed.Entries {
        rows = append(rows, fmt.Sprintf(`<tr><td>%s</td><td>%s</td></tr>`,
            formatUpdated(e.Updated), ExtractText(e.Title)))
    }
    return rows
}

// formatUpdated renders the timestamp in the configured timezone, falling
// back to the raw value when the feed carries something that is not RFC3339.
func formatUpdated(raw string) string {
    t, err := time.Parse(time.RFC3339, raw)
    if err != nil { return raw }
    return t.Local().Format(activityTimeLayout)
}

// ExtractText interprets the fragment as HTML body content and returns its
// concatenated text, discarding tags and attributes. Feed titles routinely
// carry inline markup.
func ExtractText(fragment string) string {
    body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
    nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
    if err != nil { return fragment }
    var sb strings.Builder
    for _, n := range nodes { collectText(n, &sb) }
    return sb.String()
}

func collectText(n *html.Node, sb *strings.Builder) {
    if n.Type == html.TextNode { sb.WriteString(n.Data) }
    for c := n.FirstChild; c != nil; c = c.NextSibling { collectText(c, sb) }
}
