package http

import (
    "fmt"
    "strings"
)

// The popup page is embedded in code, no external templates.

const pageHead = `<!DOCTYPE html>
<html>
<head>
	<title>JIRA Peek</title>
	<meta charset="UTF-8">
	<style>
		body { font-family: system-ui, sans-serif; margin: 16px; min-width: 420px; }
		label { display: block; margin-top: 8px; font-size: 13px; }
		input, select { width: 100%; box-sizing: border-box; padding: 4px; }
		button { margin-top: 12px; margin-right: 6px; }
		.status { margin-top: 12px; font-size: 12px; color: #555; word-break: break-all; }
		.status.error { color: #b00020; font-weight: bold; }
		#query-result table { border-collapse: collapse; margin-top: 8px; }
		#query-result th, #query-result td { border-bottom: 1px solid #ddd; padding: 4px 8px; text-align: left; font-size: 13px; }
	</style>
</head>
<body>
`

// statusOptions mirror the stock Jira workflow statuses by ID.
var statusOptions = [][2]string{
    {"1", "Open"},
    {"3", "In Progress"},
    {"4", "Reopened"},
    {"5", "Resolved"},
    {"6", "Closed"},
}

const pageScript = `<script>
async function submitTo(path, body) {
	const out = document.getElementById('output');
	try {
		const resp = await fetch(path, {method: 'POST', body: body, credentials: 'include'});
		out.innerHTML = await resp.text();
	} catch (e) {
		out.innerHTML = '<div id="status" class="status error">ERROR. Network Error</div>';
	}
}
document.getElementById('query-btn').addEventListener('click', () => {
	const body = new FormData();
	body.set('project', document.getElementById('project').value);
	body.set('status', document.getElementById('status-select').value);
	body.set('days', document.getElementById('days').value);
	submitTo('/query', body);
});
document.getElementById('feed-btn').addEventListener('click', () => {
	const body = new FormData();
	body.set('user', document.getElementById('user').value);
	submitTo('/feed', body);
});
</script>
</body>
</html>
`

// renderBarePage is what a failed startup check leaves behind: a shell with
// no form and no explanation.
func renderBarePage() string {
    return pageHead + "</body>\n</html>\n"
}

func renderPopupPage(project, user string) string {
    var sb strings.Builder
    sb.WriteString(pageHead)
    sb.WriteString("\t<h4>JIRA Search</h4>\n")
    fmt.Fprintf(&sb, "\t<label>Project <input id=\"project\" value=\"%s\"></label>\n", project)
    sb.WriteString("\t<label>Status <select id=\"status-select\">\n\t\t<option value=\"0\">Select a status</option>\n")
    for _, o := range statusOptions {
        fmt.Fprintf(&sb, "\t\t<option value=%q>%s</option>\n", o[0], o[1])
    }
    sb.WriteString("\t</select></label>\n")
    sb.WriteString("\t<label>Days in status <input id=\"days\" value=\"0\"></label>\n")
    fmt.Fprintf(&sb, "\t<label>User <input id=\"user\" value=\"%s\"></label>\n", user)
    sb.WriteString("\t<button id=\"query-btn\">Run Query</button>\n")
    sb.WriteString("\t<button id=\"feed-btn\">Activity Feed</button>\n")
    sb.WriteString("\t<div id=\"output\"><div id=\"status\" class=\"status\"></div></div>\n")
    sb.WriteString(pageScript)
    return sb.String()
}
