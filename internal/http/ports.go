package http

// Per-request implementations of the service's UI ports. Each handler builds
// a fresh pair, lets the service drive them, then serializes the outcome into
// the response fragment.

type sinkCapture struct {
    html    string
    visible bool
}

func (s *sinkCapture) SetHTML(markup string) { s.html = markup }
func (s *sinkCapture) Show()                 { s.visible = true }
func (s *sinkCapture) Hide()                 { s.visible = false }

type statusCapture struct {
    text    string
    isError bool
}

func (s *statusCapture) Set(text string) {
    s.text = text
    s.isError = false
}

// SetError applies the user-visible error prefix on the way out, matching
// what the status element always showed.
func (s *statusCapture) SetError(text string) {
    s.text = "ERROR. " + text
    s.isError = true
}
