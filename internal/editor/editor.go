// Package editor models the report body editing surface. The rich variant
// keeps HTML as entered; the fallback variant holds plain text and converts
// at the boundary.
package editor

import (
	"strings"

	"github.com/julianstephens/hurryup/internal/htmltext"
)

// Surface is the editing capability the composition engine writes drafts into.
type Surface interface {
	// Content returns the current body as HTML.
	Content() string
	// SetContent replaces the body with html.
	SetContent(html string)
	// Text returns the current body as plain text.
	Text() string
	Focus()
	Focused() bool
	Rich() bool
}

// New returns the HTML editor when rich is true, else the plain-text fallback.
func New(rich bool) Surface {
	if rich {
		return &HTMLEditor{}
	}
	return &PlainTextFallback{}
}

type HTMLEditor struct {
	html    string
	focused bool
}

func (e *HTMLEditor) Content() string     { return e.html }
func (e *HTMLEditor) SetContent(h string) { e.html = h }
func (e *HTMLEditor) Text() string        { return htmltext.ToPlainText(e.html) }
func (e *HTMLEditor) Focus()              { e.focused = true }
func (e *HTMLEditor) Focused() bool       { return e.focused }
func (e *HTMLEditor) Rich() bool          { return true }

// PlainTextFallback stores text only. Markup given to SetContent is rendered
// to text first.
type PlainTextFallback struct {
	text    string
	focused bool
}

func (e *PlainTextFallback) Content() string {
	if e.text == "" {
		return ""
	}
	return htmltext.FromPlain(e.text)
}

func (e *PlainTextFallback) SetContent(h string) {
	if !strings.ContainsRune(h, '<') {
		e.text = h
		return
	}
	e.text = htmltext.ToPlainText(h)
}

// SetText replaces the body without any conversion.
func (e *PlainTextFallback) SetText(text string) { e.text = text }

func (e *PlainTextFallback) Text() string  { return e.text }
func (e *PlainTextFallback) Focus()        { e.focused = true }
func (e *PlainTextFallback) Focused() bool { return e.focused }
func (e *PlainTextFallback) Rich() bool    { return false }
