// Package htmltext converts editor HTML into the plain-text forms used for
// report storage and clipboard sharing.
package htmltext

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var blankRun = regexp.MustCompile(`\n{3,}`)

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape escapes text for inclusion in an HTML body.
func Escape(s string) string {
	return escaper.Replace(s)
}

// ToPlainText renders HTML as text. Ordered list items are numbered per list,
// unordered items get a bullet, <br> becomes a newline and p, li and div end
// with one. Runs of three or more newlines collapse to a blank line.
func ToPlainText(src string) string {
	var b strings.Builder
	for _, n := range parse(src) {
		writePlain(&b, n)
	}
	return strings.TrimSpace(blankRun.ReplaceAllString(b.String(), "\n\n"))
}

func writePlain(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
	default:
		return
	}

	switch n.DataAtom {
	case atom.Br:
		b.WriteString("\n")
		return
	case atom.Li:
		b.WriteString(listPrefix(n))
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writePlain(b, c)
	}

	switch n.DataAtom {
	case atom.P, atom.Li, atom.Div:
		b.WriteString("\n")
	}
}

func listPrefix(li *html.Node) string {
	parent := li.Parent
	if parent == nil || parent.Type != html.ElementNode {
		return ""
	}
	switch parent.DataAtom {
	case atom.Ul:
		return "• "
	case atom.Ol:
		idx := 1
		for s := li.PrevSibling; s != nil; s = s.PrevSibling {
			if s.Type == html.ElementNode && s.DataAtom == atom.Li {
				idx++
			}
		}
		return strconv.Itoa(idx) + ". "
	}
	return ""
}

// Strip returns only the text content of src.
func Strip(src string) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range parse(src) {
		walk(n)
	}
	return b.String()
}

// FromPlain wraps each line of text in a paragraph.
func FromPlain(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = Escape(l)
	}
	return "<p>" + strings.Join(lines, "</p><p>") + "</p>"
}

// IndentedText renders HTML for the clipboard: nested lists are indented by
// four spaces per level.
func IndentedText(src string) string {
	var b strings.Builder
	for _, n := range parse(src) {
		writeIndented(&b, n, 0)
	}
	return strings.TrimSpace(b.String())
}

func writeIndented(b *strings.Builder, n *html.Node, indent int) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
	default:
		return
	}

	switch n.DataAtom {
	case atom.P, atom.Div:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeIndented(b, c, indent)
		}
		b.WriteString("\n")
	case atom.Br:
		b.WriteString("\n")
	case atom.Ul, atom.Ol:
		idx := 0
		for li := n.FirstChild; li != nil; li = li.NextSibling {
			if li.Type != html.ElementNode {
				continue
			}
			idx++
			prefix := "• "
			if n.DataAtom == atom.Ol {
				prefix = strconv.Itoa(idx) + ". "
			}
			b.WriteString(strings.Repeat("    ", indent) + prefix)
			for c := li.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.DataAtom == atom.Ul || c.DataAtom == atom.Ol) {
					b.WriteString("\n")
					writeIndented(b, c, indent+1)
				} else {
					writeIndented(b, c, indent)
				}
			}
			if !strings.HasSuffix(b.String(), "\n") {
				b.WriteString("\n")
			}
		}
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeIndented(b, c, indent)
		}
	}
}

func parse(src string) []*html.Node {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(src), ctx)
	if err != nil {
		return []*html.Node{{Type: html.TextNode, Data: src}}
	}
	return nodes
}
