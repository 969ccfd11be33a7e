package htmltext

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const maxIndent = 8

// NestIndentedLists rewrites flat lists whose items carry ql-indent-N classes
// into properly nested lists, so pasted reports keep their structure.
func NestIndentedLists(src string) string {
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, n := range parse(src) {
		root.AppendChild(n)
	}

	var lists []*html.Node
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.DataAtom == atom.Ul || n.DataAtom == atom.Ol) {
			lists = append(lists, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(root)

	for _, list := range lists {
		nestList(list)
	}

	var b strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return src
		}
	}
	return b.String()
}

func nestList(list *html.Node) {
	var items []*html.Node
	for c := list.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Li {
			items = append(items, c)
		}
	}

	current := 0
	stack := []*html.Node{list}
	for _, item := range items {
		level := takeIndent(item)
		if level > current {
			for i := current; i < level; i++ {
				last := lastElementChild(stack[len(stack)-1])
				if last == nil {
					break
				}
				sub := &html.Node{Type: html.ElementNode, Data: list.Data, DataAtom: list.DataAtom}
				last.AppendChild(sub)
				stack = append(stack, sub)
			}
		} else {
			for i := current; i > level && len(stack) > 1; i-- {
				stack = stack[:len(stack)-1]
			}
		}
		current = level

		item.Parent.RemoveChild(item)
		stack[len(stack)-1].AppendChild(item)
	}
}

// takeIndent returns the item's ql-indent level and removes that class.
func takeIndent(n *html.Node) int {
	for i, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		fields := strings.Fields(a.Val)
		level := 0
		kept := fields[:0]
		for _, f := range fields {
			if lv, ok := strings.CutPrefix(f, "ql-indent-"); ok && level == 0 {
				if v, err := strconv.Atoi(lv); err == nil && v >= 1 && v <= maxIndent {
					level = v
					continue
				}
			}
			kept = append(kept, f)
		}
		if len(kept) == 0 {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
		} else {
			n.Attr[i].Val = strings.Join(kept, " ")
		}
		return level
	}
	return 0
}

func lastElementChild(n *html.Node) *html.Node {
	for c := n.LastChild; c != nil; c = c.PrevSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}
